package operation

// FailureKind 失败类型
type FailureKind string

const (
	// FailureValidation 必填字段缺失或为空，未发出任何请求
	FailureValidation FailureKind = "validation"
	// FailureRequest 上游 HTTP 错误或网络错误
	FailureRequest FailureKind = "request"
	// FailureUnexpected 序列化失败等其他错误
	FailureUnexpected FailureKind = "unexpected"
)

// Failure 带类型的失败信息
type Failure struct {
	Kind    FailureKind
	Message string
}

func (f *Failure) Error() string {
	return f.String()
}

// String 按工具调用方看到的格式输出
func (f *Failure) String() string {
	if f.Kind == FailureValidation {
		return "Invalid input: " + f.Message
	}
	return "Request failed: " + f.Message
}

// Result 一次工具调用的结果：成功文本或失败
type Result struct {
	Text    string
	Failure *Failure
}

// OK 是否成功（无结果也算成功）
func (r Result) OK() bool {
	return r.Failure == nil
}

// String 转换为工具调用方需要的纯文本
func (r Result) String() string {
	if r.Failure != nil {
		return r.Failure.String()
	}
	return r.Text
}

func success(text string) Result {
	return Result{Text: text}
}

func failure(kind FailureKind, msg string) Result {
	return Result{Failure: &Failure{Kind: kind, Message: msg}}
}
