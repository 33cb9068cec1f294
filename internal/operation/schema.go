package operation

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// falsyValues 与必填字段“为空”的判断一致：null、空串、false、0、空数组、空对象
var falsyValues = []any{nil, "", false, 0, []any{}, map[string]any{}}

// requiredSchema 只约束必填字段，其余参数原样转发给上游
type requiredSchema struct {
	field string

	once     sync.Once
	compiled *gojsonschema.Schema
	err      error
}

func newRequiredSchema(field string) *requiredSchema {
	return &requiredSchema{field: field}
}

func (s *requiredSchema) document() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{s.field},
		"properties": map[string]any{
			s.field: map[string]any{
				"not": map[string]any{"enum": falsyValues},
			},
		},
	}
}

func (s *requiredSchema) schema() (*gojsonschema.Schema, error) {
	s.once.Do(func() {
		raw, err := json.Marshal(s.document())
		if err != nil {
			s.err = fmt.Errorf("marshal schema for %q: %w", s.field, err)
			return
		}
		s.compiled, s.err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	})
	return s.compiled, s.err
}

// validate 必填字段缺失或为空时返回 (false, nil)
func (s *requiredSchema) validate(args map[string]any) (bool, error) {
	schema, err := s.schema()
	if err != nil {
		return false, fmt.Errorf("compile schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(args))
	if err != nil {
		return false, fmt.Errorf("validate arguments: %w", err)
	}
	return result.Valid(), nil
}
