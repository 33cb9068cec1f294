package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tavily-mcp/internal/einotool"
)

var callArgs string

var callCmd = &cobra.Command{
	Use:   "call <tool>",
	Short: "Invoke one tool once and print its result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), cfgFile, logLevel)
		if err != nil {
			return err
		}
		defer a.logger.Sync() //nolint:errcheck

		t, err := a.manager.GetTool(args[0])
		if err != nil {
			return err
		}
		out, err := einotool.New(t).InvokableRun(cmd.Context(), callArgs)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the available tools",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd.Context(), cfgFile, logLevel)
		if err != nil {
			return err
		}
		for _, t := range a.manager.Tools() {
			d := t.GetDescriptor()
			fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", d.Name, strings.TrimSpace(d.Description))
		}
		return nil
	},
}

func init() {
	callCmd.Flags().StringVar(&callArgs, "args", "{}", "tool arguments as a JSON object")
}
