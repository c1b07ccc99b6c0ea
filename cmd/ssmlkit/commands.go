package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const inputArgs = "[file|-]"

func newHighlightCmd(a *app) *cobra.Command {
	var terminal bool
	cmd := &cobra.Command{
		Use:   "highlight " + inputArgs,
		Short: "Highlight markup as HTML spans or ANSI colors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}

			var out string
			if terminal {
				out, err = a.processor.Terminal(text)
			} else {
				out, err = a.processor.Highlight(text)
			}
			if err != nil {
				return err
			}
			return a.writeOutput(cmd, out)
		},
	}
	cmd.Flags().BoolVarP(&terminal, "terminal", "t", false, "Emit ANSI colors instead of HTML")
	cmd.Flags().String("theme", "", "Stylesheet whose colors drive terminal output")
	return cmd
}

func newExtractCmd(a *app) *cobra.Command {
	var (
		only    []string
		tagName string
		details bool
		format  string
	)
	cmd := &cobra.Command{
		Use:   "extract " + inputArgs,
		Short: "Recover the spoken text by removing recognized tags",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}

			switch {
			case tagName != "":
				return a.writeOutput(cmd, strings.Join(a.processor.TextFromTag(text, tagName), "\n"))
			case len(only) > 0:
				return a.writeOutput(cmd, a.processor.RemoveTags(text, only))
			case details:
				return a.writeStructured(cmd, a.processor.Extract(text), format)
			default:
				return a.writeOutput(cmd, a.processor.Extract(text).Text)
			}
		},
	}
	cmd.Flags().StringSliceVar(&only, "only", nil, "Remove only these standard tags")
	cmd.Flags().StringVar(&tagName, "tag", "", "Print the text content of every element with this name")
	cmd.Flags().BoolVar(&details, "details", false, "Print the full extraction result")
	cmd.Flags().StringVar(&format, "format", "yaml", "Format of --details output (yaml, json)")
	cmd.MarkFlagsMutuallyExclusive("only", "tag", "details")
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "validate " + inputArgs,
		Short: "Check tag balance and tag names; exits non-zero when invalid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}
			report := a.processor.Validate(text)

			if format == "text" {
				err = a.writeOutput(cmd, validationText(report.Valid, report.Mode, report.Structure.Errors, report.InvalidTags()))
			} else {
				err = a.writeStructured(cmd, report, format)
			}
			if err != nil {
				return err
			}
			if !report.Valid {
				return errInvalidDocument
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, yaml, json)")
	return cmd
}

func newFormatCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format " + inputArgs,
		Short: "Pretty-print markup one tag per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}
			return a.writeOutput(cmd, a.processor.Format(text))
		},
	}
	cmd.Flags().Int("indent", 2, "Spaces per nesting level")
	return cmd
}

func newTokensCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "tokens " + inputArgs,
		Short: "Print the lexical tokens of markup",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}
			tokens := a.processor.Tokens(text)

			if format != "text" {
				return a.writeStructured(cmd, tokens, format)
			}
			lines := make([]string, len(tokens))
			for i, tok := range tokens {
				lines[i] = tok.String()
			}
			return a.writeOutput(cmd, strings.Join(lines, "\n"))
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, yaml, json)")
	return cmd
}

func newGraphCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "graph " + inputArgs,
		Short: "Print the document graph node by node",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}
			out, err := a.processor.Graph(text)
			if err != nil {
				return err
			}
			return a.writeOutput(cmd, out)
		},
	}
}

func newPreviewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview " + inputArgs,
		Short: "Render a standalone HTML page showing the highlighted markup",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}
			page, err := a.processor.Preview(text)
			if err != nil {
				return err
			}
			return a.writeOutput(cmd, page)
		},
	}
	cmd.Flags().String("title", "SSML preview", "Page title")
	cmd.Flags().Bool("inline-styles", false, "Copy the theme into style attributes")
	cmd.Flags().String("theme", "", "Stylesheet replacing the built-in theme")
	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := yaml.Marshal(a.processor.Config())
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			return a.writeOutput(cmd, string(b))
		},
	}
}
