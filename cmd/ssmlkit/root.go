package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Jabelic-Works/ssml-utilities/internal/config"
	"github.com/Jabelic-Works/ssml-utilities/internal/logging"
	"github.com/Jabelic-Works/ssml-utilities/pkg/ssml"
)

// app carries the state shared by every subcommand
type app struct {
	configPath string
	outputPath string

	processor *ssml.Processor
	logger    *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "ssmlkit",
		Short: "Highlight, validate, format and extract speech markup",
		Long: "ssmlkit reads SSML-like markup from a file or stdin and highlights it as HTML or\n" +
			"ANSI, checks its tags, pretty-prints it, or recovers the spoken text.",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	pf.StringVarP(&a.outputPath, "output", "o", "", "Write output to a file instead of stdout")
	pf.String("mode", "strict", "Tag validation mode (strict, extended, ascii-custom)")
	pf.StringSlice("custom-tags", nil, "Extra tag names the extractor removes")
	pf.String("log-level", "warn", "Log level (debug, info, warn, error)")
	pf.String("log-format", "text", "Log format (text, json)")

	cmd.AddCommand(
		newHighlightCmd(a),
		newExtractCmd(a),
		newValidateCmd(a),
		newFormatCmd(a),
		newTokensCmd(a),
		newGraphCmd(a),
		newPreviewCmd(a),
		newConfigCmd(a),
	)
	return cmd
}

// setup loads the configuration, explicitly set flags taking priority, and
// builds the processor
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	a.logger = logging.New(cfg.Logging, cmd.ErrOrStderr())
	a.processor = ssml.New(cfg, a.logger)
	a.logger.Debug("loaded configuration", "config", a.configPath, "mode", cfg.Validation.Mode)
	return nil
}

// readInput reads the file named by args, or stdin when there is none or it
// is "-"
func (a *app) readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read from stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read input file %s: %w", args[0], err)
	}
	return string(b), nil
}

// writeOutput writes content to the output file or stdout, ending it with a
// newline
func (a *app) writeOutput(cmd *cobra.Command, content string) error {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if a.outputPath == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), content)
		return err
	}
	if err := os.WriteFile(a.outputPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// writeStructured encodes v as yaml or json
func (a *app) writeStructured(cmd *cobra.Command, v any, format string) error {
	var b strings.Builder
	switch strings.ToLower(format) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(&b)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
	case "json":
		enc := json.NewEncoder(&b)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return a.writeOutput(cmd, b.String())
}

// errInvalidDocument makes validate exit non-zero once the report is written
var errInvalidDocument = errors.New("document is not valid")
