package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/JaimeStill/agent-adapters/internal/adapters"
	"github.com/spf13/cobra"
)

type convertOptions struct {
	from   string
	to     string
	all    bool
	output string
}

// conversionSet is the --all result.
type conversionSet struct {
	From        adapters.Format            `json:"from" yaml:"from"`
	Conversions map[adapters.Format]string `json:"conversions" yaml:"conversions"`
}

type conversion struct {
	From    adapters.Format `json:"from" yaml:"from"`
	To      adapters.Format `json:"to" yaml:"to"`
	Content string          `json:"content" yaml:"content"`
}

func newConvertCmd(registry *adapters.Registry) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [file|-]",
		Short: "Convert a configuration file to another format",
		Long: `Convert reads a configuration from a file, or from stdin when the
argument is "-" or omitted, and writes it in the target format.

With --all the input is rendered in every format reachable from --from.`,
		Example: `  agentconv convert --to codex_agents build.md
  cat build.md | agentconv convert --all --output yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, registry, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", string(adapters.ClaudeCode), "source format")
	cmd.Flags().StringVar(&opts.to, "to", "", "target format")
	cmd.Flags().BoolVar(&opts.all, "all", false, "convert to every supported target")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputText, "output format: text, json or yaml")
	cmd.MarkFlagsMutuallyExclusive("to", "all")
	cmd.MarkFlagsOneRequired("to", "all")

	return cmd
}

func runConvert(cmd *cobra.Command, registry *adapters.Registry, opts *convertOptions, args []string) error {
	if err := validateOutput(opts.output); err != nil {
		return err
	}

	from, err := adapters.ParseFormat(opts.from)
	if err != nil {
		return err
	}

	input, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if opts.all {
		set := conversionSet{
			From:        from,
			Conversions: map[adapters.Format]string{from: input},
		}
		for _, to := range registry.SupportedTargets(from) {
			text, err := registry.Convert(from, to, input)
			if err != nil {
				return err
			}
			set.Conversions[to] = text
		}

		if opts.output == outputText {
			return writeSections(out, set)
		}
		return writeStructured(out, opts.output, set)
	}

	to, err := adapters.ParseFormat(opts.to)
	if err != nil {
		return err
	}

	text, err := registry.Convert(from, to, input)
	if err != nil {
		return err
	}

	if opts.output == outputText {
		_, err := io.WriteString(out, ensureNewline(text))
		return err
	}
	return writeStructured(out, opts.output, conversion{From: from, To: to, Content: text})
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}

// writeSections prints each conversion under a "==> format <==" header in
// Formats() order.
func writeSections(w io.Writer, set conversionSet) error {
	first := true
	for _, f := range adapters.Formats() {
		text, ok := set.Conversions[f]
		if !ok {
			continue
		}
		if !first {
			fmt.Fprintln(w)
		}
		first = false
		if _, err := fmt.Fprintf(w, "==> %s <==\n%s", f, ensureNewline(text)); err != nil {
			return err
		}
	}
	return nil
}

func ensureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
