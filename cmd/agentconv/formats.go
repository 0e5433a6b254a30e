package main

import (
	"fmt"

	"github.com/JaimeStill/agent-adapters/internal/adapters"
	"github.com/spf13/cobra"
)

type formatInfo struct {
	Name    adapters.Format   `json:"name" yaml:"name"`
	Targets []adapters.Format `json:"targets" yaml:"targets"`
}

func newFormatsCmd(registry *adapters.Registry) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List known formats and the conversions between them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			var infos []formatInfo
			for _, f := range adapters.Formats() {
				infos = append(infos, formatInfo{Name: f, Targets: registry.SupportedTargets(f)})
			}

			if output != outputText {
				return writeStructured(cmd.OutOrStdout(), output, infos)
			}

			for _, info := range infos {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", info.Name)
				for _, t := range info.Targets {
					fmt.Fprintf(cmd.OutOrStdout(), "  -> %s\n", t)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")
	return cmd
}
