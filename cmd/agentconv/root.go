package main

import (
	"github.com/JaimeStill/agent-adapters/internal/adapters"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	registry := adapters.NewDefaultRegistry()

	root := &cobra.Command{
		Use:   "agentconv",
		Short: "Convert agent configurations between vendor formats",
		Long: `agentconv converts AI agent configuration snippets such as Claude Code
slash commands into Codex agent commands and Jules manifests.`,
		SilenceUsage: true,
	}

	root.AddCommand(newConvertCmd(registry))
	root.AddCommand(newFormatsCmd(registry))
	return root
}
