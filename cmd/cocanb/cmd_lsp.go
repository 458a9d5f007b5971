package main

import (
	"github.com/dhamidi/cocanb/encode"
	"github.com/dhamidi/cocanb/workspace"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	var verbatimTags bool

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Infof("starting language server on stdio")
			server := workspace.NewLSPServer(version, encode.WithVerbatimTagsEnabled(verbatimTags))
			return server.RunStdio()
		},
	}

	cmd.Flags().BoolVar(&verbatimTags, "verbatim-tags", false, "copy text between < and > unchanged")

	return cmd
}
