package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var chapters bool

	cmd := &cobra.Command{
		Use:   "show <asin>",
		Short: "Print catalog metadata for an ASIN without writing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showMetadata(cmd, ctx, strings.TrimSpace(args[0]), chapters)
		},
	}
	cmd.Flags().BoolVar(&chapters, "chapters", true, "Include the chapter list")
	return cmd
}

func showMetadata(cmd *cobra.Command, ctx *commandContext, asin string, includeChapters bool) error {
	client, err := ctx.catalogClient()
	if err != nil {
		return err
	}
	meta, err := client.FetchMetadata(cmd.Context(), asin, includeChapters)
	if err != nil {
		return err
	}
	renderMetadata(cmd.OutOrStdout(), meta, includeChapters)
	return nil
}
