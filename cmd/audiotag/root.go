package main

import (
	"github.com/spf13/cobra"
)

type runFlags struct {
	asin     string
	merge    bool
	chapters bool
	force    bool
	debug    bool
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var flags runFlags

	ctx := newCommandContext(&configFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:           "audiotag --asin ASIN <input> [output-root]",
		Short:         "Tag an audiobook from the Audnexus catalog and file it in a library",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(2),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}
			_, err := ctx.ensureLogger()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.asin == "" && len(args) == 0 && !flags.debug {
				return cmd.Help()
			}
			return runTag(cmd, ctx, flags, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")

	rootCmd.Flags().StringVarP(&flags.asin, "asin", "a", "", "Audible ASIN of the book")
	rootCmd.Flags().BoolVarP(&flags.merge, "merge", "m", false, "Merge the input (file or directory of tracks) into one m4b with m4b-tool first")
	rootCmd.Flags().BoolVar(&flags.chapters, "chapters", true, "Import chapters from the catalog")
	rootCmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Skip the confirmation prompt")
	rootCmd.Flags().BoolVarP(&flags.debug, "debug", "d", false, "Print the fetched metadata and exit without writing anything")

	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
