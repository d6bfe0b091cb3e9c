package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/gofixer/internal/model"
)

var cacheClearFileFlag string

// cacheCmd represents the cache command.
var cacheCmd = newCacheCmd()

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the result cache",
	}
	cmd.AddCommand(newCacheClearCmd())

	return cmd
}

func newCacheClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the result cache file",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			path := cfg.Cache.File
			if cacheClearFileFlag != "" {
				path = cacheClearFileFlag
			}

			return workflow.ClearCache(m.Path(path))
		},
	}
	cmd.Flags().StringVar(&cacheClearFileFlag, "cache-file", "", "result cache location (overrides cache.file)")

	return cmd
}

func init() {
	rootCmd.AddCommand(cacheCmd)
}
