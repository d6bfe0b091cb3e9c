package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/gofixer/internal/domain"
	m "github.com/mouse-blink/gofixer/internal/model"
)

var fixDryRunFlag bool
var fixDiffFlag bool
var fixNoCacheFlag bool
var fixCacheFileFlag string
var fixParallelFlag int
var fixExcludeFlags []string
var fixRulesFlags []string

// fixCmd represents the fix command.
var fixCmd = newFixCmd()

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Apply the fix rules to Go source files",
		Long: `Apply the configured rules to every Go file under the given paths.

Files that do not parse are reported and left alone. A file whose fixed text
no longer parses is reported and keeps its original content. With no paths,
the current module is scanned recursively (./...).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fa, err := fixArgs(cmd, args)
			if err != nil {
				return err
			}

			_, err = workflow.Fix(cmd.Context(), fa)

			return err
		},
	}
	cmd.Flags().BoolVar(&fixDryRunFlag, "dry-run", false, "report what would change without writing files or the cache")
	cmd.Flags().BoolVar(&fixDiffFlag, "diff", false, "show a unified diff for every fixed file")
	cmd.Flags().BoolVar(&fixNoCacheFlag, "no-cache", false, "ignore and do not update the result cache")
	cmd.Flags().StringVar(&fixCacheFileFlag, "cache-file", "", "result cache location (overrides cache.file)")
	cmd.Flags().IntVarP(&fixParallelFlag, "parallel", "p", 1, "number of parallel workers (overrides parallel)")
	cmd.Flags().StringArrayVarP(&fixExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().StringSliceVarP(&fixRulesFlags, "rules", "r", nil, "comma separated rules to apply, in order (overrides rules)")

	return cmd
}

// fixArgs merges the configuration with the flags set on the command line.
// The merged values are held to the same constraints as the configuration.
func fixArgs(cmd *cobra.Command, args []string) (domain.FixArgs, error) {
	paths := parsePaths(args)
	if len(paths) == 0 {
		paths = []m.Path{"./..."}
	}

	merged := *cfg
	if cmd.Flags().Changed("rules") {
		merged.Rules = fixRulesFlags
	}

	if cmd.Flags().Changed("parallel") {
		merged.Parallel = fixParallelFlag
	}

	if fixCacheFileFlag != "" {
		merged.Cache.File = fixCacheFileFlag
	}

	if err := merged.Validate(); err != nil {
		return domain.FixArgs{}, fmt.Errorf("invalid flags: %w", err)
	}

	fa := domain.FixArgs{
		Paths:          paths,
		Exclude:        append(append([]string{}, merged.Exclude...), fixExcludeFlags...),
		Rules:          merged.Rules,
		DryRun:         fixDryRunFlag,
		UseCache:       merged.Cache.Enabled && !fixNoCacheFlag,
		CacheFile:      m.Path(merged.Cache.File),
		Threads:        merged.Parallel,
		Validator:      merged.Validator,
		TokenizerGuard: merged.Compat.TokenizerGuard,
		MetricsFile:    m.Path(metricsFileFlag),
	}

	if fixDiffFlag {
		fa.Diff = m.TextDiff
	}

	return fa, nil
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func init() {
	rootCmd.AddCommand(fixCmd)
}
