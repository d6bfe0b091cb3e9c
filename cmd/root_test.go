package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/gofixer/internal/config"
	"github.com/mouse-blink/gofixer/internal/domain"
	domainmocks "github.com/mouse-blink/gofixer/internal/domain/mocks"
	m "github.com/mouse-blink/gofixer/internal/model"
)

func newTestRootCmd(t *testing.T, wf domain.Workflow) *cobra.Command {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newFixCmd(), newRulesCmd(), newCacheCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = wf
	t.Cleanup(func() { workflow = originalWorkflow })

	return cmd
}

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".gofixer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestFixCmd_Defaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newTestRootCmd(t, mockWorkflow)

	var got domain.FixArgs

	mockWorkflow.EXPECT().Fix(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, args domain.FixArgs) (*m.RunReport, error) {
			got = args
			return m.NewRunReport("run", false), nil
		})

	cmd.SetArgs([]string{"fix"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, []m.Path{"./..."}, got.Paths)
	assert.Empty(t, got.Exclude)
	assert.Empty(t, got.Rules)
	assert.False(t, got.DryRun)
	assert.Equal(t, m.NoDiff, got.Diff)
	assert.True(t, got.UseCache)
	assert.Equal(t, m.Path(config.DefaultCacheFile), got.CacheFile)
	assert.Equal(t, 1, got.Threads)
	assert.Equal(t, "go", got.Validator)
	assert.True(t, got.TokenizerGuard)
	assert.Empty(t, got.MetricsFile)
}

func TestFixCmd_Flags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newTestRootCmd(t, mockWorkflow)

	mockWorkflow.EXPECT().Fix(mock.Anything, mock.MatchedBy(func(args domain.FixArgs) bool {
		return args.DryRun &&
			args.Diff == m.TextDiff &&
			!args.UseCache &&
			args.Threads == 4 &&
			args.CacheFile == "build/fix.cache" &&
			args.MetricsFile == "metrics.prom" &&
			assert.ObjectsAreEqual([]string{"^vendor/", "_gen\\.go$"}, args.Exclude) &&
			assert.ObjectsAreEqual([]string{"rule_a", "rule_b"}, args.Rules) &&
			assert.ObjectsAreEqual([]m.Path{"./pkg/...", "main.go"}, args.Paths)
	})).Return(m.NewRunReport("run", true), nil)

	cmd.SetArgs([]string{
		"--metrics-file", "metrics.prom",
		"fix", "--dry-run", "--diff", "--no-cache",
		"--cache-file", "build/fix.cache",
		"-p", "4",
		"-x", "^vendor/", "-x", "_gen\\.go$",
		"-r", "rule_a,rule_b",
		"./pkg/...", "main.go",
	})
	require.NoError(t, cmd.Execute())
}

func TestFixCmd_ConfigFile(t *testing.T) {
	path := writeTestConfig(t, `
rules:
  - rule_c
exclude:
  - "^gen/"
validator: none
parallel: 3
cache:
  file: from-config.cache
compat:
  tokenizer_guard: false
`)

	t.Run("config values are used", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		cmd := newTestRootCmd(t, mockWorkflow)

		mockWorkflow.EXPECT().Fix(mock.Anything, mock.MatchedBy(func(args domain.FixArgs) bool {
			return args.Threads == 3 &&
				args.Validator == "none" &&
				!args.TokenizerGuard &&
				args.UseCache &&
				args.CacheFile == "from-config.cache" &&
				assert.ObjectsAreEqual([]string{"rule_c"}, args.Rules) &&
				assert.ObjectsAreEqual([]string{"^gen/"}, args.Exclude)
		})).Return(m.NewRunReport("run", false), nil)

		cmd.SetArgs([]string{"--config", path, "fix"})
		require.NoError(t, cmd.Execute())
	})

	t.Run("flags override config", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		cmd := newTestRootCmd(t, mockWorkflow)

		mockWorkflow.EXPECT().Fix(mock.Anything, mock.MatchedBy(func(args domain.FixArgs) bool {
			return args.Threads == 8 &&
				args.CacheFile == "flag.cache" &&
				assert.ObjectsAreEqual([]string{"rule_d"}, args.Rules) &&
				assert.ObjectsAreEqual([]string{"^gen/", "^tmp/"}, args.Exclude)
		})).Return(m.NewRunReport("run", false), nil)

		cmd.SetArgs([]string{"--config", path, "fix", "-p", "8", "-r", "rule_d", "-x", "^tmp/", "--cache-file", "flag.cache"})
		require.NoError(t, cmd.Execute())
	})
}

func TestFixCmd_InvalidConfig(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newTestRootCmd(t, mockWorkflow)

	path := writeTestConfig(t, "parallel: 0\n")

	cmd.SetArgs([]string{"--config", path, "fix"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestFixCmd_InvalidParallelFlag(t *testing.T) {
	for _, value := range []string{"0", "-3", "257", "100000"} {
		t.Run(value, func(t *testing.T) {
			mockWorkflow := domainmocks.NewMockWorkflow(t)
			cmd := newTestRootCmd(t, mockWorkflow)

			cmd.SetArgs([]string{"fix", "-p", value})
			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid flags")
			mockWorkflow.AssertNotCalled(t, "Fix", mock.Anything, mock.Anything)
		})
	}
}

func TestFixCmd_ParallelFlagBounds(t *testing.T) {
	for _, threads := range []int{1, 256} {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		cmd := newTestRootCmd(t, mockWorkflow)

		mockWorkflow.EXPECT().Fix(mock.Anything, mock.MatchedBy(func(args domain.FixArgs) bool {
			return args.Threads == threads
		})).Return(m.NewRunReport("run", false), nil)

		cmd.SetArgs([]string{"fix", "-p", strconv.Itoa(threads)})
		require.NoError(t, cmd.Execute())
	}
}

func TestFixCmd_PropagatesErrors(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newTestRootCmd(t, mockWorkflow)

	report := m.NewRunReport("run", false)
	report.Record("a.go", m.InvalidSource(&m.Diagnostic{Message: "bad"}), 0)

	mockWorkflow.EXPECT().Fix(mock.Anything, mock.Anything).Return(report, domain.ErrUnitsFailed)

	cmd.SetArgs([]string{"fix", "."})
	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrUnitsFailed)
}

func TestRulesCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newTestRootCmd(t, mockWorkflow)

	mockWorkflow.EXPECT().ListRules().Return(nil)

	cmd.SetArgs([]string{"rules"})
	require.NoError(t, cmd.Execute())
}

func TestRulesCmd_RejectsArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newTestRootCmd(t, mockWorkflow)

	cmd.SetArgs([]string{"rules", "extra"})
	require.Error(t, cmd.Execute())
}

func TestCacheClearCmd(t *testing.T) {
	t.Run("uses the configured cache file", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		cmd := newTestRootCmd(t, mockWorkflow)

		mockWorkflow.EXPECT().ClearCache(m.Path(config.DefaultCacheFile)).Return(nil)

		cmd.SetArgs([]string{"cache", "clear"})
		require.NoError(t, cmd.Execute())
	})

	t.Run("cache-file flag wins", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		cmd := newTestRootCmd(t, mockWorkflow)

		mockWorkflow.EXPECT().ClearCache(m.Path("other.cache")).Return(errors.New("permission denied"))

		cmd.SetArgs([]string{"cache", "clear", "--cache-file", "other.cache"})
		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "permission denied")
	})
}

func TestParsePaths(t *testing.T) {
	assert.Equal(t, []m.Path{"./...", "cmd"}, parsePaths([]string{"./...", "cmd"}))
	assert.Empty(t, parsePaths(nil))
}

func TestNewRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"config", "verbose", "metrics-file", "no-tui"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing flag %q", name)
	}
}
