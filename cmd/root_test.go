package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sells-group/gerrymander-cli/internal/config"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

// testConfig installs a default configuration for tests that bypass
// PersistentPreRunE.
func testConfig(t *testing.T) {
	t.Helper()
	prev := cfg
	cfg = &config.Config{
		Sources: config.SourcesConfig{Encoding: "utf-8"},
		Plot:    config.PlotConfig{DemSymbol: "D", RepSymbol: "R"},
		Report:  config.ReportConfig{Format: "table"},
		Log:     config.LogConfig{Level: "error", Format: "console"},
	}
	t.Cleanup(func() { cfg = prev })
}

func writeFixtures(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	districts := filepath.Join(dir, "districts.txt")
	voters := filepath.Join(dir, "voters.txt")
	require.NoError(t, os.WriteFile(districts, []byte(
		"Texas,1,600,400,2,300,700,3,500,500\n"+
			"New York,1,10,20,2,0,0\n"), 0o644))
	require.NoError(t, os.WriteFile(voters, []byte(
		"Texas,1000000\n"+
			"New York,5000\n"+
			"Atlantis,1\n"), 0o644))
	return districts, voters
}

// executeCommand runs the root command with args and returns its stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GERRY_LOG_LEVEL", "error")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmds := rootCmd.Commands()

	// Collect subcommand names.
	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	// Verify expected subcommands are registered.
	expected := []string{"shell", "stats", "plot", "report"}
	for _, name := range expected {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "gerrymander-cli", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestSourceFlags(t *testing.T) {
	for _, c := range []string{"stats", "plot", "report"} {
		cmd, _, err := rootCmd.Find([]string{c})
		require.NoError(t, err)
		for _, flagName := range []string{"districts", "voters"} {
			assert.NotNil(t, cmd.Flags().Lookup(flagName), "%s should have --%s flag", c, flagName)
		}
	}
}

func TestStatsCommand_RequiredFlags(t *testing.T) {
	flag := statsCmd.Flags().Lookup("region")
	require.NotNil(t, flag, "stats command should have --region flag")
}

func TestReportCommand_Flags(t *testing.T) {
	for _, flagName := range []string{"format", "out"} {
		flag := reportCmd.Flags().Lookup(flagName)
		assert.NotNil(t, flag, "report should have --%s flag", flagName)
	}
}
