package cmd

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// createTestRootCmd creates fresh root command with the given subcommand.
// Flag values of the subcommand are reset when the test ends.
func createTestRootCmd(t *testing.T, cmd *cobra.Command) *cobra.Command {
	t.Helper()

	testRootCmd := &cobra.Command{Use: "hashdemo"}
	testRootCmd.AddCommand(cmd)
	t.Cleanup(func() {
		resetFlags(cmd)
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	})
	return testRootCmd
}

// resetFlags restores every flag of cmd to its default value.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	})
	cmd.SilenceUsage = true
}

// captureStdout returns command stdout output as string.
func captureStdout(cmd *cobra.Command) *bytes.Buffer {
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	return &stdout
}

// captureStderr returns command stderr output as string.
func captureStderr(cmd *cobra.Command) *bytes.Buffer {
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	return &stderr
}

// runRootCmd executes the real root command with args and returns its stdout.
func runRootCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	stdout := captureStdout(rootCmd)
	captureStderr(rootCmd)
	// a nil slice would make cobra parse os.Args
	rootCmd.SetArgs(append([]string{}, args...))
	t.Cleanup(func() {
		resetFlags(rootCmd)
	})

	err := rootCmd.Execute()
	return stdout.String(), err
}
