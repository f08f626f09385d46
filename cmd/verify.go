package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/KostasZigo/hashdemo/internal/objects"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <hash> <filepath>",
	Short: "Check a file's content against a recorded blob hash",
	Long: `Recompute the blob hash of a file and compare it to a recorded hash.
Prints OK when they match and fails when the content no longer matches.

Examples:
  hashdemo verify 3b18e512dba79e4c8300dd08aeb37f8e728b8dad hello.txt`,
	SilenceUsage: true,
	Args:         exactArgs(2, "hash, filepath"),
	RunE:         runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	bindCommonFlags(verifyCmd)
}

// runVerify fails with a mismatch error when the file hash differs from the expected hash.
func runVerify(cmd *cobra.Command, args []string) error {
	configureLogging(cmd)

	hasher, err := hasherFromFlags(cmd)
	if err != nil {
		return err
	}

	expected := strings.ToLower(args[0])
	if length := hasher.Algorithm().HexLength(); len(expected) != length {
		return fmt.Errorf("invalid hash %q: %s hashes have %d hex characters", args[0], hasher.Algorithm(), length)
	}

	blob, err := objects.NewBlobFromFile(hasher, args[1])
	if err != nil {
		return err
	}

	slog.Debug("Verifying file", "path", args[1], "expected", expected, "actual", blob.Hash())
	if blob.Hash() != expected {
		return fmt.Errorf("integrity check failed for %s: expected %s, got %s", args[1], expected, blob.Hash())
	}

	fmt.Fprintln(cmd.OutOrStdout(), "OK")
	return nil
}
