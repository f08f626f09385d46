package cmd

import (
	"fmt"

	"github.com/KostasZigo/hashdemo/internal/objects"
	"github.com/spf13/cobra"
)

var hashObjectCmd = &cobra.Command{
	Use:   "hash-object <filepath>",
	Short: "Compute the blob hash of a file",
	Long: `Compute the object hash of a file's content, hashed as a blob.
Nothing is written; the hash is only printed.

Examples:
  # Compute the SHA-1 hash
  hashdemo hash-object myfile.txt

  # Compute the SHA-256 hash
  hashdemo hash-object -a sha256 myfile.txt`,
	SilenceUsage: true,
	Args:         exactArgs(1, "filepath"),
	RunE:         runHashObject,
}

func init() {
	rootCmd.AddCommand(hashObjectCmd)
	bindCommonFlags(hashObjectCmd)
}

// runHashObject computes and prints the blob hash of a file.
func runHashObject(cmd *cobra.Command, args []string) error {
	configureLogging(cmd)

	hasher, err := hasherFromFlags(cmd)
	if err != nil {
		return err
	}

	blob, err := objects.NewBlobFromFile(hasher, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), blob.Hash())
	return nil
}
