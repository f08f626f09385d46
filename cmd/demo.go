package cmd

import (
	"fmt"

	"github.com/KostasZigo/hashdemo/internal/constants"
	"github.com/KostasZigo/hashdemo/internal/demo"
	"github.com/spf13/cobra"
)

var (
	propertiesCmd = newDemoCmd(constants.PropertiesCmdName,
		"Show determinism, the avalanche effect and content addressing",
		(*demo.Runner).Properties)

	integrityCmd = newDemoCmd(constants.IntegrityCmdName,
		"Show how a recorded hash detects corrupted content",
		(*demo.Runner).Integrity)

	collisionsCmd = newDemoCmd(constants.CollisionsCmdName,
		"Hash distinct inputs, two of them random, and count unique digests",
		(*demo.Runner).Collisions)

	merkleCmd = newDemoCmd(constants.MerkleCmdName,
		"Build a toy Merkle tree and show a file change reach the root",
		(*demo.Runner).Merkle)
)

func init() {
	rootCmd.AddCommand(propertiesCmd, integrityCmd, collisionsCmd, merkleCmd)
}

// newDemoCmd builds a command that prints a single demonstration section.
func newDemoCmd(name, short string, section func(*demo.Runner) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:          name,
		Short:        short,
		SilenceUsage: true,
		Args:         noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := newRunner(cmd)
			if err != nil {
				return err
			}
			if err := section(runner); err != nil {
				return fmt.Errorf("%s demo failed: %w", name, err)
			}
			return nil
		},
	}
	bindDemoFlags(cmd)
	return cmd
}
