package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/KostasZigo/hashdemo/internal/constants"
	"github.com/KostasZigo/hashdemo/internal/demo"
	"github.com/KostasZigo/hashdemo/utils"
	"github.com/spf13/cobra"
)

// rootCmd defines the base command for the hashdemo CLI.
// Without a subcommand it runs every demonstration in sequence.
var rootCmd = &cobra.Command{
	Use:   "hashdemo",
	Short: "Demonstrates content-addressable hashing as used by Git",
	Long: `HashDemo shows how a Git-style object store identifies content by its hash.
Run without a command to print every demonstration: determinism, avalanche effect,
content addressing, corruption detection, collision resistance and a toy Merkle tree.`,
	SilenceUsage: true,
	RunE:         runAll,
}

func init() {
	bindDemoFlags(rootCmd)
}

// Execute runs the root command and handles exit codes.
// Called from main.go to start CLI execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runAll prints every demonstration section.
func runAll(cmd *cobra.Command, args []string) error {
	runner, err := newRunner(cmd)
	if err != nil {
		return err
	}
	return runner.RunAll()
}

// bindCommonFlags registers the flags every command accepts.
func bindCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(constants.AlgorithmFlag, "a", constants.DefaultAlgorithm, "Digest algorithm: sha1, sha256 or blake2b")
	cmd.Flags().BoolP(constants.VerboseFlag, "v", false, "Log debug details to stderr")
}

// bindDemoFlags registers the flags of commands that print demonstrations.
func bindDemoFlags(cmd *cobra.Command) {
	bindCommonFlags(cmd)
	cmd.Flags().Uint64(constants.SeedFlag, 0, "Seed the random collision inputs for reproducible output")
}

// configureLogging installs a stderr text logger, at debug level with --verbose.
func configureLogging(cmd *cobra.Command) {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool(constants.VerboseFlag); verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// hasherFromFlags builds the hasher selected by --algorithm.
func hasherFromFlags(cmd *cobra.Command) (utils.Hasher, error) {
	name, err := cmd.Flags().GetString(constants.AlgorithmFlag)
	if err != nil {
		return utils.Hasher{}, err
	}
	hasher, err := utils.NewHasher(utils.Algorithm(name))
	if err != nil {
		return utils.Hasher{}, fmt.Errorf("invalid --%s value: %w", constants.AlgorithmFlag, err)
	}
	return hasher, nil
}

// newRunner configures logging and builds a demo runner from the command flags.
func newRunner(cmd *cobra.Command) (*demo.Runner, error) {
	configureLogging(cmd)

	hasher, err := hasherFromFlags(cmd)
	if err != nil {
		return nil, err
	}

	opts := []demo.Option{demo.WithHasher(hasher)}
	if cmd.Flags().Changed(constants.SeedFlag) {
		seed, err := cmd.Flags().GetUint64(constants.SeedFlag)
		if err != nil {
			return nil, err
		}
		slog.Debug("Using seeded random inputs", "seed", seed)
		opts = append(opts, demo.WithRandom(demo.SeededRandom(seed)))
	}

	return demo.NewRunner(cmd.OutOrStdout(), opts...), nil
}

// noArgs rejects positional arguments and enables usage printing in case of error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		cmd.SilenceUsage = false
		return fmt.Errorf("%s command accepts no arguments, received %d", cmd.Name(), len(args))
	}
	return nil
}

// exactArgs validates command receives exactly n positional arguments.
// enables usage printing in case of error
func exactArgs(n int, names string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			cmd.SilenceUsage = false
			return fmt.Errorf("%s command requires exactly %d argument(s) (%s), received %d", cmd.Name(), n, names, len(args))
		}
		return nil
	}
}
