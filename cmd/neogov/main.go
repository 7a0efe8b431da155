package main

import (
	"fmt"
	"os"

	"github.com/nspcc-dev/neogov-contract/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const programName = "neogov"

var (
	globalFlags = struct {
		debug bool
		rpc   string
	}{}
	configFile string
)

func newLogger(debug bool) (*zap.Logger, error) {
	c := zap.NewProductionConfig()
	c.Encoding = "console"
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		c.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return c.Build()
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           programName,
		Short:         "Inspect and deploy RoleManager, VotingPower and Governance contracts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().
		BoolVarP(&globalFlags.debug, "debug", "D", false, "enable debug logging")
	rootCmd.PersistentFlags().
		StringVar(&configFile, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().
		StringVarP(&globalFlags.rpc, "rpc", "r", "", "Neo RPC server endpoint (overrides config)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(globalFlags.debug)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		zap.ReplaceGlobals(logger)

		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if globalFlags.rpc != "" {
			cfg.RPCEndpoint = globalFlags.rpc
		}

		cmd.SetContext(config.WithContext(cmd.Context(), cfg))
		return nil
	}

	rootCmd.AddCommand(proposalCommand())
	rootCmd.AddCommand(rolesCommand())
	rootCmd.AddCommand(votesCommand())
	rootCmd.AddCommand(deployCommand())

	return rootCmd
}

func main() {
	err := newRootCommand().Execute()
	_ = zap.L().Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
