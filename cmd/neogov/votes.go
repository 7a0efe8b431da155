package main

import (
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neogov-contract/internal/config"
	"github.com/nspcc-dev/neogov-contract/rpc/votingpower"
	"github.com/spf13/cobra"
)

func votesCommand() *cobra.Command {
	var (
		contract string
		height   int64
	)

	cmd := &cobra.Command{
		Use:   "votes <account>",
		Short: "Print voting power of the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := parseAccount(args[0])
			if err != nil {
				return err
			}

			cfg := config.FromContext(cmd.Context())
			h, err := contractAddress(contract, cfg.Contracts.VotingPower, "VotingPower")
			if err != nil {
				return err
			}

			b, err := dial(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer b.close()

			r := votingpower.NewReader(b.invoker, h)

			var votes, total *big.Int
			if height >= 0 {
				votes, err = r.GetVotesAtCheckpoint(acc, big.NewInt(height))
				if err == nil {
					total, err = r.GetTotalSupplyAtCheckpoint(big.NewInt(height))
				}
			} else {
				votes, err = r.GetVotes(acc)
				if err == nil {
					total, err = r.GetTotalSupply()
				}
			}
			if err != nil {
				return fmt.Errorf("get votes: %w", err)
			}

			n, err := r.NumCheckpoints(acc)
			if err != nil {
				return fmt.Errorf("get number of checkpoints: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Votes:        %s\n", votes)
			fmt.Fprintf(out, "Total supply: %s\n", total)
			fmt.Fprintf(out, "Checkpoints:  %s\n", n)
			return nil
		},
	}

	cmd.Flags().StringVar(&contract, "contract", "", "VotingPower contract address (overrides config)")
	cmd.Flags().Int64Var(&height, "height", -1, "historical block height, current values if negative")

	return cmd
}
