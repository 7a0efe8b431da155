package main

import (
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neogov-contract/internal/config"
	"github.com/nspcc-dev/neogov-contract/rpc/governance"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func proposalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proposal",
		Short: "Governance proposal utilities",
	}

	cmd.AddCommand(proposalIDCommand())
	cmd.AddCommand(proposalStateCommand())

	return cmd
}

func proposalIDCommand() *cobra.Command {
	var (
		calls       []string
		description string
	)

	cmd := &cobra.Command{
		Use:   "id",
		Short: "Calculate proposal ID without network access",
		Long: `Calculate proposal ID without network access.

Every call is given as "<target> <method> [arg...]" where target is an address
or a script hash and arguments use 'type:value' notation, e.g.:

  neogov proposal id --call "NfgHwwTi3wHAS8aFAN243C5vGbkYDpqLHP setValue int:42 string:hello" --description "Set 42"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targets, methods, args, err := parseCalls(calls)
			if err != nil {
				return err
			}

			descHash := governance.DescriptionHash(description)
			id, err := governance.ProposalID(targets, methods, args, descHash)
			if err != nil {
				return fmt.Errorf("calculate proposal ID: %w", err)
			}

			hexID, b58ID := formatProposalID(id)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Description hash: %s\n", descHash.StringBE())
			fmt.Fprintf(out, "ID (hex):         %s\n", hexID)
			fmt.Fprintf(out, "ID (base58):      %s\n", b58ID)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&calls, "call", nil, "proposal call, can be repeated (required)")
	cmd.Flags().StringVar(&description, "description", "", "proposal description")
	_ = cmd.MarkFlagRequired("call")

	return cmd
}

func proposalStateCommand() *cobra.Command {
	var contract string

	cmd := &cobra.Command{
		Use:   "state <id>",
		Short: "Print proposal state, schedule and votes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProposalID(args[0])
			if err != nil {
				return err
			}

			cfg := config.FromContext(cmd.Context())
			gov, err := contractAddress(contract, cfg.Contracts.Governance, "governance")
			if err != nil {
				return err
			}

			b, err := dial(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer b.close()

			zap.L().Debug("reading proposal", zap.Stringer("contract", gov), zap.String("id", id.StringBE()))

			r := governance.NewReader(b.invoker, gov)

			st, err := r.ProposalState(id)
			if err != nil {
				return fmt.Errorf("get proposal state: %w", err)
			}
			proposer, err := r.ProposalProposer(id)
			if err != nil {
				return fmt.Errorf("get proposal proposer: %w", err)
			}
			snapshot, err := r.ProposalSnapshot(id)
			if err != nil {
				return fmt.Errorf("get proposal snapshot: %w", err)
			}
			deadline, err := r.ProposalDeadline(id)
			if err != nil {
				return fmt.Errorf("get proposal deadline: %w", err)
			}
			votes, err := r.ProposalVotes(id)
			if err != nil {
				return fmt.Errorf("get proposal votes: %w", err)
			}
			quorumReached, err := r.QuorumReached(id)
			if err != nil {
				return fmt.Errorf("check quorum: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "State:    %s\n", governance.ProposalState(st.Int64()))
			fmt.Fprintf(out, "Proposer: %s\n", address.Uint160ToString(proposer))
			fmt.Fprintf(out, "Snapshot: %s\n", snapshot)
			fmt.Fprintf(out, "Deadline: %s\n", deadline)
			fmt.Fprintf(out, "Votes:    for %s, against %s, abstain %s\n", votes.For, votes.Against, votes.Abstain)
			fmt.Fprintf(out, "Quorum:   %t\n", quorumReached)
			return nil
		},
	}

	cmd.Flags().StringVar(&contract, "contract", "", "governance contract address (overrides config)")

	return cmd
}
