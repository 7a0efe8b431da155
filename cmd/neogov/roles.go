package main

import (
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neogov-contract/internal/config"
	"github.com/nspcc-dev/neogov-contract/rpc/rolemanager"
	"github.com/spf13/cobra"
)

// maxListedMembers limits number of role members fetched by a single
// iterator expansion.
const maxListedMembers = 1000

func rolesCommand() *cobra.Command {
	var contract string

	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Inspect RoleManager contract",
	}

	cmd.PersistentFlags().StringVar(&contract, "contract", "", "RoleManager contract address (overrides config)")

	reader := func(cmd *cobra.Command) (*rolemanager.ContractReader, func(), error) {
		cfg := config.FromContext(cmd.Context())
		h, err := contractAddress(contract, cfg.Contracts.RoleManager, "RoleManager")
		if err != nil {
			return nil, nil, err
		}

		b, err := dial(cmd.Context(), cfg)
		if err != nil {
			return nil, nil, err
		}
		return rolemanager.NewReader(b.invoker, h), b.close, nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List roles having members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, closeFn, err := reader(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			roles, err := r.GetExistingRoles()
			if err != nil {
				return fmt.Errorf("get existing roles: %w", err)
			}

			for i := range roles {
				count, err := r.GetRoleMemberCount(roles[i])
				if err != nil {
					return fmt.Errorf("get member count of role '%s': %w", roles[i], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", roles[i], count)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "members <role>",
		Short: "List role members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, closeFn, err := reader(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			items, err := r.RoleMembersExpanded(args[0], maxListedMembers)
			if err != nil {
				return fmt.Errorf("get role members: %w", err)
			}

			for i := range items {
				b, err := items[i].TryBytes()
				if err != nil {
					return fmt.Errorf("member #%d: %w", i, err)
				}
				h, err := util.Uint160DecodeBytesBE(b)
				if err != nil {
					return fmt.Errorf("member #%d: %w", i, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), address.Uint160ToString(h))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "admin",
		Short: "Print current and pending contract admin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, closeFn, err := reader(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			admin, ok, err := r.GetAdmin()
			if err != nil {
				return fmt.Errorf("get admin: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Admin:   %s\n", optionalAddress(admin, ok))

			pending, ok, err := r.GetPendingAdmin()
			if err != nil {
				return fmt.Errorf("get pending admin: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pending: %s\n", optionalAddress(pending, ok))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "has <account> <role>",
		Short: "Check whether account has the role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := parseAccount(args[0])
			if err != nil {
				return err
			}

			r, closeFn, err := reader(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			index, ok, err := r.HasRole(acc, args[1])
			if err != nil {
				return fmt.Errorf("check role: %w", err)
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "yes, index %s\n", index)
			return nil
		},
	})

	return cmd
}

func optionalAddress(h util.Uint160, ok bool) string {
	if !ok {
		return "none"
	}
	return address.Uint160ToString(h)
}
