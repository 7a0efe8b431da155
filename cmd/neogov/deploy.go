package main

import (
	"fmt"
	"os"

	"github.com/nspcc-dev/neo-go/cli/input"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/nspcc-dev/neogov-contract/contracts"
	"github.com/nspcc-dev/neogov-contract/deploy"
	"github.com/nspcc-dev/neogov-contract/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type deployFlags struct {
	walletPath   string
	account      string
	contractsDir string

	admin        string
	owner        string
	name         string
	version      string
	votingDelay  uint32
	votingPeriod uint32
	threshold    string
	quorum       string
	countingMode string
}

func deployCommand() *cobra.Command {
	var f deployFlags

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy RoleManager, VotingPower and Governance contracts",
		Long: `Deploy RoleManager, VotingPower and Governance contracts from the wallet
account. Contracts already deployed by the same account are skipped. Resulting
addresses are printed in config file format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())

			acc, err := unlockAccount(f.walletPath, f.account)
			if err != nil {
				return err
			}

			set, err := contracts.Read(os.DirFS(f.contractsDir))
			if err != nil {
				return fmt.Errorf("read compiled contracts: %w", err)
			}

			prm, err := f.deployPrm(acc, set)
			if err != nil {
				return err
			}

			b, err := dial(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer b.close()

			prm.Logger = zap.L()
			prm.Blockchain = b.rpc

			res, err := deploy.Deploy(cmd.Context(), prm)
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(config.Config{
				RPCEndpoint: cfg.RPCEndpoint,
				Timeout:     cfg.Timeout,
				Contracts: config.Contracts{
					RoleManager: address.Uint160ToString(res.RoleManager),
					VotingPower: address.Uint160ToString(res.VotingPower),
					Governance:  address.Uint160ToString(res.Governance),
				},
			})
			if err != nil {
				return fmt.Errorf("encode resulting config: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.walletPath, "wallet", "w", "", "path to the wallet file (required)")
	fs.StringVarP(&f.account, "address", "a", "", "wallet account to deploy from, default one if empty")
	fs.StringVar(&f.contractsDir, "contracts-dir", "contracts", "directory with compiled contracts")
	fs.StringVar(&f.admin, "admin", "", "RoleManager and Governance admin, deploying account if empty")
	fs.StringVar(&f.owner, "owner", "", "VotingPower owner, deploying account if empty")
	fs.StringVar(&f.name, "name", "Governor", "governor name")
	fs.StringVar(&f.version, "governor-version", "1", "governor version string")
	fs.Uint32Var(&f.votingDelay, "voting-delay", 0, "blocks between proposal creation and voting start")
	fs.Uint32Var(&f.votingPeriod, "voting-period", 0, "voting duration in blocks (required)")
	fs.StringVar(&f.threshold, "threshold", "0", "voting power required to create a proposal")
	fs.StringVar(&f.quorum, "quorum", "0", "participating voting power needed for a proposal to succeed")
	fs.StringVar(&f.countingMode, "counting-mode", deploy.CountingModeManual, "vote counting mode: manual or simple")
	_ = cmd.MarkFlagRequired("wallet")
	_ = cmd.MarkFlagRequired("voting-period")

	return cmd
}

func unlockAccount(walletPath, addr string) (*wallet.Account, error) {
	w, err := wallet.NewWalletFromFile(walletPath)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}

	var h util.Uint160
	if addr != "" {
		h, err = parseAccount(addr)
		if err != nil {
			return nil, fmt.Errorf("account: %w", err)
		}
	} else {
		h = w.GetChangeAddress()
	}

	acc := w.GetAccount(h)
	if acc == nil {
		return nil, fmt.Errorf("account %s is missing in the wallet", address.Uint160ToString(h))
	}

	pass, err := input.ReadPassword(fmt.Sprintf("Enter password for %s > ", acc.Address))
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}

	err = acc.Decrypt(pass, w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("decrypt account: %w", err)
	}

	return acc, nil
}

func (f deployFlags) deployPrm(acc *wallet.Account, set contracts.Set) (deploy.Prm, error) {
	var (
		prm deploy.Prm
		err error
	)

	prm.LocalAccount = acc

	admin := acc.ScriptHash()
	if f.admin != "" {
		admin, err = parseAccount(f.admin)
		if err != nil {
			return prm, fmt.Errorf("admin: %w", err)
		}
	}

	owner := acc.ScriptHash()
	if f.owner != "" {
		owner, err = parseAccount(f.owner)
		if err != nil {
			return prm, fmt.Errorf("owner: %w", err)
		}
	}

	threshold, err := parseBigInt(f.threshold)
	if err != nil {
		return prm, fmt.Errorf("threshold: %w", err)
	}

	quorum, err := parseBigInt(f.quorum)
	if err != nil {
		return prm, fmt.Errorf("quorum: %w", err)
	}

	prm.RoleManager = deploy.RoleManagerPrm{
		Common: deploy.CommonDeployPrm{NEF: set.RoleManager.NEF, Manifest: set.RoleManager.Manifest},
		Admin:  admin,
	}
	prm.VotingPower = deploy.VotingPowerPrm{
		Common: deploy.CommonDeployPrm{NEF: set.VotingPower.NEF, Manifest: set.VotingPower.Manifest},
		Owner:  owner,
	}
	prm.Governance = deploy.GovernancePrm{
		Common:            deploy.CommonDeployPrm{NEF: set.Governance.NEF, Manifest: set.Governance.Manifest},
		Admin:             admin,
		Name:              f.name,
		Version:           f.version,
		VotingDelay:       f.votingDelay,
		VotingPeriod:      f.votingPeriod,
		ProposalThreshold: threshold,
		Quorum:            quorum,
		CountingMode:      f.countingMode,
	}

	return prm, nil
}
