package deploy

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func validPrm(t *testing.T) Prm {
	acc, err := wallet.NewAccount()
	require.NoError(t, err)

	return Prm{
		Logger:       zaptest.NewLogger(t),
		Blockchain:   nil,
		LocalAccount: acc,
		Governance: GovernancePrm{
			Name:              "governor",
			VotingDelay:       10,
			VotingPeriod:      100,
			ProposalThreshold: big.NewInt(1),
			Quorum:            big.NewInt(2),
		},
	}
}

func TestPrm_Validate(t *testing.T) {
	prm := validPrm(t)
	require.ErrorContains(t, prm.validate(), "blockchain")

	for name, modify := range map[string]func(*Prm){
		"no logger":          func(p *Prm) { p.Logger = nil },
		"no account":         func(p *Prm) { p.LocalAccount = nil },
		"no name":            func(p *Prm) { p.Governance.Name = "" },
		"zero period":        func(p *Prm) { p.Governance.VotingPeriod = 0 },
		"no threshold":       func(p *Prm) { p.Governance.ProposalThreshold = nil },
		"negative quorum":    func(p *Prm) { p.Governance.Quorum = big.NewInt(-1) },
		"unknown count mode": func(p *Prm) { p.Governance.CountingMode = "fancy" },
	} {
		t.Run(name, func(t *testing.T) {
			prm := validPrm(t)
			prm.Blockchain = struct{ Blockchain }{}
			modify(&prm)
			require.Error(t, prm.validate())
		})
	}

	prm.Blockchain = struct{ Blockchain }{}
	require.NoError(t, prm.validate())

	prm.Governance.CountingMode = CountingModeSimple
	require.NoError(t, prm.validate())
}

func TestDeploy_InvalidPrm(t *testing.T) {
	_, err := Deploy(context.Background(), Prm{})
	require.ErrorContains(t, err, "invalid deployment parameters")
}

func TestGovernanceDeployData(t *testing.T) {
	prm := GovernancePrm{
		Admin:             util.Uint160{1},
		Name:              "governor",
		Version:           "1",
		VotingDelay:       5,
		VotingPeriod:      50,
		ProposalThreshold: big.NewInt(100),
		Quorum:            big.NewInt(200),
	}
	votes := util.Uint160{2}

	require.Equal(t, []any{
		util.Uint160{1},
		util.Uint160{2},
		"governor",
		"1",
		int64(5),
		int64(50),
		big.NewInt(100),
		big.NewInt(200),
		"",
	}, governanceDeployData(prm, votes))
}

type stateBlockchain struct {
	Blockchain
	err error
}

func (x stateBlockchain) GetContractStateByHash(util.Uint160) (*state.Contract, error) {
	return nil, x.err
}

func TestDeployer_ContractStateErrors(t *testing.T) {
	require.True(t, isErrContractNotFound(errors.New("Invalid params (-32602) - Unknown contract")))
	require.False(t, isErrContractNotFound(errors.New("connection refused")))

	rpcErr := errors.New("connection refused")
	d := deployer{
		logger:     zaptest.NewLogger(t),
		blockchain: stateBlockchain{err: rpcErr},
	}

	_, err := d.deploy(context.Background(), "RoleManager", CommonDeployPrm{}, nil)
	require.ErrorIs(t, err, rpcErr)
	require.ErrorContains(t, err, "get state of RoleManager contract")
}

func TestDeployer_AlreadyDeployed(t *testing.T) {
	d := deployer{
		logger:     zaptest.NewLogger(t),
		blockchain: stateBlockchain{},
	}

	addr, err := d.deploy(context.Background(), "Governance", CommonDeployPrm{}, nil)
	require.NoError(t, err)
	require.Equal(t, state.CreateContractHash(util.Uint160{}, 0, ""), addr)
}
