// Package deploy puts RoleManager, VotingPower and Governance contracts on a
// Neo chain.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Counting modes of the Governance contract.
const (
	CountingModeManual = "manual"
	CountingModeSimple = "simple"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for the deployment. Implementation must also support
// transaction awaiting (see actor.Actor.Wait), rpcclient.Client does.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by its
	// address. It returns an error with 'Unknown contract' substring if the
	// contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// CommonDeployPrm groups common deployment parameters of the smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// RoleManagerPrm groups deployment parameters of the RoleManager contract.
type RoleManagerPrm struct {
	Common CommonDeployPrm
	// Initial contract admin.
	Admin util.Uint160
}

// VotingPowerPrm groups deployment parameters of the VotingPower contract.
type VotingPowerPrm struct {
	Common CommonDeployPrm
	// Account allowed to mint and burn voting units.
	Owner util.Uint160
}

// GovernancePrm groups deployment parameters of the Governance contract.
// Voting power is taken from the VotingPower contract being deployed.
type GovernancePrm struct {
	Common CommonDeployPrm

	Admin             util.Uint160
	Name              string
	Version           string
	VotingDelay       uint32
	VotingPeriod      uint32
	ProposalThreshold *big.Int
	Quorum            *big.Int
	// Optional, CountingModeManual is used by the contract if empty.
	CountingMode string
}

// Prm groups all parameters of the deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	// It's also the sender determining contract addresses.
	LocalAccount *wallet.Account

	RoleManager RoleManagerPrm
	VotingPower VotingPowerPrm
	Governance  GovernancePrm
}

// Result contains addresses of the deployed contracts.
type Result struct {
	RoleManager util.Uint160
	VotingPower util.Uint160
	Governance  util.Uint160
}

// Deploy deploys all contracts from the local account. Contracts already
// present on the chain at the expected addresses are left untouched, so
// Deploy can be repeated after a partial failure.
//
// Deploy aborts on context cancellation or the first failed transaction.
func Deploy(ctx context.Context, prm Prm) (Result, error) {
	var res Result

	err := prm.validate()
	if err != nil {
		return res, fmt.Errorf("invalid deployment parameters: %w", err)
	}

	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return res, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	d := deployer{
		logger:     prm.Logger,
		blockchain: prm.Blockchain,
		actor:      act,
		management: management.New(act),
		sender:     prm.LocalAccount.ScriptHash(),
	}

	res.RoleManager, err = d.deploy(ctx, "RoleManager", prm.RoleManager.Common, []any{prm.RoleManager.Admin})
	if err != nil {
		return res, err
	}

	res.VotingPower, err = d.deploy(ctx, "VotingPower", prm.VotingPower.Common, []any{prm.VotingPower.Owner})
	if err != nil {
		return res, err
	}

	res.Governance, err = d.deploy(ctx, "Governance", prm.Governance.Common, governanceDeployData(prm.Governance, res.VotingPower))
	if err != nil {
		return res, err
	}

	return res, nil
}

func (x Prm) validate() error {
	switch {
	case x.Logger == nil:
		return errors.New("missing logger")
	case x.Blockchain == nil:
		return errors.New("missing blockchain")
	case x.LocalAccount == nil:
		return errors.New("missing local account")
	}

	g := x.Governance
	switch {
	case g.Name == "":
		return errors.New("missing governor name")
	case g.VotingPeriod == 0:
		return errors.New("zero voting period")
	case g.ProposalThreshold == nil || g.ProposalThreshold.Sign() < 0:
		return errors.New("missing or negative proposal threshold")
	case g.Quorum == nil || g.Quorum.Sign() < 0:
		return errors.New("missing or negative quorum")
	case g.CountingMode != "" && g.CountingMode != CountingModeManual && g.CountingMode != CountingModeSimple:
		return fmt.Errorf("unsupported counting mode '%s'", g.CountingMode)
	}

	return nil
}

// governanceDeployData returns _deploy argument of the Governance contract,
// field order matters.
func governanceDeployData(prm GovernancePrm, votes util.Uint160) []any {
	return []any{
		prm.Admin,
		votes,
		prm.Name,
		prm.Version,
		int64(prm.VotingDelay),
		int64(prm.VotingPeriod),
		prm.ProposalThreshold,
		prm.Quorum,
		prm.CountingMode,
	}
}

type deployer struct {
	logger     *zap.Logger
	blockchain Blockchain
	actor      *actor.Actor
	management *management.Contract
	sender     util.Uint160
}

func (d deployer) deploy(ctx context.Context, name string, prm CommonDeployPrm, data []any) (util.Uint160, error) {
	addr := state.CreateContractHash(d.sender, prm.NEF.Checksum, prm.Manifest.Name)
	l := d.logger.With(zap.String("contract", name), zap.Stringer("address", addr))

	if ctx.Err() != nil {
		return addr, ctx.Err()
	}

	_, err := d.blockchain.GetContractStateByHash(addr)
	if err == nil {
		l.Info("contract is already on the chain, skip")
		return addr, nil
	}
	if !isErrContractNotFound(err) {
		return addr, fmt.Errorf("get state of %s contract: %w", name, err)
	}

	l.Debug("contract is missing on the chain, deploying...", zap.Error(err))

	txHash, vub, err := d.management.Deploy(&prm.NEF, &prm.Manifest, data)
	if err != nil {
		return addr, fmt.Errorf("send %s deployment transaction: %w", name, err)
	}

	l.Info("deployment transaction sent, waiting...", zap.Stringer("tx", txHash), zap.Uint32("vub", vub))

	aer, err := d.actor.Wait(txHash, vub, nil)
	if err != nil {
		return addr, fmt.Errorf("wait for %s deployment transaction: %w", name, err)
	}
	if aer.VMState != vmstate.Halt {
		return addr, fmt.Errorf("%s deployment transaction failed: %s", name, aer.FaultException)
	}

	l.Info("contract successfully deployed")

	return addr, nil
}

// isErrContractNotFound checks whether the error means that the requested
// contract is missing on the chain.
func isErrContractNotFound(err error) bool {
	return strings.Contains(err.Error(), "Unknown contract")
}
