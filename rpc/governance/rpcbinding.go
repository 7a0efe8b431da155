// Package governance contains RPC wrappers for Governance contract.
package governance

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// GovernorProposalVoteCounts is a contract-specific governor.ProposalVoteCounts type used by its methods.
type GovernorProposalVoteCounts struct {
	Against *big.Int
	For *big.Int
	Abstain *big.Int
}

// ProposalCreatedEvent represents "ProposalCreated" event emitted by the contract.
type ProposalCreatedEvent struct {
	ProposalID util.Uint256
	Proposer util.Uint160
	Targets []any
	Methods []any
	Args []any
	Snapshot *big.Int
	Deadline *big.Int
	Description string
}

// VoteCastEvent represents "VoteCast" event emitted by the contract.
type VoteCastEvent struct {
	Voter util.Uint160
	ProposalID util.Uint256
	VoteType *big.Int
	Weight *big.Int
	Reason string
}

// ProposalExecutedEvent represents "ProposalExecuted" event emitted by the contract.
type ProposalExecutedEvent struct {
	ProposalID util.Uint256
}

// ProposalCancelledEvent represents "ProposalCancelled" event emitted by the contract.
type ProposalCancelledEvent struct {
	ProposalID util.Uint256
}

// QuorumChangedEvent represents "QuorumChanged" event emitted by the contract.
type QuorumChangedEvent struct {
	OldQuorum *big.Int
	NewQuorum *big.Int
}

// RoleGrantedEvent represents "RoleGranted" event emitted by the contract.
type RoleGrantedEvent struct {
	Role string
	Account util.Uint160
	Caller util.Uint160
}

// RoleRevokedEvent represents "RoleRevoked" event emitted by the contract.
type RoleRevokedEvent struct {
	Role string
	Account util.Uint160
	Caller util.Uint160
}

// RoleAdminChangedEvent represents "RoleAdminChanged" event emitted by the contract.
type RoleAdminChangedEvent struct {
	Role string
	PreviousAdminRole string
	NewAdminRole string
}

// AdminTransferInitiatedEvent represents "AdminTransferInitiated" event emitted by the contract.
type AdminTransferInitiatedEvent struct {
	Admin util.Uint160
	NewAdmin util.Uint160
	LiveUntil *big.Int
}

// AdminTransferCompletedEvent represents "AdminTransferCompleted" event emitted by the contract.
type AdminTransferCompletedEvent struct {
	PreviousAdmin util.Uint160
	NewAdmin util.Uint160
}

// AdminRenouncedEvent represents "AdminRenounced" event emitted by the contract.
type AdminRenouncedEvent struct {
	Admin util.Uint160
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// CountingMode invokes `countingMode` method of contract.
func (c *ContractReader) CountingMode() (string, error) {
	return unwrap.UTF8String(c.invoker.Call(c.hash, "countingMode"))
}

// GetRoleMemberCount invokes `getRoleMemberCount` method of contract.
func (c *ContractReader) GetRoleMemberCount(role string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getRoleMemberCount", role))
}

// GovernorVersion invokes `governorVersion` method of contract.
func (c *ContractReader) GovernorVersion() (string, error) {
	return unwrap.UTF8String(c.invoker.Call(c.hash, "governorVersion"))
}

// HasRole invokes `hasRole` method of contract.
func (c *ContractReader) HasRole(account util.Uint160, role string) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasRole", account, role))
}

// HasVoted invokes `hasVoted` method of contract.
func (c *ContractReader) HasVoted(proposalID util.Uint256, account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasVoted", proposalID, account))
}

// HashProposal invokes `hashProposal` method of contract.
func (c *ContractReader) HashProposal(targets []util.Uint160, methods []string, args []any, descriptionHash util.Uint256) (util.Uint256, error) {
	return unwrap.Uint256(c.invoker.Call(c.hash, "hashProposal", targets, methods, args, descriptionHash))
}

// Name invokes `name` method of contract.
func (c *ContractReader) Name() (string, error) {
	return unwrap.UTF8String(c.invoker.Call(c.hash, "name"))
}

// ProposalDeadline invokes `proposalDeadline` method of contract.
func (c *ContractReader) ProposalDeadline(proposalID util.Uint256) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "proposalDeadline", proposalID))
}

// ProposalProposer invokes `proposalProposer` method of contract.
func (c *ContractReader) ProposalProposer(proposalID util.Uint256) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "proposalProposer", proposalID))
}

// ProposalSnapshot invokes `proposalSnapshot` method of contract.
func (c *ContractReader) ProposalSnapshot(proposalID util.Uint256) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "proposalSnapshot", proposalID))
}

// ProposalState invokes `proposalState` method of contract.
func (c *ContractReader) ProposalState(proposalID util.Uint256) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "proposalState", proposalID))
}

// ProposalThreshold invokes `proposalThreshold` method of contract.
func (c *ContractReader) ProposalThreshold() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "proposalThreshold"))
}

// ProposalVotes invokes `proposalVotes` method of contract.
func (c *ContractReader) ProposalVotes(proposalID util.Uint256) (*GovernorProposalVoteCounts, error) {
	return itemToGovernorProposalVoteCounts(unwrap.Item(c.invoker.Call(c.hash, "proposalVotes", proposalID)))
}

// Quorum invokes `quorum` method of contract.
func (c *ContractReader) Quorum(height *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "quorum", height))
}

// QuorumReached invokes `quorumReached` method of contract.
func (c *ContractReader) QuorumReached(proposalID util.Uint256) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "quorumReached", proposalID))
}

// TallySucceeded invokes `tallySucceeded` method of contract.
func (c *ContractReader) TallySucceeded(proposalID util.Uint256) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "tallySucceeded", proposalID))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// VotesContract invokes `votesContract` method of contract.
func (c *ContractReader) VotesContract() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "votesContract"))
}

// VotingDelay invokes `votingDelay` method of contract.
func (c *ContractReader) VotingDelay() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "votingDelay"))
}

// VotingPeriod invokes `votingPeriod` method of contract.
func (c *ContractReader) VotingPeriod() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "votingPeriod"))
}

// AcceptAdminTransfer creates a transaction invoking `acceptAdminTransfer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AcceptAdminTransfer(caller util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "acceptAdminTransfer", caller)
}

// AcceptAdminTransferTransaction creates a transaction invoking `acceptAdminTransfer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AcceptAdminTransferTransaction(caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "acceptAdminTransfer", caller)
}

// AcceptAdminTransferUnsigned creates a transaction invoking `acceptAdminTransfer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AcceptAdminTransferUnsigned(caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "acceptAdminTransfer", nil, caller)
}

// Cancel creates a transaction invoking `cancel` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Cancel(targets []util.Uint160, methods []string, args []any, descriptionHash util.Uint256, operator util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "cancel", targets, methods, args, descriptionHash, operator)
}

// CancelTransaction creates a transaction invoking `cancel` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CancelTransaction(targets []util.Uint160, methods []string, args []any, descriptionHash util.Uint256, operator util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "cancel", targets, methods, args, descriptionHash, operator)
}

// CancelUnsigned creates a transaction invoking `cancel` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CancelUnsigned(targets []util.Uint160, methods []string, args []any, descriptionHash util.Uint256, operator util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "cancel", nil, targets, methods, args, descriptionHash, operator)
}

// CastVote creates a transaction invoking `castVote` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CastVote(proposalID util.Uint256, voteType *big.Int, reason string, voter util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "castVote", proposalID, voteType, reason, voter)
}

// CastVoteTransaction creates a transaction invoking `castVote` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CastVoteTransaction(proposalID util.Uint256, voteType *big.Int, reason string, voter util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "castVote", proposalID, voteType, reason, voter)
}

// CastVoteUnsigned creates a transaction invoking `castVote` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CastVoteUnsigned(proposalID util.Uint256, voteType *big.Int, reason string, voter util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "castVote", nil, proposalID, voteType, reason, voter)
}

// Execute creates a transaction invoking `execute` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Execute(targets []util.Uint160, methods []string, args []any, descriptionHash util.Uint256, executor util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "execute", targets, methods, args, descriptionHash, executor)
}

// ExecuteTransaction creates a transaction invoking `execute` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ExecuteTransaction(targets []util.Uint160, methods []string, args []any, descriptionHash util.Uint256, executor util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "execute", targets, methods, args, descriptionHash, executor)
}

// ExecuteUnsigned creates a transaction invoking `execute` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ExecuteUnsigned(targets []util.Uint160, methods []string, args []any, descriptionHash util.Uint256, executor util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "execute", nil, targets, methods, args, descriptionHash, executor)
}

// GrantRole creates a transaction invoking `grantRole` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) GrantRole(caller util.Uint160, account util.Uint160, role string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "grantRole", caller, account, role)
}

// GrantRoleTransaction creates a transaction invoking `grantRole` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) GrantRoleTransaction(caller util.Uint160, account util.Uint160, role string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "grantRole", caller, account, role)
}

// GrantRoleUnsigned creates a transaction invoking `grantRole` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) GrantRoleUnsigned(caller util.Uint160, account util.Uint160, role string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "grantRole", nil, caller, account, role)
}

// Propose creates a transaction invoking `propose` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Propose(targets []util.Uint160, methods []string, args []any, description string, proposer util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "propose", targets, methods, args, description, proposer)
}

// ProposeTransaction creates a transaction invoking `propose` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ProposeTransaction(targets []util.Uint160, methods []string, args []any, description string, proposer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "propose", targets, methods, args, description, proposer)
}

// ProposeUnsigned creates a transaction invoking `propose` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ProposeUnsigned(targets []util.Uint160, methods []string, args []any, description string, proposer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "propose", nil, targets, methods, args, description, proposer)
}

// RenounceAdmin creates a transaction invoking `renounceAdmin` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RenounceAdmin() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "renounceAdmin")
}

// RenounceAdminTransaction creates a transaction invoking `renounceAdmin` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RenounceAdminTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "renounceAdmin")
}

// RenounceAdminUnsigned creates a transaction invoking `renounceAdmin` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RenounceAdminUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "renounceAdmin", nil)
}

// RenounceRole creates a transaction invoking `renounceRole` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RenounceRole(caller util.Uint160, role string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "renounceRole", caller, role)
}

// RenounceRoleTransaction creates a transaction invoking `renounceRole` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RenounceRoleTransaction(caller util.Uint160, role string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "renounceRole", caller, role)
}

// RenounceRoleUnsigned creates a transaction invoking `renounceRole` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RenounceRoleUnsigned(caller util.Uint160, role string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "renounceRole", nil, caller, role)
}

// RevokeRole creates a transaction invoking `revokeRole` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RevokeRole(caller util.Uint160, account util.Uint160, role string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "revokeRole", caller, account, role)
}

// RevokeRoleTransaction creates a transaction invoking `revokeRole` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RevokeRoleTransaction(caller util.Uint160, account util.Uint160, role string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "revokeRole", caller, account, role)
}

// RevokeRoleUnsigned creates a transaction invoking `revokeRole` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RevokeRoleUnsigned(caller util.Uint160, account util.Uint160, role string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "revokeRole", nil, caller, account, role)
}

// SetProposalState creates a transaction invoking `setProposalState` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetProposalState(proposalID util.Uint256, state *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setProposalState", proposalID, state)
}

// SetProposalStateTransaction creates a transaction invoking `setProposalState` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetProposalStateTransaction(proposalID util.Uint256, state *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setProposalState", proposalID, state)
}

// SetProposalStateUnsigned creates a transaction invoking `setProposalState` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetProposalStateUnsigned(proposalID util.Uint256, state *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setProposalState", nil, proposalID, state)
}

// SetQuorum creates a transaction invoking `setQuorum` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetQuorum(quorum *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setQuorum", quorum)
}

// SetQuorumTransaction creates a transaction invoking `setQuorum` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetQuorumTransaction(quorum *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setQuorum", quorum)
}

// SetQuorumUnsigned creates a transaction invoking `setQuorum` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetQuorumUnsigned(quorum *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setQuorum", nil, quorum)
}

// TransferAdminRole creates a transaction invoking `transferAdminRole` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferAdminRole(newAdmin util.Uint160, liveUntil *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferAdminRole", newAdmin, liveUntil)
}

// TransferAdminRoleTransaction creates a transaction invoking `transferAdminRole` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferAdminRoleTransaction(newAdmin util.Uint160, liveUntil *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferAdminRole", newAdmin, liveUntil)
}

// TransferAdminRoleUnsigned creates a transaction invoking `transferAdminRole` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferAdminRoleUnsigned(newAdmin util.Uint160, liveUntil *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferAdminRole", nil, newAdmin, liveUntil)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// itemToGovernorProposalVoteCounts converts stack item into *GovernorProposalVoteCounts.
func itemToGovernorProposalVoteCounts(item stackitem.Item, err error) (*GovernorProposalVoteCounts, error) {
	if err != nil {
		return nil, err
	}
	var res = new(GovernorProposalVoteCounts)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of GovernorProposalVoteCounts from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *GovernorProposalVoteCounts) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Against, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Against: %w", err)
	}

	index++
	res.For, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field For: %w", err)
	}

	index++
	res.Abstain, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Abstain: %w", err)
	}

	return nil
}

// ProposalCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ProposalCreated" name from the provided [result.ApplicationLog].
func ProposalCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ProposalCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ProposalCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ProposalCreated" {
				continue
			}
			event := new(ProposalCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ProposalCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ProposalCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *ProposalCreatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 8 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ProposalID, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ProposalID: %w", err)
	}

	index++
	e.Proposer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Proposer: %w", err)
	}

	index++
	e.Targets, err = func (item stackitem.Item) ([]any, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]any, len(arr))
		for i := range res {
			res[i], err = arr[i].Value(), error(nil)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Targets: %w", err)
	}

	index++
	e.Methods, err = func (item stackitem.Item) ([]any, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]any, len(arr))
		for i := range res {
			res[i], err = arr[i].Value(), error(nil)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Methods: %w", err)
	}

	index++
	e.Args, err = func (item stackitem.Item) ([]any, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]any, len(arr))
		for i := range res {
			res[i], err = arr[i].Value(), error(nil)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Args: %w", err)
	}

	index++
	e.Snapshot, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Snapshot: %w", err)
	}

	index++
	e.Deadline, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Deadline: %w", err)
	}

	index++
	e.Description, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Description: %w", err)
	}

	return nil
}

// VoteCastEventsFromApplicationLog retrieves a set of all emitted events
// with "VoteCast" name from the provided [result.ApplicationLog].
func VoteCastEventsFromApplicationLog(log *result.ApplicationLog) ([]*VoteCastEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*VoteCastEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "VoteCast" {
				continue
			}
			event := new(VoteCastEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize VoteCastEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to VoteCastEvent or
// returns an error if it's not possible to do to so.
func (e *VoteCastEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Voter, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Voter: %w", err)
	}

	index++
	e.ProposalID, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ProposalID: %w", err)
	}

	index++
	e.VoteType, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field VoteType: %w", err)
	}

	index++
	e.Weight, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Weight: %w", err)
	}

	index++
	e.Reason, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Reason: %w", err)
	}

	return nil
}

// ProposalExecutedEventsFromApplicationLog retrieves a set of all emitted events
// with "ProposalExecuted" name from the provided [result.ApplicationLog].
func ProposalExecutedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ProposalExecutedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ProposalExecutedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ProposalExecuted" {
				continue
			}
			event := new(ProposalExecutedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ProposalExecutedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ProposalExecutedEvent or
// returns an error if it's not possible to do to so.
func (e *ProposalExecutedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ProposalID, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ProposalID: %w", err)
	}

	return nil
}

// ProposalCancelledEventsFromApplicationLog retrieves a set of all emitted events
// with "ProposalCancelled" name from the provided [result.ApplicationLog].
func ProposalCancelledEventsFromApplicationLog(log *result.ApplicationLog) ([]*ProposalCancelledEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ProposalCancelledEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ProposalCancelled" {
				continue
			}
			event := new(ProposalCancelledEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ProposalCancelledEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ProposalCancelledEvent or
// returns an error if it's not possible to do to so.
func (e *ProposalCancelledEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ProposalID, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ProposalID: %w", err)
	}

	return nil
}

// QuorumChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "QuorumChanged" name from the provided [result.ApplicationLog].
func QuorumChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*QuorumChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*QuorumChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "QuorumChanged" {
				continue
			}
			event := new(QuorumChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize QuorumChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to QuorumChangedEvent or
// returns an error if it's not possible to do to so.
func (e *QuorumChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.OldQuorum, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field OldQuorum: %w", err)
	}

	index++
	e.NewQuorum, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field NewQuorum: %w", err)
	}

	return nil
}

// RoleGrantedEventsFromApplicationLog retrieves a set of all emitted events
// with "RoleGranted" name from the provided [result.ApplicationLog].
func RoleGrantedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RoleGrantedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RoleGrantedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RoleGranted" {
				continue
			}
			event := new(RoleGrantedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RoleGrantedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RoleGrantedEvent or
// returns an error if it's not possible to do to so.
func (e *RoleGrantedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Role, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Role: %w", err)
	}

	index++
	e.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	e.Caller, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Caller: %w", err)
	}

	return nil
}

// RoleRevokedEventsFromApplicationLog retrieves a set of all emitted events
// with "RoleRevoked" name from the provided [result.ApplicationLog].
func RoleRevokedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RoleRevokedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RoleRevokedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RoleRevoked" {
				continue
			}
			event := new(RoleRevokedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RoleRevokedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RoleRevokedEvent or
// returns an error if it's not possible to do to so.
func (e *RoleRevokedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Role, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Role: %w", err)
	}

	index++
	e.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	e.Caller, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Caller: %w", err)
	}

	return nil
}

// RoleAdminChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "RoleAdminChanged" name from the provided [result.ApplicationLog].
func RoleAdminChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RoleAdminChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RoleAdminChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RoleAdminChanged" {
				continue
			}
			event := new(RoleAdminChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RoleAdminChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RoleAdminChangedEvent or
// returns an error if it's not possible to do to so.
func (e *RoleAdminChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Role, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Role: %w", err)
	}

	index++
	e.PreviousAdminRole, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field PreviousAdminRole: %w", err)
	}

	index++
	e.NewAdminRole, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field NewAdminRole: %w", err)
	}

	return nil
}

// AdminTransferInitiatedEventsFromApplicationLog retrieves a set of all emitted events
// with "AdminTransferInitiated" name from the provided [result.ApplicationLog].
func AdminTransferInitiatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AdminTransferInitiatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AdminTransferInitiatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AdminTransferInitiated" {
				continue
			}
			event := new(AdminTransferInitiatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AdminTransferInitiatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AdminTransferInitiatedEvent or
// returns an error if it's not possible to do to so.
func (e *AdminTransferInitiatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Admin, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Admin: %w", err)
	}

	index++
	e.NewAdmin, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field NewAdmin: %w", err)
	}

	index++
	e.LiveUntil, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field LiveUntil: %w", err)
	}

	return nil
}

// AdminTransferCompletedEventsFromApplicationLog retrieves a set of all emitted events
// with "AdminTransferCompleted" name from the provided [result.ApplicationLog].
func AdminTransferCompletedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AdminTransferCompletedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AdminTransferCompletedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AdminTransferCompleted" {
				continue
			}
			event := new(AdminTransferCompletedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AdminTransferCompletedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AdminTransferCompletedEvent or
// returns an error if it's not possible to do to so.
func (e *AdminTransferCompletedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.PreviousAdmin, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field PreviousAdmin: %w", err)
	}

	index++
	e.NewAdmin, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field NewAdmin: %w", err)
	}

	return nil
}

// AdminRenouncedEventsFromApplicationLog retrieves a set of all emitted events
// with "AdminRenounced" name from the provided [result.ApplicationLog].
func AdminRenouncedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AdminRenouncedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AdminRenouncedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AdminRenounced" {
				continue
			}
			event := new(AdminRenouncedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AdminRenouncedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AdminRenouncedEvent or
// returns an error if it's not possible to do to so.
func (e *AdminRenouncedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Admin, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Admin: %w", err)
	}

	return nil
}
