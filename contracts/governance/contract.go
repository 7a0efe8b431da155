package governance

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neogov-contract/accesscontrol"
	"github.com/nspcc-dev/neogov-contract/common"
	"github.com/nspcc-dev/neogov-contract/governor"
)

// CancellerRole is a role allowing to cancel any proposal.
const CancellerRole = "canceller"

const maxRoleLength = 32

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		admin        interop.Hash160
		votes        interop.Hash160
		name         string
		version      string
		delay        int
		period       int
		threshold    int
		quorum       int
		countingMode string
	})

	if len(args.admin) != interop.Hash160Len {
		panic("incorrect length of admin address")
	}

	accesscontrol.SetAdmin(ctx, args.admin)

	governor.SetVotesContract(ctx, args.votes)
	governor.SetName(ctx, args.name)
	governor.SetVersion(ctx, args.version)
	governor.SetVotingDelay(ctx, args.delay)
	governor.SetVotingPeriod(ctx, args.period)
	governor.SetProposalThreshold(ctx, args.threshold)
	governor.SetQuorum(ctx, args.quorum)
	if args.countingMode != "" {
		governor.SetCountingMode(ctx, args.countingMode)
	}

	runtime.Log("governance contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic(common.ErrUpdateAccessDenied)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("governance contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// Name returns the governor name.
func Name() string {
	return governor.Name(storage.GetReadOnlyContext())
}

// GovernorVersion returns the governor version string set at deployment.
func GovernorVersion() string {
	return governor.Version(storage.GetReadOnlyContext())
}

// VotingDelay returns the number of blocks between proposal creation and its
// snapshot.
func VotingDelay() int {
	return governor.VotingDelay(storage.GetReadOnlyContext())
}

// VotingPeriod returns the voting duration in blocks.
func VotingPeriod() int {
	return governor.VotingPeriod(storage.GetReadOnlyContext())
}

// ProposalThreshold returns the minimal voting power of a proposer.
func ProposalThreshold() int {
	return governor.ProposalThreshold(storage.GetReadOnlyContext())
}

// Quorum returns the quorum effective at the given height.
func Quorum(height int) int {
	return governor.Quorum(storage.GetReadOnlyContext(), height)
}

// VotesContract returns the voting power source contract.
func VotesContract() interop.Hash160 {
	return governor.VotesContract(storage.GetReadOnlyContext())
}

// CountingMode returns "simple" or "manual".
func CountingMode() string {
	return governor.CountingMode(storage.GetReadOnlyContext())
}

// HashProposal returns identifier of the proposal with the given parameters.
func HashProposal(targets []interop.Hash160, methods []string, args [][]any, descriptionHash interop.Hash256) interop.Hash256 {
	return governor.HashProposal(targets, methods, args, descriptionHash)
}

// Propose creates a new proposal and returns its identifier.
func Propose(targets []interop.Hash160, methods []string, args [][]any, description string, proposer interop.Hash160) interop.Hash256 {
	return governor.Propose(storage.GetContext(), targets, methods, args, description, proposer)
}

// CastVote votes for the active proposal (0 against, 1 for, 2 abstain) and
// returns the weight of the vote.
func CastVote(proposalID interop.Hash256, voteType int, reason string, voter interop.Hash160) int {
	return governor.CastVote(storage.GetContext(), proposalID, voteType, reason, voter)
}

// Execute makes all calls of the succeeded proposal.
func Execute(targets []interop.Hash160, methods []string, args [][]any, descriptionHash interop.Hash256, executor interop.Hash160) interop.Hash256 {
	return governor.Execute(storage.GetContext(), targets, methods, args, descriptionHash, executor)
}

// Cancel cancels the proposal. Operator must be the proposer, the admin or a
// holder of CancellerRole.
func Cancel(targets []interop.Hash160, methods []string, args [][]any, descriptionHash interop.Hash256, operator interop.Hash160) interop.Hash256 {
	ctx := storage.GetContext()

	id := governor.HashProposal(targets, methods, args, descriptionHash)
	p := governor.GetProposal(ctx, id)

	if !operator.Equals(p.Proposer) && !isAdmin(ctx, operator) {
		if _, ok := accesscontrol.HasRole(ctx, operator, CancellerRole); !ok {
			panic(governor.ErrUnauthorized)
		}
	}

	return governor.Cancel(ctx, targets, methods, args, descriptionHash, operator)
}

// ProposalState returns current proposal state.
func ProposalState(proposalID interop.Hash256) int {
	return governor.ProposalState(storage.GetReadOnlyContext(), proposalID)
}

// ProposalSnapshot returns the height voting power is read at.
func ProposalSnapshot(proposalID interop.Hash256) int {
	return governor.GetProposal(storage.GetReadOnlyContext(), proposalID).Snapshot
}

// ProposalDeadline returns the last height of the voting.
func ProposalDeadline(proposalID interop.Hash256) int {
	return governor.GetProposal(storage.GetReadOnlyContext(), proposalID).Deadline
}

// ProposalProposer returns the account that made the proposal.
func ProposalProposer(proposalID interop.Hash256) interop.Hash160 {
	return governor.GetProposal(storage.GetReadOnlyContext(), proposalID).Proposer
}

// ProposalVotes returns Against, For and Abstain tallies of the proposal.
func ProposalVotes(proposalID interop.Hash256) governor.ProposalVoteCounts {
	ctx := storage.GetReadOnlyContext()

	governor.GetProposal(ctx, proposalID)

	return governor.GetProposalVoteCounts(ctx, proposalID)
}

// HasVoted checks whether the account has voted for the proposal.
func HasVoted(proposalID interop.Hash256, account interop.Hash160) bool {
	return governor.HasVoted(storage.GetReadOnlyContext(), proposalID, account)
}

// TallySucceeded checks whether For votes outnumber Against ones.
func TallySucceeded(proposalID interop.Hash256) bool {
	ctx := storage.GetReadOnlyContext()

	governor.GetProposal(ctx, proposalID)

	return governor.TallySucceeded(ctx, proposalID)
}

// QuorumReached checks whether For and Abstain votes reach the quorum.
func QuorumReached(proposalID interop.Hash256) bool {
	return governor.QuorumReached(storage.GetReadOnlyContext(), proposalID)
}

// SetQuorum changes the quorum. Admin only.
func SetQuorum(quorum int) {
	ctx := storage.GetContext()

	accesscontrol.EnforceAdminAuth(ctx)
	governor.SetQuorum(ctx, quorum)
}

// SetProposalState stores Succeeded, Queued or Expired outcome of the
// proposal. Admin only.
func SetProposalState(proposalID interop.Hash256, state int) {
	ctx := storage.GetContext()

	accesscontrol.EnforceAdminAuth(ctx)
	governor.SetProposalState(ctx, proposalID, state)
}

// GetAdmin returns the contract admin or nil after renouncement.
func GetAdmin() interop.Hash160 {
	return accesscontrol.GetAdmin(storage.GetReadOnlyContext())
}

// GetPendingAdmin returns the live admin nominee or nil.
func GetPendingAdmin() interop.Hash160 {
	return accesscontrol.GetPendingAdmin(storage.GetReadOnlyContext())
}

// HasRole checks whether the account holds the role.
func HasRole(account interop.Hash160, role string) bool {
	_, ok := accesscontrol.HasRole(storage.GetReadOnlyContext(), account, role)
	return ok
}

// GetRoleMemberCount returns the number of role members.
func GetRoleMemberCount(role string) int {
	return accesscontrol.GetRoleMemberCount(storage.GetReadOnlyContext(), role)
}

// GrantRole grants the role to the account on behalf of the caller.
func GrantRole(caller, account interop.Hash160, role string) {
	checkRole(role)
	accesscontrol.GrantRole(storage.GetContext(), caller, account, role)
}

// RevokeRole revokes the role from the account on behalf of the caller.
func RevokeRole(caller, account interop.Hash160, role string) {
	accesscontrol.RevokeRole(storage.GetContext(), caller, account, role)
}

// RenounceRole removes the role from the caller.
func RenounceRole(caller interop.Hash160, role string) {
	accesscontrol.RenounceRole(storage.GetContext(), caller, role)
}

// TransferAdminRole nominates the new admin until the liveUntil block.
func TransferAdminRole(newAdmin interop.Hash160, liveUntil int) {
	accesscontrol.TransferAdminRole(storage.GetContext(), newAdmin, liveUntil)
}

// AcceptAdminTransfer makes the caller an admin.
func AcceptAdminTransfer(caller interop.Hash160) {
	accesscontrol.AcceptAdminTransfer(storage.GetContext(), caller)
}

// RenounceAdmin removes the admin forever.
func RenounceAdmin() {
	accesscontrol.RenounceAdmin(storage.GetContext())
}

func isAdmin(ctx storage.Context, account interop.Hash160) bool {
	admin := accesscontrol.GetAdmin(ctx)
	return admin != nil && account.Equals(admin)
}

func checkRole(role string) {
	if len(role) == 0 || len(role) > maxRoleLength {
		panic("invalid role length")
	}
}
