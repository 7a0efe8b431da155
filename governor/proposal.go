package governor

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neogov-contract/common"
)

// Proposal states.
const (
	Pending = iota
	Active
	Canceled
	Defeated
	Succeeded
	Queued
	Expired
	Executed
)

const proposalPrefix = 'p'

// ProposalCore is a stored proposal record. Snapshot is the height voting
// power is read at, voting is open within [Snapshot, Deadline] heights.
type ProposalCore struct {
	Proposer interop.Hash160
	Snapshot int
	Deadline int
	State    int
}

// DescriptionHash returns hash of the proposal description.
func DescriptionHash(description string) interop.Hash256 {
	return crypto.Sha256([]byte(description))
}

// HashProposal returns proposal identifier: SHA-256 of the serialized array
// of all proposal parameters.
func HashProposal(targets []interop.Hash160, methods []string, args [][]any, descriptionHash interop.Hash256) interop.Hash256 {
	return crypto.Sha256(std.Serialize([]any{targets, methods, args, descriptionHash}))
}

func proposalKey(id interop.Hash256) []byte {
	return append([]byte{proposalPrefix}, id...)
}

// GetProposal returns the stored proposal record.
func GetProposal(ctx storage.Context, id interop.Hash256) ProposalCore {
	data := storage.Get(ctx, proposalKey(id))
	if data == nil {
		panic(ErrProposalNotFound)
	}

	return std.Deserialize(data.([]byte)).(ProposalCore)
}

func putProposal(ctx storage.Context, id interop.Hash256, p ProposalCore) {
	common.SetSerialized(ctx, proposalKey(id), p)
}

// Propose creates a proposal to call methods of targets with the given
// arguments. Proposer must witness the transaction and have at least
// ProposalThreshold voting power at the latest persisted block.
func Propose(ctx storage.Context, targets []interop.Hash160, methods []string, args [][]any,
	description string, proposer interop.Hash160) interop.Hash256 {
	common.CheckWitness(proposer)

	if len(targets) == 0 {
		panic(ErrEmptyProposal)
	}
	if len(targets) != len(methods) || len(targets) != len(args) {
		panic(ErrInvalidProposalLength)
	}

	id := HashProposal(targets, methods, args, DescriptionHash(description))
	if storage.Get(ctx, proposalKey(id)) != nil {
		panic(ErrProposalAlreadyExists)
	}

	now := common.CurrentHeight()

	if votingPower(ctx, proposer, now) < ProposalThreshold(ctx) {
		panic(ErrInsufficientProposerVotes)
	}

	snapshot, ok := common.CheckedAdd(now, VotingDelay(ctx), common.MaxUint32)
	if !ok {
		panic(ErrMathOverflow)
	}
	deadline, ok := common.CheckedAdd(snapshot, VotingPeriod(ctx), common.MaxUint32)
	if !ok {
		panic(ErrMathOverflow)
	}

	putProposal(ctx, id, ProposalCore{
		Proposer: proposer,
		Snapshot: snapshot,
		Deadline: deadline,
		State:    Pending,
	})

	notifyProposalCreated(id, proposer, targets, methods, args, snapshot, deadline, description)

	return id
}

// ProposalState returns current state of the proposal.
func ProposalState(ctx storage.Context, id interop.Hash256) int {
	p := GetProposal(ctx, id)
	return deriveState(ctx, id, p)
}

func deriveState(ctx storage.Context, id interop.Hash256, p ProposalCore) int {
	if isExplicit(p.State) {
		return p.State
	}

	now := common.CurrentHeight()
	if now < p.Snapshot {
		return Pending
	}
	if now <= p.Deadline {
		return Active
	}

	if CountingMode(ctx) == CountingModeSimple && QuorumReached(ctx, id) && TallySucceeded(ctx, id) {
		return Succeeded
	}

	return Defeated
}

func isExplicit(state int) bool {
	return state != Pending && state != Active && state != Defeated
}

// SetProposalState stores an explicit state of the proposal. It's intended
// for integrators resolving proposals outside of the vote counting, so only
// Succeeded, Queued and Expired states are accepted and the current state
// must not be final.
func SetProposalState(ctx storage.Context, id interop.Hash256, state int) {
	if state != Succeeded && state != Queued && state != Expired {
		panic(ErrInvalidProposalState)
	}

	p := GetProposal(ctx, id)

	current := deriveState(ctx, id, p)
	if current == Canceled || current == Expired || current == Executed {
		panic(ErrInvalidProposalState)
	}

	p.State = state
	putProposal(ctx, id, p)
}

// Execute performs all calls of the succeeded proposal. Executor must
// witness the transaction.
func Execute(ctx storage.Context, targets []interop.Hash160, methods []string, args [][]any,
	descriptionHash interop.Hash256, executor interop.Hash160) interop.Hash256 {
	common.CheckWitness(executor)

	id := HashProposal(targets, methods, args, descriptionHash)
	p := GetProposal(ctx, id)

	state := deriveState(ctx, id, p)
	if state == Executed {
		panic(ErrProposalAlreadyExecuted)
	}
	if state != Succeeded {
		panic(ErrProposalNotSuccessful)
	}

	p.State = Executed
	putProposal(ctx, id, p)

	for i := range targets {
		contract.Call(targets[i], methods[i], contract.All, args[i]...)
	}

	notifyProposalExecuted(id)

	return id
}

// Cancel cancels the proposal unless it's already cancelled, expired or
// executed. Operator must witness the transaction, other permissions are
// checked by the caller.
func Cancel(ctx storage.Context, targets []interop.Hash160, methods []string, args [][]any,
	descriptionHash interop.Hash256, operator interop.Hash160) interop.Hash256 {
	common.CheckWitness(operator)

	id := HashProposal(targets, methods, args, descriptionHash)
	p := GetProposal(ctx, id)

	state := deriveState(ctx, id, p)
	if state == Canceled || state == Expired || state == Executed {
		panic(ErrProposalNotCancellable)
	}

	p.State = Canceled
	putProposal(ctx, id, p)

	notifyProposalCancelled(id)

	return id
}

func votingPower(ctx storage.Context, account interop.Hash160, height int) int {
	return contract.Call(VotesContract(ctx), "getVotesAtCheckpoint", contract.ReadStates, account, height).(int)
}
