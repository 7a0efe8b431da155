package governor

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neogov-contract/common"
)

// Vote types.
const (
	VoteAgainst = iota
	VoteFor
	VoteAbstain
)

const (
	tallyPrefix    = 't'
	hasVotedPrefix = 'v'
)

// ProposalVoteCounts is a proposal tally.
type ProposalVoteCounts struct {
	Against int
	For     int
	Abstain int
}

func tallyKey(id interop.Hash256) []byte {
	return append([]byte{tallyPrefix}, id...)
}

func hasVotedKey(id interop.Hash256, account interop.Hash160) []byte {
	key := append([]byte{hasVotedPrefix}, id...)
	return append(key, account...)
}

// GetProposalVoteCounts returns the tally of the proposal.
func GetProposalVoteCounts(ctx storage.Context, id interop.Hash256) ProposalVoteCounts {
	data := storage.Get(ctx, tallyKey(id))
	if data == nil {
		return ProposalVoteCounts{}
	}

	return std.Deserialize(data.([]byte)).(ProposalVoteCounts)
}

// HasVoted checks whether the account has voted for the proposal.
func HasVoted(ctx storage.Context, id interop.Hash256, account interop.Hash160) bool {
	return storage.Get(ctx, hasVotedKey(id, account)) != nil
}

// CastVote records the vote of the voter with weight equal to its voting
// power at the proposal snapshot and returns the weight. Voter must witness
// the transaction.
func CastVote(ctx storage.Context, id interop.Hash256, voteType int, reason string, voter interop.Hash160) int {
	common.CheckWitness(voter)

	p := GetProposal(ctx, id)
	if deriveState(ctx, id, p) != Active {
		panic(ErrProposalNotActive)
	}

	if HasVoted(ctx, id, voter) {
		panic(ErrAlreadyVoted)
	}
	if voteType < VoteAgainst || voteType > VoteAbstain {
		panic(ErrInvalidVoteType)
	}

	weight := votingPower(ctx, voter, p.Snapshot)

	countVote(ctx, id, voter, voteType, weight)
	notifyVoteCast(voter, id, voteType, weight, reason)

	return weight
}

func countVote(ctx storage.Context, id interop.Hash256, voter interop.Hash160, voteType int, weight int) {
	counts := GetProposalVoteCounts(ctx, id)

	current := counts.Abstain
	if voteType == VoteAgainst {
		current = counts.Against
	} else if voteType == VoteFor {
		current = counts.For
	}

	updated, ok := common.CheckedAdd(current, weight, common.MaxUint128())
	if !ok {
		panic(ErrMathOverflow)
	}

	switch voteType {
	case VoteAgainst:
		counts.Against = updated
	case VoteFor:
		counts.For = updated
	default:
		counts.Abstain = updated
	}

	common.SetSerialized(ctx, tallyKey(id), counts)
	storage.Put(ctx, hasVotedKey(id, voter), 1)
}

// TallySucceeded checks whether For votes strictly outnumber Against ones.
func TallySucceeded(ctx storage.Context, id interop.Hash256) bool {
	counts := GetProposalVoteCounts(ctx, id)
	return counts.For > counts.Against
}

// QuorumReached checks whether For and Abstain votes together reach the
// quorum effective at the proposal snapshot.
func QuorumReached(ctx storage.Context, id interop.Hash256) bool {
	p := GetProposal(ctx, id)
	counts := GetProposalVoteCounts(ctx, id)

	participation, ok := common.CheckedAdd(counts.For, counts.Abstain, common.MaxUint128())
	if !ok {
		panic(ErrMathOverflow)
	}

	return participation >= Quorum(ctx, p.Snapshot)
}
