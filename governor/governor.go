/*
Package governor implements on-chain governance: proposals made of contract
calls are created by accounts having enough voting power, voted on within a
fixed block range and then executed or cancelled.

Voting power is read from an external votes contract implementing
getVotesAtCheckpoint(account, height) method. The power of the proposer is
checked at the latest persisted block, the power of voters at the proposal
snapshot height.

Proposal states Pending, Active and Defeated are derived from the current
height, all other states are stored explicitly and never change afterwards
except for the transition to Executed or Canceled.

# Storage model

 - 'p' + id -> ProposalCore
   proposal record
 - 't' + id -> ProposalVoteCounts
   proposal tally
 - 'v' + id + account -> int
   presence flag of the account vote
 - "governorName", "governorVersion", "votingDelay", "votingPeriod",
   "proposalThreshold", "quorum", "votesContract", "countingMode"
   governor settings
*/
package governor

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neogov-contract/common"
)

const (
	ErrProposalNotFound            = "5000: proposal not found"
	ErrProposalAlreadyExists       = "5001: proposal already exists"
	ErrInsufficientProposerVotes   = "5002: insufficient proposer votes"
	ErrEmptyProposal               = "5003: empty proposal"
	ErrInvalidProposalLength       = "5004: invalid proposal length"
	ErrProposalNotActive           = "5005: proposal not active"
	ErrAlreadyVoted                = "5006: already voted"
	ErrProposalNotSuccessful       = "5007: proposal not successful"
	ErrProposalNotQueued           = "5008: proposal not queued"
	ErrProposalAlreadyExecuted     = "5009: proposal already executed"
	ErrUnauthorized                = "5010: unauthorized"
	ErrVotingDelayNotSet           = "5011: voting delay not set"
	ErrVotingPeriodNotSet          = "5012: voting period not set"
	ErrProposalThresholdNotSet     = "5013: proposal threshold not set"
	ErrVotesContractNotSet         = "5014: votes contract not set"
	ErrQuorumNotSet                = "5015: quorum not set"
	ErrInvalidVotingDelay          = "5016: invalid voting delay"
	ErrInvalidVotingPeriod         = "5017: invalid voting period"
	ErrInvalidProposalThreshold    = "5018: invalid proposal threshold"
	ErrNameNotSet                  = "5019: name not set"
	ErrVersionNotSet               = "5020: version not set"
	ErrInvalidVoteType             = "5021: invalid vote type"
	ErrNameAlreadySet              = "5022: name already set"
	ErrVersionAlreadySet           = "5023: version already set"
	ErrVotingDelayAlreadySet       = "5024: voting delay already set"
	ErrVotingPeriodAlreadySet      = "5025: voting period already set"
	ErrProposalThresholdAlreadySet = "5026: proposal threshold already set"
	ErrVotesContractAlreadySet     = "5027: votes contract already set"
	ErrQuorumAlreadySet            = "5028: quorum already set"
	ErrMathOverflow                = "5029: math overflow"
	ErrProposalNotCancellable      = "5030: proposal not cancellable"
	ErrInvalidProposalState        = "5031: invalid proposal state"
	ErrInvalidCountingMode         = "5032: invalid counting mode"
	ErrCountingModeAlreadySet      = "5033: counting mode already set"
)

const (
	nameKey              = "governorName"
	versionKey           = "governorVersion"
	votingDelayKey       = "votingDelay"
	votingPeriodKey      = "votingPeriod"
	proposalThresholdKey = "proposalThreshold"
	quorumKey            = "quorum"
	votesContractKey     = "votesContract"
	countingModeKey      = "countingMode"
)

const (
	// CountingModeManual never derives Succeeded state: the outcome of a
	// proposal whose voting has ended is Defeated unless some other state is
	// stored explicitly with SetProposalState.
	CountingModeManual = "manual"
	// CountingModeSimple derives Succeeded state once the voting has ended
	// if quorum is reached and For votes outnumber Against ones.
	CountingModeSimple = "simple"
)

// SetName sets the governor name once.
func SetName(ctx storage.Context, name string) {
	setOnce(ctx, nameKey, name, ErrNameAlreadySet)
}

// Name returns the governor name.
func Name(ctx storage.Context) string {
	return mustGet(ctx, nameKey, ErrNameNotSet).(string)
}

// SetVersion sets the governor version string once.
func SetVersion(ctx storage.Context, version string) {
	setOnce(ctx, versionKey, version, ErrVersionAlreadySet)
}

// Version returns the governor version string.
func Version(ctx storage.Context) string {
	return mustGet(ctx, versionKey, ErrVersionNotSet).(string)
}

// SetVotingDelay sets the number of blocks between proposal creation and the
// snapshot once.
func SetVotingDelay(ctx storage.Context, delay int) {
	if delay < 0 || delay > common.MaxUint32 {
		panic(ErrInvalidVotingDelay)
	}
	setOnce(ctx, votingDelayKey, delay, ErrVotingDelayAlreadySet)
}

// VotingDelay returns the number of blocks between proposal creation and the
// snapshot.
func VotingDelay(ctx storage.Context) int {
	return mustGet(ctx, votingDelayKey, ErrVotingDelayNotSet).(int)
}

// SetVotingPeriod sets the voting duration in blocks once.
func SetVotingPeriod(ctx storage.Context, period int) {
	if period <= 0 || period > common.MaxUint32 {
		panic(ErrInvalidVotingPeriod)
	}
	setOnce(ctx, votingPeriodKey, period, ErrVotingPeriodAlreadySet)
}

// VotingPeriod returns the voting duration in blocks.
func VotingPeriod(ctx storage.Context) int {
	return mustGet(ctx, votingPeriodKey, ErrVotingPeriodNotSet).(int)
}

// SetProposalThreshold sets the minimal voting power of the proposer once.
func SetProposalThreshold(ctx storage.Context, threshold int) {
	if threshold < 0 || threshold > common.MaxUint128() {
		panic(ErrInvalidProposalThreshold)
	}
	setOnce(ctx, proposalThresholdKey, threshold, ErrProposalThresholdAlreadySet)
}

// ProposalThreshold returns the minimal voting power of the proposer.
func ProposalThreshold(ctx storage.Context) int {
	return mustGet(ctx, proposalThresholdKey, ErrProposalThresholdNotSet).(int)
}

// SetVotesContract sets the voting power source once.
func SetVotesContract(ctx storage.Context, h interop.Hash160) {
	if len(h) != interop.Hash160Len {
		panic(ErrVotesContractNotSet)
	}
	setOnce(ctx, votesContractKey, h, ErrVotesContractAlreadySet)
}

// VotesContract returns the voting power source.
func VotesContract(ctx storage.Context) interop.Hash160 {
	return mustGet(ctx, votesContractKey, ErrVotesContractNotSet).(interop.Hash160)
}

// SetCountingMode sets the counting mode once. Governor without configured
// mode works in CountingModeManual.
func SetCountingMode(ctx storage.Context, mode string) {
	if mode != CountingModeManual && mode != CountingModeSimple {
		panic(ErrInvalidCountingMode)
	}
	setOnce(ctx, countingModeKey, mode, ErrCountingModeAlreadySet)
}

// CountingMode returns the counting mode.
func CountingMode(ctx storage.Context) string {
	data := storage.Get(ctx, countingModeKey)
	if data == nil {
		return CountingModeManual
	}

	return data.(string)
}

// SetQuorum sets the minimal sum of For and Abstain votes required for the
// proposal to succeed.
func SetQuorum(ctx storage.Context, quorum int) {
	if quorum < 0 || quorum > common.MaxUint128() {
		panic(ErrMathOverflow)
	}

	old := common.GetInt(ctx, quorumKey)
	storage.Put(ctx, quorumKey, quorum)

	notifyQuorumChanged(old, quorum)
}

// Quorum returns the quorum effective at the given height. The height is
// currently ignored.
func Quorum(ctx storage.Context, height int) int {
	return mustGet(ctx, quorumKey, ErrQuorumNotSet).(int)
}

func setOnce(ctx storage.Context, key string, value any, errAlreadySet string) {
	if storage.Get(ctx, key) != nil {
		panic(errAlreadySet)
	}

	storage.Put(ctx, key, value)
}

func mustGet(ctx storage.Context, key string, errNotSet string) any {
	data := storage.Get(ctx, key)
	if data == nil {
		panic(errNotSet)
	}

	return data
}
