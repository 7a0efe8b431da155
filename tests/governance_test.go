package tests

import (
	"path"
	"strings"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neogov-contract/accesscontrol"
	"github.com/nspcc-dev/neogov-contract/common"
	"github.com/nspcc-dev/neogov-contract/governor"
	govrpc "github.com/nspcc-dev/neogov-contract/rpc/governance"
	"github.com/stretchr/testify/require"
)

const (
	governancePath = "../contracts/governance"
	targetPath     = "../internal/testcontracts/target"
)

const (
	testVotingDelay       = 10
	testVotingPeriod      = 100
	testProposalThreshold = 100
	testQuorum            = 200
)

type governanceEnv struct {
	e      *neotest.Executor
	admin  neotest.Signer
	gov    *neotest.ContractInvoker
	votes  *neotest.ContractInvoker
	target *neotest.ContractInvoker
}

type testProposal struct {
	targets     []util.Uint160
	methods     []string
	args        [][]any
	description string
}

func newGovernanceEnv(t *testing.T, countingMode string) *governanceEnv {
	e := newExecutor(t)

	admin := e.NewAccount(t)
	votesHash := deployVotingPowerContract(t, e, admin.ScriptHash())

	ctr := neotest.CompileFile(t, e.CommitteeHash, targetPath, path.Join(targetPath, "config.yml"))
	e.DeployContract(t, ctr, nil)

	gov := neotest.CompileFile(t, e.CommitteeHash, governancePath, path.Join(governancePath, "config.yml"))
	e.DeployContract(t, gov, []any{
		admin.ScriptHash(),
		votesHash,
		"Test Governor",
		"1",
		testVotingDelay,
		testVotingPeriod,
		testProposalThreshold,
		testQuorum,
		countingMode,
	})

	return &governanceEnv{
		e:      e,
		admin:  admin,
		gov:    e.NewInvoker(gov.Hash, admin),
		votes:  e.NewInvoker(votesHash, admin),
		target: e.CommitteeInvoker(ctr.Hash),
	}
}

// newVoter creates an account having the given voting power.
func (env *governanceEnv) newVoter(t *testing.T, power int64) neotest.Signer {
	acc := env.e.NewAccount(t)
	if power > 0 {
		env.votes.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), power)
	}
	return acc
}

func (env *governanceEnv) setValueProposal(value int64, description string) testProposal {
	return testProposal{
		targets:     []util.Uint160{env.target.Hash},
		methods:     []string{"setValue"},
		args:        [][]any{{value, "from governance"}},
		description: description,
	}
}

func (p testProposal) params() (targets, methods, args []any) {
	for i := range p.targets {
		targets = append(targets, p.targets[i])
		methods = append(methods, p.methods[i])
		args = append(args, p.args[i])
	}
	return
}

func (p testProposal) id(t *testing.T) util.Uint256 {
	id, err := govrpc.ProposalID(p.targets, p.methods, p.args, govrpc.DescriptionHash(p.description))
	require.NoError(t, err)
	return id
}

func (env *governanceEnv) propose(t *testing.T, proposer neotest.Signer, p testProposal) util.Uint256 {
	targets, methods, args := p.params()

	item := invokeAndGet(t, env.gov.WithSigners(proposer), "propose",
		targets, methods, args, p.description, proposer.ScriptHash())

	b, err := item.TryBytes()
	require.NoError(t, err)

	id, err := util.Uint256DecodeBytesBE(b)
	require.NoError(t, err)
	require.Equal(t, p.id(t), id)

	return id
}

func (env *governanceEnv) execute(t *testing.T, executor neotest.Signer, p testProposal) util.Uint256 {
	targets, methods, args := p.params()
	return env.gov.WithSigners(executor).Invoke(t, p.id(t), "execute",
		targets, methods, args, govrpc.DescriptionHash(p.description), executor.ScriptHash())
}

func (env *governanceEnv) executeFail(t *testing.T, executor neotest.Signer, p testProposal, msg string) {
	targets, methods, args := p.params()
	env.gov.WithSigners(executor).InvokeFail(t, msg, "execute",
		targets, methods, args, govrpc.DescriptionHash(p.description), executor.ScriptHash())
}

func (env *governanceEnv) cancel(t *testing.T, operator neotest.Signer, p testProposal) util.Uint256 {
	targets, methods, args := p.params()
	return env.gov.WithSigners(operator).Invoke(t, p.id(t), "cancel",
		targets, methods, args, govrpc.DescriptionHash(p.description), operator.ScriptHash())
}

func (env *governanceEnv) cancelFail(t *testing.T, operator neotest.Signer, p testProposal, msg string) {
	targets, methods, args := p.params()
	env.gov.WithSigners(operator).InvokeFail(t, msg, "cancel",
		targets, methods, args, govrpc.DescriptionHash(p.description), operator.ScriptHash())
}

func (env *governanceEnv) vote(t *testing.T, voter neotest.Signer, id util.Uint256, voteType int, weight int64) {
	env.gov.WithSigners(voter).Invoke(t, weight, "castVote", id, voteType, "reason", voter.ScriptHash())
}

func (env *governanceEnv) proposalHeight(t *testing.T, method string, id util.Uint256) uint32 {
	item := testInvokeItem(t, env.gov, method, id)
	h, err := item.TryInteger()
	require.NoError(t, err)
	return uint32(h.Int64())
}

func TestGovernance_Deploy(t *testing.T) {
	env := newGovernanceEnv(t, governor.CountingModeSimple)
	c := env.gov

	c.Invoke(t, "Test Governor", "name")
	c.Invoke(t, "1", "governorVersion")
	c.Invoke(t, common.Version, "version")
	c.Invoke(t, testVotingDelay, "votingDelay")
	c.Invoke(t, testVotingPeriod, "votingPeriod")
	c.Invoke(t, testProposalThreshold, "proposalThreshold")
	c.Invoke(t, testQuorum, "quorum", 0)
	c.Invoke(t, env.votes.Hash, "votesContract")
	c.Invoke(t, governor.CountingModeSimple, "countingMode")
	c.Invoke(t, env.admin.ScriptHash(), "getAdmin")

	t.Run("default counting mode", func(t *testing.T) {
		env := newGovernanceEnv(t, "")
		env.gov.Invoke(t, governor.CountingModeManual, "countingMode")
	})

	t.Run("hash proposal", func(t *testing.T) {
		p := env.setValueProposal(42, "hash me")
		targets, methods, args := p.params()

		c.Invoke(t, p.id(t), "hashProposal", targets, methods, args, govrpc.DescriptionHash(p.description))
	})
}

func TestGovernance_Lifecycle(t *testing.T) {
	env := newGovernanceEnv(t, governor.CountingModeSimple)
	c := env.gov

	proposer := env.newVoter(t, testProposalThreshold)
	forVoter := env.newVoter(t, 150)
	againstVoter := env.newVoter(t, 80)
	abstainVoter := env.newVoter(t, 60)

	p := env.setValueProposal(42, "set value to 42")

	now := env.e.Chain.BlockHeight()
	id := env.propose(t, proposer, p)

	snapshot := env.proposalHeight(t, "proposalSnapshot", id)
	deadline := env.proposalHeight(t, "proposalDeadline", id)
	require.Equal(t, now+testVotingDelay, snapshot)
	require.Equal(t, snapshot+testVotingPeriod, deadline)
	c.Invoke(t, proposer.ScriptHash(), "proposalProposer", id)

	c.Invoke(t, governor.Pending, "proposalState", id)
	c.WithSigners(forVoter).InvokeFail(t, governor.ErrProposalNotActive, "castVote", id, governor.VoteFor, "", forVoter.ScriptHash())

	waitHeight(t, env.e, snapshot)
	c.Invoke(t, governor.Active, "proposalState", id)

	h := c.WithSigners(forVoter).Invoke(t, 150, "castVote", id, governor.VoteFor, "looks good", forVoter.ScriptHash())
	env.e.CheckTxNotificationEvent(t, h, 0, state.NotificationEvent{
		ScriptHash: c.Hash,
		Name:       "VoteCast",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.Make(forVoter.ScriptHash()),
			stackitem.Make(id),
			stackitem.Make(governor.VoteFor),
			stackitem.Make(150),
			stackitem.Make("looks good"),
		}),
	})

	t.Run("vote twice", func(t *testing.T) {
		for _, voteType := range []int{governor.VoteAgainst, governor.VoteFor, governor.VoteAbstain} {
			c.WithSigners(forVoter).InvokeFail(t, governor.ErrAlreadyVoted, "castVote", id, voteType, "", forVoter.ScriptHash())
		}
	})

	t.Run("invalid vote", func(t *testing.T) {
		c.WithSigners(proposer).InvokeFail(t, governor.ErrInvalidVoteType, "castVote", id, 3, "", proposer.ScriptHash())
		c.WithSigners(proposer).InvokeFail(t, governor.ErrInvalidVoteType, "castVote", id, -1, "", proposer.ScriptHash())
		c.WithSigners(proposer).InvokeFail(t, common.ErrWitnessFailed, "castVote", id, governor.VoteFor, "", forVoter.ScriptHash())
		c.WithSigners(proposer).InvokeFail(t, governor.ErrProposalNotFound, "castVote", util.Uint256{1, 2, 3}, governor.VoteFor, "", proposer.ScriptHash())
	})

	env.vote(t, againstVoter, id, governor.VoteAgainst, 80)
	env.vote(t, abstainVoter, id, governor.VoteAbstain, 60)

	c.Invoke(t, stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(80),
		stackitem.Make(150),
		stackitem.Make(60),
	}), "proposalVotes", id)
	c.Invoke(t, true, "hasVoted", id, forVoter.ScriptHash())
	c.Invoke(t, false, "hasVoted", id, proposer.ScriptHash())
	c.Invoke(t, true, "quorumReached", id)
	c.Invoke(t, true, "tallySucceeded", id)

	env.executeFail(t, proposer, p, governor.ErrProposalNotSuccessful)

	waitHeight(t, env.e, deadline+1)
	c.Invoke(t, governor.Succeeded, "proposalState", id)
	c.WithSigners(proposer).InvokeFail(t, governor.ErrProposalNotActive, "castVote", id, governor.VoteFor, "", proposer.ScriptHash())

	h = env.execute(t, abstainVoter, p)
	env.e.CheckTxNotificationEvent(t, h, 0, state.NotificationEvent{
		ScriptHash: c.Hash,
		Name:       "ProposalExecuted",
		Item:       stackitem.NewArray([]stackitem.Item{stackitem.Make(id)}),
	})

	env.target.Invoke(t, stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(c.Hash),
		stackitem.Make(42),
		stackitem.Make("from governance"),
	}), "get")

	c.Invoke(t, governor.Executed, "proposalState", id)
	env.executeFail(t, proposer, p, governor.ErrProposalAlreadyExecuted)
	env.cancelFail(t, proposer, p, governor.ErrProposalNotCancellable)
}

func TestGovernance_Defeated(t *testing.T) {
	env := newGovernanceEnv(t, governor.CountingModeSimple)
	c := env.gov

	proposer := env.newVoter(t, testProposalThreshold)
	forVoter := env.newVoter(t, 100)
	againstVoter := env.newVoter(t, 100)

	p := env.setValueProposal(1, "tie")
	id := env.propose(t, proposer, p)

	waitHeight(t, env.e, env.proposalHeight(t, "proposalSnapshot", id))

	env.vote(t, forVoter, id, governor.VoteFor, 100)
	env.vote(t, againstVoter, id, governor.VoteAgainst, 100)
	c.Invoke(t, false, "tallySucceeded", id)
	c.Invoke(t, false, "quorumReached", id)

	t.Run("quorum without majority", func(t *testing.T) {
		p := env.setValueProposal(2, "quorum only")
		id := env.propose(t, proposer, p)

		waitHeight(t, env.e, env.proposalHeight(t, "proposalSnapshot", id))

		// voting power is fixed at the snapshot
		env.votes.Invoke(t, stackitem.Null{}, "mint", forVoter.ScriptHash(), 1000)

		env.vote(t, forVoter, id, governor.VoteAbstain, 100)
		env.vote(t, againstVoter, id, governor.VoteAgainst, 100)
		env.vote(t, proposer, id, governor.VoteAbstain, 100)
		c.Invoke(t, true, "quorumReached", id)
		c.Invoke(t, false, "tallySucceeded", id)

		waitHeight(t, env.e, env.proposalHeight(t, "proposalDeadline", id)+1)
		c.Invoke(t, governor.Defeated, "proposalState", id)
	})

	waitHeight(t, env.e, env.proposalHeight(t, "proposalDeadline", id)+1)
	c.Invoke(t, governor.Defeated, "proposalState", id)
	env.executeFail(t, proposer, p, governor.ErrProposalNotSuccessful)
}

func TestGovernance_ManualCounting(t *testing.T) {
	env := newGovernanceEnv(t, governor.CountingModeManual)
	c := env.gov

	proposer := env.newVoter(t, 1000)
	stranger := env.newVoter(t, 0)

	p := env.setValueProposal(7, "manual")
	id := env.propose(t, proposer, p)

	waitHeight(t, env.e, env.proposalHeight(t, "proposalSnapshot", id))
	env.vote(t, proposer, id, governor.VoteFor, 1000)
	c.Invoke(t, true, "quorumReached", id)
	c.Invoke(t, true, "tallySucceeded", id)

	waitHeight(t, env.e, env.proposalHeight(t, "proposalDeadline", id)+1)
	c.Invoke(t, governor.Defeated, "proposalState", id)
	env.executeFail(t, proposer, p, governor.ErrProposalNotSuccessful)

	c.WithSigners(stranger).InvokeFail(t, common.ErrWitnessFailed, "setProposalState", id, governor.Succeeded)
	c.InvokeFail(t, governor.ErrInvalidProposalState, "setProposalState", id, governor.Active)
	c.InvokeFail(t, governor.ErrInvalidProposalState, "setProposalState", id, governor.Executed)
	c.InvokeFail(t, governor.ErrProposalNotFound, "setProposalState", util.Uint256{}, governor.Succeeded)

	c.Invoke(t, stackitem.Null{}, "setProposalState", id, governor.Queued)
	c.Invoke(t, governor.Queued, "proposalState", id)
	env.executeFail(t, proposer, p, governor.ErrProposalNotSuccessful)

	c.Invoke(t, stackitem.Null{}, "setProposalState", id, governor.Succeeded)
	c.Invoke(t, governor.Succeeded, "proposalState", id)

	env.execute(t, stranger, p)
	c.Invoke(t, governor.Executed, "proposalState", id)
	c.InvokeFail(t, governor.ErrInvalidProposalState, "setProposalState", id, governor.Succeeded)

	t.Run("failed call reverts execution", func(t *testing.T) {
		p := testProposal{
			targets:     []util.Uint160{env.target.Hash},
			methods:     []string{"fail"},
			args:        [][]any{{}},
			description: "fail",
		}
		id := env.propose(t, proposer, p)
		c.Invoke(t, stackitem.Null{}, "setProposalState", id, governor.Succeeded)

		env.executeFail(t, proposer, p, "target failure")
		c.Invoke(t, governor.Succeeded, "proposalState", id)
	})
}

func TestGovernance_ProposeValidation(t *testing.T) {
	env := newGovernanceEnv(t, governor.CountingModeSimple)
	c := env.gov

	proposer := env.newVoter(t, testProposalThreshold)
	poor := env.newVoter(t, testProposalThreshold-1)

	cProposer := c.WithSigners(proposer)
	target := env.target.Hash

	cProposer.InvokeFail(t, governor.ErrEmptyProposal, "propose",
		[]any{}, []any{}, []any{}, "empty", proposer.ScriptHash())
	cProposer.InvokeFail(t, governor.ErrInvalidProposalLength, "propose",
		[]any{target}, []any{"setValue", "setValue"}, []any{[]any{1, nil}}, "methods", proposer.ScriptHash())
	cProposer.InvokeFail(t, governor.ErrInvalidProposalLength, "propose",
		[]any{target}, []any{"setValue"}, []any{}, "args", proposer.ScriptHash())
	cProposer.InvokeFail(t, common.ErrWitnessFailed, "propose",
		[]any{target}, []any{"setValue"}, []any{[]any{1, nil}}, "witness", poor.ScriptHash())

	c.WithSigners(poor).InvokeFail(t, governor.ErrInsufficientProposerVotes, "propose",
		[]any{target}, []any{"setValue"}, []any{[]any{1, nil}}, "poor", poor.ScriptHash())

	p := env.setValueProposal(1, "once")
	env.propose(t, proposer, p)

	targets, methods, args := p.params()
	cProposer.InvokeFail(t, governor.ErrProposalAlreadyExists, "propose",
		targets, methods, args, p.description, proposer.ScriptHash())

	c.InvokeFail(t, governor.ErrProposalNotFound, "proposalState", util.Uint256{})

	t.Run("power is read at the proposal block", func(t *testing.T) {
		env.votes.Invoke(t, stackitem.Null{}, "mint", poor.ScriptHash(), 1)
		env.propose(t, poor, env.setValueProposal(1, "not poor anymore"))
	})
}

func TestGovernance_Cancel(t *testing.T) {
	env := newGovernanceEnv(t, governor.CountingModeSimple)
	c := env.gov

	proposer := env.newVoter(t, testProposalThreshold)
	stranger := env.newVoter(t, 0)
	canceller := env.newVoter(t, 0)

	first := env.setValueProposal(1, "first")
	second := env.setValueProposal(2, "second")
	third := env.setValueProposal(3, "third")

	id := env.propose(t, proposer, first)
	env.propose(t, proposer, second)
	env.propose(t, proposer, third)

	env.cancelFail(t, stranger, first, governor.ErrUnauthorized)
	env.cancelFail(t, canceller, first, governor.ErrUnauthorized)

	h := env.cancel(t, proposer, first)
	env.e.CheckTxNotificationEvent(t, h, 0, state.NotificationEvent{
		ScriptHash: c.Hash,
		Name:       "ProposalCancelled",
		Item:       stackitem.NewArray([]stackitem.Item{stackitem.Make(id)}),
	})
	c.Invoke(t, governor.Canceled, "proposalState", id)
	env.cancelFail(t, proposer, first, governor.ErrProposalNotCancellable)

	env.cancel(t, env.admin, second)
	c.Invoke(t, governor.Canceled, "proposalState", second.id(t))

	c.InvokeFail(t, "invalid role length", "grantRole", env.admin.ScriptHash(), canceller.ScriptHash(), "")
	c.InvokeFail(t, "invalid role length", "grantRole", env.admin.ScriptHash(), canceller.ScriptHash(), strings.Repeat("r", 33))
	c.Invoke(t, stackitem.Null{}, "grantRole", env.admin.ScriptHash(), canceller.ScriptHash(), "canceller")
	c.Invoke(t, true, "hasRole", canceller.ScriptHash(), "canceller")
	env.cancel(t, canceller, third)

	thirdID := third.id(t)
	waitHeight(t, env.e, env.proposalHeight(t, "proposalSnapshot", thirdID))
	c.Invoke(t, governor.Canceled, "proposalState", thirdID)
	c.WithSigners(proposer).InvokeFail(t, governor.ErrProposalNotActive, "castVote", thirdID, governor.VoteFor, "", proposer.ScriptHash())
}

func TestGovernance_Admin(t *testing.T) {
	env := newGovernanceEnv(t, governor.CountingModeSimple)
	c := env.gov

	stranger := env.newVoter(t, 0)

	c.WithSigners(stranger).InvokeFail(t, common.ErrWitnessFailed, "setQuorum", 1)

	h := c.Invoke(t, stackitem.Null{}, "setQuorum", 300)
	env.e.CheckTxNotificationEvent(t, h, 0, state.NotificationEvent{
		ScriptHash: c.Hash,
		Name:       "QuorumChanged",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.Make(testQuorum),
			stackitem.Make(300),
		}),
	})
	c.Invoke(t, 300, "quorum", 0)
	c.InvokeFail(t, governor.ErrMathOverflow, "setQuorum", -1)

	t.Run("admin transfer", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "transferAdminRole", stranger.ScriptHash(), int64(env.e.Chain.BlockHeight())+10)
		c.Invoke(t, stranger.ScriptHash(), "getPendingAdmin")
		c.WithSigners(stranger).Invoke(t, stackitem.Null{}, "acceptAdminTransfer", stranger.ScriptHash())
		c.Invoke(t, stranger.ScriptHash(), "getAdmin")

		c.InvokeFail(t, common.ErrWitnessFailed, "setQuorum", 1)
		c.InvokeFail(t, accesscontrol.ErrUnauthorized, "grantRole", env.admin.ScriptHash(), env.admin.ScriptHash(), "canceller")

		c.WithSigners(stranger).Invoke(t, stackitem.Null{}, "renounceAdmin")
		c.Invoke(t, stackitem.Null{}, "getAdmin")
		c.WithSigners(stranger).InvokeFail(t, accesscontrol.ErrAdminNotSet, "setQuorum", 1)
	})
}
