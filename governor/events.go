package governor

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

func notifyProposalCreated(id interop.Hash256, proposer interop.Hash160, targets []interop.Hash160,
	methods []string, args [][]any, snapshot, deadline int, description string) {
	runtime.Notify("ProposalCreated", id, proposer, targets, methods, args, snapshot, deadline, description)
}

func notifyVoteCast(voter interop.Hash160, id interop.Hash256, voteType, weight int, reason string) {
	runtime.Notify("VoteCast", voter, id, voteType, weight, reason)
}

func notifyProposalExecuted(id interop.Hash256) {
	runtime.Notify("ProposalExecuted", id)
}

func notifyProposalCancelled(id interop.Hash256) {
	runtime.Notify("ProposalCancelled", id)
}

func notifyQuorumChanged(old, quorum int) {
	runtime.Notify("QuorumChanged", old, quorum)
}
