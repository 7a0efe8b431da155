/*
Package governance implements Governance contract which lets holders of
voting power decide on arbitrary contract calls.

Any account having at least proposal threshold voting power (as reported by
the votes contract at the latest persisted block) may propose a list of
contract calls. After the voting delay the proposal becomes active and every
account may vote For, Against or Abstain with its voting power at the
proposal snapshot. Succeeded proposals are executed by anyone, all the calls
are made by the Governance contract itself.

How a proposal whose voting has ended becomes Succeeded depends on the
counting mode chosen at deployment. In "simple" mode it happens as soon as
the quorum is reached and For votes outnumber Against ones. In "manual" mode
such proposals are reported as Defeated until the admin stores the outcome
explicitly with setProposalState.

The contract embeds role based access control: the admin changes the quorum,
resolves proposals in "manual" mode and manages roles. Proposals can be
cancelled by the proposer, the admin or holders of "canceller" role.

# Contract notifications

ProposalCreated notification. This notification is produced when a new
proposal is made.

	ProposalCreated
	  - name: proposalID
	    type: Hash256
	  - name: proposer
	    type: Hash160
	  - name: targets
	    type: Array
	  - name: methods
	    type: Array
	  - name: args
	    type: Array
	  - name: snapshot
	    type: Integer
	  - name: deadline
	    type: Integer
	  - name: description
	    type: String

VoteCast notification. This notification is produced when an account votes.

	VoteCast
	  - name: voter
	    type: Hash160
	  - name: proposalID
	    type: Hash256
	  - name: voteType
	    type: Integer
	  - name: weight
	    type: Integer
	  - name: reason
	    type: String

ProposalExecuted notification. This notification is produced after all
proposal calls are made.

	ProposalExecuted
	  - name: proposalID
	    type: Hash256

ProposalCancelled notification. This notification is produced when a
proposal is cancelled.

	ProposalCancelled
	  - name: proposalID
	    type: Hash256

QuorumChanged notification. This notification is produced when the quorum
is set.

	QuorumChanged
	  - name: oldQuorum
	    type: Integer
	  - name: newQuorum
	    type: Integer

Role management notifications are the same as in RoleManager contract.
*/
package governance

/*
Contract storage model.

See governor and accesscontrol packages.
*/
