/*
Package votingpower implements VotingPower contract which is a source of
voting power for the Governance contract.

The contract owner mints and burns voting units of accounts. Every change is
checkpointed, so the power of any account at any persisted block may be
requested. Ownership is handed over in two steps.

# Contract notifications

DelegateVotesChanged notification. This notification is produced when voting
power of an account changes.

	DelegateVotesChanged
	  - name: account
	    type: Hash160
	  - name: previousVotes
	    type: Integer
	  - name: newVotes
	    type: Integer

OwnershipTransfer notification. This notification is produced when the owner
nominates a successor. Zero liveUntil means the nomination is cancelled.

	OwnershipTransfer
	  - name: owner
	    type: Hash160
	  - name: newOwner
	    type: Hash160
	  - name: liveUntil
	    type: Integer

OwnershipTransferCompleted notification. This notification is produced when
the nominee accepts ownership.

	OwnershipTransferCompleted
	  - name: newOwner
	    type: Hash160

OwnershipRenounced notification. This notification is produced when the owner
gives up ownership.

	OwnershipRenounced
	  - name: owner
	    type: Hash160
*/
package votingpower

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'O' -> interop.Hash160
   contract owner
 - 'o' -> roletransfer.Pending
   ownership nominee
 - see votes package for voting power checkpoints
*/
