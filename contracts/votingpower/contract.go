package votingpower

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neogov-contract/common"
	"github.com/nspcc-dev/neogov-contract/ownable"
	"github.com/nspcc-dev/neogov-contract/votes"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		owner interop.Hash160
	})

	if len(args.owner) != interop.Hash160Len {
		panic("incorrect length of owner address")
	}

	ownable.SetOwner(ctx, args.owner)

	runtime.Log("votingpower contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic(common.ErrUpdateAccessDenied)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("votingpower contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// Mint adds voting units to the account. Owner only.
func Mint(account interop.Hash160, amount int) {
	ctx := storage.GetContext()

	ownable.EnforceOwnerAuth(ctx)
	checkAmount(amount)

	votes.TransferVotingUnits(ctx, nil, account, amount)
}

// Burn removes voting units from the account. Owner only.
func Burn(account interop.Hash160, amount int) {
	ctx := storage.GetContext()

	ownable.EnforceOwnerAuth(ctx)
	checkAmount(amount)

	votes.TransferVotingUnits(ctx, account, nil, amount)
}

// GetVotes returns the latest voting power of the account.
func GetVotes(account interop.Hash160) int {
	return votes.GetVotes(storage.GetReadOnlyContext(), account)
}

// GetVotesAtCheckpoint returns voting power of the account at the end of the
// persisted block with the given index.
func GetVotesAtCheckpoint(account interop.Hash160, height int) int {
	return votes.GetVotesAtCheckpoint(storage.GetReadOnlyContext(), account, height)
}

// GetTotalSupply returns the sum of all voting units.
func GetTotalSupply() int {
	return votes.GetTotalSupply(storage.GetReadOnlyContext())
}

// GetTotalSupplyAtCheckpoint returns the sum of all voting units at the end
// of the persisted block with the given index.
func GetTotalSupplyAtCheckpoint(height int) int {
	return votes.GetTotalSupplyAtCheckpoint(storage.GetReadOnlyContext(), height)
}

// NumCheckpoints returns the number of voting power checkpoints of the
// account.
func NumCheckpoints(account interop.Hash160) int {
	return votes.NumCheckpoints(storage.GetReadOnlyContext(), account)
}

// GetOwner returns the contract owner or nil after renouncement.
func GetOwner() interop.Hash160 {
	return ownable.GetOwner(storage.GetReadOnlyContext())
}

// GetPendingOwner returns the live ownership nominee or nil.
func GetPendingOwner() interop.Hash160 {
	return ownable.GetPendingOwner(storage.GetReadOnlyContext())
}

// TransferOwnership nominates the new owner until the liveUntil block.
// Zero liveUntil cancels the nomination. Owner only.
func TransferOwnership(newOwner interop.Hash160, liveUntil int) {
	ownable.TransferOwnership(storage.GetContext(), newOwner, liveUntil)
}

// AcceptOwnership makes the caller an owner. Caller must be the live nominee.
func AcceptOwnership(caller interop.Hash160) {
	ownable.AcceptOwnership(storage.GetContext(), caller)
}

// RenounceOwnership removes the owner forever. Owner only.
func RenounceOwnership() {
	ownable.RenounceOwnership(storage.GetContext())
}

func checkAmount(amount int) {
	if amount <= 0 {
		panic("amount must be positive")
	}
}
