// Package ownable implements single owner contract protection with two-step
// ownership transfer on top of roletransfer package.
package ownable

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neogov-contract/common"
	"github.com/nspcc-dev/neogov-contract/roletransfer"
)

const (
	ownerKey        = "O"
	pendingOwnerKey = "o"
)

const (
	ErrOwnerNotSet        = "2100: owner not set"
	ErrTransferInProgress = "2101: transfer in progress"
	ErrOwnerAlreadySet    = "2102: owner already set"
)

// SetOwner sets the contract owner once. No authorization is performed.
func SetOwner(ctx storage.Context, owner interop.Hash160) {
	if storage.Get(ctx, ownerKey) != nil {
		panic(ErrOwnerAlreadySet)
	}

	storage.Put(ctx, ownerKey, owner)
}

// GetOwner returns the contract owner or nil after renouncement.
func GetOwner(ctx storage.Context) interop.Hash160 {
	data := storage.Get(ctx, ownerKey)
	if data == nil {
		return nil
	}

	return data.(interop.Hash160)
}

// GetPendingOwner returns the live ownership nominee or nil.
func GetPendingOwner(ctx storage.Context) interop.Hash160 {
	p, ok := roletransfer.GetPending(ctx, []byte(pendingOwnerKey))
	if !ok {
		return nil
	}

	return p.Account
}

// EnforceOwnerAuth checks the owner witness and returns the owner.
func EnforceOwnerAuth(ctx storage.Context) interop.Hash160 {
	owner := GetOwner(ctx)
	if owner == nil {
		panic(ErrOwnerNotSet)
	}

	common.CheckWitness(owner)

	return owner
}

// TransferOwnership nominates newOwner until the liveUntil height, zero
// liveUntil cancels the nomination.
func TransferOwnership(ctx storage.Context, newOwner interop.Hash160, liveUntil int) {
	owner := EnforceOwnerAuth(ctx)

	roletransfer.Transfer(ctx, owner, newOwner, []byte(ownerKey), []byte(pendingOwnerKey), liveUntil)
	runtime.Notify("OwnershipTransfer", owner, newOwner, liveUntil)
}

// AcceptOwnership makes the caller an owner if it is the live nominee.
func AcceptOwnership(ctx storage.Context, caller interop.Hash160) {
	newOwner := roletransfer.Accept(ctx, caller, []byte(ownerKey), []byte(pendingOwnerKey))
	runtime.Notify("OwnershipTransferCompleted", newOwner)
}

// RenounceOwnership removes the owner irreversibly. It fails while there is a
// live nomination.
func RenounceOwnership(ctx storage.Context) {
	owner := EnforceOwnerAuth(ctx)

	if _, ok := roletransfer.GetPending(ctx, []byte(pendingOwnerKey)); ok {
		panic(ErrTransferInProgress)
	}

	storage.Delete(ctx, ownerKey)
	runtime.Notify("OwnershipRenounced", owner)
}
