/*
Package roletransfer implements two-step handoff of a privileged account
(admin, owner, etc.) stored by an arbitrary contract storage key.

The current holder nominates a successor with Transfer, the nominee confirms
with Accept. The nomination is kept under a separate pending key together with
the last block height it is valid at. Once that height is passed the
nomination is treated as absent.
*/
package roletransfer

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neogov-contract/common"
)

const (
	// ErrNoPendingTransfer is thrown when a transfer is accepted or cancelled
	// while nothing is pending.
	ErrNoPendingTransfer = "140: no pending transfer"
	// ErrInvalidLiveUntilLedger is thrown when a nomination would expire in
	// the past.
	ErrInvalidLiveUntilLedger = "141: invalid live until ledger"
	// ErrUnauthorized is thrown when the initiator is not the active holder
	// or the acceptor is not the nominee.
	ErrUnauthorized = "142: unauthorized"
)

// Pending is a nomination waiting for acceptance.
type Pending struct {
	Account   interop.Hash160
	LiveUntil int
}

// Transfer nominates newHolder as the successor of current, which must be the
// account stored by activeKey and must witness the transaction. The
// nomination is valid up to and including liveUntil height. Zero liveUntil
// cancels the current nomination instead.
func Transfer(ctx storage.Context, current, newHolder interop.Hash160, activeKey, pendingKey []byte, liveUntil int) {
	common.CheckWitness(current)

	active := storage.Get(ctx, activeKey)
	if active == nil || !current.Equals(active.(interop.Hash160)) {
		panic(ErrUnauthorized)
	}

	if liveUntil == 0 {
		_, ok := GetPending(ctx, pendingKey)
		if !ok {
			panic(ErrNoPendingTransfer)
		}

		storage.Delete(ctx, pendingKey)
		return
	}

	if liveUntil < common.CurrentHeight() || liveUntil > common.MaxUint32 {
		panic(ErrInvalidLiveUntilLedger)
	}

	common.SetSerialized(ctx, pendingKey, Pending{
		Account:   newHolder,
		LiveUntil: liveUntil,
	})
}

// Accept completes the transfer: caller must be the nominee and witness the
// transaction. It clears the nomination, stores caller by activeKey and
// returns it.
func Accept(ctx storage.Context, caller interop.Hash160, activeKey, pendingKey []byte) interop.Hash160 {
	common.CheckWitness(caller)

	p, ok := GetPending(ctx, pendingKey)
	if !ok {
		panic(ErrNoPendingTransfer)
	}

	if !caller.Equals(p.Account) {
		panic(ErrUnauthorized)
	}

	storage.Delete(ctx, pendingKey)
	storage.Put(ctx, activeKey, caller)

	return caller
}

// GetPending returns the nomination stored by pendingKey. The second result is
// false if there is no nomination or it has expired.
func GetPending(ctx storage.Context, pendingKey []byte) (Pending, bool) {
	data := storage.Get(ctx, pendingKey)
	if data == nil {
		return Pending{}, false
	}

	p := std.Deserialize(data.([]byte)).(Pending)
	if p.LiveUntil < common.CurrentHeight() {
		return Pending{}, false
	}

	return p, true
}
