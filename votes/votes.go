/*
Package votes implements checkpointed voting power accounting.

Every change of the voting power of an account (and of the total supply) is
recorded as a checkpoint bound to the height of the block the change is
included in. Historical lookups return the power as of the end of the
requested block, so only persisted blocks may be queried.

# Storage model

 - 'n' + account -> int
   number of account checkpoints
 - 'k' + account + index -> Checkpoint
   account checkpoints in ascending height order
 - 'N' -> int
   number of total supply checkpoints
 - 'K' + index -> Checkpoint
   total supply checkpoints in ascending height order
*/
package votes

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neogov-contract/common"
)

const (
	numCheckpointsPrefix  = 'n'
	checkpointPrefix      = 'k'
	totalNumKey           = "N"
	totalCheckpointPrefix = 'K'
)

const (
	ErrFutureLookup            = "4100: future lookup"
	ErrMathOverflow            = "4101: math overflow"
	ErrInsufficientVotingUnits = "4102: insufficient voting units"
)

// Checkpoint is a voting power value effective since the Height block.
type Checkpoint struct {
	Height int
	Votes  int
}

// GetVotes returns the latest voting power of the account including changes
// made in the current block.
func GetVotes(ctx storage.Context, account interop.Hash160) int {
	numKey := accountNumKey(account)
	return latest(ctx, numKey, accountPrefix(account))
}

// GetVotesAtCheckpoint returns voting power of the account at the end of the
// given block. The block must already be persisted.
func GetVotesAtCheckpoint(ctx storage.Context, account interop.Hash160, height int) int {
	if height > common.CurrentHeight() {
		panic(ErrFutureLookup)
	}

	return lookup(ctx, accountNumKey(account), accountPrefix(account), height)
}

// GetTotalSupply returns the latest sum of all voting units.
func GetTotalSupply(ctx storage.Context) int {
	return latest(ctx, []byte(totalNumKey), []byte{totalCheckpointPrefix})
}

// GetTotalSupplyAtCheckpoint returns the sum of all voting units at the end
// of the given block.
func GetTotalSupplyAtCheckpoint(ctx storage.Context, height int) int {
	if height > common.CurrentHeight() {
		panic(ErrFutureLookup)
	}

	return lookup(ctx, []byte(totalNumKey), []byte{totalCheckpointPrefix}, height)
}

// NumCheckpoints returns the number of checkpoints recorded for the account.
func NumCheckpoints(ctx storage.Context, account interop.Hash160) int {
	return common.GetInt(ctx, accountNumKey(account))
}

// TransferVotingUnits moves voting units between accounts. Nil from mints new
// units, nil to burns them. No authorization is performed.
func TransferVotingUnits(ctx storage.Context, from, to interop.Hash160, amount int) {
	if amount == 0 {
		return
	}

	if from == nil {
		push(ctx, []byte(totalNumKey), []byte{totalCheckpointPrefix}, amount)
	} else {
		old, updated := push(ctx, accountNumKey(from), accountPrefix(from), -amount)
		runtime.Notify("DelegateVotesChanged", from, old, updated)
	}

	if to == nil {
		push(ctx, []byte(totalNumKey), []byte{totalCheckpointPrefix}, -amount)
	} else {
		old, updated := push(ctx, accountNumKey(to), accountPrefix(to), amount)
		runtime.Notify("DelegateVotesChanged", to, old, updated)
	}
}

func accountNumKey(account interop.Hash160) []byte {
	return append([]byte{numCheckpointsPrefix}, account...)
}

func accountPrefix(account interop.Hash160) []byte {
	return append([]byte{checkpointPrefix}, account...)
}

func checkpointKey(prefix []byte, index int) []byte {
	return append(prefix, convert.ToBytes(index)...)
}

func getCheckpoint(ctx storage.Context, prefix []byte, index int) Checkpoint {
	data := storage.Get(ctx, checkpointKey(prefix, index)).([]byte)
	return std.Deserialize(data).(Checkpoint)
}

func latest(ctx storage.Context, numKey, prefix []byte) int {
	num := common.GetInt(ctx, numKey)
	if num == 0 {
		return 0
	}

	return getCheckpoint(ctx, prefix, num-1).Votes
}

// lookup finds the last checkpoint not newer than the height.
func lookup(ctx storage.Context, numKey, prefix []byte, height int) int {
	num := common.GetInt(ctx, numKey)
	if num == 0 {
		return 0
	}

	last := getCheckpoint(ctx, prefix, num-1)
	if last.Height <= height {
		return last.Votes
	}

	low, high := 0, num-1
	for low < high {
		mid := (low + high) / 2
		if getCheckpoint(ctx, prefix, mid).Height > height {
			high = mid
		} else {
			low = mid + 1
		}
	}

	if high == 0 {
		return 0
	}

	return getCheckpoint(ctx, prefix, high-1).Votes
}

// push applies delta to the latest value and records it for the block being
// processed. It returns old and new values.
func push(ctx storage.Context, numKey, prefix []byte, delta int) (int, int) {
	var (
		num    = common.GetInt(ctx, numKey)
		height = common.CurrentHeight() + 1
		old    int
		index  = num
	)

	if num > 0 {
		last := getCheckpoint(ctx, prefix, num-1)
		old = last.Votes
		if last.Height == height {
			index = num - 1
		}
	}

	updated := old + delta
	if updated < 0 {
		panic(ErrInsufficientVotingUnits)
	}
	if updated > common.MaxUint128() {
		panic(ErrMathOverflow)
	}

	common.SetSerialized(ctx, checkpointKey(prefix, index), Checkpoint{
		Height: height,
		Votes:  updated,
	})

	if index == num {
		storage.Put(ctx, numKey, num+1)
	}

	return old, updated
}
