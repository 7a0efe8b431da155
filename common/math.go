package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/ledger"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
)

// MaxUint32 bounds block heights and height offsets.
const MaxUint32 = 0xFFFFFFFF

// MaxUint128 returns 2^128-1, the upper bound of voting weights and tallies.
func MaxUint128() int {
	return std.Atoi("340282366920938463463374607431768211455", 10)
}

// CheckedAdd returns a+b and true if the sum does not exceed limit. Operands
// are expected to be non-negative.
func CheckedAdd(a, b, limit int) (int, bool) {
	sum := a + b
	if sum > limit {
		return 0, false
	}
	return sum, true
}

// CurrentHeight returns the index of the latest persisted block, the
// reference height of every time-dependent check.
func CurrentHeight() int {
	return ledger.CurrentIndex()
}
