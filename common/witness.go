package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// ErrWitnessFailed appears when the method must be called by a certain
// account but was not.
const ErrWitnessFailed = "witness check failed"

// CheckWitness checks witness of the passed account.
// It panics with ErrWitnessFailed message on fail.
func CheckWitness(account interop.Hash160) {
	if !runtime.CheckWitness(account) {
		panic(ErrWitnessFailed)
	}
}
