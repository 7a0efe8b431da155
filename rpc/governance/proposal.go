package governance

import (
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// ProposalState is a state of the governance proposal as returned by
// ProposalState method.
type ProposalState int64

// Proposal states.
const (
	Pending ProposalState = iota
	Active
	Canceled
	Defeated
	Succeeded
	Queued
	Expired
	Executed
)

var stateNames = []string{"Pending", "Active", "Canceled", "Defeated", "Succeeded", "Queued", "Expired", "Executed"}

// String implements fmt.Stringer.
func (s ProposalState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("Unknown(%d)", int64(s))
	}
	return stateNames[s]
}

// Vote types accepted by CastVote method.
const (
	VoteAgainst int64 = iota
	VoteFor
	VoteAbstain
)

// DescriptionHash returns hash of the proposal description used as a part of
// the proposal identifier.
func DescriptionHash(description string) util.Uint256 {
	return hash.Sha256([]byte(description))
}

// ProposalID calculates identifier of the proposal the same way the contract
// does, so that it can be known before the proposal is created. Every args
// element is a list of call parameters, they must be of types supported by
// [stackitem.Make] and be exactly the ones passed to the contract.
func ProposalID(targets []util.Uint160, methods []string, args [][]any, descriptionHash util.Uint256) (util.Uint256, error) {
	ts := make([]stackitem.Item, len(targets))
	for i := range targets {
		ts[i] = stackitem.NewByteArray(targets[i].BytesBE())
	}

	ms := make([]stackitem.Item, len(methods))
	for i := range methods {
		ms[i] = stackitem.NewByteArray([]byte(methods[i]))
	}

	as := make([]stackitem.Item, len(args))
	for i := range args {
		params := make([]stackitem.Item, len(args[i]))
		for j := range args[i] {
			item, err := makeItem(args[i][j])
			if err != nil {
				return util.Uint256{}, fmt.Errorf("call %d, parameter %d: %w", i, j, err)
			}
			params[j] = item
		}
		as[i] = stackitem.NewArray(params)
	}

	data, err := stackitem.Serialize(stackitem.NewArray([]stackitem.Item{
		stackitem.NewArray(ts),
		stackitem.NewArray(ms),
		stackitem.NewArray(as),
		stackitem.NewByteArray(descriptionHash.BytesBE()),
	}))
	if err != nil {
		return util.Uint256{}, fmt.Errorf("serialize proposal: %w", err)
	}

	return hash.Sha256(data), nil
}

func makeItem(v any) (item stackitem.Item, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unsupported parameter type %T", v)
		}
	}()

	return stackitem.Make(v), nil
}
