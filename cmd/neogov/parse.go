package main

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// parseAccount parses Neo address or little-endian hex script hash with
// optional 0x prefix.
func parseAccount(s string) (util.Uint160, error) {
	if h, err := address.StringToUint160(s); err == nil {
		return h, nil
	}

	h, err := util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return h, fmt.Errorf("'%s' is neither an address nor a script hash", s)
	}
	return h, nil
}

// parseProposalID parses proposal ID encoded as hex or base58.
func parseProposalID(s string) (util.Uint256, error) {
	hexStr := strings.TrimPrefix(s, "0x")
	if len(hexStr) == 2*util.Uint256Size {
		if id, err := util.Uint256DecodeStringBE(hexStr); err == nil {
			return id, nil
		}
	}

	b, err := base58.Decode(s)
	if err != nil {
		return util.Uint256{}, fmt.Errorf("'%s' is neither hex nor base58", s)
	}

	id, err := util.Uint256DecodeBytesBE(b)
	if err != nil {
		return id, fmt.Errorf("invalid proposal ID: %w", err)
	}
	return id, nil
}

// formatProposalID returns hex and base58 representations of the ID in
// the order they're printed.
func formatProposalID(id util.Uint256) (string, string) {
	return id.StringBE(), base58.Encode(id.BytesBE())
}

// proposalCall is a single contract call of the proposal.
type proposalCall struct {
	target util.Uint160
	method string
	args   []any
}

// parseCall parses "<target> <method> [arg...]" where every argument uses
// [smartcontract.NewParameterFromString] format, e.g. 'int:42'.
func parseCall(s string) (proposalCall, error) {
	var res proposalCall

	fields := strings.Fields(s)
	if len(fields) < 2 {
		return res, errors.New("call must contain target and method")
	}

	var err error
	res.target, err = parseAccount(fields[0])
	if err != nil {
		return res, fmt.Errorf("target: %w", err)
	}

	res.method = fields[1]
	res.args = make([]any, 0, len(fields)-2)

	for i, f := range fields[2:] {
		p, err := smartcontract.NewParameterFromString(f)
		if err != nil {
			return res, fmt.Errorf("argument #%d: %w", i, err)
		}
		res.args = append(res.args, p.Value)
	}

	return res, nil
}

// parseCalls parses all the calls and splits them into parallel lists.
func parseCalls(calls []string) ([]util.Uint160, []string, [][]any, error) {
	if len(calls) == 0 {
		return nil, nil, nil, errors.New("no calls")
	}

	var (
		targets = make([]util.Uint160, 0, len(calls))
		methods = make([]string, 0, len(calls))
		args    = make([][]any, 0, len(calls))
	)

	for i := range calls {
		c, err := parseCall(calls[i])
		if err != nil {
			return nil, nil, nil, fmt.Errorf("call #%d: %w", i, err)
		}
		targets = append(targets, c.target)
		methods = append(methods, c.method)
		args = append(args, c.args)
	}

	return targets, methods, args, nil
}

func parseBigInt(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer '%s'", s)
	}
	return v, nil
}
