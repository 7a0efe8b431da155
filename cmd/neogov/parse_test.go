package main

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neogov-contract/rpc/governance"
	"github.com/stretchr/testify/require"
)

var testTarget = util.Uint160{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}

func TestParseAccount(t *testing.T) {
	for _, s := range []string{
		address.Uint160ToString(testTarget),
		testTarget.StringLE(),
		"0x" + testTarget.StringLE(),
	} {
		h, err := parseAccount(s)
		require.NoError(t, err, s)
		require.Equal(t, testTarget, h, s)
	}

	_, err := parseAccount("not an account")
	require.Error(t, err)
}

func TestProposalIDEncoding(t *testing.T) {
	id := util.Uint256{0xde, 0xad, 0xbe, 0xef, 31: 0x01}
	hexID, b58ID := formatProposalID(id)
	require.Equal(t, id.StringBE(), hexID)
	require.Equal(t, base58.Encode(id.BytesBE()), b58ID)

	for _, s := range []string{hexID, "0x" + hexID, b58ID} {
		parsed, err := parseProposalID(s)
		require.NoError(t, err, s)
		require.Equal(t, id, parsed, s)
	}

	_, err := parseProposalID("0OIl")
	require.Error(t, err)

	_, err = parseProposalID(base58.Encode([]byte{1, 2, 3}))
	require.Error(t, err)
}

func TestParseCalls(t *testing.T) {
	targets, methods, args, err := parseCalls([]string{
		address.Uint160ToString(testTarget) + " setValue int:42 string:hello",
		testTarget.StringLE() + "  ping",
	})
	require.NoError(t, err)
	require.Equal(t, []util.Uint160{testTarget, testTarget}, targets)
	require.Equal(t, []string{"setValue", "ping"}, methods)
	require.Equal(t, [][]any{{big.NewInt(42), "hello"}, {}}, args)

	for _, calls := range [][]string{
		nil,
		{"onlytarget"},
		{"bad setValue"},
		{testTarget.StringLE() + " setValue int:notanumber"},
	} {
		_, _, _, err = parseCalls(calls)
		require.Error(t, err, calls)
	}
}

func TestParseBigInt(t *testing.T) {
	v, err := parseBigInt("340282366920938463463374607431768211455")
	require.NoError(t, err)
	require.Equal(t, 128, v.BitLen())

	_, err = parseBigInt("1e3")
	require.Error(t, err)
}

func execute(t *testing.T, args ...string) (string, error) {
	globalFlags.rpc = ""
	configFile = ""

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestProposalIDCommand(t *testing.T) {
	out, err := execute(t, "proposal", "id",
		"--call", address.Uint160ToString(testTarget)+" setValue int:42 string:hello",
		"--description", "set 42")
	require.NoError(t, err)

	descHash := governance.DescriptionHash("set 42")
	id, err := governance.ProposalID([]util.Uint160{testTarget}, []string{"setValue"},
		[][]any{{big.NewInt(42), "hello"}}, descHash)
	require.NoError(t, err)
	hexID, b58ID := formatProposalID(id)

	require.Contains(t, out, descHash.StringBE())
	require.Contains(t, out, hexID)
	require.Contains(t, out, b58ID)

	_, err = execute(t, "proposal", "id", "--description", "no calls")
	require.Error(t, err)
}

func TestOnlineCommandsRequireSettings(t *testing.T) {
	_, err := execute(t, "roles", "list")
	require.ErrorContains(t, err, "RoleManager contract address")

	_, err = execute(t, "votes", testTarget.StringLE(), "--contract", testTarget.StringLE())
	require.ErrorContains(t, err, "missing Neo RPC endpoint")

	_, err = execute(t, "proposal", "state", strings.Repeat("00", 32))
	require.ErrorContains(t, err, "governance contract address")
}
