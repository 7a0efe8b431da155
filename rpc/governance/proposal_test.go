package governance

import (
	"crypto/sha256"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestDescriptionHash(t *testing.T) {
	sum := sha256.Sum256([]byte("description"))
	require.Equal(t, sum[:], DescriptionHash("description").BytesBE())
}

func TestProposalID(t *testing.T) {
	targets := []util.Uint160{{1, 2, 3}}
	methods := []string{"setValue"}
	args := [][]any{{int64(42), "data"}}
	desc := DescriptionHash("proposal")

	id, err := ProposalID(targets, methods, args, desc)
	require.NoError(t, err)

	same, err := ProposalID(targets, methods, [][]any{{42, "data"}}, desc)
	require.NoError(t, err)
	require.Equal(t, id, same)

	for name, other := range map[string][][]any{
		"value":    {{int64(43), "data"}},
		"type":     {{"42", "data"}},
		"no args":  {{}},
		"reversed": {{"data", int64(42)}},
	} {
		t.Run(name, func(t *testing.T) {
			h, err := ProposalID(targets, methods, other, desc)
			require.NoError(t, err)
			require.NotEqual(t, id, h)
		})
	}

	h, err := ProposalID(targets, methods, args, DescriptionHash("another proposal"))
	require.NoError(t, err)
	require.NotEqual(t, id, h)

	_, err = ProposalID(targets, methods, [][]any{{struct{}{}}}, desc)
	require.Error(t, err)
}

func TestProposalState_String(t *testing.T) {
	require.Equal(t, "Pending", Pending.String())
	require.Equal(t, "Executed", Executed.String())
	require.Equal(t, "Unknown(8)", ProposalState(8).String())
	require.Equal(t, "Unknown(-1)", ProposalState(-1).String())
}
