package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

// invokeAndGet sends a transaction invoking the method, checks that it's
// successful and returns the single resulting item.
func invokeAndGet(t testing.TB, c *neotest.ContractInvoker, method string, args ...any) stackitem.Item {
	tx := c.PrepareInvoke(t, method, args...)
	c.AddNewBlock(t, tx)

	aer := c.CheckHalt(t, tx.Hash())
	require.Len(t, aer.Stack, 1)

	return aer.Stack[0]
}

// testInvokeItem runs the method in a test VM and returns the resulting item.
func testInvokeItem(t testing.TB, c *neotest.ContractInvoker, method string, args ...any) stackitem.Item {
	s, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	return s.Pop().Item()
}

func itemToHash160(t testing.TB, item stackitem.Item) util.Uint160 {
	b, err := item.TryBytes()
	require.NoError(t, err)

	u, err := util.Uint160DecodeBytesBE(b)
	require.NoError(t, err)

	return u
}

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// waitHeight adds empty blocks until the chain reaches the given height.
func waitHeight(t testing.TB, e *neotest.Executor, height uint32) {
	for e.Chain.BlockHeight() < height {
		e.AddNewBlock(t)
	}
}

// iteratorToArray drains the iterator returned by the test invocation.
func iteratorToArray(iter *storage.Iterator) []stackitem.Item {
	var items []stackitem.Item
	for iter.Next() {
		items = append(items, iter.Value())
	}
	return items
}
