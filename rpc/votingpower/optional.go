package votingpower

import (
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// GetOwner returns the contract owner. The second result is false after the
// ownership renouncement.
func (c *ContractReader) GetOwner() (util.Uint160, bool, error) {
	return optionalUint160(unwrap.Item(c.invoker.Call(c.hash, "getOwner")))
}

// GetPendingOwner returns the ownership nominee. The second result is false
// if there is no live nomination.
func (c *ContractReader) GetPendingOwner() (util.Uint160, bool, error) {
	return optionalUint160(unwrap.Item(c.invoker.Call(c.hash, "getPendingOwner")))
}

func optionalUint160(item stackitem.Item, err error) (util.Uint160, bool, error) {
	if err != nil {
		return util.Uint160{}, false, err
	}
	if _, ok := item.(stackitem.Null); ok {
		return util.Uint160{}, false, nil
	}

	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, false, err
	}

	u, err := util.Uint160DecodeBytesBE(b)
	return u, err == nil, err
}
