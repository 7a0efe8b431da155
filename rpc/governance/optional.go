package governance

import (
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// GetAdmin returns the contract admin. The second result is false after the
// admin renouncement.
func (c *ContractReader) GetAdmin() (util.Uint160, bool, error) {
	return optionalUint160(unwrap.Item(c.invoker.Call(c.hash, "getAdmin")))
}

// GetPendingAdmin returns the admin nominee. The second result is false if
// there is no live nomination.
func (c *ContractReader) GetPendingAdmin() (util.Uint160, bool, error) {
	return optionalUint160(unwrap.Item(c.invoker.Call(c.hash, "getPendingAdmin")))
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
