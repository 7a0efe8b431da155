package rolemanager

import (
	"errors"
	"math/big"

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

// HasRole returns enumeration index of the account within the role members.
// The second result is false if the account doesn't hold the role.
func (c *ContractReader) HasRole(account util.Uint160, role string) (*big.Int, bool, error) {
	item, err := unwrap.Item(c.invoker.Call(c.hash, "hasRole", account, role))
	if err != nil || isNull(item) {
		return nil, false, err
	}

	index, err := item.TryInteger()
	if err != nil {
		return nil, false, err
	}

	return index, true, nil
}

// GetRoleAdmin returns the admin role of the role. The second result is false
// if it's not configured.
func (c *ContractReader) GetRoleAdmin(role string) (string, bool, error) {
	item, err := unwrap.Item(c.invoker.Call(c.hash, "getRoleAdmin", role))
	if err != nil || isNull(item) {
		return "", false, err
	}

	b, err := item.TryBytes()
	if err != nil {
		return "", false, err
	}

	return string(b), true, nil
}

func isNull(item stackitem.Item) bool {
	_, ok := item.(stackitem.Null)
	return ok
}

func optionalUint160(item stackitem.Item, err error) (util.Uint160, bool, error) {
	if err != nil || isNull(item) {
		return util.Uint160{}, false, err
	}

	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, false, err
	}

	u, err := util.Uint160DecodeBytesBE(b)
	if err != nil {
		return util.Uint160{}, false, errors.New("invalid account")
	}

	return u, true, nil
}
