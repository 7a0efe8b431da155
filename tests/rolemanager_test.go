package tests

import (
	"encoding/json"
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/trigger"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neogov-contract/accesscontrol"
	"github.com/nspcc-dev/neogov-contract/common"
	"github.com/nspcc-dev/neogov-contract/roletransfer"
	"github.com/stretchr/testify/require"
)

const roleManagerPath = "../contracts/rolemanager"

func deployRoleManagerContract(t *testing.T, e *neotest.Executor, admin util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, roleManagerPath, path.Join(roleManagerPath, "config.yml"))
	e.DeployContract(t, c, []any{admin})
	return c.Hash
}

func newRoleManagerInvoker(t *testing.T) (*neotest.ContractInvoker, neotest.Signer) {
	e := newExecutor(t)
	admin := e.NewAccount(t)
	h := deployRoleManagerContract(t, e, admin.ScriptHash())
	return e.NewInvoker(h, admin), admin
}

func checkMembers(t *testing.T, c *neotest.ContractInvoker, role string, members ...util.Uint160) {
	c.Invoke(t, len(members), "getRoleMemberCount", role)

	seen := make(map[int64]struct{})
	for _, m := range members {
		item := testInvokeItem(t, c, "hasRole", m, role)
		idx, err := item.TryInteger()
		require.NoError(t, err)
		require.Less(t, idx.Int64(), int64(len(members)))

		_, ok := seen[idx.Int64()]
		require.False(t, ok, "duplicate index %d", idx.Int64())
		seen[idx.Int64()] = struct{}{}

		c.Invoke(t, m, "getRoleMember", role, idx.Int64())
	}
}

func TestRoleManager_Deploy(t *testing.T) {
	c, admin := newRoleManagerInvoker(t)

	c.Invoke(t, admin.ScriptHash(), "getAdmin")
	c.Invoke(t, stackitem.Null{}, "getPendingAdmin")
	c.Invoke(t, common.Version, "version")

	c.InvokeFail(t, common.ErrUpdateAccessDenied, "update", []byte{}, []byte{}, nil)
}

func TestRoleManager_Update(t *testing.T) {
	e := newExecutor(t)
	admin := e.NewAccount(t)

	ctr := neotest.CompileFile(t, e.CommitteeHash, roleManagerPath, path.Join(roleManagerPath, "config.yml"))
	e.DeployContract(t, ctr, []any{admin.ScriptHash()})

	rawNEF, err := ctr.NEF.Bytes()
	require.NoError(t, err)
	rawManifest, err := json.Marshal(ctr.Manifest)
	require.NoError(t, err)

	e.NewInvoker(ctr.Hash, admin).InvokeFail(t, common.ErrUpdateAccessDenied, "update", rawNEF, rawManifest, nil)
	e.CommitteeInvoker(ctr.Hash).InvokeFail(t, common.ErrAlreadyUpdated, "update", rawNEF, rawManifest, nil)
}

func TestRoleManager_GrantRevoke(t *testing.T) {
	c, admin := newRoleManagerInvoker(t)

	const role = "minter"

	a := c.NewAccount(t).ScriptHash()
	b := c.NewAccount(t).ScriptHash()
	d := c.NewAccount(t).ScriptHash()

	h := c.Invoke(t, stackitem.Null{}, "grantRole", admin.ScriptHash(), a, role)
	c.CheckTxNotificationEvent(t, h, 0, state.NotificationEvent{
		ScriptHash: c.Hash,
		Name:       "RoleGranted",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.Make(role),
			stackitem.Make(a),
			stackitem.Make(admin.ScriptHash()),
		}),
	})

	c.Invoke(t, stackitem.Null{}, "grantRole", admin.ScriptHash(), b, role)
	c.Invoke(t, stackitem.Null{}, "grantRole", admin.ScriptHash(), d, role)
	checkMembers(t, c, role, a, b, d)
	c.Invoke(t, 0, "hasRole", a, role)
	c.Invoke(t, 2, "hasRole", d, role)

	t.Run("grant is idempotent", func(t *testing.T) {
		h := c.Invoke(t, stackitem.Null{}, "grantRole", admin.ScriptHash(), b, role)

		aer, err := c.Chain.GetAppExecResults(h, trigger.Application)
		require.NoError(t, err)
		require.Empty(t, aer[0].Events)

		checkMembers(t, c, role, a, b, d)
	})

	t.Run("unauthorized", func(t *testing.T) {
		stranger := c.NewAccount(t)
		cStranger := c.WithSigners(stranger)

		cStranger.InvokeFail(t, accesscontrol.ErrUnauthorized, "grantRole", stranger.ScriptHash(), stranger.ScriptHash(), role)
		cStranger.InvokeFail(t, accesscontrol.ErrUnauthorized, "revokeRole", stranger.ScriptHash(), a, role)
		cStranger.InvokeFail(t, common.ErrWitnessFailed, "grantRole", admin.ScriptHash(), stranger.ScriptHash(), role)
	})

	t.Run("invalid role", func(t *testing.T) {
		c.InvokeFail(t, "invalid role length", "grantRole", admin.ScriptHash(), a, "")
		c.InvokeFail(t, "invalid role length", "grantRole", admin.ScriptHash(), a,
			"a_role_name_which_is_longer_than_32_bytes")
	})

	h = c.Invoke(t, stackitem.Null{}, "revokeRole", admin.ScriptHash(), a, role)
	c.CheckTxNotificationEvent(t, h, 0, state.NotificationEvent{
		ScriptHash: c.Hash,
		Name:       "RoleRevoked",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.Make(role),
			stackitem.Make(a),
			stackitem.Make(admin.ScriptHash()),
		}),
	})

	// the last member takes the place of the removed one
	c.Invoke(t, stackitem.Null{}, "hasRole", a, role)
	c.Invoke(t, 0, "hasRole", d, role)
	c.Invoke(t, d, "getRoleMember", role, 0)
	checkMembers(t, c, role, b, d)

	c.InvokeFail(t, accesscontrol.ErrRoleNotHeld, "revokeRole", admin.ScriptHash(), a, role)
	c.InvokeFail(t, accesscontrol.ErrIndexOutOfBounds, "getRoleMember", role, 2)
	c.InvokeFail(t, accesscontrol.ErrIndexOutOfBounds, "getRoleMember", role, -1)

	t.Run("grant after revoke", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "grantRole", admin.ScriptHash(), a, role)
		c.Invoke(t, 2, "hasRole", a, role)
		checkMembers(t, c, role, a, b, d)

		c.Invoke(t, stackitem.Null{}, "revokeRole", admin.ScriptHash(), a, role)
		checkMembers(t, c, role, b, d)
	})

	t.Run("revoke last member", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "revokeRole", admin.ScriptHash(), d, role)
		c.Invoke(t, 0, "hasRole", b, role)
		checkMembers(t, c, role, b)
	})
}

func TestRoleManager_RoleMembers(t *testing.T) {
	c, admin := newRoleManagerInvoker(t)

	const role = "operator"

	members := make(map[util.Uint160]struct{})
	for i := 0; i < 5; i++ {
		acc := c.NewAccount(t).ScriptHash()
		members[acc] = struct{}{}
		c.Invoke(t, stackitem.Null{}, "grantRole", admin.ScriptHash(), acc, role)
	}

	s, err := c.TestInvoke(t, "roleMembers", role)
	require.NoError(t, err)

	iter := s.Pop().Value().(*storage.Iterator)
	items := iteratorToArray(iter)
	require.Len(t, items, len(members))

	for i := range items {
		_, ok := members[itemToHash160(t, items[i])]
		require.True(t, ok)
	}
}

func TestRoleManager_ExistingRoles(t *testing.T) {
	c, admin := newRoleManagerInvoker(t)

	acc := c.NewAccount(t).ScriptHash()

	c.Invoke(t, stackitem.Null{}, "grantRole", admin.ScriptHash(), acc, "first")
	c.Invoke(t, stackitem.Null{}, "grantRole", admin.ScriptHash(), admin.ScriptHash(), "second")
	c.Invoke(t, stackitem.Null{}, "grantRole", admin.ScriptHash(), acc, "second")

	c.Invoke(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make("first"),
		stackitem.Make("second"),
	}), "getExistingRoles")

	c.Invoke(t, stackitem.Null{}, "revokeRole", admin.ScriptHash(), acc, "first")
	c.Invoke(t, stackitem.Null{}, "revokeRole", admin.ScriptHash(), acc, "second")

	c.Invoke(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make("second"),
	}), "getExistingRoles")

	t.Run("remove accounts count", func(t *testing.T) {
		c.InvokeFail(t, accesscontrol.ErrRoleCountIsNotZero, "removeRoleAccountsCount", "second")
		c.InvokeFail(t, accesscontrol.ErrRoleNotFound, "removeRoleAccountsCount", "unknown")

		c.Invoke(t, stackitem.Null{}, "removeRoleAccountsCount", "first")
		c.InvokeFail(t, accesscontrol.ErrRoleNotFound, "removeRoleAccountsCount", "first")
		c.Invoke(t, 0, "getRoleMemberCount", "first")
	})
}

func TestRoleManager_RoleAdmin(t *testing.T) {
	c, admin := newRoleManagerInvoker(t)

	const (
		role      = "minter"
		adminRole = "minterAdmin"
	)

	manager := c.NewAccount(t)
	acc := c.NewAccount(t).ScriptHash()
	cManager := c.WithSigners(manager)

	cManager.InvokeFail(t, common.ErrWitnessFailed, "setRoleAdmin", role, adminRole)

	c.Invoke(t, stackitem.Null{}, "getRoleAdmin", role)
	c.Invoke(t, stackitem.Null{}, "setRoleAdmin", role, "tmp")
	c.Invoke(t, "tmp", "getRoleAdmin", role)

	h := c.Invoke(t, stackitem.Null{}, "setRoleAdmin", role, adminRole)
	c.CheckTxNotificationEvent(t, h, 0, state.NotificationEvent{
		ScriptHash: c.Hash,
		Name:       "RoleAdminChanged",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.Make(role),
			stackitem.Make("tmp"),
			stackitem.Make(adminRole),
		}),
	})
	c.Invoke(t, adminRole, "getRoleAdmin", role)

	cManager.InvokeFail(t, accesscontrol.ErrUnauthorized, "grantRole", manager.ScriptHash(), acc, role)

	c.Invoke(t, stackitem.Null{}, "grantRole", admin.ScriptHash(), manager.ScriptHash(), adminRole)

	cManager.Invoke(t, stackitem.Null{}, "grantRole", manager.ScriptHash(), acc, role)
	c.Invoke(t, 0, "hasRole", acc, role)

	cManager.InvokeFail(t, accesscontrol.ErrUnauthorized, "grantRole", manager.ScriptHash(), acc, "other")
	cManager.Invoke(t, stackitem.Null{}, "revokeRole", manager.ScriptHash(), acc, role)

	t.Run("circular admin roles", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "setRoleAdmin", adminRole, role)
		c.Invoke(t, role, "getRoleAdmin", adminRole)

		other := c.NewAccount(t)
		c.Invoke(t, stackitem.Null{}, "grantRole", admin.ScriptHash(), other.ScriptHash(), role)

		// holders of each role are able to revoke the other one
		c.WithSigners(other).Invoke(t, stackitem.Null{}, "revokeRole", other.ScriptHash(), manager.ScriptHash(), adminRole)
		c.Invoke(t, stackitem.Null{}, "hasRole", manager.ScriptHash(), adminRole)
	})

	t.Run("remove role admin", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "removeRoleAdmin", role)
		c.Invoke(t, stackitem.Null{}, "getRoleAdmin", role)
		c.InvokeFail(t, accesscontrol.ErrAdminRoleNotFound, "removeRoleAdmin", role)
	})
}

func TestRoleManager_RenounceRole(t *testing.T) {
	c, admin := newRoleManagerInvoker(t)

	const role = "voter"

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)

	cAcc.InvokeFail(t, accesscontrol.ErrRoleNotHeld, "renounceRole", acc.ScriptHash(), role)

	c.Invoke(t, stackitem.Null{}, "grantRole", admin.ScriptHash(), acc.ScriptHash(), role)
	c.InvokeFail(t, common.ErrWitnessFailed, "renounceRole", acc.ScriptHash(), role)

	h := cAcc.Invoke(t, stackitem.Null{}, "renounceRole", acc.ScriptHash(), role)
	c.CheckTxNotificationEvent(t, h, 0, state.NotificationEvent{
		ScriptHash: c.Hash,
		Name:       "RoleRevoked",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.Make(role),
			stackitem.Make(acc.ScriptHash()),
			stackitem.Make(acc.ScriptHash()),
		}),
	})

	c.Invoke(t, stackitem.Null{}, "hasRole", acc.ScriptHash(), role)
	c.Invoke(t, 0, "getRoleMemberCount", role)
}

func TestRoleManager_AdminTransfer(t *testing.T) {
	c, admin := newRoleManagerInvoker(t)

	newAdmin := c.NewAccount(t)
	cNewAdmin := c.WithSigners(newAdmin)

	c.InvokeFail(t, roletransfer.ErrNoPendingTransfer, "transferAdminRole", newAdmin.ScriptHash(), 0)
	c.InvokeFail(t, roletransfer.ErrInvalidLiveUntilLedger, "transferAdminRole", newAdmin.ScriptHash(), 1)
	c.InvokeFail(t, roletransfer.ErrInvalidLiveUntilLedger, "transferAdminRole", newAdmin.ScriptHash(), int64(common.MaxUint32)+1)
	cNewAdmin.InvokeFail(t, common.ErrWitnessFailed, "transferAdminRole", newAdmin.ScriptHash(), 1000)
	cNewAdmin.InvokeFail(t, roletransfer.ErrNoPendingTransfer, "acceptAdminTransfer", newAdmin.ScriptHash())

	liveUntil := int64(c.Chain.BlockHeight()) + 100

	h := c.Invoke(t, stackitem.Null{}, "transferAdminRole", newAdmin.ScriptHash(), liveUntil)
	c.CheckTxNotificationEvent(t, h, 0, state.NotificationEvent{
		ScriptHash: c.Hash,
		Name:       "AdminTransferInitiated",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.Make(admin.ScriptHash()),
			stackitem.Make(newAdmin.ScriptHash()),
			stackitem.Make(liveUntil),
		}),
	})
	c.Invoke(t, newAdmin.ScriptHash(), "getPendingAdmin")

	t.Run("foreign accept", func(t *testing.T) {
		stranger := c.NewAccount(t)
		c.WithSigners(stranger).InvokeFail(t, roletransfer.ErrUnauthorized, "acceptAdminTransfer", stranger.ScriptHash())
		c.InvokeFail(t, roletransfer.ErrUnauthorized, "acceptAdminTransfer", admin.ScriptHash())
	})

	h = cNewAdmin.Invoke(t, stackitem.Null{}, "acceptAdminTransfer", newAdmin.ScriptHash())
	c.CheckTxNotificationEvent(t, h, 0, state.NotificationEvent{
		ScriptHash: c.Hash,
		Name:       "AdminTransferCompleted",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.Make(admin.ScriptHash()),
			stackitem.Make(newAdmin.ScriptHash()),
		}),
	})

	c.Invoke(t, newAdmin.ScriptHash(), "getAdmin")
	c.Invoke(t, stackitem.Null{}, "getPendingAdmin")

	// previous admin has no power anymore
	c.InvokeFail(t, common.ErrWitnessFailed, "setRoleAdmin", "role", "adminRole")
	c.InvokeFail(t, accesscontrol.ErrUnauthorized, "grantRole", admin.ScriptHash(), admin.ScriptHash(), "role")
	cNewAdmin.Invoke(t, stackitem.Null{}, "grantRole", newAdmin.ScriptHash(), admin.ScriptHash(), "role")
}

func TestRoleManager_AdminTransferCancel(t *testing.T) {
	c, admin := newRoleManagerInvoker(t)

	nominee := c.NewAccount(t)

	c.Invoke(t, stackitem.Null{}, "transferAdminRole", nominee.ScriptHash(), int64(c.Chain.BlockHeight())+10)
	c.Invoke(t, stackitem.Null{}, "transferAdminRole", nominee.ScriptHash(), 0)
	c.Invoke(t, stackitem.Null{}, "getPendingAdmin")

	c.WithSigners(nominee).InvokeFail(t, roletransfer.ErrNoPendingTransfer, "acceptAdminTransfer", nominee.ScriptHash())
	c.Invoke(t, admin.ScriptHash(), "getAdmin")
}

func TestRoleManager_AdminTransferExpired(t *testing.T) {
	c, admin := newRoleManagerInvoker(t)

	nominee := c.NewAccount(t)
	liveUntil := c.Chain.BlockHeight() + 2

	c.Invoke(t, stackitem.Null{}, "transferAdminRole", nominee.ScriptHash(), int64(liveUntil))
	waitHeight(t, c.Executor, liveUntil+1)

	c.Invoke(t, stackitem.Null{}, "getPendingAdmin")
	c.WithSigners(nominee).InvokeFail(t, roletransfer.ErrNoPendingTransfer, "acceptAdminTransfer", nominee.ScriptHash())
	c.InvokeFail(t, roletransfer.ErrNoPendingTransfer, "transferAdminRole", nominee.ScriptHash(), 0)
	c.Invoke(t, admin.ScriptHash(), "getAdmin")
}

func TestRoleManager_RenounceAdmin(t *testing.T) {
	c, admin := newRoleManagerInvoker(t)

	nominee := c.NewAccount(t)
	acc := c.NewAccount(t).ScriptHash()

	c.WithSigners(nominee).InvokeFail(t, common.ErrWitnessFailed, "renounceAdmin")

	c.Invoke(t, stackitem.Null{}, "transferAdminRole", nominee.ScriptHash(), int64(c.Chain.BlockHeight())+100)

	h := c.Invoke(t, stackitem.Null{}, "renounceAdmin")
	c.CheckTxNotificationEvent(t, h, 0, state.NotificationEvent{
		ScriptHash: c.Hash,
		Name:       "AdminRenounced",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.Make(admin.ScriptHash()),
		}),
	})

	c.Invoke(t, stackitem.Null{}, "getAdmin")

	// the nomination survives admin renouncement although there is no admin
	// anymore, it can't be accepted
	c.Invoke(t, nominee.ScriptHash(), "getPendingAdmin")
	c.WithSigners(nominee).InvokeFail(t, accesscontrol.ErrAdminNotSet, "acceptAdminTransfer", nominee.ScriptHash())

	c.InvokeFail(t, accesscontrol.ErrAdminNotSet, "renounceAdmin")
	c.InvokeFail(t, accesscontrol.ErrAdminNotSet, "transferAdminRole", nominee.ScriptHash(), 0)
	c.InvokeFail(t, accesscontrol.ErrAdminNotSet, "setRoleAdmin", "role", "adminRole")
	c.InvokeFail(t, accesscontrol.ErrUnauthorized, "grantRole", admin.ScriptHash(), acc, "role")
}
