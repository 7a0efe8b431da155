package rolemanager

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neogov-contract/accesscontrol"
	"github.com/nspcc-dev/neogov-contract/common"
)

// maxRoleLength limits role tag length.
const maxRoleLength = 32

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		admin interop.Hash160
	})

	if len(args.admin) != interop.Hash160Len {
		panic("incorrect length of admin address")
	}

	accesscontrol.SetAdmin(ctx, args.admin)

	runtime.Log("rolemanager contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic(common.ErrUpdateAccessDenied)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("rolemanager contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// HasRole returns enumeration index of the account within the role members or
// nil if the account doesn't hold the role.
func HasRole(account interop.Hash160, role string) any {
	ctx := storage.GetReadOnlyContext()

	index, ok := accesscontrol.HasRole(ctx, account, role)
	if !ok {
		return nil
	}

	return index
}

// GetRoleMemberCount returns the number of role members.
func GetRoleMemberCount(role string) int {
	return accesscontrol.GetRoleMemberCount(storage.GetReadOnlyContext(), role)
}

// GetRoleMember returns role member by its enumeration index. It panics if
// index is out of range.
func GetRoleMember(role string, index int) interop.Hash160 {
	return accesscontrol.GetRoleMember(storage.GetReadOnlyContext(), role, index)
}

// RoleMembers returns iterator over all role members.
func RoleMembers(role string) iterator.Iterator {
	return accesscontrol.RoleMembers(storage.GetReadOnlyContext(), role)
}

// GetExistingRoles returns all roles having at least one member.
func GetExistingRoles() []string {
	return accesscontrol.GetExistingRoles(storage.GetReadOnlyContext())
}

// GetRoleAdmin returns admin role of the role or nil if it is not set.
func GetRoleAdmin(role string) any {
	adminRole, ok := accesscontrol.GetRoleAdmin(storage.GetReadOnlyContext(), role)
	if !ok {
		return nil
	}

	return adminRole
}

// GetAdmin returns the contract admin or nil after admin renouncement.
func GetAdmin() interop.Hash160 {
	return accesscontrol.GetAdmin(storage.GetReadOnlyContext())
}

// GetPendingAdmin returns the live admin nominee or nil.
func GetPendingAdmin() interop.Hash160 {
	return accesscontrol.GetPendingAdmin(storage.GetReadOnlyContext())
}

// GrantRole grants the role to the account. Caller must be the admin or a
// holder of the role admin role and must sign the transaction.
func GrantRole(caller, account interop.Hash160, role string) {
	checkRole(role)
	accesscontrol.GrantRole(storage.GetContext(), caller, account, role)
}

// RevokeRole revokes the role from the account. Caller must be the admin or a
// holder of the role admin role and must sign the transaction.
func RevokeRole(caller, account interop.Hash160, role string) {
	accesscontrol.RevokeRole(storage.GetContext(), caller, account, role)
}

// RenounceRole removes the role from the caller.
func RenounceRole(caller interop.Hash160, role string) {
	accesscontrol.RenounceRole(storage.GetContext(), caller, role)
}

// TransferAdminRole nominates the new admin until the liveUntil block
// (inclusive). Zero liveUntil cancels the nomination.
func TransferAdminRole(newAdmin interop.Hash160, liveUntil int) {
	if len(newAdmin) != interop.Hash160Len {
		panic("incorrect length of new admin address")
	}

	accesscontrol.TransferAdminRole(storage.GetContext(), newAdmin, liveUntil)
}

// AcceptAdminTransfer makes the caller an admin. Caller must be the live
// nominee and must sign the transaction.
func AcceptAdminTransfer(caller interop.Hash160) {
	accesscontrol.AcceptAdminTransfer(storage.GetContext(), caller)
}

// SetRoleAdmin configures the admin role of the role. Admin only.
func SetRoleAdmin(role, adminRole string) {
	checkRole(role)
	checkRole(adminRole)
	accesscontrol.SetRoleAdmin(storage.GetContext(), role, adminRole)
}

// RemoveRoleAdmin drops the admin role of the role. Admin only.
func RemoveRoleAdmin(role string) {
	ctx := storage.GetContext()

	accesscontrol.EnforceAdminAuth(ctx)
	accesscontrol.RemoveRoleAdminNoAuth(ctx, role)
}

// RemoveRoleAccountsCount drops the member counter of the role with no
// members. Admin only.
func RemoveRoleAccountsCount(role string) {
	ctx := storage.GetContext()

	accesscontrol.EnforceAdminAuth(ctx)
	accesscontrol.RemoveRoleAccountsCountNoAuth(ctx, role)
}

// RenounceAdmin removes the admin forever. Admin only.
func RenounceAdmin() {
	accesscontrol.RenounceAdmin(storage.GetContext())
}

func checkRole(role string) {
	if len(role) == 0 || len(role) > maxRoleLength {
		panic("invalid role length")
	}
}
