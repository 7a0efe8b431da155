/*
Package accesscontrol implements role based access control for contracts.

Every role is a short string tag. Members of a role are enumerable: they are
stored as a dense array indexed from zero plus a reverse account-to-index map,
so that membership can be added, removed and checked in constant time.
Removal moves the last member into the freed slot, so enumeration order is
not preserved.

A single admin account governs the contract. It may grant and revoke any role,
configure the admin role of other roles and hand its power over to another
account in two steps (see roletransfer package). Holders of a role configured
as the admin role of some other role may grant and revoke the latter.

Circular admin role relations are not detected: if A administers B and B
administers A, holders of each role can revoke the other.

# Storage model

 - 'm' + ripemd160(role) + index -> Hash160
   role member at the given enumeration index
 - 'h' + account + ripemd160(role) -> int
   enumeration index of the account
 - 'c' + ripemd160(role) -> int
   number of role members
 - 'a' + ripemd160(role) -> string
   admin role of the role
 - 'A' -> Hash160
   contract admin
 - 'P' -> roletransfer.Pending
   admin nominee
 - 'e' -> []string
   roles having at least one member
*/
package accesscontrol

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neogov-contract/common"
	"github.com/nspcc-dev/neogov-contract/roletransfer"
)

const (
	memberPrefix    = 'm'
	indexPrefix     = 'h'
	countPrefix     = 'c'
	roleAdminPrefix = 'a'

	adminKey         = "A"
	pendingAdminKey  = "P"
	existingRolesKey = "e"
)

const (
	ErrUnauthorized       = "2000: unauthorized"
	ErrAdminNotSet        = "2001: admin not set"
	ErrIndexOutOfBounds   = "2002: index out of bounds"
	ErrAdminRoleNotFound  = "2003: admin role not found"
	ErrRoleCountIsNotZero = "2004: role count is not zero"
	ErrRoleNotFound       = "2005: role not found"
	ErrAdminAlreadySet    = "2006: admin already set"
	ErrRoleNotHeld        = "2007: role not held"
	ErrRoleIsEmpty        = "2008: role is empty"
	ErrMaxRolesExceeded   = "2009: max roles exceeded"
)

func roleAdminKey(role string) []byte {
	return append([]byte{roleAdminPrefix}, roleKey(role)...)
}

// SetAdmin sets the contract admin. It must be called once, usually from
// _deploy. No authorization is performed.
func SetAdmin(ctx storage.Context, admin interop.Hash160) {
	if storage.Get(ctx, adminKey) != nil {
		panic(ErrAdminAlreadySet)
	}

	storage.Put(ctx, adminKey, admin)
}

// GetAdmin returns the contract admin or nil if there is none.
func GetAdmin(ctx storage.Context) interop.Hash160 {
	data := storage.Get(ctx, adminKey)
	if data == nil {
		return nil
	}

	return data.(interop.Hash160)
}

// GetPendingAdmin returns the admin nominee or nil if there is no live
// nomination.
func GetPendingAdmin(ctx storage.Context) interop.Hash160 {
	p, ok := roletransfer.GetPending(ctx, []byte(pendingAdminKey))
	if !ok {
		return nil
	}

	return p.Account
}

// GetRoleAdmin returns the admin role of the role. The second result is false
// if it is not configured.
func GetRoleAdmin(ctx storage.Context, role string) (string, bool) {
	data := storage.Get(ctx, roleAdminKey(role))
	if data == nil {
		return "", false
	}

	return data.(string), true
}

// GrantRole grants the role to the account on behalf of the caller. The
// caller must witness the transaction and be either the admin or a holder of
// the role's admin role. Granting a held role does nothing.
func GrantRole(ctx storage.Context, caller, account interop.Hash160, role string) {
	common.CheckWitness(caller)
	EnsureIfAdminOrAdminRole(ctx, role, caller)
	GrantRoleNoAuth(ctx, caller, account, role)
}

// GrantRoleNoAuth is GrantRole without any authorization checks.
func GrantRoleNoAuth(ctx storage.Context, caller, account interop.Hash160, role string) {
	if _, ok := HasRole(ctx, account, role); ok {
		return
	}

	AddToRoleEnumeration(ctx, account, role)
	notifyRoleGranted(role, account, caller)
}

// RevokeRole revokes the role from the account on behalf of the caller. The
// caller is authorized the same way as in GrantRole.
func RevokeRole(ctx storage.Context, caller, account interop.Hash160, role string) {
	common.CheckWitness(caller)
	EnsureIfAdminOrAdminRole(ctx, role, caller)
	RevokeRoleNoAuth(ctx, caller, account, role)
}

// RevokeRoleNoAuth is RevokeRole without any authorization checks.
func RevokeRoleNoAuth(ctx storage.Context, caller, account interop.Hash160, role string) {
	if _, ok := HasRole(ctx, account, role); !ok {
		panic(ErrRoleNotHeld)
	}

	RemoveFromRoleEnumeration(ctx, account, role)
	notifyRoleRevoked(role, account, caller)
}

// RenounceRole removes the role from the caller. Only the caller's witness
// is required.
func RenounceRole(ctx storage.Context, caller interop.Hash160, role string) {
	common.CheckWitness(caller)

	if _, ok := HasRole(ctx, caller, role); !ok {
		panic(ErrRoleNotHeld)
	}

	RemoveFromRoleEnumeration(ctx, caller, role)
	notifyRoleRevoked(role, caller, caller)
}

// TransferAdminRole nominates newAdmin as the next admin until the liveUntil
// height. Zero liveUntil cancels the nomination. Admin witness is required.
func TransferAdminRole(ctx storage.Context, newAdmin interop.Hash160, liveUntil int) {
	admin := EnforceAdminAuth(ctx)

	roletransfer.Transfer(ctx, admin, newAdmin, []byte(adminKey), []byte(pendingAdminKey), liveUntil)
	notifyAdminTransferInitiated(admin, newAdmin, liveUntil)
}

// AcceptAdminTransfer makes the caller an admin if it is the live nominee.
func AcceptAdminTransfer(ctx storage.Context, caller interop.Hash160) {
	previous := GetAdmin(ctx)
	if previous == nil {
		panic(ErrAdminNotSet)
	}

	newAdmin := roletransfer.Accept(ctx, caller, []byte(adminKey), []byte(pendingAdminKey))
	notifyAdminTransferCompleted(previous, newAdmin)
}

// SetRoleAdmin configures adminRole as the admin role of the role. Admin
// witness is required.
func SetRoleAdmin(ctx storage.Context, role, adminRole string) {
	EnforceAdminAuth(ctx)
	SetRoleAdminNoAuth(ctx, role, adminRole)
}

// SetRoleAdminNoAuth is SetRoleAdmin without any authorization checks.
func SetRoleAdminNoAuth(ctx storage.Context, role, adminRole string) {
	previous, _ := GetRoleAdmin(ctx, role)

	storage.Put(ctx, roleAdminKey(role), adminRole)
	notifyRoleAdminChanged(role, previous, adminRole)
}

// RemoveRoleAdminNoAuth drops the admin role of the role.
func RemoveRoleAdminNoAuth(ctx storage.Context, role string) {
	key := roleAdminKey(role)
	if storage.Get(ctx, key) == nil {
		panic(ErrAdminRoleNotFound)
	}

	storage.Delete(ctx, key)
}

// RemoveRoleAccountsCountNoAuth drops the zero member counter of the role.
func RemoveRoleAccountsCountNoAuth(ctx storage.Context, role string) {
	key := countKey(roleKey(role))

	data := storage.Get(ctx, key)
	if data == nil {
		panic(ErrRoleNotFound)
	}
	if data.(int) != 0 {
		panic(ErrRoleCountIsNotZero)
	}

	storage.Delete(ctx, key)
}

// RenounceAdmin removes the admin irreversibly. Admin witness is required.
//
// A live admin nomination is left as is, it can't be accepted anymore since
// there is no admin to take the place of.
func RenounceAdmin(ctx storage.Context) {
	admin := EnforceAdminAuth(ctx)

	storage.Delete(ctx, adminKey)
	notifyAdminRenounced(admin)
}

// EnsureIfAdminOrAdminRole panics if the caller is neither the admin nor a
// holder of the role's admin role.
func EnsureIfAdminOrAdminRole(ctx storage.Context, role string, caller interop.Hash160) {
	admin := GetAdmin(ctx)
	if admin != nil && caller.Equals(admin) {
		return
	}

	adminRole, ok := GetRoleAdmin(ctx, role)
	if ok {
		if _, held := HasRole(ctx, caller, adminRole); held {
			return
		}
	}

	panic(ErrUnauthorized)
}

// EnsureRole panics if the caller doesn't hold the role.
func EnsureRole(ctx storage.Context, role string, caller interop.Hash160) {
	if _, ok := HasRole(ctx, caller, role); !ok {
		panic(ErrUnauthorized)
	}
}

// EnforceAdminAuth checks the admin witness and returns the admin.
func EnforceAdminAuth(ctx storage.Context) interop.Hash160 {
	admin := GetAdmin(ctx)
	if admin == nil {
		panic(ErrAdminNotSet)
	}

	common.CheckWitness(admin)

	return admin
}
