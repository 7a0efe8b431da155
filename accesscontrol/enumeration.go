package accesscontrol

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neogov-contract/common"
)

// MaxRoles limits the number of roles having at least one member.
const MaxRoles = 256

func roleKey(role string) []byte {
	return crypto.Ripemd160([]byte(role))
}

func memberKey(rk []byte, index int) []byte {
	key := append([]byte{memberPrefix}, rk...)
	return append(key, convert.ToBytes(index)...)
}

func indexKey(account interop.Hash160, rk []byte) []byte {
	key := append([]byte{indexPrefix}, account...)
	return append(key, rk...)
}

func countKey(rk []byte) []byte {
	return append([]byte{countPrefix}, rk...)
}

// HasRole returns the enumeration index of the account within the role
// members. The second result is false if the account doesn't hold the role.
func HasRole(ctx storage.Context, account interop.Hash160, role string) (int, bool) {
	data := storage.Get(ctx, indexKey(account, roleKey(role)))
	if data == nil {
		return 0, false
	}

	return data.(int), true
}

// GetRoleMemberCount returns the number of accounts holding the role.
func GetRoleMemberCount(ctx storage.Context, role string) int {
	return common.GetInt(ctx, countKey(roleKey(role)))
}

// GetRoleMember returns the role member stored at the given index. The order
// of members is not stable across removals.
func GetRoleMember(ctx storage.Context, role string, index int) interop.Hash160 {
	data := storage.Get(ctx, memberKey(roleKey(role), index))
	if data == nil {
		panic(ErrIndexOutOfBounds)
	}

	return data.(interop.Hash160)
}

// RoleMembers returns iterator over all members of the role.
func RoleMembers(ctx storage.Context, role string) iterator.Iterator {
	key := append([]byte{memberPrefix}, roleKey(role)...)
	return storage.Find(ctx, key, storage.ValuesOnly)
}

// GetExistingRoles returns roles having at least one member.
func GetExistingRoles(ctx storage.Context) []string {
	return common.GetStrings(ctx, existingRolesKey)
}

// AddToRoleEnumeration appends the account to the role members. It doesn't
// check whether the account already holds the role.
func AddToRoleEnumeration(ctx storage.Context, account interop.Hash160, role string) {
	rk := roleKey(role)
	count := common.GetInt(ctx, countKey(rk))

	if count == 0 {
		roles := GetExistingRoles(ctx)
		if len(roles) >= MaxRoles {
			panic(ErrMaxRolesExceeded)
		}

		roles = append(roles, role)
		common.SetSerialized(ctx, existingRolesKey, roles)
	}

	storage.Put(ctx, memberKey(rk, count), account)
	storage.Put(ctx, indexKey(account, rk), count)
	storage.Put(ctx, countKey(rk), count+1)
}

// RemoveFromRoleEnumeration removes the account from the role members. The
// last member takes the place of the removed one.
func RemoveFromRoleEnumeration(ctx storage.Context, account interop.Hash160, role string) {
	rk := roleKey(role)
	count := common.GetInt(ctx, countKey(rk))
	if count == 0 {
		panic(ErrRoleIsEmpty)
	}

	removedIndexKey := indexKey(account, rk)
	data := storage.Get(ctx, removedIndexKey)
	if data == nil {
		panic(ErrRoleNotHeld)
	}

	removedIndex := data.(int)
	lastIndex := count - 1
	lastKey := memberKey(rk, lastIndex)

	if removedIndex != lastIndex {
		last := storage.Get(ctx, lastKey).(interop.Hash160)

		storage.Put(ctx, memberKey(rk, removedIndex), last)
		storage.Put(ctx, indexKey(last, rk), removedIndex)
	}

	storage.Delete(ctx, lastKey)
	storage.Delete(ctx, removedIndexKey)
	storage.Put(ctx, countKey(rk), lastIndex)

	if lastIndex == 0 {
		removeExistingRole(ctx, role)
	}
}

func removeExistingRole(ctx storage.Context, role string) {
	var (
		roles = GetExistingRoles(ctx)
		kept  = []string{}
	)

	for i := range roles {
		if roles[i] != role {
			kept = append(kept, roles[i])
		}
	}

	common.SetSerialized(ctx, existingRolesKey, kept)
}
