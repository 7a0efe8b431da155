package accesscontrol

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

func notifyRoleGranted(role string, account, caller interop.Hash160) {
	runtime.Notify("RoleGranted", role, account, caller)
}

func notifyRoleRevoked(role string, account, caller interop.Hash160) {
	runtime.Notify("RoleRevoked", role, account, caller)
}

func notifyRoleAdminChanged(role, previousAdminRole, newAdminRole string) {
	runtime.Notify("RoleAdminChanged", role, previousAdminRole, newAdminRole)
}

func notifyAdminTransferInitiated(admin, newAdmin interop.Hash160, liveUntil int) {
	runtime.Notify("AdminTransferInitiated", admin, newAdmin, liveUntil)
}

func notifyAdminTransferCompleted(previousAdmin, newAdmin interop.Hash160) {
	runtime.Notify("AdminTransferCompleted", previousAdmin, newAdmin)
}

func notifyAdminRenounced(admin interop.Hash160) {
	runtime.Notify("AdminRenounced", admin)
}
