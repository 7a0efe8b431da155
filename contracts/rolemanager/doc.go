/*
Package rolemanager implements RoleManager contract providing role based
access control to other contracts and off-chain services.

RoleManager keeps a single admin and an arbitrary number of roles. Admin and
holders of role admin roles grant and revoke roles, members of every role may
be enumerated. Admin power is handed over in two steps: the current admin
nominates a successor for a limited number of blocks and the nominee accepts.

Role members are returned in no particular order, the order changes when
members are removed.

# Contract notifications

RoleGranted notification. This notification is produced when a role is
granted to an account.

	RoleGranted
	  - name: role
	    type: String
	  - name: account
	    type: Hash160
	  - name: caller
	    type: Hash160

RoleRevoked notification. This notification is produced when a role is
revoked from an account or renounced by it.

	RoleRevoked
	  - name: role
	    type: String
	  - name: account
	    type: Hash160
	  - name: caller
	    type: Hash160

RoleAdminChanged notification. This notification is produced when the admin
role of a role is changed. Previous admin role is empty if it was not set.

	RoleAdminChanged
	  - name: role
	    type: String
	  - name: previousAdminRole
	    type: String
	  - name: newAdminRole
	    type: String

AdminTransferInitiated notification. This notification is produced when the
admin nominates a successor. Zero liveUntil means the nomination is cancelled.

	AdminTransferInitiated
	  - name: admin
	    type: Hash160
	  - name: newAdmin
	    type: Hash160
	  - name: liveUntil
	    type: Integer

AdminTransferCompleted notification. This notification is produced when the
nominee accepts the admin power.

	AdminTransferCompleted
	  - name: previousAdmin
	    type: Hash160
	  - name: newAdmin
	    type: Hash160

AdminRenounced notification. This notification is produced when the admin
gives up its power without a successor.

	AdminRenounced
	  - name: admin
	    type: Hash160
*/
package rolemanager

/*
Contract storage model.

See accesscontrol package.
*/
