// Package rolemanager contains RPC wrappers for RoleManager contract.
package rolemanager

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// RoleGrantedEvent represents "RoleGranted" event emitted by the contract.
type RoleGrantedEvent struct {
	Role string
	Account util.Uint160
	Caller util.Uint160
}

// RoleRevokedEvent represents "RoleRevoked" event emitted by the contract.
type RoleRevokedEvent struct {
	Role string
	Account util.Uint160
	Caller util.Uint160
}

// RoleAdminChangedEvent represents "RoleAdminChanged" event emitted by the contract.
type RoleAdminChangedEvent struct {
	Role string
	PreviousAdminRole string
	NewAdminRole string
}

// AdminTransferInitiatedEvent represents "AdminTransferInitiated" event emitted by the contract.
type AdminTransferInitiatedEvent struct {
	Admin util.Uint160
	NewAdmin util.Uint160
	LiveUntil *big.Int
}

// AdminTransferCompletedEvent represents "AdminTransferCompleted" event emitted by the contract.
type AdminTransferCompletedEvent struct {
	PreviousAdmin util.Uint160
	NewAdmin util.Uint160
}

// AdminRenouncedEvent represents "AdminRenounced" event emitted by the contract.
type AdminRenouncedEvent struct {
	Admin util.Uint160
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// GetExistingRoles invokes `getExistingRoles` method of contract.
func (c *ContractReader) GetExistingRoles() ([]string, error) {
	return unwrap.ArrayOfUTF8Strings(c.invoker.Call(c.hash, "getExistingRoles"))
}

// GetRoleMember invokes `getRoleMember` method of contract.
func (c *ContractReader) GetRoleMember(role string, index *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "getRoleMember", role, index))
}

// GetRoleMemberCount invokes `getRoleMemberCount` method of contract.
func (c *ContractReader) GetRoleMemberCount(role string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getRoleMemberCount", role))
}

// RoleMembers invokes `roleMembers` method of contract.
func (c *ContractReader) RoleMembers(role string) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "roleMembers", role))
}

// RoleMembersExpanded is similar to RoleMembers (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) RoleMembersExpanded(role string, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "roleMembers", _numOfIteratorItems, role))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// AcceptAdminTransfer creates a transaction invoking `acceptAdminTransfer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AcceptAdminTransfer(caller util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "acceptAdminTransfer", caller)
}

// AcceptAdminTransferTransaction creates a transaction invoking `acceptAdminTransfer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AcceptAdminTransferTransaction(caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "acceptAdminTransfer", caller)
}

// AcceptAdminTransferUnsigned creates a transaction invoking `acceptAdminTransfer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AcceptAdminTransferUnsigned(caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "acceptAdminTransfer", nil, caller)
}

// GrantRole creates a transaction invoking `grantRole` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) GrantRole(caller util.Uint160, account util.Uint160, role string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "grantRole", caller, account, role)
}

// GrantRoleTransaction creates a transaction invoking `grantRole` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) GrantRoleTransaction(caller util.Uint160, account util.Uint160, role string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "grantRole", caller, account, role)
}

// GrantRoleUnsigned creates a transaction invoking `grantRole` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) GrantRoleUnsigned(caller util.Uint160, account util.Uint160, role string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "grantRole", nil, caller, account, role)
}

// RemoveRoleAccountsCount creates a transaction invoking `removeRoleAccountsCount` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveRoleAccountsCount(role string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeRoleAccountsCount", role)
}

// RemoveRoleAccountsCountTransaction creates a transaction invoking `removeRoleAccountsCount` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveRoleAccountsCountTransaction(role string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeRoleAccountsCount", role)
}

// RemoveRoleAccountsCountUnsigned creates a transaction invoking `removeRoleAccountsCount` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveRoleAccountsCountUnsigned(role string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeRoleAccountsCount", nil, role)
}

// RemoveRoleAdmin creates a transaction invoking `removeRoleAdmin` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveRoleAdmin(role string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeRoleAdmin", role)
}

// RemoveRoleAdminTransaction creates a transaction invoking `removeRoleAdmin` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveRoleAdminTransaction(role string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeRoleAdmin", role)
}

// RemoveRoleAdminUnsigned creates a transaction invoking `removeRoleAdmin` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveRoleAdminUnsigned(role string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeRoleAdmin", nil, role)
}

// RenounceAdmin creates a transaction invoking `renounceAdmin` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RenounceAdmin() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "renounceAdmin")
}

// RenounceAdminTransaction creates a transaction invoking `renounceAdmin` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RenounceAdminTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "renounceAdmin")
}

// RenounceAdminUnsigned creates a transaction invoking `renounceAdmin` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RenounceAdminUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "renounceAdmin", nil)
}

// RenounceRole creates a transaction invoking `renounceRole` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RenounceRole(caller util.Uint160, role string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "renounceRole", caller, role)
}

// RenounceRoleTransaction creates a transaction invoking `renounceRole` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RenounceRoleTransaction(caller util.Uint160, role string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "renounceRole", caller, role)
}

// RenounceRoleUnsigned creates a transaction invoking `renounceRole` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RenounceRoleUnsigned(caller util.Uint160, role string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "renounceRole", nil, caller, role)
}

// RevokeRole creates a transaction invoking `revokeRole` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RevokeRole(caller util.Uint160, account util.Uint160, role string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "revokeRole", caller, account, role)
}

// RevokeRoleTransaction creates a transaction invoking `revokeRole` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RevokeRoleTransaction(caller util.Uint160, account util.Uint160, role string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "revokeRole", caller, account, role)
}

// RevokeRoleUnsigned creates a transaction invoking `revokeRole` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RevokeRoleUnsigned(caller util.Uint160, account util.Uint160, role string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "revokeRole", nil, caller, account, role)
}

// SetRoleAdmin creates a transaction invoking `setRoleAdmin` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetRoleAdmin(role string, adminRole string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setRoleAdmin", role, adminRole)
}

// SetRoleAdminTransaction creates a transaction invoking `setRoleAdmin` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetRoleAdminTransaction(role string, adminRole string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setRoleAdmin", role, adminRole)
}

// SetRoleAdminUnsigned creates a transaction invoking `setRoleAdmin` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetRoleAdminUnsigned(role string, adminRole string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setRoleAdmin", nil, role, adminRole)
}

// TransferAdminRole creates a transaction invoking `transferAdminRole` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferAdminRole(newAdmin util.Uint160, liveUntil *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferAdminRole", newAdmin, liveUntil)
}

// TransferAdminRoleTransaction creates a transaction invoking `transferAdminRole` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferAdminRoleTransaction(newAdmin util.Uint160, liveUntil *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferAdminRole", newAdmin, liveUntil)
}

// TransferAdminRoleUnsigned creates a transaction invoking `transferAdminRole` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferAdminRoleUnsigned(newAdmin util.Uint160, liveUntil *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferAdminRole", nil, newAdmin, liveUntil)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// RoleGrantedEventsFromApplicationLog retrieves a set of all emitted events
// with "RoleGranted" name from the provided [result.ApplicationLog].
func RoleGrantedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RoleGrantedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RoleGrantedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RoleGranted" {
				continue
			}
			event := new(RoleGrantedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RoleGrantedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RoleGrantedEvent or
// returns an error if it's not possible to do to so.
func (e *RoleGrantedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Role, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Role: %w", err)
	}

	index++
	e.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	e.Caller, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Caller: %w", err)
	}

	return nil
}

// RoleRevokedEventsFromApplicationLog retrieves a set of all emitted events
// with "RoleRevoked" name from the provided [result.ApplicationLog].
func RoleRevokedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RoleRevokedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RoleRevokedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RoleRevoked" {
				continue
			}
			event := new(RoleRevokedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RoleRevokedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RoleRevokedEvent or
// returns an error if it's not possible to do to so.
func (e *RoleRevokedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Role, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Role: %w", err)
	}

	index++
	e.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	e.Caller, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Caller: %w", err)
	}

	return nil
}

// RoleAdminChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "RoleAdminChanged" name from the provided [result.ApplicationLog].
func RoleAdminChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RoleAdminChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RoleAdminChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RoleAdminChanged" {
				continue
			}
			event := new(RoleAdminChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RoleAdminChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RoleAdminChangedEvent or
// returns an error if it's not possible to do to so.
func (e *RoleAdminChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Role, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Role: %w", err)
	}

	index++
	e.PreviousAdminRole, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field PreviousAdminRole: %w", err)
	}

	index++
	e.NewAdminRole, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field NewAdminRole: %w", err)
	}

	return nil
}

// AdminTransferInitiatedEventsFromApplicationLog retrieves a set of all emitted events
// with "AdminTransferInitiated" name from the provided [result.ApplicationLog].
func AdminTransferInitiatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AdminTransferInitiatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AdminTransferInitiatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AdminTransferInitiated" {
				continue
			}
			event := new(AdminTransferInitiatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AdminTransferInitiatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AdminTransferInitiatedEvent or
// returns an error if it's not possible to do to so.
func (e *AdminTransferInitiatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Admin, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Admin: %w", err)
	}

	index++
	e.NewAdmin, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field NewAdmin: %w", err)
	}

	index++
	e.LiveUntil, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field LiveUntil: %w", err)
	}

	return nil
}

// AdminTransferCompletedEventsFromApplicationLog retrieves a set of all emitted events
// with "AdminTransferCompleted" name from the provided [result.ApplicationLog].
func AdminTransferCompletedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AdminTransferCompletedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AdminTransferCompletedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AdminTransferCompleted" {
				continue
			}
			event := new(AdminTransferCompletedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AdminTransferCompletedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AdminTransferCompletedEvent or
// returns an error if it's not possible to do to so.
func (e *AdminTransferCompletedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.PreviousAdmin, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field PreviousAdmin: %w", err)
	}

	index++
	e.NewAdmin, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field NewAdmin: %w", err)
	}

	return nil
}

// AdminRenouncedEventsFromApplicationLog retrieves a set of all emitted events
// with "AdminRenounced" name from the provided [result.ApplicationLog].
func AdminRenouncedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AdminRenouncedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AdminRenouncedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AdminRenounced" {
				continue
			}
			event := new(AdminRenouncedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AdminRenouncedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AdminRenouncedEvent or
// returns an error if it's not possible to do to so.
func (e *AdminRenouncedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Admin, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Admin: %w", err)
	}

	return nil
}
