// Package target is a test contract called by executed governance proposals.
package target

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type Call struct {
	From  interop.Hash160
	Value int
	Data  any
}

func SetValue(value int, data any) {
	storage.Put(storage.GetContext(), "key", std.Serialize(Call{
		From:  runtime.GetCallingScriptHash(),
		Value: value,
		Data:  data,
	}))
}

func Fail() {
	panic("target failure")
}

func Get() Call {
	val := storage.Get(storage.GetReadOnlyContext(), "key")
	if val == nil {
		return Call{}
	}
	return std.Deserialize(val.([]byte)).(Call)
}
