package common

import "github.com/nspcc-dev/neo-go/pkg/interop/native/std"

// Version of the contract suite: major*1_000_000 + minor*1_000 + patch. It
// must match the VERSION file.
const Version = 0*1_000_000 + 1*1_000 + 0

const (
	// ErrAlreadyUpdated is thrown by CheckVersion when the contract is
	// updated to the version it already has.
	ErrAlreadyUpdated = "contract is already of the latest version"

	// ErrDowngrade is thrown by CheckVersion when the contract is updated
	// to an older version.
	ErrDowngrade = "contract downgrade is not supported"
)

// CheckVersion panics unless the contract of the given version can be
// updated to the current one. All previous versions share the storage
// layout, so no migration is required.
func CheckVersion(from int) {
	if from == Version {
		panic(ErrAlreadyUpdated + ": " + std.Itoa10(Version))
	}
	if from > Version {
		panic(ErrDowngrade + ": from " + std.Itoa10(from) + " to " + std.Itoa10(Version))
	}
}

// AppendVersion appends current contract version to the update data, so
// _deploy of the new contract code receives the version it's updated from.
func AppendVersion(data any) []any {
	if data == nil {
		return []any{Version}
	}
	return append(data.([]any), Version)
}
