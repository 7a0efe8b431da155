/*
Package contracts reads compiled RoleManager, VotingPower and Governance
contracts.

Compiled contracts are expected in the per-contract directories named after
the source packages:

	rolemanager/contract.nef
	rolemanager/manifest.json
	votingpower/contract.nef
	votingpower/manifest.json
	governance/contract.nef
	governance/manifest.json
*/
package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
)

const (
	roleManagerDir = "rolemanager"
	votingPowerDir = "votingpower"
	governanceDir  = "governance"

	nefName      = "contract.nef"
	manifestName = "manifest.json"
)

// Contract groups information about compiled Neo contract.
type Contract struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// Set groups all contracts of the governance system.
type Set struct {
	RoleManager Contract
	VotingPower Contract
	Governance  Contract
}

var (
	errInvalidNEF      = errors.New("invalid NEF")
	errInvalidManifest = errors.New("invalid manifest")
)

// Read reads all contracts from the given file system, os.DirFS can be used
// for a local directory.
func Read(fsys fs.FS) (Set, error) {
	var (
		res Set
		err error
	)

	for _, x := range []struct {
		dir string
		c   *Contract
	}{
		{roleManagerDir, &res.RoleManager},
		{votingPowerDir, &res.VotingPower},
		{governanceDir, &res.Governance},
	} {
		*x.c, err = readContractFromDir(fsys, x.dir)
		if err != nil {
			return res, fmt.Errorf("read contract %s: %w", x.dir, err)
		}
	}

	return res, nil
}

func readContractFromDir(fsys fs.FS, dir string) (Contract, error) {
	var c Contract

	// fs.FS paths are always slash-separated, so filepath.Join() is not
	// applicable.
	fNEF, err := fsys.Open(dir + "/" + nefName)
	if err != nil {
		return c, fmt.Errorf("open NEF: %w", err)
	}
	defer fNEF.Close()

	fManifest, err := fsys.Open(dir + "/" + manifestName)
	if err != nil {
		return c, fmt.Errorf("open manifest: %w", err)
	}
	defer fManifest.Close()

	bReader := io.NewBinReaderFromIO(fNEF)
	c.NEF.DecodeBinary(bReader)
	if bReader.Err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidNEF, bReader.Err)
	}

	err = json.NewDecoder(fManifest).Decode(&c.Manifest)
	if err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidManifest, err)
	}

	return c, nil
}
