package dataset

import (
	"fmt"
	"path/filepath"
)

// Kind enumerates the datasets the service knows how to locate.
type Kind uint8

const (
	Accounts Kind = iota
	Codes
	Contracts
	Modules
	Assets
	Chains
	Entities

	numKinds
)

// kindSpec describes how a Kind maps onto the data tree.
type kindSpec struct {
	name   string
	scoped bool
	path   func(root string, scope Scope) string
}

func scopedFile(name string) func(string, Scope) string {
	return func(root string, scope Scope) string {
		return filepath.Join(root, scope.Chain, scope.Network, name+".json")
	}
}

func globalFile(name string) func(string, Scope) string {
	return func(root string, _ Scope) string {
		return filepath.Join(root, name+".json")
	}
}

// kinds is indexed by Kind; the array length makes a missing entry a compile error.
var kinds = [numKinds]kindSpec{
	Accounts:  {name: "accounts", scoped: true, path: scopedFile("accounts")},
	Codes:     {name: "codes", scoped: true, path: scopedFile("codes")},
	Contracts: {name: "contracts", scoped: true, path: scopedFile("contracts")},
	Modules:   {name: "modules", scoped: true, path: scopedFile("modules")},
	Assets:    {name: "assets", path: globalFile("assets")},
	Chains:    {name: "chains", path: globalFile("chains")},
	Entities:  {name: "entities", path: globalFile("entities")},
}

// AllKinds lists every dataset kind in declaration order.
func AllKinds() []Kind {
	out := make([]Kind, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}

// ScopedKinds lists the kinds stored per chain and network.
func ScopedKinds() []Kind {
	var out []Kind
	for _, k := range AllKinds() {
		if k.Scoped() {
			out = append(out, k)
		}
	}
	return out
}

// ParseKind converts a dataset name into a Kind.
func ParseKind(name string) (Kind, error) {
	for k, spec := range kinds {
		if spec.name == name {
			return Kind(k), nil
		}
	}
	return 0, &UnknownDatasetError{Name: name}
}

func (k Kind) valid() bool {
	return k < numKinds
}

// String returns the dataset name, which is also its file stem.
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kinds[k].name
}

// Scoped reports whether the dataset is stored per chain and network.
func (k Kind) Scoped() bool {
	return k.valid() && kinds[k].scoped
}
