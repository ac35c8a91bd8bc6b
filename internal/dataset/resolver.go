package dataset

import (
	"strings"
)

// Scope selects a chain and network. Global datasets ignore it.
type Scope struct {
	Chain   string
	Network string
}

// Location is where a dataset is read from.
// Empty locations resolve to no records without touching the filesystem.
type Location struct {
	Kind  Kind
	Path  string
	Empty bool
}

// Resolver maps dataset kinds and scopes onto files below a data root.
type Resolver struct {
	root        string
	moduleChain string
}

// NewResolver creates a resolver for the tree at root.
// moduleChain is the only chain whose modules dataset is read.
func NewResolver(root, moduleChain string) *Resolver {
	return &Resolver{root: root, moduleChain: moduleChain}
}

// Root returns the data root.
func (r *Resolver) Root() string {
	return r.root
}

// ModuleChain returns the chain family that serves modules.
func (r *Resolver) ModuleChain() string {
	return r.moduleChain
}

// Resolve returns the location of kind for scope.
func (r *Resolver) Resolve(kind Kind, scope Scope) (Location, error) {
	if !kind.valid() {
		return Location{}, &UnknownDatasetError{Name: kind.String()}
	}

	spec := kinds[kind]
	if !spec.scoped {
		return Location{Kind: kind, Path: spec.path(r.root, Scope{})}, nil
	}

	if scope.Chain == "" || scope.Network == "" {
		return Location{}, &MissingScopeError{Kind: kind, Scope: scope}
	}
	if err := validateSegment("chain", scope.Chain); err != nil {
		return Location{}, err
	}
	if err := validateSegment("network", scope.Network); err != nil {
		return Location{}, err
	}

	if kind == Modules && scope.Chain != r.moduleChain {
		return Location{Kind: kind, Empty: true}, nil
	}

	return Location{Kind: kind, Path: spec.path(r.root, scope)}, nil
}

// validateSegment rejects values that would leave the chain/network directory.
func validateSegment(field, value string) error {
	if value == "." || value == ".." || strings.ContainsAny(value, `/\`) || strings.ContainsRune(value, 0) {
		return &InvalidScopeError{Field: field, Value: value}
	}
	return nil
}
