package dataset

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a single-record lookup matches nothing.
var ErrNotFound = errors.New("record not found")

// LoadReason classifies why a dataset could not be loaded.
type LoadReason string

const (
	ReasonNotFound   LoadReason = "not_found"
	ReasonUnreadable LoadReason = "unreadable"
	ReasonInvalid    LoadReason = "invalid"
)

// LoadError is returned when a dataset file is missing or does not decode into its record type.
type LoadError struct {
	Kind   Kind
	Path   string
	Reason LoadReason
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s dataset (%s): %v", e.Kind, e.Reason, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// MissingScopeError is returned when a chain scoped dataset is resolved without chain or network.
type MissingScopeError struct {
	Kind  Kind
	Scope Scope
}

func (e *MissingScopeError) Error() string {
	return fmt.Sprintf("dataset %s requires chain and network (chain=%q, network=%q)",
		e.Kind, e.Scope.Chain, e.Scope.Network)
}

// InvalidScopeError is returned when a chain or network segment cannot name a directory
// inside the data root.
type InvalidScopeError struct {
	Field string
	Value string
}

func (e *InvalidScopeError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

// UnknownDatasetError is returned for a dataset name or Kind outside the known set.
type UnknownDatasetError struct {
	Name string
}

func (e *UnknownDatasetError) Error() string {
	return fmt.Sprintf("unknown dataset %q", e.Name)
}
