// Package records implements exact-match filtering over loaded dataset records.
package records

import (
	"fmt"
	"strconv"

	"github.com/alleslabs/aldus-api/internal/dataset"
	"github.com/alleslabs/aldus-api/pkg/models"
)

// ErrNotFound is returned by First when nothing matches.
var ErrNotFound = dataset.ErrNotFound

// Predicate selects records.
type Predicate[T any] func(T) bool

// Where returns every record matching pred in source order. The result is never nil.
func Where[T any](items []T, pred Predicate[T]) []T {
	out := make([]T, 0)
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// First returns the first record matching pred, or ErrNotFound.
func First[T any](items []T, pred Predicate[T]) (T, error) {
	for _, item := range items {
		if pred(item) {
			return item, nil
		}
	}

	var zero T
	return zero, ErrNotFound
}

// InvalidKeyError is returned when a lookup key has the wrong shape, e.g. a non-numeric code id.
type InvalidKeyError struct {
	Key   string
	Value string
	Err   error
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid %s %q: must be an integer", e.Key, e.Value)
}

func (e *InvalidKeyError) Unwrap() error {
	return e.Err
}

// ParseCodeID converts the external representation of a code id into its integer form.
func ParseCodeID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &InvalidKeyError{Key: "code id", Value: raw, Err: err}
	}
	return id, nil
}

// Slugged is implemented by every record that can be joined to an entity.
type Slugged interface {
	models.Account | models.Code | models.Contract | models.Module
}

// BySlug matches records owned by the entity slug.
func BySlug[T Slugged](slug string) Predicate[T] {
	return func(item T) bool {
		return slugOf(item) == slug
	}
}

func slugOf[T Slugged](item T) string {
	switch v := any(item).(type) {
	case models.Account:
		return v.Slug
	case models.Code:
		return v.Slug
	case models.Contract:
		return v.Slug
	case models.Module:
		return v.Slug
	}
	return ""
}

// AccountByAddress matches an account address exactly.
func AccountByAddress(address string) Predicate[models.Account] {
	return func(a models.Account) bool { return a.Address == address }
}

// CodeByID matches a code id.
func CodeByID(id int64) Predicate[models.Code] {
	return func(c models.Code) bool { return c.ID == id }
}

// ContractByAddress matches a contract address exactly.
func ContractByAddress(address string) Predicate[models.Contract] {
	return func(c models.Contract) bool { return c.Address == address }
}

// ModuleByAddressAndName matches a module on both its address and name.
func ModuleByAddressAndName(address, name string) Predicate[models.Module] {
	return func(m models.Module) bool { return m.Address == address && m.Name == name }
}

// EntityBySlug matches an entity slug.
func EntityBySlug(slug string) Predicate[models.RawEntity] {
	return func(e models.RawEntity) bool { return e.Slug == slug }
}
