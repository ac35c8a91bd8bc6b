package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/alleslabs/aldus-api/internal/logger"
	"github.com/alleslabs/aldus-api/internal/metrics"
	"github.com/alleslabs/aldus-api/pkg/models"
)

// Loader reads dataset files. Every call reads from disk; nothing is cached between calls.
type Loader struct {
	resolver *Resolver
	log      *logger.Logger
}

// NewLoader creates a loader over the resolver's data tree.
func NewLoader(resolver *Resolver, log *logger.Logger) *Loader {
	return &Loader{resolver: resolver, log: log}
}

// Resolver returns the resolver used to locate files.
func (l *Loader) Resolver() *Resolver {
	return l.resolver
}

// Load resolves kind for scope and decodes it as a list of T.
//
// The result is never nil. When the file is missing or does not decode, Load logs the failure
// and returns an empty list together with a *LoadError, leaving the caller to decide whether
// an empty result is acceptable.
func Load[T any](ctx context.Context, l *Loader, kind Kind, scope Scope) ([]T, error) {
	loc, err := l.resolver.Resolve(kind, scope)
	if err != nil {
		return []T{}, err
	}

	return LoadLocation[T](ctx, l, loc)
}

// LoadLocation decodes an already resolved location as a list of T.
func LoadLocation[T any](ctx context.Context, l *Loader, loc Location) ([]T, error) {
	if loc.Empty {
		return []T{}, nil
	}
	if err := ctx.Err(); err != nil {
		return []T{}, err
	}

	start := time.Now()

	data, err := os.ReadFile(loc.Path)
	if err != nil {
		reason := ReasonUnreadable
		if errors.Is(err, fs.ErrNotExist) {
			reason = ReasonNotFound
		}
		return []T{}, l.fail(loc, reason, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return []T{}, l.fail(loc, ReasonInvalid, err)
	}
	if records == nil {
		records = []T{}
	}

	metrics.DatasetLoadLog(loc.Kind.String(), len(records), time.Since(start))
	l.log.Debugw("dataset loaded", "dataset", loc.Kind.String(), "path", loc.Path, "records", len(records))

	return records, nil
}

func (l *Loader) fail(loc Location, reason LoadReason, err error) error {
	metrics.DatasetLoadErrorInc(loc.Kind.String(), string(reason))
	l.log.Errorw("failed to load dataset",
		"dataset", loc.Kind.String(),
		"path", loc.Path,
		"reason", string(reason),
		"error", err,
	)

	return &LoadError{Kind: loc.Kind, Path: loc.Path, Reason: reason, Err: err}
}

// Typed accessors for each dataset kind.

func (l *Loader) Accounts(ctx context.Context, scope Scope) ([]models.Account, error) {
	return Load[models.Account](ctx, l, Accounts, scope)
}

func (l *Loader) Codes(ctx context.Context, scope Scope) ([]models.Code, error) {
	return Load[models.Code](ctx, l, Codes, scope)
}

func (l *Loader) Contracts(ctx context.Context, scope Scope) ([]models.Contract, error) {
	return Load[models.Contract](ctx, l, Contracts, scope)
}

func (l *Loader) Modules(ctx context.Context, scope Scope) ([]models.Module, error) {
	return Load[models.Module](ctx, l, Modules, scope)
}

func (l *Loader) Assets(ctx context.Context) ([]models.RawAsset, error) {
	return Load[models.RawAsset](ctx, l, Assets, Scope{})
}

func (l *Loader) Chains(ctx context.Context) ([]models.Chain, error) {
	return Load[models.Chain](ctx, l, Chains, Scope{})
}

func (l *Loader) Entities(ctx context.Context) ([]models.RawEntity, error) {
	return Load[models.RawEntity](ctx, l, Entities, Scope{})
}
