// Package entity builds chain/network scoped entity views by joining the entities dataset with
// the accounts, codes, contracts and modules that share an entity's slug.
package entity

import (
	"context"
	"fmt"

	"github.com/alleslabs/aldus-api/internal/dataset"
	"github.com/alleslabs/aldus-api/internal/logger"
	"github.com/alleslabs/aldus-api/internal/metrics"
	"github.com/alleslabs/aldus-api/internal/records"
	"github.com/alleslabs/aldus-api/pkg/models"
)

const logoPath = "/assets/entities/"

// Source provides the datasets an aggregation reads. *dataset.Loader implements it.
type Source interface {
	Entities(ctx context.Context) ([]models.RawEntity, error)
	Accounts(ctx context.Context, scope dataset.Scope) ([]models.Account, error)
	Codes(ctx context.Context, scope dataset.Scope) ([]models.Code, error)
	Contracts(ctx context.Context, scope dataset.Scope) ([]models.Contract, error)
	Modules(ctx context.Context, scope dataset.Scope) ([]models.Module, error)
}

// Options selects which relations are attached to the entity view.
type Options struct {
	Accounts  bool
	Codes     bool
	Contracts bool
	Modules   bool
}

// Aggregator composes entity views.
type Aggregator struct {
	src          Source
	assetBaseURL string
	log          *logger.Logger
}

// NewAggregator creates an aggregator. assetBaseURL prefixes entity logos and must not end in '/'.
func NewAggregator(src Source, assetBaseURL string, log *logger.Logger) *Aggregator {
	return &Aggregator{src: src, assetBaseURL: assetBaseURL, log: log}
}

// BySlug returns the entity with the given slug. Details are always returned, even when the
// entity owns nothing on chain/network; relations are attached only when requested.
func (a *Aggregator) BySlug(ctx context.Context, scope dataset.Scope, slug string, opts Options) (models.Entity, error) {
	entities, err := a.src.Entities(ctx)
	if err != nil {
		return models.Entity{}, err
	}

	raw, err := records.First(entities, records.EntityBySlug(slug))
	if err != nil {
		return models.Entity{}, fmt.Errorf("entity %q: %w", slug, err)
	}

	rel, err := a.loadRelations(ctx, scope, opts)
	if err != nil {
		return models.Entity{}, err
	}

	return a.compose(raw, rel.ownedBy(slug), opts), nil
}

// All returns every entity that owns at least one account, code, contract or module on
// chain/network, in entities.json order. Entities without any such record are left out
// whatever opts requests, unlike BySlug which always answers.
func (a *Aggregator) All(ctx context.Context, scope dataset.Scope, opts Options) ([]models.Entity, error) {
	entities, err := a.src.Entities(ctx)
	if err != nil {
		return nil, err
	}

	rel, err := a.loadRelations(ctx, scope, Options{Accounts: true, Codes: true, Contracts: true, Modules: true})
	if err != nil {
		return nil, err
	}

	out := make([]models.Entity, 0, len(entities))
	for _, raw := range entities {
		owned := rel.ownedBy(raw.Slug)
		if owned.empty() {
			metrics.EntityAggregatedInc(false)
			continue
		}

		metrics.EntityAggregatedInc(true)
		out = append(out, a.compose(raw, owned, opts))
	}

	a.log.Debugw("entities aggregated",
		"chain", scope.Chain,
		"network", scope.Network,
		"total", len(entities),
		"included", len(out),
	)

	return out, nil
}

// Details projects the profile part of a raw entity.
func (a *Aggregator) Details(raw models.RawEntity) models.EntityDetails {
	socials := raw.Socials
	if socials == nil {
		socials = []models.Social{}
	}

	return models.EntityDetails{
		Name:        raw.Name,
		Description: raw.Description,
		Website:     raw.Website,
		Logo:        a.assetBaseURL + logoPath + raw.Logo,
		Github:      raw.Github,
		Socials:     socials,
	}
}

func (a *Aggregator) compose(raw models.RawEntity, owned relations, opts Options) models.Entity {
	e := models.Entity{
		Slug:    raw.Slug,
		Details: a.Details(raw),
	}
	if opts.Accounts {
		e.Accounts = owned.accounts
	}
	if opts.Codes {
		e.Codes = owned.codes
	}
	if opts.Contracts {
		e.Contracts = owned.contracts
	}
	if opts.Modules {
		e.Modules = owned.modules
	}
	return e
}

// relations holds the related records of one chain/network.
type relations struct {
	loaded    Options
	accounts  []models.Account
	codes     []models.Code
	contracts []models.Contract
	modules   []models.Module
}

func (a *Aggregator) loadRelations(ctx context.Context, scope dataset.Scope, opts Options) (relations, error) {
	var err error
	rel := relations{loaded: opts}

	if opts.Accounts {
		if rel.accounts, err = a.src.Accounts(ctx, scope); err != nil {
			return relations{}, err
		}
	}
	if opts.Codes {
		if rel.codes, err = a.src.Codes(ctx, scope); err != nil {
			return relations{}, err
		}
	}
	if opts.Contracts {
		if rel.contracts, err = a.src.Contracts(ctx, scope); err != nil {
			return relations{}, err
		}
	}
	if opts.Modules {
		if rel.modules, err = a.src.Modules(ctx, scope); err != nil {
			return relations{}, err
		}
	}

	return rel, nil
}

// ownedBy filters every loaded relation down to slug. Relations that were not loaded
// stay nil.
func (r relations) ownedBy(slug string) relations {
	owned := relations{loaded: r.loaded}
	if r.loaded.Accounts {
		owned.accounts = records.Where(r.accounts, records.BySlug[models.Account](slug))
	}
	if r.loaded.Codes {
		owned.codes = records.Where(r.codes, records.BySlug[models.Code](slug))
	}
	if r.loaded.Contracts {
		owned.contracts = records.Where(r.contracts, records.BySlug[models.Contract](slug))
	}
	if r.loaded.Modules {
		owned.modules = records.Where(r.modules, records.BySlug[models.Module](slug))
	}
	return owned
}

func (r relations) empty() bool {
	return len(r.accounts) == 0 && len(r.codes) == 0 && len(r.contracts) == 0 && len(r.modules) == 0
}
