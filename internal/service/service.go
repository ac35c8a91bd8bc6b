// Package service answers the API's data questions by combining the dataset loader, the record
// filter, the entity aggregator and the asset normalizer.
package service

import (
	"context"
	"fmt"
	"os"

	"github.com/alleslabs/aldus-api/internal/asset"
	"github.com/alleslabs/aldus-api/internal/dataset"
	"github.com/alleslabs/aldus-api/internal/entity"
	"github.com/alleslabs/aldus-api/internal/logger"
	"github.com/alleslabs/aldus-api/internal/records"
	"github.com/alleslabs/aldus-api/pkg/models"
)

// Service is stateless; every call reads the datasets it needs from disk.
type Service struct {
	loader     *dataset.Loader
	aggregator *entity.Aggregator
	log        *logger.Logger
}

// New creates a service reading from loader.
func New(loader *dataset.Loader, aggregator *entity.Aggregator, log *logger.Logger) *Service {
	return &Service{
		loader:     loader,
		aggregator: aggregator,
		log:        log,
	}
}

func (s *Service) Accounts(ctx context.Context, scope dataset.Scope) ([]models.Account, error) {
	return s.loader.Accounts(ctx, scope)
}

func (s *Service) Account(ctx context.Context, scope dataset.Scope, address string) (models.Account, error) {
	accounts, err := s.loader.Accounts(ctx, scope)
	if err != nil {
		return models.Account{}, err
	}

	account, err := records.First(accounts, records.AccountByAddress(address))
	if err != nil {
		return models.Account{}, fmt.Errorf("account %q: %w", address, err)
	}
	return account, nil
}

func (s *Service) Codes(ctx context.Context, scope dataset.Scope) ([]models.Code, error) {
	return s.loader.Codes(ctx, scope)
}

// Code looks a code up by the id as it appears in the request path.
func (s *Service) Code(ctx context.Context, scope dataset.Scope, rawID string) (models.Code, error) {
	id, err := records.ParseCodeID(rawID)
	if err != nil {
		return models.Code{}, err
	}

	codes, err := s.loader.Codes(ctx, scope)
	if err != nil {
		return models.Code{}, err
	}

	code, err := records.First(codes, records.CodeByID(id))
	if err != nil {
		return models.Code{}, fmt.Errorf("code %d: %w", id, err)
	}
	return code, nil
}

func (s *Service) Contracts(ctx context.Context, scope dataset.Scope) ([]models.Contract, error) {
	return s.loader.Contracts(ctx, scope)
}

func (s *Service) Contract(ctx context.Context, scope dataset.Scope, address string) (models.Contract, error) {
	contracts, err := s.loader.Contracts(ctx, scope)
	if err != nil {
		return models.Contract{}, err
	}

	contract, err := records.First(contracts, records.ContractByAddress(address))
	if err != nil {
		return models.Contract{}, fmt.Errorf("contract %q: %w", address, err)
	}
	return contract, nil
}

// Modules lists modules; chains outside the module chain family always get an empty list.
func (s *Service) Modules(ctx context.Context, scope dataset.Scope) ([]models.Module, error) {
	return s.loader.Modules(ctx, scope)
}

func (s *Service) Module(ctx context.Context, scope dataset.Scope, address, name string) (models.Module, error) {
	modules, err := s.loader.Modules(ctx, scope)
	if err != nil {
		return models.Module{}, err
	}

	module, err := records.First(modules, records.ModuleByAddressAndName(address, name))
	if err != nil {
		return models.Module{}, fmt.Errorf("module %s::%s: %w", address, name, err)
	}
	return module, nil
}

// Assets returns the assets available on chain/network with their local ids.
func (s *Service) Assets(ctx context.Context, scope dataset.Scope) ([]models.Asset, error) {
	raw, err := s.loader.Assets(ctx)
	if err != nil {
		return []models.Asset{}, err
	}
	return asset.Normalize(raw, scope.Chain, scope.Network), nil
}

func (s *Service) GlobalAssets(ctx context.Context) ([]models.RawAsset, error) {
	return s.loader.Assets(ctx)
}

func (s *Service) Chains(ctx context.Context) ([]models.Chain, error) {
	return s.loader.Chains(ctx)
}

func (s *Service) RawEntities(ctx context.Context) ([]models.RawEntity, error) {
	return s.loader.Entities(ctx)
}

func (s *Service) RawEntity(ctx context.Context, slug string) (models.RawEntity, error) {
	entities, err := s.loader.Entities(ctx)
	if err != nil {
		return models.RawEntity{}, err
	}

	e, err := records.First(entities, records.EntityBySlug(slug))
	if err != nil {
		return models.RawEntity{}, fmt.Errorf("entity %q: %w", slug, err)
	}
	return e, nil
}

// Entities returns the entities present on chain/network.
func (s *Service) Entities(ctx context.Context, scope dataset.Scope, opts entity.Options) ([]models.Entity, error) {
	return s.aggregator.All(ctx, scope, opts)
}

func (s *Service) Entity(ctx context.Context, scope dataset.Scope, slug string, opts entity.Options) (models.Entity, error) {
	return s.aggregator.BySlug(ctx, scope, slug, opts)
}

// Health reports whether the data root is reachable.
func (s *Service) Health(_ context.Context) error {
	root := s.loader.Resolver().Root()

	info, err := os.Stat(root)
	if err != nil {
		s.log.Warnw("data root unavailable", "root", root, "error", err)
		return fmt.Errorf("data root unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data root %s is not a directory", root)
	}
	return nil
}
