package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alleslabs/aldus-api/internal/dataset"
	"github.com/alleslabs/aldus-api/internal/entity"
	"github.com/alleslabs/aldus-api/internal/logger"
	"github.com/alleslabs/aldus-api/internal/records"
	"github.com/alleslabs/aldus-api/internal/testutil"
	"github.com/alleslabs/aldus-api/pkg/models"
	"github.com/stretchr/testify/require"
)

var (
	initia = dataset.Scope{Chain: testutil.ModuleChain, Network: testutil.ModuleNetwork}
	terra  = dataset.Scope{Chain: testutil.OtherChain, Network: testutil.OtherNetwork}
)

func newTestService(t *testing.T, root string) *Service {
	t.Helper()

	log := logger.NewNopLogger()
	loader := dataset.NewLoader(dataset.NewResolver(root, testutil.ModuleChain), log)
	return New(loader, entity.NewAggregator(loader, testutil.AssetBaseURL, log), log)
}

func TestService_SingleLookups(t *testing.T) {
	t.Parallel()

	root, f := testutil.NewDataTree(t)
	svc := newTestService(t, root)
	ctx := context.Background()

	account, err := svc.Account(ctx, initia, "init1faucet")
	require.NoError(t, err)
	require.Equal(t, f.InitiaAccounts[2], account)

	code, err := svc.Code(ctx, terra, "7")
	require.NoError(t, err)
	require.Equal(t, f.TerraCodes[1], code)

	contract, err := svc.Contract(ctx, terra, "terra1vault")
	require.NoError(t, err)
	require.Equal(t, f.TerraContracts[1], contract)

	module, err := svc.Module(ctx, initia, "0x1", "dex")
	require.NoError(t, err)
	require.Equal(t, f.InitiaModules[1], module)

	raw, err := svc.RawEntity(ctx, "dormant")
	require.NoError(t, err)
	require.Equal(t, f.Entities[2], raw)
}

func TestService_NotFound(t *testing.T) {
	t.Parallel()

	root, _ := testutil.NewDataTree(t)
	svc := newTestService(t, root)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{"account on other network", func() error { _, err := svc.Account(ctx, terra, "init1faucet"); return err }},
		{"unknown code", func() error { _, err := svc.Code(ctx, initia, "99"); return err }},
		{"unknown contract", func() error { _, err := svc.Contract(ctx, initia, "terra1vault"); return err }},
		{"module name mismatch", func() error { _, err := svc.Module(ctx, initia, "0x1", "swap"); return err }},
		{"module off module chain", func() error { _, err := svc.Module(ctx, terra, "0xdead", "ghost"); return err }},
		{"unknown raw entity", func() error { _, err := svc.RawEntity(ctx, "nobody"); return err }},
		{"unknown entity", func() error { _, err := svc.Entity(ctx, initia, "nobody", entity.Options{}); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, tt.call(), records.ErrNotFound)
		})
	}
}

func TestService_CodeIDMustBeInteger(t *testing.T) {
	t.Parallel()

	root, _ := testutil.NewDataTree(t)
	svc := newTestService(t, root)

	for _, raw := range []string{"abc", "1.5", "", "0x1"} {
		_, err := svc.Code(context.Background(), terra, raw)
		var keyErr *records.InvalidKeyError
		require.ErrorAs(t, err, &keyErr, raw)
	}
}

func TestService_Lists(t *testing.T) {
	t.Parallel()

	root, f := testutil.NewDataTree(t)
	svc := newTestService(t, root)
	ctx := context.Background()

	modules, err := svc.Modules(ctx, terra)
	require.NoError(t, err)
	require.Equal(t, []models.Module{}, modules)

	contracts, err := svc.Contracts(ctx, initia)
	require.NoError(t, err)
	require.Equal(t, []models.Contract{}, contracts)

	assets, err := svc.Assets(ctx, terra)
	require.NoError(t, err)
	require.Len(t, assets, 2)
	require.Equal(t, "uluna", assets[0].ID)
	require.Equal(t, "ibc/USDC-TERRA", assets[1].ID)

	global, err := svc.GlobalAssets(ctx)
	require.NoError(t, err)
	require.Equal(t, f.Assets, global)

	chains, err := svc.Chains(ctx)
	require.NoError(t, err)
	require.Len(t, chains, 2)

	entities, err := svc.Entities(ctx, terra, entity.Options{Contracts: true})
	require.NoError(t, err)
	require.Len(t, entities, 1)
	require.Equal(t, f.TerraContracts, entities[0].Contracts)
}

func TestService_LoadFailureEscalates(t *testing.T) {
	t.Parallel()

	root, _ := testutil.NewDataTree(t)
	svc := newTestService(t, root)
	require.NoError(t, os.Remove(filepath.Join(root, "assets.json")))

	assets, err := svc.Assets(context.Background(), initia)
	var loadErr *dataset.LoadError
	require.ErrorAs(t, err, &loadErr)
	require.Equal(t, dataset.ReasonNotFound, loadErr.Reason)
	require.NotNil(t, assets)
	require.Empty(t, assets)
}

func TestService_Health(t *testing.T) {
	t.Parallel()

	root, _ := testutil.NewDataTree(t)
	require.NoError(t, newTestService(t, root).Health(context.Background()))

	missing := filepath.Join(t.TempDir(), "gone")
	require.Error(t, newTestService(t, missing).Health(context.Background()))

	file := filepath.Join(root, "entities.json")
	require.Error(t, newTestService(t, file).Health(context.Background()))
}
