package entity

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alleslabs/aldus-api/internal/dataset"
	"github.com/alleslabs/aldus-api/internal/logger"
	"github.com/alleslabs/aldus-api/internal/testutil"
	"github.com/alleslabs/aldus-api/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	initia = dataset.Scope{Chain: testutil.ModuleChain, Network: testutil.ModuleNetwork}
	terra  = dataset.Scope{Chain: testutil.OtherChain, Network: testutil.OtherNetwork}
	all    = Options{Accounts: true, Codes: true, Contracts: true, Modules: true}
)

func newTestAggregator(t *testing.T) (*Aggregator, string, testutil.Fixture) {
	t.Helper()

	root, f := testutil.NewDataTree(t)
	loader := dataset.NewLoader(dataset.NewResolver(root, testutil.ModuleChain), logger.NewNopLogger())
	return NewAggregator(loader, testutil.AssetBaseURL, logger.NewNopLogger()), root, f
}

func slugs(entities []models.Entity) []string {
	out := make([]string, 0, len(entities))
	for _, e := range entities {
		out = append(out, e.Slug)
	}
	return out
}

func TestAggregator_Details(t *testing.T) {
	t.Parallel()

	agg, _, f := newTestAggregator(t)

	details := agg.Details(f.Entities[0])
	require.Equal(t, "Initia Labs", details.Name)
	require.Equal(t, "https://assets.example.com/assets/entities/initia.png", details.Logo)
	require.Equal(t, f.Entities[0].Socials, details.Socials)

	noSocials := agg.Details(models.RawEntity{Slug: "x", Logo: "x.png"})
	require.NotNil(t, noSocials.Socials)
	require.Empty(t, noSocials.Socials)
}

func TestAggregator_BySlug(t *testing.T) {
	t.Parallel()

	agg, _, f := newTestAggregator(t)
	ctx := context.Background()

	t.Run("details only", func(t *testing.T) {
		t.Parallel()

		e, err := agg.BySlug(ctx, initia, "initia-labs", Options{})
		require.NoError(t, err)
		require.Equal(t, "initia-labs", e.Slug)
		require.Nil(t, e.Accounts)
		require.Nil(t, e.Codes)
		require.Nil(t, e.Contracts)
		require.Nil(t, e.Modules)

		body, err := json.Marshal(e)
		require.NoError(t, err)
		require.NotContains(t, string(body), `"accounts"`)
		require.NotContains(t, string(body), `"modules"`)
	})

	t.Run("selected relations", func(t *testing.T) {
		t.Parallel()

		e, err := agg.BySlug(ctx, initia, "initia-labs", Options{Accounts: true, Modules: true})
		require.NoError(t, err)
		require.Equal(t, []models.Account{f.InitiaAccounts[0], f.InitiaAccounts[2]}, e.Accounts)
		require.Equal(t, f.InitiaModules, e.Modules)
		require.Nil(t, e.Codes)
		require.Nil(t, e.Contracts)
	})

	t.Run("requested but empty renders as array", func(t *testing.T) {
		t.Parallel()

		e, err := agg.BySlug(ctx, initia, "initia-labs", Options{Contracts: true})
		require.NoError(t, err)
		require.NotNil(t, e.Contracts)
		require.Empty(t, e.Contracts)

		body, err := json.Marshal(e)
		require.NoError(t, err)
		require.Contains(t, string(body), `"contracts":[]`)
	})

	t.Run("entity without presence still answers", func(t *testing.T) {
		t.Parallel()

		e, err := agg.BySlug(ctx, terra, "dormant", all)
		require.NoError(t, err)
		require.Equal(t, "Dormant", e.Details.Name)
		require.Empty(t, e.Accounts)
		require.Empty(t, e.Codes)
		require.Empty(t, e.Contracts)
		require.Empty(t, e.Modules)
	})

	t.Run("modules never served off the module chain", func(t *testing.T) {
		t.Parallel()

		e, err := agg.BySlug(ctx, terra, "alleslabs", Options{Modules: true, Contracts: true})
		require.NoError(t, err)
		require.NotNil(t, e.Modules)
		require.Empty(t, e.Modules)
		require.Equal(t, f.TerraContracts, e.Contracts)
	})

	t.Run("unknown slug", func(t *testing.T) {
		t.Parallel()

		_, err := agg.BySlug(ctx, initia, "nobody", all)
		require.ErrorIs(t, err, dataset.ErrNotFound)
	})
}

func TestAggregator_All(t *testing.T) {
	t.Parallel()

	agg, _, f := newTestAggregator(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		scope dataset.Scope
		opts  Options
		want  []string
	}{
		{name: "initia with all relations", scope: initia, opts: all, want: []string{"initia-labs", "alleslabs"}},
		{name: "initia without relations", scope: initia, opts: Options{}, want: []string{"initia-labs", "alleslabs"}},
		{name: "terra only has alleslabs", scope: terra, opts: Options{Accounts: true}, want: []string{"alleslabs"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := agg.All(ctx, tt.scope, tt.opts)
			require.NoError(t, err)
			require.NotNil(t, got)
			require.Equal(t, tt.want, slugs(got))
		})
	}

	t.Run("network without files", func(t *testing.T) {
		t.Parallel()

		_, err := agg.All(ctx, dataset.Scope{Chain: "terra", Network: "pisco-1"}, all)
		var loadErr *dataset.LoadError
		require.ErrorAs(t, err, &loadErr)
		require.Equal(t, dataset.ReasonNotFound, loadErr.Reason)
	})

	t.Run("relations match single lookup", func(t *testing.T) {
		t.Parallel()

		bulk, err := agg.All(ctx, terra, all)
		require.NoError(t, err)
		require.Len(t, bulk, 1)

		single, err := agg.BySlug(ctx, terra, "alleslabs", all)
		require.NoError(t, err)
		require.Equal(t, single, bulk[0])
		require.Equal(t, f.TerraCodes, bulk[0].Codes)
	})

	t.Run("flags only shape the payload", func(t *testing.T) {
		t.Parallel()

		got, err := agg.All(ctx, initia, Options{Codes: true})
		require.NoError(t, err)
		require.Len(t, got, 2)

		alles := got[1]
		assert.Equal(t, "alleslabs", alles.Slug)
		assert.NotNil(t, alles.Codes)
		assert.Empty(t, alles.Codes)
		assert.Nil(t, alles.Accounts)
	})
}

func TestAggregator_LoadFailure(t *testing.T) {
	t.Parallel()

	agg, root, _ := newTestAggregator(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(root, testutil.ModuleChain, testutil.ModuleNetwork, "codes.json"), []byte("{"), 0o600))

	_, err := agg.All(ctx, initia, Options{})
	var loadErr *dataset.LoadError
	require.ErrorAs(t, err, &loadErr)
	require.Equal(t, dataset.Codes, loadErr.Kind)
	require.Equal(t, dataset.ReasonInvalid, loadErr.Reason)

	// single lookups only read what they attach
	_, err = agg.BySlug(ctx, initia, "initia-labs", Options{Accounts: true})
	require.NoError(t, err)

	_, err = agg.BySlug(ctx, initia, "initia-labs", Options{Codes: true})
	require.True(t, errors.As(err, &loadErr))
}
