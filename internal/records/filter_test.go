package records

import (
	"testing"

	"github.com/alleslabs/aldus-api/internal/testutil"
	"github.com/alleslabs/aldus-api/pkg/models"
	"github.com/stretchr/testify/require"
)

func TestWhere(t *testing.T) {
	t.Parallel()

	f := testutil.DefaultFixture()

	owned := Where(f.InitiaAccounts, BySlug[models.Account]("initia-labs"))
	require.Equal(t, []models.Account{f.InitiaAccounts[0], f.InitiaAccounts[2]}, owned, "source order is kept")

	none := Where(f.InitiaAccounts, BySlug[models.Account]("dormant"))
	require.NotNil(t, none)
	require.Empty(t, none)

	fromNil := Where[models.Code](nil, BySlug[models.Code]("x"))
	require.NotNil(t, fromNil)

	require.Len(t, Where(f.TerraContracts, BySlug[models.Contract]("alleslabs")), 2)
	require.Len(t, Where(f.InitiaModules, BySlug[models.Module]("initia-labs")), 2)
	require.Len(t, Where(f.TerraCodes, BySlug[models.Code]("alleslabs")), 2)
}

func TestWhere_ExactMatchOnly(t *testing.T) {
	t.Parallel()

	accounts := []models.Account{{Slug: "Foo"}, {Slug: "foo "}, {Slug: "foo"}}
	require.Equal(t, []models.Account{{Slug: "foo"}}, Where(accounts, BySlug[models.Account]("foo")))
}

func TestFirst(t *testing.T) {
	t.Parallel()

	f := testutil.DefaultFixture()

	tests := []struct {
		name    string
		lookup  func() (any, error)
		want    any
		wantErr error
	}{
		{
			name: "account by address",
			lookup: func() (any, error) {
				return First(f.InitiaAccounts, AccountByAddress("init1faucet"))
			},
			want: f.InitiaAccounts[2],
		},
		{
			name: "account address is case sensitive",
			lookup: func() (any, error) {
				return First(f.InitiaAccounts, AccountByAddress("INIT1FAUCET"))
			},
			want:    models.Account{},
			wantErr: ErrNotFound,
		},
		{
			name: "code by id",
			lookup: func() (any, error) {
				return First(f.TerraCodes, CodeByID(7))
			},
			want: f.TerraCodes[1],
		},
		{
			name: "contract by address",
			lookup: func() (any, error) {
				return First(f.TerraContracts, ContractByAddress("terra1registry"))
			},
			want: f.TerraContracts[0],
		},
		{
			name: "module needs address and name",
			lookup: func() (any, error) {
				return First(f.InitiaModules, ModuleByAddressAndName("0x1", "dex"))
			},
			want: f.InitiaModules[1],
		},
		{
			name: "module with wrong name",
			lookup: func() (any, error) {
				return First(f.InitiaModules, ModuleByAddressAndName("0x1", "staking"))
			},
			want:    models.Module{},
			wantErr: ErrNotFound,
		},
		{
			name: "entity by slug",
			lookup: func() (any, error) {
				return First(f.Entities, EntityBySlug("dormant"))
			},
			want: f.Entities[2],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.lookup()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFirst_ReturnsFirstOfDuplicates(t *testing.T) {
	t.Parallel()

	codes := []models.Code{{ID: 1, Name: "first"}, {ID: 1, Name: "second"}}
	got, err := First(codes, CodeByID(1))
	require.NoError(t, err)
	require.Equal(t, "first", got.Name)
}

func TestParseCodeID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "5", want: 5},
		{raw: "0", want: 0},
		{raw: "-3", want: -3},
		{raw: "abc", wantErr: true},
		{raw: "5.0", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "0x10", wantErr: true},
		{raw: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			got, err := ParseCodeID(tt.raw)
			if tt.wantErr {
				var invalid *InvalidKeyError
				require.ErrorAs(t, err, &invalid)
				require.Equal(t, tt.raw, invalid.Value)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
