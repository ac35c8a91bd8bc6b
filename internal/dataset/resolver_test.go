package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, k := range AllKinds() {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, parsed)
	}

	_, err := ParseKind("validators")
	var unknown *UnknownDatasetError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "validators", unknown.Name)
}

func TestKind_Scoped(t *testing.T) {
	t.Parallel()

	require.Equal(t, []Kind{Accounts, Codes, Contracts, Modules}, ScopedKinds())
	require.False(t, Assets.Scoped())
	require.False(t, Kind(200).Scoped())
	require.Equal(t, "kind(200)", Kind(200).String())
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	root := filepath.Join("srv", "data")
	r := NewResolver(root, "initia")

	tests := []struct {
		name     string
		kind     Kind
		scope    Scope
		wantPath string
		empty    bool
		wantErr  any
	}{
		{
			name:     "scoped dataset",
			kind:     Accounts,
			scope:    Scope{Chain: "terra", Network: "phoenix-1"},
			wantPath: filepath.Join(root, "terra", "phoenix-1", "accounts.json"),
		},
		{
			name:     "codes",
			kind:     Codes,
			scope:    Scope{Chain: "osmosis", Network: "osmosis-1"},
			wantPath: filepath.Join(root, "osmosis", "osmosis-1", "codes.json"),
		},
		{
			name:     "global dataset ignores scope",
			kind:     Entities,
			scope:    Scope{Chain: "terra", Network: "phoenix-1"},
			wantPath: filepath.Join(root, "entities.json"),
		},
		{
			name:     "global dataset without scope",
			kind:     Chains,
			wantPath: filepath.Join(root, "chains.json"),
		},
		{
			name:     "modules on module chain",
			kind:     Modules,
			scope:    Scope{Chain: "initia", Network: "initiation-2"},
			wantPath: filepath.Join(root, "initia", "initiation-2", "modules.json"),
		},
		{
			name:  "modules on other chain short-circuits",
			kind:  Modules,
			scope: Scope{Chain: "terra", Network: "phoenix-1"},
			empty: true,
		},
		{
			name:    "missing network",
			kind:    Contracts,
			scope:   Scope{Chain: "terra"},
			wantErr: &MissingScopeError{},
		},
		{
			name:    "missing chain for modules",
			kind:    Modules,
			scope:   Scope{Network: "initiation-2"},
			wantErr: &MissingScopeError{},
		},
		{
			name:    "parent directory chain",
			kind:    Accounts,
			scope:   Scope{Chain: "..", Network: "x"},
			wantErr: &InvalidScopeError{},
		},
		{
			name:    "separator in network",
			kind:    Accounts,
			scope:   Scope{Chain: "terra", Network: "../../etc"},
			wantErr: &InvalidScopeError{},
		},
		{
			name:    "modules off the module chain still validate segments",
			kind:    Modules,
			scope:   Scope{Chain: "terra", Network: ".."},
			wantErr: &InvalidScopeError{},
		},
		{
			name:    "unknown kind",
			kind:    numKinds,
			wantErr: &UnknownDatasetError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loc, err := r.Resolve(tt.kind, tt.scope)

			switch want := tt.wantErr.(type) {
			case nil:
				require.NoError(t, err)
				require.Equal(t, tt.kind, loc.Kind)
				require.Equal(t, tt.empty, loc.Empty)
				require.Equal(t, tt.wantPath, loc.Path)
			case *MissingScopeError:
				require.ErrorAs(t, err, &want)
			case *InvalidScopeError:
				require.ErrorAs(t, err, &want)
			case *UnknownDatasetError:
				require.ErrorAs(t, err, &want)
			}
		})
	}
}
