package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPrice_MarshalJSON(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(struct {
		Price Price `json:"price"`
	}{Price: PlaceholderPrice})
	require.NoError(t, err)
	require.Equal(t, `{"price":0.00}`, string(out))

	var back struct {
		Price Price `json:"price"`
	}
	require.NoError(t, json.Unmarshal(out, &back))
	require.True(t, back.Price.Equal(decimal.Zero))
}

func TestEntity_RelationKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entity  Entity
		present []string
		absent  []string
	}{
		{
			name:   "no relations requested",
			entity: Entity{Slug: "foo"},
			absent: []string{"accounts", "codes", "contracts", "modules"},
		},
		{
			name: "requested but empty relations render as empty lists",
			entity: Entity{
				Slug:     "foo",
				Accounts: []Account{},
				Modules:  []Module{},
			},
			present: []string{"accounts", "modules"},
			absent:  []string{"codes", "contracts"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := json.Marshal(tt.entity)
			require.NoError(t, err)

			var fields map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(out, &fields))

			for _, key := range tt.present {
				require.Contains(t, fields, key)
				require.JSONEq(t, `[]`, string(fields[key]))
			}
			for _, key := range tt.absent {
				require.NotContains(t, fields, key)
			}
			require.Contains(t, fields, "details")
		})
	}
}

func TestAssetIDs_Lookup(t *testing.T) {
	t.Parallel()

	ids := AssetIDs{"initia": {"initiation-2": "uinit"}}

	id, ok := ids.Lookup("initia", "initiation-2")
	require.True(t, ok)
	require.Equal(t, "uinit", id)

	_, ok = ids.Lookup("initia", "mainnet")
	require.False(t, ok)

	_, ok = ids.Lookup("osmosis", "osmosis-1")
	require.False(t, ok)
}
