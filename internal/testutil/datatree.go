// Package testutil builds dataset trees on disk for tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alleslabs/aldus-api/pkg/models"
	"github.com/stretchr/testify/require"
)

const (
	ModuleChain   = "initia"
	ModuleNetwork = "initiation-2"
	OtherChain    = "terra"
	OtherNetwork  = "phoenix-1"
	AssetBaseURL  = "https://assets.example.com"
)

// WriteJSON marshals v into root/rel, creating parent directories.
func WriteJSON(t *testing.T, root, rel string, v any) {
	t.Helper()

	data, err := json.MarshalIndent(v, "", "  ")
	require.NoError(t, err)
	WriteRaw(t, root, rel, data)
}

// WriteRaw writes data verbatim into root/rel.
func WriteRaw(t *testing.T, root, rel string, data []byte) {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

// Fixture returns the records written by NewDataTree so tests can compare against them.
type Fixture struct {
	Entities        []models.RawEntity
	Assets          []models.RawAsset
	Chains          []map[string]any
	InitiaAccounts  []models.Account
	InitiaCodes     []models.Code
	InitiaContracts []models.Contract
	InitiaModules   []models.Module
	TerraAccounts   []models.Account
	TerraCodes      []models.Code
	TerraContracts  []models.Contract
	TerraModules    []models.Module
}

// DefaultFixture is a small but complete dataset:
//   - "initia-labs" owns accounts, a code and modules on initia/initiation-2
//   - "alleslabs" owns a code and contracts on terra/phoenix-1 and one account on initia
//   - "dormant" owns nothing anywhere
//
// terra/phoenix-1 ships a modules.json that must never be served.
func DefaultFixture() Fixture {
	return Fixture{
		Entities: []models.RawEntity{
			{
				Slug: "initia-labs", Name: "Initia Labs", Description: "L1 for rollups",
				Website: "https://initia.xyz", Logo: "initia.png", Github: "https://github.com/initia-labs",
				Socials: []models.Social{
					{Name: "twitter", URL: "https://x.com/initia"},
					{Name: "discord", URL: "https://discord.gg/initia"},
				},
			},
			{
				Slug: "alleslabs", Name: "Alles Labs", Description: "Explorer builders",
				Website: "https://alleslabs.com", Logo: "alleslabs.png", Github: "https://github.com/alleslabs",
				Socials: []models.Social{{Name: "twitter", URL: "https://x.com/alleslabs"}},
			},
			{
				Slug: "dormant", Name: "Dormant", Description: "No on-chain presence",
				Website: "https://dormant.example", Logo: "dormant.svg", Github: "",
				Socials: []models.Social{},
			},
		},
		Assets: []models.RawAsset{
			{
				Coingecko: "initia", Description: "Initia native token",
				ID:   models.AssetIDs{"initia": {"initiation-2": "uinit"}},
				Logo: "init.svg", Name: "Initia", Precision: 6, Slugs: []string{"initia-labs"}, Symbol: "INIT", Type: "native",
			},
			{
				Coingecko: "terra-luna-2", Description: "Terra native token",
				ID:   models.AssetIDs{"terra": {"phoenix-1": "uluna", "pisco-1": "uluna"}},
				Logo: "luna.svg", Name: "Luna", Precision: 6, Slugs: []string{}, Symbol: "LUNA", Type: "native",
			},
			{
				Coingecko: "usd-coin", Description: "USD Coin",
				ID: models.AssetIDs{
					"initia": {"initiation-2": "ibc/USDC-INIT"},
					"terra":  {"phoenix-1": "ibc/USDC-TERRA"},
				},
				Logo: "usdc.svg", Name: "USD Coin", Precision: 6, Slugs: []string{"circle"}, Symbol: "USDC", Type: "ibc",
			},
		},
		Chains: []map[string]any{
			{"chain": "initia", "networks": []string{"initiation-2"}},
			{"chain": "terra", "networks": []string{"phoenix-1", "pisco-1"}},
		},
		InitiaAccounts: []models.Account{
			{Slug: "initia-labs", Address: "init1treasury", Name: "Treasury", Description: "Foundation treasury", Type: "multisig"},
			{Slug: "alleslabs", Address: "init1alles", Name: "Alles", Description: "Relayer", Type: "account"},
			{Slug: "initia-labs", Address: "init1faucet", Name: "Faucet", Description: "Testnet faucet", Type: "account"},
		},
		InitiaCodes: []models.Code{
			{Slug: "initia-labs", ID: 1, Name: "cw20", Description: "token", Github: "https://github.com/initia-labs/cw20"},
		},
		InitiaContracts: []models.Contract{},
		InitiaModules: []models.Module{
			{Slug: "initia-labs", Address: "0x1", Name: "coin", Description: "coin module", Github: "https://github.com/initia-labs/movevm"},
			{Slug: "initia-labs", Address: "0x1", Name: "dex", Description: "dex module", Github: "https://github.com/initia-labs/movevm"},
		},
		TerraAccounts: []models.Account{},
		TerraCodes: []models.Code{
			{Slug: "alleslabs", ID: 5, Name: "registry", Description: "name registry", Github: "https://github.com/alleslabs/registry"},
			{Slug: "alleslabs", ID: 7, Name: "vault", Description: "vault", Github: ""},
		},
		TerraContracts: []models.Contract{
			{Slug: "alleslabs", Name: "Registry", Description: "registry instance", Address: "terra1registry", Code: 5, Github: ""},
			{Slug: "alleslabs", Name: "Vault", Description: "vault instance", Address: "terra1vault", Code: 7, Github: ""},
		},
		TerraModules: []models.Module{
			{Slug: "alleslabs", Address: "0xdead", Name: "ghost", Description: "must not be served", Github: ""},
		},
	}
}

// NewDataTree writes DefaultFixture into a fresh temporary directory and returns its root.
func NewDataTree(t *testing.T) (string, Fixture) {
	t.Helper()

	root := t.TempDir()
	f := DefaultFixture()

	WriteJSON(t, root, "entities.json", f.Entities)
	WriteJSON(t, root, "assets.json", f.Assets)
	WriteJSON(t, root, "chains.json", f.Chains)

	initia := ModuleChain + "/" + ModuleNetwork + "/"
	WriteJSON(t, root, initia+"accounts.json", f.InitiaAccounts)
	WriteJSON(t, root, initia+"codes.json", f.InitiaCodes)
	WriteJSON(t, root, initia+"contracts.json", f.InitiaContracts)
	WriteJSON(t, root, initia+"modules.json", f.InitiaModules)

	terra := OtherChain + "/" + OtherNetwork + "/"
	WriteJSON(t, root, terra+"accounts.json", f.TerraAccounts)
	WriteJSON(t, root, terra+"codes.json", f.TerraCodes)
	WriteJSON(t, root, terra+"contracts.json", f.TerraContracts)
	WriteJSON(t, root, terra+"modules.json", f.TerraModules)

	return root, f
}
