// Package models holds the record types served by the Aldus API.
// Records are plain data: they are decoded from the dataset files, filtered and reshaped,
// and never mutated in place.
package models

import "encoding/json"

// Account identifies an on-chain account. Unique per (chain, network, address).
type Account struct {
	Slug        string `json:"slug"`
	Address     string `json:"address"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// Code is a deployed code artifact. Unique per (chain, network, id).
type Code struct {
	Slug        string `json:"slug"`
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Github      string `json:"github"`
}

// Contract is an instantiated contract. Unique per (chain, network, address).
// Code references Code.ID on the same chain and network; the reference is not enforced when serving.
type Contract struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Code        int64  `json:"code"`
	Github      string `json:"github"`
}

// Module is a published module. Only the module chain family has any.
type Module struct {
	Slug        string `json:"slug"`
	Address     string `json:"address"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Github      string `json:"github"`
}

// AssetIDs maps chain -> network -> local asset identifier.
type AssetIDs map[string]map[string]string

// Lookup returns the local identifier of the asset on chain/network.
func (ids AssetIDs) Lookup(chain, network string) (string, bool) {
	networks, ok := ids[chain]
	if !ok {
		return "", false
	}
	id, ok := networks[network]
	return id, ok
}

// RawAsset is an asset definition as stored in the global registry.
type RawAsset struct {
	Coingecko   string   `json:"coingecko"`
	Description string   `json:"description"`
	ID          AssetIDs `json:"id"`
	Logo        string   `json:"logo"`
	Name        string   `json:"name"`
	Precision   int      `json:"precision"`
	Slugs       []string `json:"slugs"`
	Symbol      string   `json:"symbol"`
	Type        string   `json:"type"`
}

// Asset is the per chain/network view of a RawAsset.
type Asset struct {
	Coingecko   string   `json:"coingecko"`
	Description string   `json:"description"`
	ID          string   `json:"id"`
	Logo        string   `json:"logo"`
	Name        string   `json:"name"`
	Precision   int      `json:"precision"`
	Slugs       []string `json:"slugs"`
	Symbol      string   `json:"symbol"`
	Type        string   `json:"type"`
	Price       Price    `json:"price"`
}

// Social is a named link on an entity profile.
type Social struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// RawEntity is an entity as stored in entities.json.
type RawEntity struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Website     string   `json:"website"`
	Logo        string   `json:"logo"`
	Github      string   `json:"github"`
	Socials     []Social `json:"socials"`
}

// EntityDetails is the profile part of an aggregated entity.
type EntityDetails struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Website     string   `json:"website"`
	Logo        string   `json:"logo"`
	Github      string   `json:"github"`
	Socials     []Social `json:"socials"`
}

// Entity is the aggregated, chain/network scoped view of an entity.
// A nil relation means it was not requested and the key is left out;
// a requested relation with no records is an empty, non-nil slice and renders as [].
type Entity struct {
	Slug      string        `json:"slug"`
	Details   EntityDetails `json:"details"`
	Accounts  []Account     `json:"accounts,omitzero"`
	Codes     []Code        `json:"codes,omitzero"`
	Contracts []Contract    `json:"contracts,omitzero"`
	Modules   []Module      `json:"modules,omitzero"`
}

// Chain is an entry of the chain registry. Its shape is owned by the registry file
// and passed through verbatim.
type Chain = json.RawMessage
