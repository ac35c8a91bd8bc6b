// Package asset reshapes the global asset registry into per chain/network views.
package asset

import (
	"github.com/alleslabs/aldus-api/pkg/models"
)

// Normalize returns the assets available on chain/network, in registry order, with the id
// flattened to the local identifier and the placeholder price attached.
// Assets without an id for chain/network are left out.
func Normalize(assets []models.RawAsset, chain, network string) []models.Asset {
	out := make([]models.Asset, 0, len(assets))
	for _, raw := range assets {
		id, ok := raw.ID.Lookup(chain, network)
		if !ok {
			continue
		}

		out = append(out, models.Asset{
			Coingecko:   raw.Coingecko,
			Description: raw.Description,
			ID:          id,
			Logo:        raw.Logo,
			Name:        raw.Name,
			Precision:   raw.Precision,
			Slugs:       raw.Slugs,
			Symbol:      raw.Symbol,
			Type:        raw.Type,
			Price:       models.PlaceholderPrice,
		})
	}
	return out
}
