package cartpanel

import (
	"github.com/merpara/site/internal/services/web/cart"
	"github.com/merpara/site/internal/services/web/viewmodel"
)

type cartResponse struct {
	Entries      []cartEntryResponse `json:"entries"`
	Total        int                 `json:"total"`
	TotalDisplay string              `json:"total_display"`
	IsOpen       bool                `json:"is_open"`
}

type cartEntryResponse struct {
	Index        int    `json:"index"`
	PackageID    string `json:"package_id"`
	Name         string `json:"name"`
	Price        int    `json:"price"`
	PriceDisplay string `json:"price_display"`
}

func newCartResponse(state cart.State, panel viewmodel.CartPanel) cartResponse {
	resp := cartResponse{
		Entries:      make([]cartEntryResponse, 0, len(state.Entries)),
		Total:        state.Total(),
		TotalDisplay: panel.Total,
		IsOpen:       state.IsOpen,
	}
	for i, entry := range state.Entries {
		item := cartEntryResponse{
			Index:     i,
			PackageID: entry.Package.ID,
			Name:      entry.Package.Name,
			Price:     entry.Package.Price,
		}
		if i < len(panel.Entries) {
			item.PriceDisplay = panel.Entries[i].Price
		}
		resp.Entries = append(resp.Entries, item)
	}
	return resp
}
