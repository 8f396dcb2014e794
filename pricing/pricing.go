// Package pricing resolves requested order lines against a restaurant's menu
// and computes the authoritative order total.
package pricing

import (
	"fmt"

	"food-ordering-api/models"
)

// LineRequest is one requested menu item with a quantity.
type LineRequest struct {
	ItemID string `json:"itemId" binding:"required"`
	Qty    int    `json:"qty"`
}

// UnknownMenuItemError reports a requested item id with no match on the menu.
type UnknownMenuItemError struct {
	ItemID string
}

func (e *UnknownMenuItemError) Error() string {
	return fmt.Sprintf("menu item not found: %s", e.ItemID)
}

// Price resolves each requested line against the menu and accumulates the
// total. All-or-nothing: the first unknown item id aborts the whole request
// with UnknownMenuItemError. A qty below 1 is clamped to 1 (documented
// leniency). Each resolved line snapshots the menu item's name and price so
// later menu edits cannot alter placed orders.
func Price(menu []models.MenuItem, reqs []LineRequest) ([]models.OrderLine, float64, error) {
	lines := make([]models.OrderLine, 0, len(reqs))
	var total float64

	for _, req := range reqs {
		item, ok := findItem(menu, req.ItemID)
		if !ok {
			return nil, 0, &UnknownMenuItemError{ItemID: req.ItemID}
		}
		qty := req.Qty
		if qty < 1 {
			qty = 1
		}
		total += item.Price * float64(qty)
		lines = append(lines, models.OrderLine{
			ItemID: item.ID,
			Name:   item.Name,
			Price:  item.Price,
			Qty:    qty,
		})
	}
	return lines, total, nil
}

func findItem(menu []models.MenuItem, id string) (models.MenuItem, bool) {
	for _, item := range menu {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}
