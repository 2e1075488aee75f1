package model

import (
	availabilityModel "sahayak/internal/domains/availability/model"
	"sahayak/shared/model"
)

const EntityName = "cart item"

// LineItem is one priced service selection held by the cart. The cart owns
// the list; prices are only ever written through the shared calculator so
// every screen sees the same number.
type LineItem struct {
	ID            string                          `json:"id"`
	Service       string                          `json:"service"`
	SubCategory   string                          `json:"sub_category"`
	SizeLabel     string                          `json:"size_label"`
	Quantity      int                             `json:"quantity"`
	BasePrice     float64                         `json:"base_price"`
	ComputedPrice float64                         `json:"computed_price"`
	Window        availabilityModel.BookingWindow `json:"window"`
	model.Metadata
}
