package dto

import (
	"github.com/google/uuid"

	availabilityModel "sahayak/internal/domains/availability/model"
	"sahayak/internal/domains/cart/model"
	pricingModel "sahayak/internal/domains/pricing/model"
	"sahayak/shared"
	"sahayak/shared/constant"
	gDto "sahayak/shared/dto"
	gModel "sahayak/shared/model"
	"sahayak/shared/timezone"
)

type AddItemRequest struct {
	Service     string `json:"service"      validate:"required,oneof=cook maid nanny"`
	SubCategory string `json:"sub_category" validate:"omitempty,max=50"`
	SizeLabel   string `json:"size_label"   validate:"omitempty,max=20"`
	Quantity    int    `json:"quantity"     validate:"required,min=1"`
	Option      string `json:"option"       validate:"required"`
	Start       string `json:"start"        validate:"required"`
	End         string `json:"end"          validate:"omitempty"`
}

func (c *AddItemRequest) ToModel(user string, priced pricingModel.PricedSelection, window availabilityModel.BookingWindow) model.LineItem {
	return model.LineItem{
		ID:            uuid.NewString(),
		Service:       c.Service,
		SubCategory:   c.SubCategory,
		SizeLabel:     c.SizeLabel,
		Quantity:      priced.Quantity,
		BasePrice:     priced.BasePrice,
		ComputedPrice: priced.ComputedPrice,
		Window:        window,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// Window parses the raw start/end stamps into a booking window. End is
// optional; a missing end stays zero and is derived later.
func (c *AddItemRequest) Window() (availabilityModel.BookingWindow, error) {
	window := availabilityModel.BookingWindow{
		Option: availabilityModel.BookingOption(c.Option),
	}

	start, err := timezone.Parse(constant.DateTimeFormat, c.Start)
	if err != nil {
		return window, err
	}
	window.Start = start

	if c.End != constant.Empty {
		end, err := timezone.Parse(constant.DateTimeFormat, c.End)
		if err != nil {
			return window, err
		}
		window.End = end
	}

	return window, nil
}

type LineItemResponse struct {
	ID            string  `json:"id"`
	Service       string  `json:"service"`
	SubCategory   string  `json:"sub_category"`
	SizeLabel     string  `json:"size_label"`
	Quantity      int     `json:"quantity"`
	BasePrice     float64 `json:"base_price"`
	ComputedPrice float64 `json:"computed_price"`
	Option        string  `json:"option"`
	Start         string  `json:"start"`
	End           string  `json:"end"`
	gDto.Metadata
}

func (r *LineItemResponse) FromModel(item model.LineItem) {
	r.ID = item.ID
	r.Service = item.Service
	r.SubCategory = item.SubCategory
	r.SizeLabel = item.SizeLabel
	r.Quantity = item.Quantity
	r.BasePrice = item.BasePrice
	r.ComputedPrice = item.ComputedPrice
	r.Option = string(item.Window.Option)
	r.Start = item.Window.Start.Format(constant.DateTimeFormat)
	if !item.Window.End.IsZero() {
		r.End = item.Window.End.Format(constant.DateTimeFormat)
	}
	r.Metadata.FromModel(item.Metadata)
}

type GetCartResponse struct {
	Items      []LineItemResponse `json:"items"`
	TotalItems int                `json:"total_items"`
	Total      float64            `json:"total"`
}

func (r *GetCartResponse) FromModels(items []model.LineItem) {
	r.TotalItems = len(items)

	total := 0.0
	r.Items = make([]LineItemResponse, len(items))
	for i, item := range items {
		r.Items[i].FromModel(item)
		total += item.ComputedPrice
	}

	r.Total = shared.RoundToPaise(total)
}
