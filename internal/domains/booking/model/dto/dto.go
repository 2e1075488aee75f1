package dto

import (
	"github.com/google/uuid"

	availabilityModel "sahayak/internal/domains/availability/model"
	"sahayak/internal/domains/booking/model"
	"sahayak/shared/constant"
	gDto "sahayak/shared/dto"
	gModel "sahayak/shared/model"
	"sahayak/shared/timezone"
)

type OpenDialogRequest struct {
	Service     string `json:"service"      validate:"required,oneof=cook maid nanny"`
	SubCategory string `json:"sub_category" validate:"omitempty,max=50"`
	SizeLabel   string `json:"size_label"   validate:"omitempty,max=20"`
	Quantity    int    `json:"quantity"     validate:"required,min=1"`
	Option      string `json:"option"       validate:"required"`
}

func (d *OpenDialogRequest) ToModel(user string) model.Session {
	return model.Session{
		ID:          uuid.NewString(),
		Service:     d.Service,
		SubCategory: d.SubCategory,
		SizeLabel:   d.SizeLabel,
		Quantity:    d.Quantity,
		Window: availabilityModel.BookingWindow{
			Option: availabilityModel.BookingOption(d.Option),
		},
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ChooseDateRequest struct {
	Date string `json:"date" validate:"required"`
}

type ChooseTimeRequest struct {
	Hour   int `json:"hour"   validate:"min=0,max=23"`
	Minute int `json:"minute" validate:"min=0,max=59"`
}

type ChooseEndRequest struct {
	Date   string `json:"date"   validate:"required"`
	Hour   int    `json:"hour"   validate:"min=0,max=23"`
	Minute int    `json:"minute" validate:"min=0,max=59"`
}

type SessionResponse struct {
	ID          string `json:"id"`
	Service     string `json:"service"`
	SubCategory string `json:"sub_category"`
	SizeLabel   string `json:"size_label"`
	Quantity    int    `json:"quantity"`
	Option      string `json:"option"`
	Start       string `json:"start"`
	End         string `json:"end"`
	State       string `json:"state"`
	Confirmable bool   `json:"confirmable"`
	gDto.Metadata
}

func (r *SessionResponse) FromModel(session model.Session, state model.State, confirmable bool) {
	r.ID = session.ID
	r.Service = session.Service
	r.SubCategory = session.SubCategory
	r.SizeLabel = session.SizeLabel
	r.Quantity = session.Quantity
	r.Option = string(session.Window.Option)
	r.State = string(state)
	r.Confirmable = confirmable
	if !session.Window.Start.IsZero() {
		r.Start = session.Window.Start.Format(constant.DateTimeFormat)
	}
	if !session.Window.End.IsZero() {
		r.End = session.Window.End.Format(constant.DateTimeFormat)
	}
	r.Metadata.FromModel(session.Metadata)
}

type TimeOptionsResponse struct {
	Hours   []int `json:"hours"`
	Minutes []int `json:"minutes"`
}

func (r *TimeOptionsResponse) FromModel(options availabilityModel.TimeOptions) {
	r.Hours = options.Hours
	r.Minutes = options.Minutes
}
