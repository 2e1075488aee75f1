package model

import (
	availabilityModel "sahayak/internal/domains/availability/model"
	"sahayak/shared/model"
)

const EntityName = "booking dialog"

// State is the user-visible phase of a booking dialog. Confirmable and
// Rejected are recomputed on every read; a Rejected dialog flips back to
// Confirmable when the user picks a different slot.
type State string

const (
	StateEmpty       State = "empty"
	StateDateChosen  State = "date_chosen"
	StateConfirmable State = "confirmable"
	StateRejected    State = "rejected"
)

// Session is one open booking dialog. The window holds whatever the user has
// picked so far; TimeChosen distinguishes "date only" from a full selection,
// since a midnight start is a legitimate stored value.
type Session struct {
	ID          string                          `json:"id"`
	Service     string                          `json:"service"`
	SubCategory string                          `json:"sub_category"`
	SizeLabel   string                          `json:"size_label"`
	Quantity    int                             `json:"quantity"`
	Window      availabilityModel.BookingWindow `json:"window"`
	TimeChosen  bool                            `json:"time_chosen"`
	model.Metadata
}
