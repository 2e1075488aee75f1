package model

import "time"

const EntityName = "availability"

// TimeRole tells the validator whether an instant is the start or the end of
// a booking window. The minimum-lead-time rule only applies to starts.
type TimeRole string

const (
	RoleStart TimeRole = "start"
	RoleEnd   TimeRole = "end"
)

// BookingOption mirrors the booking types offered by the dialogs: a single
// one-hour visit, a short-term date range, or a monthly engagement.
type BookingOption string

const (
	OptionDate      BookingOption = "Date"
	OptionShortTerm BookingOption = "Short term"
	OptionMonthly   BookingOption = "Monthly"
)

// BusinessHours is the process-wide bookable-time configuration.
// OpeningHour is inclusive, CutoffHour exclusive: the last bookable hour slot
// is CutoffHour-1, displayed as CutoffHour-1:55.
type BusinessHours struct {
	OpeningHour  int `json:"opening_hour"`
	CutoffHour   int `json:"cutoff_hour"`
	CutoffMinute int `json:"cutoff_minute"`
}

// CutoffMinuteOfDay returns the cutoff as minutes since midnight.
func (b BusinessHours) CutoffMinuteOfDay() int {
	return b.CutoffHour*60 + b.CutoffMinute
}

// LastBookableHour returns the last hour slot that may still be selected.
func (b BusinessHours) LastBookableHour() int {
	return b.CutoffHour - 1
}

// BookingWindow is the user's current date/time selection inside a dialog.
// End is zero until derived (Date, Monthly) or supplied (Short term).
// All instants are naive local-clock values; no timezone conversion is
// performed on them.
type BookingWindow struct {
	Option BookingOption `json:"option"`
	Start  time.Time     `json:"start"`
	End    time.Time     `json:"end"`
}

// TimeOptions lists the hour and minute values a picker may offer for one
// day. Minutes are always the fixed 5-minute grid; Hours is empty when the
// day is fully closed.
type TimeOptions struct {
	Hours   []int `json:"hours"`
	Minutes []int `json:"minutes"`
}
