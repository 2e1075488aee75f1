package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID   contextKey = "user_id"
	ContextKeyUserRole contextKey = "user_role"
)

const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
)

const (
	ActionConfirmBooking = "booking.confirm"
)

const (
	ServiceCook  = "cook"
	ServiceMaid  = "maid"
	ServiceNanny = "nanny"
)

const (
	DateFormat     = "2006-01-02"
	TimeFormat     = "15:04"
	DateTimeFormat = "2006-01-02 15:04"
	StampFormat    = time.RFC3339
)

const (
	MinuteStep       = 5
	MinutesPerHour   = 60
	LastMinuteOfHour = 55
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
)

const (
	Empty = ""
)
