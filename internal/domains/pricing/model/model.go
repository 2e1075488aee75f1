package model

const EntityName = "pricing"

// Sub-category dimensions used by the price book. The labels match the rows
// supplied by the catalogue backend verbatim.
const (
	SubCategoryPeople    = "People"
	SubCategoryHouseSize = "House Size"
	SubCategoryBathrooms = "Bathrooms"
	SubCategoryNumber    = "Number"
)

// Booking-type tags carried by price book rows.
const (
	BookingTypeOnDemand = "On Demand"
	BookingTypeRegular  = "Regular"
	BookingTypeMonthly  = "Monthly"
)

// Cadence selects which price field of a row applies: the day rate for
// on-demand bookings or the month rate for regular/monthly ones.
type Cadence string

const (
	CadenceDaily   Cadence = "daily"
	CadenceMonthly Cadence = "monthly"
)

// Multipliers for the best-effort monthly estimate when a row carries
// neither the day nor the month rate directly.
const (
	WeeksPerMonth       = 4
	VisitsPerMonth      = 8
	WorkingDaysPerMonth = 26
)

// PriceRow is one typed row of the externally supplied pricing table.
// Band is either an exact size label ("2BHK") or a textual quantity band
// ("<=3", "4-6", ">=7", "5"). A zero price field means the rate is absent.
type PriceRow struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	SubCategory string  `json:"sub_category"`
	Band        string  `json:"band"`
	BookingType string  `json:"booking_type"`
	DayPrice    float64 `json:"day_price,omitempty"`
	WeekPrice   float64 `json:"week_price,omitempty"`
	MonthPrice  float64 `json:"month_price,omitempty"`
	VisitPrice  float64 `json:"visit_price,omitempty"`
}

// RateQuery describes one base-price lookup. SizeLabel takes precedence over
// Value when both are set. Fallback is the caller's hard-coded default,
// returned when no row matches at all; checkout never blocks on a pricing
// gap.
type RateQuery struct {
	Category    string  `json:"category"`
	SubCategory string  `json:"sub_category"`
	BookingType string  `json:"booking_type"`
	SizeLabel   string  `json:"size_label"`
	Value       int     `json:"value"`
	Cadence     Cadence `json:"cadence"`
	Fallback    float64 `json:"fallback"`
}

// PricedSelection is the output handed to the cart: the quantity the user
// chose, the resolved base price, and the tiered total. ComputedPrice is
// never negative and never decreases as Quantity grows.
type PricedSelection struct {
	Quantity      int     `json:"quantity"`
	BasePrice     float64 `json:"base_price"`
	ComputedPrice float64 `json:"computed_price"`
}
