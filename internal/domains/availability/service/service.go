package service

import (
	"time"

	"sahayak/config"
	"sahayak/internal/domains/availability/model"
	"sahayak/shared"
	"sahayak/shared/constant"
)

// Availability is the single source of truth for "can this date/time still be
// booked". Every method is a pure function of its arguments: the caller
// supplies now, the service never reads the clock, and a false result means
// "leave the existing selection unchanged".
type Availability interface {
	IsDateDisabled(date, now time.Time) bool
	IsTimeValid(hour, minute int, role model.TimeRole, day, now time.Time) bool
	ValidTimeOptions(role model.TimeRole, day, now time.Time) model.TimeOptions
	AdjustStart(proposed, now time.Time, option model.BookingOption) (model.BookingWindow, bool)
	AdjustEnd(proposed, start time.Time) time.Time
	IsConfirmable(window model.BookingWindow, now time.Time, isProvider bool) bool
	BusinessHours() model.BusinessHours
}

type serviceImpl struct {
	hours          model.BusinessHours
	leadTime       time.Duration
	rangeCapDays   int
	monthlyCapDays int
}

func New(cfg *config.Config) Availability {
	return &serviceImpl{
		hours: model.BusinessHours{
			OpeningHour:  cfg.Booking.OpeningHour,
			CutoffHour:   cfg.Booking.CutoffHour,
			CutoffMinute: cfg.Booking.CutoffMinute,
		},
		leadTime:       time.Duration(cfg.Booking.LeadTimeMinutes) * time.Minute,
		rangeCapDays:   cfg.Booking.RangeCapDays,
		monthlyCapDays: cfg.Booking.MonthlyCapDays,
	}
}

func (s *serviceImpl) BusinessHours() model.BusinessHours {
	return s.hours
}

// IsDateDisabled reports whether the calendar day of date can no longer take
// bookings: either the day is already over, or it is today and now has passed
// the cutoff.
func (s *serviceImpl) IsDateDisabled(date, now time.Time) bool {
	if shared.DayOf(date).Before(shared.DayOf(now)) {
		return true
	}

	if shared.SameDay(date, now) && shared.MinutesSinceMidnight(now) >= s.hours.CutoffMinuteOfDay() {
		return true
	}

	return false
}

// IsTimeValid reports whether hour:minute on day is a selectable instant.
// A zero day means "today". Start instants on the current day must be at
// least the minimum lead time ahead of now.
func (s *serviceImpl) IsTimeValid(hour, minute int, role model.TimeRole, day, now time.Time) bool {
	if day.IsZero() {
		day = now
	}

	candidate := shared.At(day, hour, minute)

	if s.IsDateDisabled(candidate, now) {
		return false
	}

	if role == model.RoleStart && shared.SameDay(candidate, now) && candidate.Before(now.Add(s.leadTime)) {
		return false
	}

	if hour < s.hours.OpeningHour || hour >= s.hours.CutoffHour {
		return false
	}

	return true
}

// ValidTimeOptions enumerates the hour and minute values the picker may offer
// for day. Recomputing it on every render is safe; nothing is cached.
func (s *serviceImpl) ValidTimeOptions(role model.TimeRole, day, now time.Time) model.TimeOptions {
	options := model.TimeOptions{
		Minutes: minuteGrid(),
	}

	if day.IsZero() {
		day = now
	}

	// An empty hour list signals that the day is fully closed.
	if s.IsDateDisabled(day, now) {
		return options
	}

	earliest := now.Add(s.leadTime)
	for hour := s.hours.OpeningHour; hour <= s.hours.LastBookableHour(); hour++ {
		if role == model.RoleStart && shared.SameDay(day, now) && shared.At(day, hour, 0).Before(earliest) {
			continue
		}

		options.Hours = append(options.Hours, hour)
	}

	return options
}

// AdjustStart snaps a raw start selection into the bookable window and
// derives the end instant for the chosen option. A disabled date is rejected
// outright (ok=false) rather than silently moved to another day.
func (s *serviceImpl) AdjustStart(proposed, now time.Time, option model.BookingOption) (model.BookingWindow, bool) {
	if s.IsDateDisabled(proposed, now) {
		return model.BookingWindow{}, false
	}

	start := proposed
	if shared.SameDay(start, now) {
		if earliest := now.Add(s.leadTime); start.Before(earliest) {
			start = shared.At(earliest, earliest.Hour(), earliest.Minute())
		}
	}

	start = s.clampToHours(start)

	window := model.BookingWindow{Option: option, Start: start}

	switch option {
	case model.OptionDate:
		window.End = s.clampToHours(start.Add(time.Hour))
	case model.OptionMonthly:
		window.End = start.AddDate(0, 1, 0)
	case model.OptionShortTerm:
		// End is chosen by the user and adjusted through AdjustEnd.
	}

	return window, true
}

// AdjustEnd snaps a raw end selection: an end before start becomes start plus
// one hour, and the hour of day is clamped into business hours.
func (s *serviceImpl) AdjustEnd(proposed, start time.Time) time.Time {
	end := proposed
	if end.Before(start) {
		end = start.Add(time.Hour)
	}

	return s.clampToHours(end)
}

// IsConfirmable re-evaluates the whole window the way the confirm button
// does: role gate first, then the global cutoff lock on now itself, then the
// same per-instant rules used while picking. Nothing is cached between calls.
func (s *serviceImpl) IsConfirmable(window model.BookingWindow, now time.Time, isProvider bool) bool {
	if isProvider {
		return false
	}

	// Once now has passed today's cutoff nothing is confirmable, whichever
	// date is selected.
	if shared.MinutesSinceMidnight(now) >= s.hours.CutoffMinuteOfDay() {
		return false
	}

	if !s.IsTimeValid(window.Start.Hour(), window.Start.Minute(), model.RoleStart, window.Start, now) {
		return false
	}

	switch window.Option {
	case model.OptionDate:
		if window.Start.After(now.AddDate(0, 0, s.rangeCapDays)) {
			return false
		}
	case model.OptionMonthly:
		if window.Start.After(now.AddDate(0, 0, s.monthlyCapDays)) {
			return false
		}
	case model.OptionShortTerm:
		if window.End.Before(window.Start) {
			return false
		}
		if !s.IsTimeValid(window.End.Hour(), window.End.Minute(), model.RoleEnd, window.End, now) {
			return false
		}
		if window.End.After(window.Start.AddDate(0, 0, s.rangeCapDays)) {
			return false
		}
	}

	return true
}

// clampToHours keeps the wall-clock hour inside [opening, cutoff): below the
// range snaps to opening:00, at or above the cutoff snaps to the last
// displayable slot, cutoff-1:55.
func (s *serviceImpl) clampToHours(t time.Time) time.Time {
	if t.Hour() < s.hours.OpeningHour {
		return shared.At(t, s.hours.OpeningHour, 0)
	}

	if t.Hour() >= s.hours.CutoffHour {
		return shared.At(t, s.hours.LastBookableHour(), constant.LastMinuteOfHour)
	}

	return t
}

func minuteGrid() []int {
	minutes := make([]int, 0, constant.MinutesPerHour/constant.MinuteStep)
	for m := 0; m < constant.MinutesPerHour; m += constant.MinuteStep {
		minutes = append(minutes, m)
	}

	return minutes
}
