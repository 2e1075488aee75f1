package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"sahayak/infras/otel"
	availabilityModel "sahayak/internal/domains/availability/model"
	availabilityService "sahayak/internal/domains/availability/service"
	"sahayak/internal/domains/booking/model"
	"sahayak/internal/domains/booking/model/dto"
	"sahayak/internal/domains/booking/repository"
	cartDto "sahayak/internal/domains/cart/model/dto"
	cartService "sahayak/internal/domains/cart/service"
	"sahayak/permissions"
	"sahayak/shared"
	"sahayak/shared/constant"
	"sahayak/shared/failure"
	"sahayak/shared/timezone"
	"sahayak/shared/validator"
)

// Dialog drives one booking dialog from opening to a confirmed cart item.
// Every operation snapshots the clock exactly once and evaluates the whole
// selection against that instant, so a dialog left open across the cutoff is
// caught the moment the user touches it again.
type Dialog interface {
	Open(ctx context.Context, req dto.OpenDialogRequest) (dto.SessionResponse, error)
	ChooseDate(ctx context.Context, id string, req dto.ChooseDateRequest) (dto.SessionResponse, error)
	ChooseTime(ctx context.Context, id string, req dto.ChooseTimeRequest) (dto.SessionResponse, error)
	ChooseEnd(ctx context.Context, id string, req dto.ChooseEndRequest) (dto.SessionResponse, error)
	SetOption(ctx context.Context, id string, option availabilityModel.BookingOption) (dto.SessionResponse, error)
	TimeOptions(ctx context.Context, id string, role availabilityModel.TimeRole) (dto.TimeOptionsResponse, error)
	Confirm(ctx context.Context, id string) (cartDto.LineItemResponse, error)
	Close(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Session
	availability availabilityService.Availability
	cart         cartService.Cart
	otel         otel.Otel
	clock        func() time.Time
}

type Option func(*serviceImpl)

// WithClock replaces the wall clock, for deterministic tests.
func WithClock(clock func() time.Time) Option {
	return func(s *serviceImpl) {
		s.clock = clock
	}
}

func New(repo repository.Session, availability availabilityService.Availability, cart cartService.Cart, otel otel.Otel, opts ...Option) Dialog {
	s := &serviceImpl{
		repo:         repo,
		availability: availability,
		cart:         cart,
		otel:         otel,
		clock:        timezone.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *serviceImpl) Open(ctx context.Context, req dto.OpenDialogRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OpenDialog")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err // nolint:wrapcheck
	}

	switch availabilityModel.BookingOption(req.Option) {
	case availabilityModel.OptionDate, availabilityModel.OptionShortTerm, availabilityModel.OptionMonthly:
	default:
		return res, failure.BadRequestFromString("unknown booking option") // nolint:wrapcheck
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	session := req.ToModel(userID)

	if err = s.repo.Insert(ctx, session); err != nil {
		log.Error().Err(err).Str("service", session.Service).Msg("failed opening booking dialog")

		return res, fmt.Errorf("opening booking dialog: %w", err)
	}

	res.FromModel(session, model.StateEmpty, false)

	return res, nil
}

func (s *serviceImpl) ChooseDate(ctx context.Context, id string, req dto.ChooseDateRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChooseDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err // nolint:wrapcheck
	}

	session, err := s.getSession(ctx, id)
	if err != nil {
		return res, err
	}

	date, err := timezone.Parse(constant.DateFormat, req.Date)
	if err != nil {
		log.Error().Err(err).Str("date", req.Date).Msg("failed parsing dialog date")

		return res, failure.BadRequestFromString("date is malformed") // nolint:wrapcheck
	}

	now := s.clock()
	if s.availability.IsDateDisabled(date, now) {
		return res, failure.BadRequestFromString("selected date is no longer bookable") // nolint:wrapcheck
	}

	// A new date invalidates any earlier time pick.
	session.Window.Start = shared.DayOf(date)
	session.Window.End = time.Time{}
	session.TimeChosen = false

	if err = s.saveSession(ctx, &session); err != nil {
		return res, err
	}

	res.FromModel(session, model.StateDateChosen, false)

	return res, nil
}

func (s *serviceImpl) ChooseTime(ctx context.Context, id string, req dto.ChooseTimeRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChooseTime")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err // nolint:wrapcheck
	}

	session, err := s.getSession(ctx, id)
	if err != nil {
		return res, err
	}

	now := s.clock()
	day := session.Window.Start
	if day.IsZero() {
		day = now
	}

	if !s.availability.IsTimeValid(req.Hour, req.Minute, availabilityModel.RoleStart, day, now) {
		return res, failure.BadRequestFromString("selected time is not available") // nolint:wrapcheck
	}

	window, ok := s.availability.AdjustStart(shared.At(day, req.Hour, req.Minute), now, session.Window.Option)
	if !ok {
		return res, failure.BadRequestFromString("selected date is no longer bookable") // nolint:wrapcheck
	}

	session.Window = window
	session.TimeChosen = true

	if err = s.saveSession(ctx, &session); err != nil {
		return res, err
	}

	state, confirmable := s.stateOf(session, now, s.isProvider(ctx))
	res.FromModel(session, state, confirmable)

	return res, nil
}

// ChooseEnd sets the user-picked end of a short-term range. Other options
// derive their end from the start and never accept one.
func (s *serviceImpl) ChooseEnd(ctx context.Context, id string, req dto.ChooseEndRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChooseEnd")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err // nolint:wrapcheck
	}

	session, err := s.getSession(ctx, id)
	if err != nil {
		return res, err
	}

	if session.Window.Option != availabilityModel.OptionShortTerm {
		return res, failure.BadRequestFromString("an end time applies to short term bookings only") // nolint:wrapcheck
	}
	if !session.TimeChosen {
		return res, failure.BadRequestFromString("pick a start time first") // nolint:wrapcheck
	}

	date, err := timezone.Parse(constant.DateFormat, req.Date)
	if err != nil {
		log.Error().Err(err).Str("date", req.Date).Msg("failed parsing dialog end date")

		return res, failure.BadRequestFromString("date is malformed") // nolint:wrapcheck
	}

	now := s.clock()
	session.Window.End = s.availability.AdjustEnd(shared.At(date, req.Hour, req.Minute), session.Window.Start)

	if err = s.saveSession(ctx, &session); err != nil {
		return res, err
	}

	state, confirmable := s.stateOf(session, now, s.isProvider(ctx))
	res.FromModel(session, state, confirmable)

	return res, nil
}

// SetOption switches the dialog to another booking option. A start that was
// already picked is kept and its end rederived for the new option; the end of
// a short-term range always has to be picked again.
func (s *serviceImpl) SetOption(ctx context.Context, id string, option availabilityModel.BookingOption) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetOption")
	defer scope.End()
	defer scope.TraceIfError(err)

	switch option {
	case availabilityModel.OptionDate, availabilityModel.OptionShortTerm, availabilityModel.OptionMonthly:
	default:
		return res, failure.BadRequestFromString("unknown booking option") // nolint:wrapcheck
	}

	session, err := s.getSession(ctx, id)
	if err != nil {
		return res, err
	}

	now := s.clock()
	session.Window.Option = option
	session.Window.End = time.Time{}

	if session.TimeChosen {
		window, ok := s.availability.AdjustStart(session.Window.Start, now, option)
		if !ok {
			return res, failure.BadRequestFromString("selected date is no longer bookable") // nolint:wrapcheck
		}
		session.Window = window
	}

	if err = s.saveSession(ctx, &session); err != nil {
		return res, err
	}

	state, confirmable := s.stateOf(session, now, s.isProvider(ctx))
	res.FromModel(session, state, confirmable)

	return res, nil
}

// TimeOptions enumerates the pickable hours and minutes for the session's
// current day. It is recomputed on every call; an empty hour list means the
// day is fully closed.
func (s *serviceImpl) TimeOptions(ctx context.Context, id string, role availabilityModel.TimeRole) (res dto.TimeOptionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TimeOptions")
	defer scope.End()
	defer scope.TraceIfError(err)

	session, err := s.getSession(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(s.availability.ValidTimeOptions(role, session.Window.Start, s.clock()))

	return res, nil
}

// Confirm turns the dialog's selection into a priced cart line item. The
// whole window is re-validated against a fresh clock snapshot; on success the
// session is discarded.
func (s *serviceImpl) Confirm(ctx context.Context, id string) (res cartDto.LineItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmDialog")
	defer scope.End()
	defer scope.TraceIfError(err)

	session, err := s.getSession(ctx, id)
	if err != nil {
		return res, err
	}

	if s.isProvider(ctx) {
		return res, failure.ProviderCannotBook // nolint:wrapcheck
	}

	if !session.TimeChosen {
		return res, failure.BadRequestFromString("pick a date and time first") // nolint:wrapcheck
	}

	now := s.clock()
	if shared.MinutesSinceMidnight(now) >= s.availability.BusinessHours().CutoffMinuteOfDay() {
		return res, failure.PastCutoff // nolint:wrapcheck
	}

	if !s.availability.IsConfirmable(session.Window, now, false) {
		return res, failure.BadRequestFromString("selection can no longer be confirmed") // nolint:wrapcheck
	}

	res, err = s.cart.Add(ctx, cartDto.AddItemRequest{
		Service:     session.Service,
		SubCategory: session.SubCategory,
		SizeLabel:   session.SizeLabel,
		Quantity:    session.Quantity,
		Option:      string(session.Window.Option),
		Start:       session.Window.Start.Format(constant.DateTimeFormat),
		End:         formatEnd(session.Window.End),
	})
	if err != nil {
		return res, fmt.Errorf("confirming booking dialog: %w", err)
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed discarding confirmed dialog session")

		return res, fmt.Errorf("discarding dialog session: %w", err)
	}

	log.Info().
		Str("service", session.Service).
		Str("option", string(session.Window.Option)).
		Msg("booking dialog confirmed into cart")

	return res, nil
}

func (s *serviceImpl) Close(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CloseDialog")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed closing booking dialog")

		return fmt.Errorf("closing booking dialog: %w", err)
	}

	return nil
}

func (s *serviceImpl) getSession(ctx context.Context, id string) (model.Session, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed reading dialog session")

		return session, fmt.Errorf("reading dialog session: %w", err)
	}
	if session.ID == constant.Empty {
		return session, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	return session, nil
}

func (s *serviceImpl) saveSession(ctx context.Context, session *model.Session) error {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	session.ModifiedAt = timezone.Now()
	session.ModifiedBy = userID

	if err := s.repo.Update(ctx, *session); err != nil {
		log.Error().Err(err).Str("id", session.ID).Msg("failed storing dialog session")

		return fmt.Errorf("storing dialog session: %w", err)
	}

	return nil
}

func (s *serviceImpl) stateOf(session model.Session, now time.Time, isProvider bool) (model.State, bool) {
	switch {
	case session.Window.Start.IsZero():
		return model.StateEmpty, false
	case !session.TimeChosen:
		return model.StateDateChosen, false
	}

	if s.availability.IsConfirmable(session.Window, now, isProvider) {
		return model.StateConfirmable, true
	}

	return model.StateRejected, false
}

// isProvider is really "may this caller not book": any role outside the
// embedded capability table's booking.confirm list is treated as a provider.
func (s *serviceImpl) isProvider(ctx context.Context) bool {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return !permissions.Get().Allows(constant.ActionConfirmBooking, role)
}

func formatEnd(end time.Time) string {
	if end.IsZero() {
		return constant.Empty
	}

	return end.Format(constant.DateTimeFormat)
}
