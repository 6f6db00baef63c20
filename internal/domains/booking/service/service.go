package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/repository"
	guestModel "frontdesk/internal/domains/guest/model"
	guestDto "frontdesk/internal/domains/guest/model/dto"
	guestRepo "frontdesk/internal/domains/guest/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheDashboard     = "booking:dashboard"

	recentlyClosedLimit = 10
)

// DurationDays returns the stay length in whole days, floored at one night.
// Same-day and negative spans bill exactly one night; the invoice view uses
// the same function so displayed nights always match the billed amount.
func DurationDays(checkIn, checkOut time.Time) int {
	days := int(checkOut.Sub(checkIn).Hours() / 24)
	if days <= 0 {
		return 1
	}

	return days
}

type Booking interface {
	CheckIn(ctx context.Context, req dto.CheckInRequest) (dto.CheckInResponse, error)
	CheckOut(ctx context.Context, bookingID string) (dto.CheckOutResponse, error)
	CalculateTotal(ctx context.Context, bookingID string) (float64, error)
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	guestRepo guestRepo.Guest
	db        postgres.TxRunner
	cfg       *config.Config
	cache     cache.RedisCache
	publisher kafka.Publisher
	otel      otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, guestRepo guestRepo.Guest, db postgres.TxRunner, cfg *config.Config, cache cache.RedisCache, publisher kafka.Publisher, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		guestRepo: guestRepo,
		db:        db,
		cfg:       cfg,
		cache:     cache,
		publisher: publisher,
		otel:      otel,
	}
}

// CalculateTotal computes a booking's total charge without persisting it.
// A stored total that is already positive is authoritative and returned
// unchanged; otherwise the charge is recomputed from the stay duration and
// the room's nightly rate. Persistence is the caller's responsibility.
func (s *serviceImpl) CalculateTotal(ctx context.Context, bookingID string) (res float64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CalculateTotal")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return 0, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return 0, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.TotalAmount != nil && *booking.TotalAmount > 0 {
		return *booking.TotalAmount, nil
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return 0, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return 0, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return totalFor(booking, room), nil
}

// totalFor applies the billing rules to an in-memory booking: positive stored
// totals short-circuit, the effective checkout falls back to now, and the
// services charge stays zero pending activation.
func totalFor(booking model.Booking, room roomModel.Room) float64 {
	if booking.TotalAmount != nil && *booking.TotalAmount > 0 {
		return *booking.TotalAmount
	}

	closing := timezone.Now()
	if booking.CheckOutDate != nil {
		closing = *booking.CheckOutDate
	}

	duration := DurationDays(booking.CheckInDate, closing)
	roomCharge := float64(duration) * room.RatePerNight

	return roomCharge + servicesCharge()
}

// servicesCharge is inert: add-ons are persisted but do not contribute to the
// billed total yet.
func servicesCharge() float64 {
	return 0
}

// CheckIn opens a booking for a room. The guest is selected with an explicit
// tagged variant (existing guest id or new guest details); guest creation,
// booking creation, and the room status claim commit as a single transaction.
// The room claim is a guarded status transition, so two concurrent check-ins
// for the same room cannot both succeed.
func (s *serviceImpl) CheckIn(ctx context.Context, req dto.CheckInRequest) (res dto.CheckInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty || room.Status != roomModel.StatusAvailable {
		return res, failure.Conflict("room is not available") // nolint:wrapcheck
	}

	guest, isNewGuest, err := s.resolveGuest(ctx, req, user)
	if err != nil {
		return res, err
	}

	booking, err := req.ToBookingModel(guest.ID, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse check-in request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if isNewGuest {
			if err := s.guestRepo.InsertTx(ctx, tx, guest); err != nil {
				return err
			}
		}

		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return err
		}

		return s.roomRepo.TransitionStatusTx(ctx, tx, room.ID, roomModel.StatusAvailable, roomModel.StatusOccupied, map[string]any{
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		})
	})

	if errors.Is(err, roomRepo.ErrStatusConflict) {
		return res, failure.Conflict("room is not available") // nolint:wrapcheck
	}

	if shared.IsUniqueViolation(err) {
		return res, failure.Conflict("guest with this email already exists") // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to check in")

		return res, failure.Storage(err) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.Publish(c, constant.TopicBookingCheckedIn, kafka.Message{Key: booking.ID, Value: booking}); err != nil {
			log.Error().Err(err).Msg("failed to publish check-in event")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheDashboard)
	}()

	res.Booking.FromModel(booking)

	if isNewGuest {
		guestRes := &guestDto.GuestResponse{}
		guestRes.FromModel(guest)
		res.Guest = guestRes
	}

	return res, nil
}

// resolveGuest applies the tagged guest selector. Blank new-guest fields come
// back as field-level errors so the form can be re-presented with the
// original input.
func (s *serviceImpl) resolveGuest(ctx context.Context, req dto.CheckInRequest, user string) (guest guestModel.Guest, isNew bool, err error) {
	hasExisting := req.GuestID != constant.Empty
	hasNew := req.NewGuest != nil

	if hasExisting == hasNew {
		return guest, false, failure.BadRequestFromString("exactly one of guest_id or new_guest must be provided") // nolint:wrapcheck
	}

	if hasExisting {
		guest, err = s.guestRepo.Get(ctx, shared.FilterByID(req.GuestID, guestModel.FieldID, guestModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get guest")

			return guest, false, fmt.Errorf("failed to get guest: %w", err)
		}

		if guest.ID == constant.Empty {
			return guest, false, failure.NotFound("guest not found") // nolint:wrapcheck
		}

		return guest, false, nil
	}

	fields := map[string]string{}

	if strings.TrimSpace(req.NewGuest.Name) == constant.Empty {
		fields["name"] = "name is required"
	}

	if strings.TrimSpace(req.NewGuest.Email) == constant.Empty {
		fields["email"] = "email is required"
	}

	if len(fields) > 0 {
		return guest, false, failure.BadRequestWithFields("invalid guest details", fields) // nolint:wrapcheck
	}

	emailFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    guestModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    req.NewGuest.Email,
				Table:    guestModel.TableName,
			},
		},
	}

	exists, err := s.guestRepo.Exist(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return guest, false, fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if exists {
		return guest, false, failure.Conflict("guest with this email already exists") // nolint:wrapcheck
	}

	createReq := req.ToGuestRequest()

	return createReq.ToModel(user), true, nil
}

// CheckOut closes a booking. A booking that is already closed is reported as
// an informational outcome, untouched. Otherwise the closing instant is the
// pre-populated check-out date or now, the total goes through the billing
// rules, and the booking update plus the room's needs_cleaning transition
// commit atomically; any persistence failure rolls the whole operation back.
func (s *serviceImpl) CheckOut(ctx context.Context, bookingID string) (res dto.CheckOutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if !booking.IsActive {
		res.BookingID = booking.ID
		res.RoomNumber = room.RoomNumber
		res.AlreadyClosed = true
		res.Message = fmt.Sprintf("booking for room %s is already checked out", room.RoomNumber)

		if booking.TotalAmount != nil {
			res.TotalAmount = *booking.TotalAmount
		}

		if booking.CheckOutDate != nil {
			res.CheckOutDate = timezone.Format(*booking.CheckOutDate, constant.DateFormat)
		}

		return res, nil
	}

	closing := timezone.Now()
	if booking.CheckOutDate != nil {
		closing = *booking.CheckOutDate
	}

	booking.CheckOutDate = &closing
	total := totalFor(booking, room)

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		bookingFields := map[string]any{
			model.FieldTotalAmount:   total,
			model.FieldCheckOutDate:  closing,
			model.FieldIsActive:      false,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err := s.repo.UpdateTx(ctx, tx, bookingFields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
			return err
		}

		roomFields := map[string]any{
			roomModel.FieldStatus:    roomModel.StatusNeedsCleaning,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		return s.roomRepo.UpdateTx(ctx, tx, roomFields, shared.FilterByID(room.ID, roomModel.FieldID, roomModel.TableName))
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check out")

		return res, failure.Storage(err) // nolint:wrapcheck
	}

	booking.IsActive = false
	booking.TotalAmount = &total

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.Publish(c, constant.TopicBookingCheckedOut, kafka.Message{Key: booking.ID, Value: booking}); err != nil {
			log.Error().Err(err).Msg("failed to publish check-out event")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, booking.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheDashboard)
	}()

	res.BookingID = booking.ID
	res.RoomNumber = room.RoomNumber
	res.TotalAmount = total
	res.CheckOutDate = timezone.Format(closing, constant.DateFormat)

	return res, nil
}

// Dashboard lists every room with its active booking plus the most recently
// closed bookings.
func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheDashboard, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheDashboard).Msg("cache hit for dashboard")

		return res, nil
	}

	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{SortBy: roomModel.FieldRoomNumber, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	activeFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	active, err := s.repo.GetAll(ctx, gDto.QueryParams{}, activeFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active bookings")

		return res, fmt.Errorf("failed to get active bookings: %w", err)
	}

	closedFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsActive,
				Operator: gDto.FilterOperatorEq,
				Value:    false,
				Table:    model.TableName,
			},
		},
	}

	closed, err := s.repo.GetAll(ctx, gDto.QueryParams{Limit: recentlyClosedLimit, SortBy: model.FieldCheckOutDate, SortDir: gDto.SortDirDesc}, closedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get closed bookings")

		return res, fmt.Errorf("failed to get closed bookings: %w", err)
	}

	activeByRoom := make(map[string]model.Booking, len(active))
	for _, booking := range active {
		activeByRoom[booking.RoomID] = booking
	}

	res.Rooms = make([]dto.DashboardRoom, len(rooms))
	for i, room := range rooms {
		res.Rooms[i].Room.FromModel(room)

		if booking, ok := activeByRoom[room.ID]; ok {
			bookingRes := &dto.BookingResponse{}
			bookingRes.FromModel(booking)
			res.Rooms[i].Booking = bookingRes
		}
	}

	res.RecentlyClosed = make([]dto.BookingResponse, len(closed))
	for i, booking := range closed {
		res.RecentlyClosed[i].FromModel(booking)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheDashboard, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}
