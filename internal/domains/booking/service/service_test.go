package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	kafkaMocks "frontdesk/infras/kafka/mocks"
	"frontdesk/infras/otel/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	guestMocks "frontdesk/internal/domains/guest/mocks"
	guestModel "frontdesk/internal/domains/guest/model"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/cache"
	cacheMocks "frontdesk/shared/cache/mocks"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
)

func TestDurationDays(t *testing.T) {
	base := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "two whole days",
			checkIn:  base,
			checkOut: base.AddDate(0, 0, 2),
			want:     2,
		},
		{
			name:     "partial second day floors to one",
			checkIn:  base,
			checkOut: base.AddDate(0, 0, 1).Add(6 * time.Hour),
			want:     1,
		},
		{
			name:     "same-day stay bills one night",
			checkIn:  base,
			checkOut: base.Add(3 * time.Hour),
			want:     1,
		},
		{
			name:     "negative span bills one night",
			checkIn:  base,
			checkOut: base.AddDate(0, 0, -3),
			want:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.DurationDays(tt.checkIn, tt.checkOut))
		})
	}
}

// txRunnerStub runs the transactional closure directly; the repository mocks
// accept the nil tx handle.
type txRunnerStub struct{}

func (txRunnerStub) WithTransaction(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

type bookingMockSet struct {
	repo      *bookingMocks.MockBooking
	roomRepo  *roomMocks.MockRoom
	guestRepo *guestMocks.MockGuest
	cache     *cacheMocks.MockRedisCache
	publisher *kafkaMocks.MockPublisher
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, bookingMockSet) {
	set := bookingMockSet{
		repo:      bookingMocks.NewMockBooking(ctrl),
		roomRepo:  roomMocks.NewMockRoom(ctrl),
		guestRepo: guestMocks.NewMockGuest(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		publisher: kafkaMocks.NewMockPublisher(ctrl),
	}

	svc := service.New(set.repo, set.roomRepo, set.guestRepo, txRunnerStub{}, &config.Config{}, set.cache, set.publisher, mocks.NewOtel())

	return svc, set
}

func floatPtr(f float64) *float64 {
	return &f
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestBookingService_CalculateTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	checkIn := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	standardRoom := roomModel.Room{
		ID:           "room-1",
		RoomNumber:   "101",
		RoomType:     "standard",
		RatePerNight: 100,
		Status:       roomModel.StatusOccupied,
	}

	tests := []struct {
		name      string
		bookingID string
		setupMock func()
		want      float64
		wantErr   bool
		wantCode  int
	}{
		{
			name:      "two-day stay at 100 per night",
			bookingID: "booking-1",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{
						ID:           "booking-1",
						RoomID:       "room-1",
						CheckInDate:  checkIn,
						CheckOutDate: timePtr(checkIn.AddDate(0, 0, 2)),
						IsActive:     true,
					}, nil)

				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(standardRoom, nil)
			},
			want: 200,
		},
		{
			name:      "same-day stay bills one night",
			bookingID: "booking-2",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{
						ID:           "booking-2",
						RoomID:       "room-1",
						CheckInDate:  checkIn,
						CheckOutDate: timePtr(checkIn.Add(2 * time.Hour)),
						IsActive:     true,
					}, nil)

				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(standardRoom, nil)
			},
			want: 100,
		},
		{
			name:      "checkout before checkin still bills one night",
			bookingID: "booking-3",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{
						ID:           "booking-3",
						RoomID:       "room-1",
						CheckInDate:  checkIn,
						CheckOutDate: timePtr(checkIn.AddDate(0, 0, -2)),
						IsActive:     true,
					}, nil)

				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(standardRoom, nil)
			},
			want: 100,
		},
		{
			name:      "positive stored total is authoritative",
			bookingID: "booking-4",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{
						ID:           "booking-4",
						RoomID:       "room-1",
						CheckInDate:  checkIn,
						CheckOutDate: timePtr(checkIn.AddDate(0, 0, 5)),
						TotalAmount:  floatPtr(375.50),
					}, nil)
			},
			want: 375.50,
		},
		{
			name:      "zero stored total is recomputed",
			bookingID: "booking-5",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{
						ID:           "booking-5",
						RoomID:       "room-1",
						CheckInDate:  checkIn,
						CheckOutDate: timePtr(checkIn.AddDate(0, 0, 3)),
						TotalAmount:  floatPtr(0),
					}, nil)

				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(standardRoom, nil)
			},
			want: 300,
		},
		{
			name:      "unknown booking",
			bookingID: "missing",
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			got, err := svc.CalculateTotal(context.Background(), tt.bookingID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBookingService_CheckIn_Rejections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	availableRoom := roomModel.Room{
		ID:           "room-1",
		RoomNumber:   "101",
		RoomType:     "standard",
		RatePerNight: 100,
		Status:       roomModel.StatusAvailable,
	}

	occupiedRoom := availableRoom
	occupiedRoom.Status = roomModel.StatusOccupied

	tests := []struct {
		name       string
		req        dto.CheckInRequest
		setupMock  func()
		wantCode   int
		wantMsg    string
		wantFields map[string]string
	}{
		{
			name: "occupied room is rejected before any write",
			req: dto.CheckInRequest{
				RoomID:  "room-1",
				GuestID: "guest-1",
			},
			setupMock: func() {
				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(occupiedRoom, nil)
			},
			wantCode: 409,
			wantMsg:  "room is not available",
		},
		{
			name: "unknown room is rejected",
			req: dto.CheckInRequest{
				RoomID:  "missing",
				GuestID: "guest-1",
			},
			setupMock: func() {
				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantCode: 409,
			wantMsg:  "room is not available",
		},
		{
			name: "both guest selectors",
			req: dto.CheckInRequest{
				RoomID:   "room-1",
				GuestID:  "guest-1",
				NewGuest: &dto.NewGuestRequest{Name: "Ada", Email: "ada@example.com"},
			},
			setupMock: func() {
				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom, nil)
			},
			wantCode: 400,
			wantMsg:  "exactly one of guest_id or new_guest must be provided",
		},
		{
			name: "neither guest selector",
			req: dto.CheckInRequest{
				RoomID: "room-1",
			},
			setupMock: func() {
				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom, nil)
			},
			wantCode: 400,
			wantMsg:  "exactly one of guest_id or new_guest must be provided",
		},
		{
			name: "blank new guest details come back as field errors",
			req: dto.CheckInRequest{
				RoomID:   "room-1",
				NewGuest: &dto.NewGuestRequest{Name: "   ", Email: ""},
			},
			setupMock: func() {
				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom, nil)
			},
			wantCode: 400,
			wantMsg:  "invalid guest details",
			wantFields: map[string]string{
				"name":  "name is required",
				"email": "email is required",
			},
		},
		{
			name: "duplicate guest email",
			req: dto.CheckInRequest{
				RoomID:   "room-1",
				NewGuest: &dto.NewGuestRequest{Name: "Ada", Email: "ada@example.com"},
			},
			setupMock: func() {
				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom, nil)

				set.guestRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantCode: 409,
			wantMsg:  "guest with this email already exists",
		},
		{
			name: "unknown existing guest",
			req: dto.CheckInRequest{
				RoomID:  "room-1",
				GuestID: "missing",
			},
			setupMock: func() {
				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom, nil)

				set.guestRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(guestModel.Guest{}, nil)
			},
			wantCode: 404,
			wantMsg:  "guest not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.CheckIn(context.Background(), tt.req)

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.Equal(t, tt.wantMsg, err.Error())

			if tt.wantFields != nil {
				assert.Equal(t, tt.wantFields, failure.GetFields(err))
			}
		})
	}
}

func TestBookingService_CheckOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	checkIn := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 2)

	room := roomModel.Room{
		ID:           "room-1",
		RoomNumber:   "101",
		RoomType:     "standard",
		RatePerNight: 100,
		Status:       roomModel.StatusNeedsCleaning,
	}

	t.Run("booking not found", func(t *testing.T) {
		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := svc.CheckOut(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("already closed booking is an informational no-op", func(t *testing.T) {
		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{
				ID:           "booking-1",
				RoomID:       "room-1",
				CheckInDate:  checkIn,
				CheckOutDate: timePtr(checkOut),
				TotalAmount:  floatPtr(200),
				IsActive:     false,
			}, nil)

		set.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(room, nil)

		res, err := svc.CheckOut(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.True(t, res.AlreadyClosed)
		assert.Equal(t, "booking-1", res.BookingID)
		assert.Equal(t, "101", res.RoomNumber)
		assert.Equal(t, 200.0, res.TotalAmount)
		assert.Contains(t, res.Message, "already checked out")
		assert.Equal(t, timezone.Format(checkOut, time.RFC3339), res.CheckOutDate)
	})

	t.Run("open booking persists the recomputed total and marks the room for cleaning", func(t *testing.T) {
		occupied := room
		occupied.Status = roomModel.StatusOccupied

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{
				ID:           "booking-2",
				RoomID:       "room-1",
				CheckInDate:  checkIn,
				CheckOutDate: timePtr(checkOut),
				IsActive:     true,
			}, nil)

		set.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(occupied, nil)

		set.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, 200.0, fields[model.FieldTotalAmount])
				assert.Equal(t, checkOut, fields[model.FieldCheckOutDate])
				assert.Equal(t, false, fields[model.FieldIsActive])

				return nil
			})

		set.roomRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, roomModel.StatusNeedsCleaning, fields[roomModel.FieldStatus])

				return nil
			})

		set.publisher.EXPECT().
			Publish(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		set.cache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		set.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.CheckOut(context.Background(), "booking-2")

		assert.NoError(t, err)
		assert.False(t, res.AlreadyClosed)
		assert.Equal(t, "booking-2", res.BookingID)
		assert.Equal(t, "101", res.RoomNumber)
		assert.Equal(t, 200.0, res.TotalAmount)
		assert.Equal(t, timezone.Format(checkOut, time.RFC3339), res.CheckOutDate)
	})

	t.Run("room update failure rolls the checkout back", func(t *testing.T) {
		occupied := room
		occupied.Status = roomModel.StatusOccupied

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{
				ID:           "booking-3",
				RoomID:       "room-1",
				CheckInDate:  checkIn,
				CheckOutDate: timePtr(checkOut),
				IsActive:     true,
			}, nil)

		set.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(occupied, nil)

		set.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		set.roomRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset"))

		_, err := svc.CheckOut(context.Background(), "booking-3")

		assert.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	t.Run("not found", func(t *testing.T) {
		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
