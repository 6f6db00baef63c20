package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	kafkaMocks "frontdesk/infras/kafka/mocks"
	"frontdesk/infras/otel/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingService "frontdesk/internal/domains/booking/service"
	guestMocks "frontdesk/internal/domains/guest/mocks"
	guestModel "frontdesk/internal/domains/guest/model"
	invoiceMocks "frontdesk/internal/domains/invoice/mocks"
	"frontdesk/internal/domains/invoice/model"
	"frontdesk/internal/domains/invoice/service"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	cacheMocks "frontdesk/shared/cache/mocks"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

// txRunnerStub runs the transactional closure directly; the repository mocks
// accept the nil tx handle.
type txRunnerStub struct{}

func (txRunnerStub) WithTransaction(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

type invoiceMockSet struct {
	repo        *invoiceMocks.MockInvoice
	bookingRepo *bookingMocks.MockBooking
	roomRepo    *roomMocks.MockRoom
	guestRepo   *guestMocks.MockGuest
	publisher   *kafkaMocks.MockPublisher
}

func newInvoiceService(ctrl *gomock.Controller) (service.Invoice, invoiceMockSet) {
	set := invoiceMockSet{
		repo:        invoiceMocks.NewMockInvoice(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		roomRepo:    roomMocks.NewMockRoom(ctrl),
		guestRepo:   guestMocks.NewMockGuest(ctrl),
		publisher:   kafkaMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	mockOtel := mocks.NewOtel()
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	publisher := set.publisher

	calculator := bookingService.New(set.bookingRepo, set.roomRepo, set.guestRepo, txRunnerStub{}, cfg, mockCache, publisher, mockOtel)

	svc := service.New(set.repo, set.bookingRepo, set.roomRepo, set.guestRepo, calculator, nil, nil, txRunnerStub{}, cfg, publisher, mockOtel)

	return svc, set
}

func floatPtr(f float64) *float64 {
	return &f
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestInvoiceService_GetOrCreate(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 2)
	issued := checkOut.Add(time.Hour)
	due := issued.AddDate(0, 0, 15)

	room := roomModel.Room{
		ID:           "room-1",
		RoomNumber:   "101",
		RoomType:     "standard",
		RatePerNight: 100,
		Status:       roomModel.StatusNeedsCleaning,
	}

	guest := guestModel.Guest{
		ID:    "guest-1",
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
	}

	closedBooking := bookingModel.Booking{
		ID:           "booking-1",
		GuestID:      "guest-1",
		RoomID:       "room-1",
		CheckInDate:  checkIn,
		CheckOutDate: timePtr(checkOut),
		TotalAmount:  floatPtr(200),
		IsActive:     false,
	}

	existingInvoice := model.Invoice{
		ID:            "invoice-1",
		BookingID:     "booking-1",
		IssueDate:     issued,
		DueDate:       timePtr(due),
		AmountPaid:    50,
		PaymentStatus: model.PaymentStatusPartial,
		Metadata: gModel.Metadata{
			CreatedAt:  issued,
			ModifiedAt: issued,
			CreatedBy:  "frontdesk",
			ModifiedBy: "frontdesk",
		},
	}

	t.Run("booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newInvoiceService(ctrl)

		set.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(bookingModel.Booking{}, nil)

		_, err := svc.GetOrCreate(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("existing invoice is returned untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newInvoiceService(ctrl)

		set.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(closedBooking, nil)

		set.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(room, nil)

		set.guestRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(guest, nil)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existingInvoice, nil)

		res, err := svc.GetOrCreate(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, "invoice-1", res.ID)
		assert.Equal(t, "booking-1", res.BookingID)
		assert.Equal(t, 200.0, res.TotalAmount)
		assert.Equal(t, 50.0, res.AmountPaid)
		assert.Equal(t, 150.0, res.BalanceDue)
		assert.Equal(t, 2, res.DurationDays)
		assert.Equal(t, model.PaymentStatusPartial, res.PaymentStatus)
		assert.Equal(t, "101", res.Room.RoomNumber)
		assert.Equal(t, "Ada Lovelace", res.Guest.Name)
		assert.Equal(t, timezone.Format(issued, time.RFC3339), res.IssueDate)

		// Line items must sum to the billed total.
		var sum float64
		for _, item := range res.LineItems {
			sum += item.Amount
		}
		assert.Equal(t, res.TotalAmount, sum)
	})

	t.Run("missing total is recomputed through the billing rules", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newInvoiceService(ctrl)

		openTotalBooking := closedBooking
		openTotalBooking.TotalAmount = nil

		// First fetch by the invoice flow, second by the calculator.
		set.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(openTotalBooking, nil).
			Times(2)

		set.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(room, nil).
			Times(2)

		set.guestRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(guest, nil)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existingInvoice, nil)

		res, err := svc.GetOrCreate(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, 200.0, res.TotalAmount)
		assert.Equal(t, 2, res.DurationDays)
	})

	t.Run("first access creates a pending invoice due in fifteen days", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newInvoiceService(ctrl)

		set.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(closedBooking, nil)

		set.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(room, nil)

		set.guestRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(guest, nil)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Invoice{}, nil)

		var created model.Invoice

		set.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, invoice model.Invoice) error {
				created = invoice

				return nil
			})

		set.publisher.EXPECT().
			Publish(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetOrCreate(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "booking-1", created.BookingID)
		assert.Equal(t, model.PaymentStatusPending, created.PaymentStatus)
		assert.Equal(t, 0.0, created.AmountPaid)

		if assert.NotNil(t, created.DueDate) {
			assert.Equal(t, created.IssueDate.AddDate(0, 0, 15), *created.DueDate)
		}

		assert.Equal(t, created.ID, res.ID)
		assert.Equal(t, 200.0, res.TotalAmount)
		assert.Equal(t, 200.0, res.BalanceDue)
	})

	t.Run("freshly calculated total is persisted in the creating transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newInvoiceService(ctrl)

		openTotalBooking := closedBooking
		openTotalBooking.TotalAmount = nil

		set.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(openTotalBooking, nil).
			Times(2)

		set.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(room, nil).
			Times(2)

		set.guestRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(guest, nil)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Invoice{}, nil)

		set.bookingRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, 200.0, fields[bookingModel.FieldTotalAmount])

				return nil
			})

		set.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		set.publisher.EXPECT().
			Publish(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetOrCreate(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, 200.0, res.TotalAmount)
	})

	t.Run("losing the create race yields the winner's invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newInvoiceService(ctrl)

		set.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(closedBooking, nil)

		set.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(room, nil)

		set.guestRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(guest, nil)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Invoice{}, nil)

		set.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("failed to insert invoice: %w", &pq.Error{Code: "23505"}))

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existingInvoice, nil)

		res, err := svc.GetOrCreate(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, "invoice-1", res.ID)
		assert.Equal(t, model.PaymentStatusPartial, res.PaymentStatus)
		assert.Equal(t, 50.0, res.AmountPaid)
	})
}
