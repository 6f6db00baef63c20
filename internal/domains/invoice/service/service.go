package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/pdf"
	"frontdesk/infras/postgres"
	"frontdesk/infras/s3"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	bookingSvc "frontdesk/internal/domains/booking/service"
	guestModel "frontdesk/internal/domains/guest/model"
	guestRepo "frontdesk/internal/domains/guest/repository"
	"frontdesk/internal/domains/invoice/model"
	"frontdesk/internal/domains/invoice/model/dto"
	"frontdesk/internal/domains/invoice/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Invoice interface {
	GetOrCreate(ctx context.Context, bookingID string) (dto.InvoiceResponse, error)
	DownloadPDF(ctx context.Context, bookingID string) (fileName string, fileData []byte, err error)
}

type serviceImpl struct {
	repo        repository.Invoice
	bookingRepo bookingRepo.Booking
	roomRepo    roomRepo.Room
	guestRepo   guestRepo.Guest
	calculator  bookingSvc.Booking
	renderer    pdf.Renderer
	storage     s3.S3
	db          postgres.TxRunner
	cfg         *config.Config
	publisher   kafka.Publisher
	otel        otel.Otel
}

func New(repo repository.Invoice, bookingRepo bookingRepo.Booking, roomRepo roomRepo.Room, guestRepo guestRepo.Guest, calculator bookingSvc.Booking, renderer pdf.Renderer, storage s3.S3, db postgres.TxRunner, cfg *config.Config, publisher kafka.Publisher, otel otel.Otel) Invoice {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		guestRepo:   guestRepo,
		calculator:  calculator,
		renderer:    renderer,
		storage:     storage,
		db:          db,
		cfg:         cfg,
		publisher:   publisher,
		otel:        otel,
	}
}

// GetOrCreate returns the booking's invoice, creating it on first access.
// A booking whose total is not yet positive gets the calculated total
// persisted in the same transaction that creates the invoice. An existing
// invoice is returned untouched. When two callers race on the first create,
// the one-invoice-per-booking constraint rejects the loser, who re-fetches
// the winner's invoice instead of erroring.
func (s *serviceImpl) GetOrCreate(ctx context.Context, bookingID string) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOrCreate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
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

	guest, err := s.guestRepo.Get(ctx, shared.FilterByID(booking.GuestID, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	needsTotal := booking.TotalAmount == nil || *booking.TotalAmount <= 0

	var total float64

	if needsTotal {
		total, err = s.calculator.CalculateTotal(ctx, booking.ID)
		if err != nil {
			log.Error().Err(err).Msg("failed to calculate booking total")

			return res, failure.InternalError(fmt.Errorf("calculation error: %w", err)) // nolint:wrapcheck
		}
	} else {
		total = *booking.TotalAmount
	}

	invoice, err := s.getByBookingID(ctx, booking.ID)
	if err != nil {
		return res, err
	}

	if invoice.ID == constant.Empty {
		invoice, err = s.create(ctx, booking, total, needsTotal, user)
		if err != nil {
			return res, err
		}
	}

	booking.TotalAmount = &total

	closing := timezone.Now()
	if booking.CheckOutDate != nil {
		closing = *booking.CheckOutDate
	}

	res.FromModels(invoice, booking, room, guest, bookingSvc.DurationDays(booking.CheckInDate, closing))

	return res, nil
}

func (s *serviceImpl) getByBookingID(ctx context.Context, bookingID string) (model.Invoice, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.TableName,
			},
		},
	}

	invoice, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice")

		return invoice, fmt.Errorf("failed to get invoice: %w", err)
	}

	return invoice, nil
}

// create persists the booking total (when it was just calculated) and the new
// invoice in one transaction. A unique violation means a concurrent caller
// won the create; the winner's invoice is fetched and returned.
func (s *serviceImpl) create(ctx context.Context, booking bookingModel.Booking, total float64, persistTotal bool, user string) (invoice model.Invoice, err error) {
	now := timezone.Now()
	due := now.AddDate(0, 0, constant.InvoiceDueDays)

	invoice = model.Invoice{
		ID:            uuid.NewString(),
		BookingID:     booking.ID,
		IssueDate:     now,
		DueDate:       &due,
		AmountPaid:    0,
		PaymentStatus: model.PaymentStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if persistTotal {
			bookingFields := map[string]any{
				bookingModel.FieldTotalAmount: total,
				constant.FieldModifiedAt:      now,
				constant.FieldModifiedBy:      user,
			}

			if err := s.bookingRepo.UpdateTx(ctx, tx, bookingFields, shared.FilterByID(booking.ID, bookingModel.FieldID, bookingModel.TableName)); err != nil {
				return err
			}
		}

		return s.repo.InsertTx(ctx, tx, invoice)
	})

	if shared.IsUniqueViolation(err) {
		log.Info().Str("bookingID", booking.ID).Msg("invoice already created by a concurrent caller")

		return s.getByBookingID(ctx, booking.ID)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create invoice")

		return invoice, failure.Storage(err) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.Publish(c, constant.TopicInvoiceIssued, kafka.Message{Key: invoice.ID, Value: invoice}); err != nil {
			log.Error().Err(err).Msg("failed to publish invoice event")
		}
	}()

	return invoice, nil
}

var invoiceTemplate = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: Helvetica, Arial, sans-serif; color: #222; margin: 40px; }
h1 { font-size: 22px; margin-bottom: 0; }
.meta { color: #666; font-size: 12px; margin-bottom: 24px; }
table { width: 100%; border-collapse: collapse; margin-top: 16px; }
th, td { text-align: left; padding: 8px; border-bottom: 1px solid #ddd; font-size: 13px; }
th { background: #f5f5f5; }
td.amount, th.amount { text-align: right; }
.total td { font-weight: bold; border-top: 2px solid #222; }
</style>
</head>
<body>
<h1>Invoice {{.ID}}</h1>
<p class="meta">
Issued {{.IssueDate}}{{if .DueDate}} &middot; Due {{.DueDate}}{{end}} &middot; Status: {{.PaymentStatus}}
</p>
<p>
<strong>Guest:</strong> {{.Guest.Name}} ({{.Guest.Email}})<br>
<strong>Room:</strong> {{.Room.RoomNumber}} ({{.Room.RoomType}})<br>
<strong>Stay:</strong> {{.CheckInDate}}{{if .CheckOutDate}} to {{.CheckOutDate}}{{end}} ({{.DurationDays}} night(s))
</p>
<table>
<tr><th>Description</th><th>Qty</th><th class="amount">Unit Price</th><th class="amount">Amount</th></tr>
{{range .LineItems}}
<tr><td>{{.Description}}</td><td>{{.Quantity}}</td><td class="amount">{{printf "%.2f" .UnitPrice}}</td><td class="amount">{{printf "%.2f" .Amount}}</td></tr>
{{end}}
<tr class="total"><td colspan="3">Total</td><td class="amount">{{printf "%.2f" .TotalAmount}}</td></tr>
<tr><td colspan="3">Amount Paid</td><td class="amount">{{printf "%.2f" .AmountPaid}}</td></tr>
<tr><td colspan="3">Balance Due</td><td class="amount">{{printf "%.2f" .BalanceDue}}</td></tr>
</table>
</body>
</html>`))

// DownloadPDF renders the booking's invoice as a PDF document. The invoice is
// created first when it does not exist yet. A copy of the rendered document is
// archived to object storage in the background; archiving failures do not fail
// the download.
func (s *serviceImpl) DownloadPDF(ctx context.Context, bookingID string) (fileName string, fileData []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DownloadPDF")
	defer scope.End()
	defer scope.TraceIfError(err)

	invoice, err := s.GetOrCreate(ctx, bookingID)
	if err != nil {
		return constant.Empty, nil, err
	}

	var html bytes.Buffer

	if err = invoiceTemplate.Execute(&html, invoice); err != nil {
		log.Error().Err(err).Msg("failed to build invoice document")

		return constant.Empty, nil, fmt.Errorf("failed to build invoice document: %w", err)
	}

	fileData, err = s.renderer.Render(ctx, html.String())
	if err != nil {
		log.Error().Err(err).Msg("failed to render invoice document")

		return constant.Empty, nil, err
	}

	fileName = fmt.Sprintf("invoice_%s.pdf", invoice.ID)

	go func() {
		c := context.WithoutCancel(ctx)

		if _, err := s.storage.UploadBytes(c, constant.InvoiceArchiveDirectory, fileName, constant.ContentTypePDF, fileData); err != nil {
			log.Error().Err(err).Msg("failed to archive invoice document")
		}
	}()

	return fileName, fileData, nil
}
