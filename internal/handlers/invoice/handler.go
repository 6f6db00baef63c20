package invoice

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/invoice/service"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Invoice
	otel    otel.Otel
}

func New(service service.Invoice, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/bookings/{id}/invoice", handler.GetInvoice)
	router.Get("/bookings/{id}/invoice/pdf", handler.DownloadInvoicePDF)
}

// GetInvoice returns the booking's invoice, creating it on first access.
// @Summary Get a booking's invoice
// @Description Return the booking's invoice. The first access creates it and locks in the booking's total.
// @Tags Invoice
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.InvoiceResponse] "Invoice detail"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/invoice [get]
// @Security BearerAuth
func (handler *Handler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvoice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.GetOrCreate(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get invoice")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DownloadInvoicePDF streams the booking's invoice as a PDF document.
// @Summary Download a booking's invoice as PDF
// @Tags Invoice
// @Produce application/pdf
// @Param id path string true "Booking ID"
// @Success 200 {file} binary "Invoice PDF"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/invoice/pdf [get]
// @Security BearerAuth
func (handler *Handler) DownloadInvoicePDF(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DownloadInvoicePDF")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	fileName, fileData, err := handler.service.DownloadPDF(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to download invoice PDF")

		response.WithError(w, err)

		return
	}

	response.WithPDF(w, fileName, fileData)
}
