package dto

import (
	bookingModel "frontdesk/internal/domains/booking/model"
	guestDto "frontdesk/internal/domains/guest/model/dto"
	guestModel "frontdesk/internal/domains/guest/model"
	"frontdesk/internal/domains/invoice/model"
	roomDto "frontdesk/internal/domains/room/model/dto"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/timezone"
)

type LineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

// InvoiceResponse is the full invoice view: invoice row, booking snapshot,
// room and guest snapshots, and line items whose sum equals the billed total.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	BookingID     string                `json:"booking_id"`
	IssueDate     string                `json:"issue_date"`
	DueDate       *string               `json:"due_date,omitempty"`
	AmountPaid    float64               `json:"amount_paid"`
	PaymentStatus string                `json:"payment_status"`
	TotalAmount   float64               `json:"total_amount"`
	BalanceDue    float64               `json:"balance_due"`
	DurationDays  int                   `json:"duration_days"`
	CheckInDate   string                `json:"check_in_date"`
	CheckOutDate  *string               `json:"check_out_date,omitempty"`
	Room          roomDto.RoomResponse  `json:"room"`
	Guest         guestDto.GuestResponse `json:"guest"`
	LineItems     []LineItem            `json:"line_items"`
	gDto.Metadata
}

func (r *InvoiceResponse) FromModels(invoice model.Invoice, booking bookingModel.Booking, room roomModel.Room, guest guestModel.Guest, durationDays int) {
	r.ID = invoice.ID
	r.BookingID = invoice.BookingID
	r.IssueDate = timezone.Format(invoice.IssueDate, constant.DateFormat)

	if invoice.DueDate != nil {
		formatted := timezone.Format(*invoice.DueDate, constant.DateFormat)
		r.DueDate = &formatted
	}

	r.AmountPaid = invoice.AmountPaid
	r.PaymentStatus = invoice.PaymentStatus

	if booking.TotalAmount != nil {
		r.TotalAmount = *booking.TotalAmount
	}

	r.BalanceDue = r.TotalAmount - invoice.AmountPaid
	r.DurationDays = durationDays
	r.CheckInDate = timezone.Format(booking.CheckInDate, constant.DateFormat)

	if booking.CheckOutDate != nil {
		formatted := timezone.Format(*booking.CheckOutDate, constant.DateFormat)
		r.CheckOutDate = &formatted
	}

	r.Room.FromModel(room)
	r.Guest.FromModel(guest)

	roomCharge := float64(durationDays) * room.RatePerNight

	r.LineItems = []LineItem{
		{
			Description: "Room charge (" + room.RoomType + ", room " + room.RoomNumber + ")",
			Quantity:    durationDays,
			UnitPrice:   room.RatePerNight,
			Amount:      roomCharge,
		},
		{
			Description: "Services charge",
			Quantity:    0,
			UnitPrice:   0,
			Amount:      0,
		},
	}

	r.Metadata.FromModel(invoice.Metadata)
}
