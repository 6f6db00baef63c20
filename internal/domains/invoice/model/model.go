package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	TableName  = "invoices"
	EntityName = "invoice"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldIssueDate     = "issue_date"
	FieldDueDate       = "due_date"
	FieldAmountPaid    = "amount_paid"
	FieldPaymentStatus = "payment_status"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPartial = "partial"
	PaymentStatusPaid    = "paid"
)

// Invoice is one-to-one with a booking; the booking_id uniqueness constraint
// lives in the schema so concurrent creates cannot produce duplicates.
type Invoice struct {
	ID            string     `db:"id"`
	BookingID     string     `db:"booking_id"`
	IssueDate     time.Time  `db:"issue_date"`
	DueDate       *time.Time `db:"due_date"`
	AmountPaid    float64    `db:"amount_paid"`
	PaymentStatus string     `db:"payment_status"`
	model.Metadata
}
