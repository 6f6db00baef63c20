package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldGuestID      = "guest_id"
	FieldRoomID       = "room_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldTotalAmount  = "total_amount"
	FieldIsActive     = "is_active"
)

// Booking is either ACTIVE (is_active) or CLOSED; CLOSED is terminal. A
// closed booking always carries both check_out_date and total_amount.
type Booking struct {
	ID           string     `db:"id"`
	GuestID      string     `db:"guest_id"`
	RoomID       string     `db:"room_id"`
	CheckInDate  time.Time  `db:"check_in_date"`
	CheckOutDate *time.Time `db:"check_out_date"`
	TotalAmount  *float64   `db:"total_amount"`
	IsActive     bool       `db:"is_active"`
	model.Metadata
}
