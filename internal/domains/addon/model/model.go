package model

import "frontdesk/shared/model"

const (
	TableName  = "services"
	EntityName = "service"

	FieldID    = "id"
	FieldName  = "name"
	FieldPrice = "price"
)

const (
	BookingServiceTableName  = "booking_services"
	BookingServiceEntityName = "booking_service"

	BookingServiceFieldID        = "id"
	BookingServiceFieldBookingID = "booking_id"
	BookingServiceFieldServiceID = "service_id"
	BookingServiceFieldQuantity  = "quantity"
)

// Service is a priced add-on (laundry, breakfast, minibar). Add-ons can be
// attached to bookings but do not yet contribute to the billed total.
type Service struct {
	ID    string  `db:"id"`
	Name  string  `db:"name"`
	Price float64 `db:"price"`
	model.Metadata
}

// BookingService joins a booking to an add-on with a quantity.
type BookingService struct {
	ID        string `db:"id"`
	BookingID string `db:"booking_id"`
	ServiceID string `db:"service_id"`
	Quantity  int    `db:"quantity"`
	model.Metadata
}
