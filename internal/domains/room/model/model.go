package model

import "frontdesk/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldRoomNumber   = "room_number"
	FieldRoomType     = "room_type"
	FieldRatePerNight = "rate_per_night"
	FieldStatus       = "status"
)

// Room status lifecycle: available -> occupied (check-in) -> needs_cleaning
// (check-out) -> available (housekeeping).
const (
	StatusAvailable     = "available"
	StatusOccupied      = "occupied"
	StatusNeedsCleaning = "needs_cleaning"
)

type Room struct {
	ID           string  `db:"id"`
	RoomNumber   string  `db:"room_number"`
	RoomType     string  `db:"room_type"`
	RatePerNight float64 `db:"rate_per_night"`
	Status       string  `db:"status"`
	model.Metadata
}
