package dto

import (
	"time"

	"frontdesk/internal/domains/booking/model"
	guestDto "frontdesk/internal/domains/guest/model/dto"
	roomDto "frontdesk/internal/domains/room/model/dto"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

// NewGuestRequest carries the fields of a guest created during check-in.
// Blank name/email are rejected by the service with field-level errors so the
// form can be re-presented, hence no "required" tags here.
type NewGuestRequest struct {
	Name  string `json:"name"  validate:"omitempty,max=100"`
	Email string `json:"email" validate:"omitempty,email,max=100"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
}

// CheckInRequest selects the guest with an explicit tagged variant: exactly
// one of guest_id or new_guest must be set.
type CheckInRequest struct {
	RoomID       string           `json:"room_id"        validate:"required"`
	CheckInDate  string           `json:"check_in_date"  validate:"omitempty"`
	CheckOutDate string           `json:"check_out_date" validate:"omitempty"`
	GuestID      string           `json:"guest_id"       validate:"omitempty"`
	NewGuest     *NewGuestRequest `json:"new_guest"      validate:"omitempty"`
}

func parseInstant(value string) (time.Time, error) {
	parsed, err := time.Parse(constant.DateFormat, value)
	if err == nil {
		return parsed, nil
	}

	return time.Parse(constant.DateOnlyFormat, value)
}

// ToBookingModel builds the ACTIVE booking row for the check-in. The check-in
// instant defaults to now when omitted; a pre-populated check-out date is kept
// on the row and later used as the closing instant.
func (c *CheckInRequest) ToBookingModel(guestID, user string) (model.Booking, error) {
	checkIn := timezone.Now()

	if c.CheckInDate != "" {
		parsed, err := parseInstant(c.CheckInDate)
		if err != nil {
			return model.Booking{}, err
		}

		checkIn = parsed
	}

	var checkOut *time.Time

	if c.CheckOutDate != "" {
		parsed, err := parseInstant(c.CheckOutDate)
		if err != nil {
			return model.Booking{}, err
		}

		checkOut = &parsed
	}

	return model.Booking{
		ID:           uuid.NewString(),
		GuestID:      guestID,
		RoomID:       c.RoomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		IsActive:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// ToGuestRequest adapts the new-guest variant into the guest domain's create
// request.
func (c *CheckInRequest) ToGuestRequest() (guest guestDto.CreateGuestRequest) {
	if c.NewGuest == nil {
		return guest
	}

	guest.Name = c.NewGuest.Name
	guest.Email = c.NewGuest.Email
	guest.Phone = c.NewGuest.Phone

	return guest
}

type BookingResponse struct {
	ID           string   `json:"id"`
	GuestID      string   `json:"guest_id"`
	RoomID       string   `json:"room_id"`
	CheckInDate  string   `json:"check_in_date"`
	CheckOutDate *string  `json:"check_out_date,omitempty"`
	TotalAmount  *float64 `json:"total_amount,omitempty"`
	IsActive     bool     `json:"is_active"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.RoomID = model.RoomID
	r.CheckInDate = timezone.Format(model.CheckInDate, constant.DateFormat)

	if model.CheckOutDate != nil {
		formatted := timezone.Format(*model.CheckOutDate, constant.DateFormat)
		r.CheckOutDate = &formatted
	}

	r.TotalAmount = model.TotalAmount
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type CheckInResponse struct {
	Booking BookingResponse        `json:"booking"`
	Guest   *guestDto.GuestResponse `json:"guest,omitempty"`
}

type CheckOutResponse struct {
	BookingID     string  `json:"booking_id"`
	RoomNumber    string  `json:"room_number"`
	TotalAmount   float64 `json:"total_amount"`
	CheckOutDate  string  `json:"check_out_date"`
	AlreadyClosed bool    `json:"already_closed"`
	Message       string  `json:"message,omitempty"`
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// DashboardRoom pairs a room with its active booking, if any.
type DashboardRoom struct {
	Room    roomDto.RoomResponse `json:"room"`
	Booking *BookingResponse     `json:"booking,omitempty"`
}

type DashboardResponse struct {
	Rooms          []DashboardRoom   `json:"rooms"`
	RecentlyClosed []BookingResponse `json:"recently_closed"`
}
