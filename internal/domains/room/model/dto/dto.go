package dto

import (
	"frontdesk/internal/domains/room/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomNumber   string  `json:"room_number"    validate:"required,max=20"`
	RoomType     string  `json:"room_type"      validate:"required,max=50"`
	RatePerNight float64 `json:"rate_per_night" validate:"gte=0"`
	Status       string  `json:"status"         validate:"omitempty,oneof=available occupied needs_cleaning"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := model.StatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	return model.Room{
		ID:           uuid.NewString(),
		RoomNumber:   c.RoomNumber,
		RoomType:     c.RoomType,
		RatePerNight: c.RatePerNight,
		Status:       status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber   string  `db:"room_number"    json:"room_number"    validate:"omitempty,max=20"`
	RoomType     string  `db:"room_type"      json:"room_type"      validate:"omitempty,max=50"`
	RatePerNight float64 `db:"rate_per_night" json:"rate_per_night" validate:"omitempty,gte=0"`
	Status       string  `db:"status"         json:"status"         validate:"omitempty,oneof=available occupied needs_cleaning"`
}

type RoomResponse struct {
	ID           string  `json:"id"`
	RoomNumber   string  `json:"room_number"`
	RoomType     string  `json:"room_type"`
	RatePerNight float64 `json:"rate_per_night"`
	Status       string  `json:"status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.RatePerNight = model.RatePerNight
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
