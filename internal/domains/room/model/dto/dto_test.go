package dto_test

import (
	"testing"

	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateRoomRequest_ToModel(t *testing.T) {
	t.Run("defaults status to available", func(t *testing.T) {
		req := dto.CreateRoomRequest{
			RoomNumber:   "101",
			RoomType:     "standard",
			RatePerNight: 100,
		}

		room := req.ToModel("frontdesk")

		assert.NotEmpty(t, room.ID, "expected ID to be generated")
		assert.Equal(t, "101", room.RoomNumber)
		assert.Equal(t, "standard", room.RoomType)
		assert.Equal(t, 100.0, room.RatePerNight)
		assert.Equal(t, model.StatusAvailable, room.Status)
		assert.Equal(t, "frontdesk", room.CreatedBy)
		assert.Equal(t, "frontdesk", room.ModifiedBy)
		assert.False(t, room.CreatedAt.IsZero(), "expected CreatedAt to be set")
	})

	t.Run("keeps explicit status", func(t *testing.T) {
		req := dto.CreateRoomRequest{
			RoomNumber:   "102",
			RoomType:     "deluxe",
			RatePerNight: 180,
			Status:       model.StatusNeedsCleaning,
		}

		room := req.ToModel("frontdesk")

		assert.Equal(t, model.StatusNeedsCleaning, room.Status)
	})
}

func TestRoomResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	roomModel := model.Room{
		ID:           "room-1",
		RoomNumber:   "101",
		RoomType:     "standard",
		RatePerNight: 100,
		Status:       model.StatusOccupied,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "frontdesk",
			ModifiedBy: "frontdesk",
		},
	}

	var response dto.RoomResponse
	response.FromModel(roomModel)

	assert.Equal(t, roomModel.ID, response.ID)
	assert.Equal(t, roomModel.RoomNumber, response.RoomNumber)
	assert.Equal(t, roomModel.RoomType, response.RoomType)
	assert.Equal(t, roomModel.RatePerNight, response.RatePerNight)
	assert.Equal(t, roomModel.Status, response.Status)
	assert.Equal(t, roomModel.CreatedBy, response.CreatedBy)
}

func TestGetRoomsResponse_FromModels(t *testing.T) {
	now := timezone.Now()
	rooms := []model.Room{
		{
			ID:           "room-1",
			RoomNumber:   "101",
			RoomType:     "standard",
			RatePerNight: 100,
			Status:       model.StatusAvailable,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  "frontdesk",
				ModifiedBy: "frontdesk",
			},
		},
		{
			ID:           "room-2",
			RoomNumber:   "102",
			RoomType:     "deluxe",
			RatePerNight: 180,
			Status:       model.StatusOccupied,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  "frontdesk",
				ModifiedBy: "frontdesk",
			},
		},
	}

	var response dto.GetRoomsResponse
	response.FromModels(rooms, 12, 10)

	assert.Equal(t, 12, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Len(t, response.Rooms, 2)
	assert.Equal(t, "101", response.Rooms[0].RoomNumber)
	assert.Equal(t, model.StatusOccupied, response.Rooms[1].Status)
}

func TestGetRoomsResponse_FromModels_EmptyList(t *testing.T) {
	var rooms []model.Room

	var response dto.GetRoomsResponse
	response.FromModels(rooms, 0, 10)

	assert.Equal(t, 0, response.TotalData)
	assert.Equal(t, 1, response.TotalPage)
	assert.Len(t, response.Rooms, 0)
}
