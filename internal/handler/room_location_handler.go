package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/roomfinder-api/internal/dto"
	"github.com/noah-isme/roomfinder-api/pkg/response"
)

type roomLocationService interface {
	Locate(ctx context.Context, req dto.RoomLocationsRequest) (map[string]string, error)
}

// RoomLocationHandler resolves rooms to buildings.
type RoomLocationHandler struct {
	service roomLocationService
}

// NewRoomLocationHandler builds a new handler.
func NewRoomLocationHandler(service roomLocationService) *RoomLocationHandler {
	return &RoomLocationHandler{service: service}
}

// Locate godoc
// @Summary Locate rooms
// @Description Building and floor label for each known room id; unknown ids are omitted.
// @Tags Rooms
// @Accept json
// @Produce json
// @Param payload body dto.RoomLocationsRequest true "Room ids"
// @Success 200 {object} dto.RoomLocationsResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /getRoomLocations [post]
func (h *RoomLocationHandler) Locate(c *gin.Context) {
	var req dto.RoomLocationsRequest
	if err := bindBody(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	locations, err := h.service.Locate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.RoomLocationsResponse{
		Status:    response.StatusSuccess,
		Locations: locations,
	})
}
