package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/roomfinder-api/internal/dto"
	"github.com/noah-isme/roomfinder-api/internal/models"
	"github.com/noah-isme/roomfinder-api/internal/service"
	"github.com/noah-isme/roomfinder-api/pkg/response"
)

type availabilityService interface {
	FindFreeRooms(ctx context.Context, req dto.FreeRoomsRequest) ([]models.RoomAvailability, error)
	ListRooms(ctx context.Context, campus string) ([]string, error)
	CheckRooms(ctx context.Context, req dto.CheckRoomsRequest) (map[string]bool, error)
}

// AvailabilityHandler exposes the free-room endpoints.
type AvailabilityHandler struct {
	service availabilityService
	metrics *service.MetricsService
}

// NewAvailabilityHandler builds a new handler. metrics may be nil.
func NewAvailabilityHandler(service availabilityService, metrics *service.MetricsService) *AvailabilityHandler {
	return &AvailabilityHandler{service: service, metrics: metrics}
}

// FreeRooms godoc
// @Summary Find free rooms
// @Description Rooms that host a session on the given day but none overlapping [from, to). Times use "hh:mm AM/PM".
// @Tags Rooms
// @Accept json
// @Produce json
// @Param payload body dto.FreeRoomsRequest true "Query window"
// @Success 200 {object} dto.FreeRoomsResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 429 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /tabledata [post]
func (h *AvailabilityHandler) FreeRooms(c *gin.Context) {
	var req dto.FreeRoomsRequest
	if err := bindBody(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	free, err := h.service.FindFreeRooms(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.ObserveQuery("free_rooms", len(free))
	response.JSON(c, http.StatusOK, dto.FreeRoomsResponse{
		Status:      response.StatusSuccess,
		FreeClasses: free,
		Count:       len(free),
	})
}

// AllRooms godoc
// @Summary List rooms
// @Description Distinct venues used by the timetable, optionally restricted to batches starting with campus.
// @Tags Rooms
// @Produce json
// @Param campus query string false "Batch key prefix"
// @Success 200 {object} dto.RoomListResponse
// @Failure 500 {object} response.ErrorBody
// @Router /getallrooms [get]
func (h *AvailabilityHandler) AllRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context(), c.Query("campus"))
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.ObserveQuery("all_rooms", len(rooms))
	response.JSON(c, http.StatusOK, dto.RoomListResponse{
		Status: response.StatusSuccess,
		Rooms:  rooms,
		Count:  len(rooms),
	})
}

// CheckRooms godoc
// @Summary Check specific rooms
// @Description Reports for each requested room whether it is free during the window.
// @Tags Rooms
// @Accept json
// @Produce json
// @Param payload body dto.CheckRoomsRequest true "Rooms and window"
// @Success 200 {object} dto.RoomAvailabilityResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /checkrooms [post]
func (h *AvailabilityHandler) CheckRooms(c *gin.Context) {
	var req dto.CheckRoomsRequest
	if err := bindBody(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	availability, err := h.service.CheckRooms(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.RoomAvailabilityResponse{
		Status:       response.StatusSuccess,
		Availability: availability,
	})
}
