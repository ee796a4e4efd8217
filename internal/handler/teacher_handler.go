package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/roomfinder-api/internal/dto"
	"github.com/noah-isme/roomfinder-api/internal/models"
	"github.com/noah-isme/roomfinder-api/internal/service"
	"github.com/noah-isme/roomfinder-api/pkg/response"
)

type directoryService interface {
	FindTeacherSessions(ctx context.Context, req dto.TeacherSearchRequest, now time.Time) ([]models.TeacherSession, error)
}

// TeacherHandler exposes the teacher directory search.
type TeacherHandler struct {
	service directoryService
	metrics *service.MetricsService
	now     func() time.Time
}

// NewTeacherHandler builds a new handler. now defaults to the server's local clock.
func NewTeacherHandler(service directoryService, metrics *service.MetricsService, now func() time.Time) *TeacherHandler {
	if now == nil {
		now = time.Now
	}
	return &TeacherHandler{service: service, metrics: metrics, now: now}
}

// Search godoc
// @Summary Find a teacher today
// @Description Today's sessions whose teacher contains teacher_name (case-insensitive), flagging the one in progress.
// @Tags Teachers
// @Accept json
// @Produce json
// @Param payload body dto.TeacherSearchRequest true "Teacher name fragment"
// @Success 200 {object} dto.TeacherSessionsResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /teacher [post]
func (h *TeacherHandler) Search(c *gin.Context) {
	var req dto.TeacherSearchRequest
	if err := bindBody(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	sessions, err := h.service.FindTeacherSessions(c.Request.Context(), req, h.now())
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.ObserveQuery("teacher", len(sessions))

	body := dto.TeacherSessionsResponse{
		Status:         response.StatusSuccess,
		TeacherClasses: sessions,
		Count:          len(sessions),
	}
	if len(sessions) == 0 {
		body.Message = fmt.Sprintf("No classes found for teacher: %s", req.TeacherName)
	}
	response.JSON(c, http.StatusOK, body)
}
