package handler

import "github.com/gin-gonic/gin"

// Handlers groups the HTTP handlers mounted by RegisterRoutes.
type Handlers struct {
	Availability *AvailabilityHandler
	Teacher      *TeacherHandler
	Locations    *RoomLocationHandler
	Metrics      *MetricsHandler
}

// RegisterRoutes mounts probes and metrics at the root and the room finder API
// under /api. apiMiddleware runs for /api routes only.
func RegisterRoutes(r *gin.Engine, h Handlers, apiMiddleware ...gin.HandlerFunc) {
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)

	api := r.Group("/api", apiMiddleware...)
	api.POST("/tabledata", h.Availability.FreeRooms)
	api.GET("/getallrooms", h.Availability.AllRooms)
	api.POST("/checkrooms", h.Availability.CheckRooms)
	api.POST("/teacher", h.Teacher.Search)
	api.POST("/getRoomLocations", h.Locations.Locate)
}
