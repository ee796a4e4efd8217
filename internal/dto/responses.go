package dto

import "github.com/noah-isme/roomfinder-api/internal/models"

// FreeRoomsResponse is the body of /api/tabledata.
type FreeRoomsResponse struct {
	Status      string                    `json:"status" example:"success"`
	FreeClasses []models.RoomAvailability `json:"free_classes"`
	Count       int                       `json:"count"`
}

// TeacherSessionsResponse is the body of /api/teacher. Count is omitted and a
// message set when nothing matched.
type TeacherSessionsResponse struct {
	Status         string                  `json:"status" example:"success"`
	Message        string                  `json:"message,omitempty"`
	TeacherClasses []models.TeacherSession `json:"teacher_classes"`
	Count          int                     `json:"count,omitempty"`
}

// RoomListResponse is the body of /api/getallrooms.
type RoomListResponse struct {
	Status string   `json:"status" example:"success"`
	Rooms  []string `json:"rooms"`
	Count  int      `json:"count"`
}

// RoomAvailabilityResponse is the body of /api/checkrooms.
type RoomAvailabilityResponse struct {
	Status       string          `json:"status" example:"success"`
	Availability map[string]bool `json:"availability"`
}

// RoomLocationsResponse is the body of /api/getRoomLocations.
type RoomLocationsResponse struct {
	Status    string            `json:"status" example:"success"`
	Locations map[string]string `json:"locations"`
}

// HealthResponse is the body of the probe endpoints.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
