package dto

// FreeRoomsRequest asks which rooms are free on a day between two times.
type FreeRoomsRequest struct {
	Day    string `json:"day" validate:"required"`
	From   string `json:"from" validate:"required"`
	To     string `json:"to" validate:"required"`
	Campus string `json:"campus"`
}

// CheckRoomsRequest asks whether specific rooms are free during a window.
type CheckRoomsRequest struct {
	Day    string   `json:"day" validate:"required"`
	From   string   `json:"from" validate:"required"`
	To     string   `json:"to" validate:"required"`
	Campus string   `json:"campus"`
	Rooms  []string `json:"rooms" validate:"required,min=1"`
}

// TeacherSearchRequest looks up today's sessions of a teacher.
type TeacherSearchRequest struct {
	TeacherName string `json:"teacher_name" validate:"required"`
}

// RoomLocationsRequest resolves building/floor labels for room ids.
type RoomLocationsRequest struct {
	RoomIDs []string `json:"room_ids" validate:"required"`
}
