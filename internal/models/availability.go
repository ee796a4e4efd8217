package models

// RoomAvailability is a session whose room is free during the queried window;
// it stands as the witness that the room exists and is not occupied.
type RoomAvailability struct {
	Room        string `json:"room"`
	Batch       string `json:"batch"`
	Subject     string `json:"subject"`
	SubjectCode string `json:"subject_code"`
	Teacher     string `json:"teacher"`
	Type        string `json:"type"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

// TeacherSession is a session taught today by the searched teacher.
type TeacherSession struct {
	Batch       string `json:"batch"`
	Subject     string `json:"subject"`
	SubjectCode string `json:"subject_code"`
	Teacher     string `json:"teacher"`
	Room        string `json:"room"`
	Type        string `json:"type"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Day         string `json:"day"`
	IsCurrent   bool   `json:"is_current"`
}
