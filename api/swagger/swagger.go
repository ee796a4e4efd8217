package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Room Finder API",
        "description": "Free rooms, teacher whereabouts and room locations from the campus timetable.",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http",
        "https"
    ],
    "tags": [
        {"name": "Rooms", "description": "Room availability and locations"},
        {"name": "Teachers", "description": "Where a teacher is today"},
        {"name": "Health", "description": "Probes"}
    ],
    "paths": {
        "/tabledata": {
            "post": {
                "tags": ["Rooms"],
                "summary": "Find free rooms",
                "description": "Rooms that host a session on the given day but none overlapping [from, to). Times use \"hh:mm AM/PM\".",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FreeRoomsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/FreeRoomsResponse"}},
                    "400": {"description": "Missing or malformed parameters", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Timetable not loaded", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/teacher": {
            "post": {
                "tags": ["Teachers"],
                "summary": "Find a teacher today",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TeacherSearchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TeacherSessionsResponse"}},
                    "400": {"description": "Missing teacher_name", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Timetable not loaded", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/getallrooms": {
            "get": {
                "tags": ["Rooms"],
                "summary": "List rooms",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "campus", "in": "query", "type": "string", "description": "Batch key prefix"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/RoomListResponse"}},
                    "500": {"description": "Timetable not loaded", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/checkrooms": {
            "post": {
                "tags": ["Rooms"],
                "summary": "Check specific rooms",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CheckRoomsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/RoomAvailabilityResponse"}},
                    "400": {"description": "Missing or malformed parameters", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Timetable not loaded", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/getRoomLocations": {
            "post": {
                "tags": ["Rooms"],
                "summary": "Locate rooms",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RoomLocationsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/RoomLocationsResponse"}},
                    "400": {"description": "Missing room_ids", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Locations not loaded", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "FreeRoomsRequest": {
            "type": "object",
            "required": ["day", "from", "to"],
            "properties": {
                "day": {"type": "string", "example": "Monday"},
                "from": {"type": "string", "example": "10:00 AM"},
                "to": {"type": "string", "example": "11:00 AM"},
                "campus": {"type": "string", "example": "btech-1"}
            }
        },
        "CheckRoomsRequest": {
            "type": "object",
            "required": ["day", "from", "to", "rooms"],
            "properties": {
                "day": {"type": "string", "example": "Monday"},
                "from": {"type": "string", "example": "10:00 AM"},
                "to": {"type": "string", "example": "11:00 AM"},
                "campus": {"type": "string"},
                "rooms": {"type": "array", "items": {"type": "string"}}
            }
        },
        "TeacherSearchRequest": {
            "type": "object",
            "required": ["teacher_name"],
            "properties": {
                "teacher_name": {"type": "string", "example": "rao"}
            }
        },
        "RoomLocationsRequest": {
            "type": "object",
            "required": ["room_ids"],
            "properties": {
                "room_ids": {"type": "array", "items": {"type": "string"}}
            }
        },
        "RoomAvailability": {
            "type": "object",
            "properties": {
                "room": {"type": "string"},
                "batch": {"type": "string"},
                "subject": {"type": "string"},
                "subject_code": {"type": "string"},
                "teacher": {"type": "string"},
                "type": {"type": "string"},
                "start": {"type": "string"},
                "end": {"type": "string"}
            }
        },
        "TeacherSession": {
            "type": "object",
            "properties": {
                "batch": {"type": "string"},
                "subject": {"type": "string"},
                "subject_code": {"type": "string"},
                "teacher": {"type": "string"},
                "room": {"type": "string"},
                "type": {"type": "string"},
                "start": {"type": "string"},
                "end": {"type": "string"},
                "day": {"type": "string"},
                "is_current": {"type": "boolean"}
            }
        },
        "FreeRoomsResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "free_classes": {"type": "array", "items": {"$ref": "#/definitions/RoomAvailability"}},
                "count": {"type": "integer"}
            }
        },
        "TeacherSessionsResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "message": {"type": "string"},
                "teacher_classes": {"type": "array", "items": {"$ref": "#/definitions/TeacherSession"}},
                "count": {"type": "integer"}
            }
        },
        "RoomListResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "rooms": {"type": "array", "items": {"type": "string"}},
                "count": {"type": "integer"}
            }
        },
        "RoomAvailabilityResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "availability": {"type": "object", "additionalProperties": {"type": "boolean"}}
            }
        },
        "RoomLocationsResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "locations": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "error"},
                "message": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
