package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Clinic Ops API",
        "description": "Doctor availability and slot-booking engine for the clinic operations portal",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Schedule", "description": "Weekly doctor schedule administration"},
        {"name": "Appointments", "description": "Booking, rescheduling and workflow statuses"},
        {"name": "Availability", "description": "Slot listings and availability verdicts"},
        {"name": "Exports", "description": "Day-sheet exports"}
    ],
    "paths": {
        "/schedule": {
            "get": {
                "tags": ["Schedule"],
                "summary": "List the weekly schedule",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Schedule"],
                "summary": "Create or replace one weekday entry",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpsertScheduleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules": {
            "get": {
                "tags": ["Schedule"],
                "summary": "List the weekly schedule (alias)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/{weekday}": {
            "put": {
                "tags": ["Schedule"],
                "summary": "Replace the entry for a weekday",
                "parameters": [
                    {"name": "weekday", "in": "path", "required": true, "type": "integer", "description": "0 = Monday .. 6 = Sunday"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpsertScheduleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/{weekday}/status": {
            "put": {
                "tags": ["Schedule"],
                "summary": "Change only a weekday's status",
                "parameters": [
                    {"name": "weekday", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateScheduleStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/appointments": {
            "get": {
                "tags": ["Appointments"],
                "summary": "List appointments",
                "parameters": [
                    {"name": "patientId", "in": "query", "type": "string"},
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "from", "in": "query", "type": "string"},
                    {"name": "to", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Appointments"],
                "summary": "Book an appointment",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BookAppointmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Slot already booked"},
                    "422": {"description": "Doctor unavailable"}
                }
            }
        },
        "/appointments/decide": {
            "post": {
                "tags": ["Appointments"],
                "summary": "Dry-run the booking rules for a slot",
                "parameters": [
                    {"name": "view", "in": "query", "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DecideBookingRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/appointments/export": {
            "get": {
                "tags": ["Exports"],
                "summary": "Export a day sheet",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "date", "in": "query", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/appointments/{id}": {
            "get": {
                "tags": ["Appointments"],
                "summary": "Get one appointment",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Appointments"],
                "summary": "Reschedule an appointment",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "view", "in": "query", "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RescheduleAppointmentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Slot already booked"}
                }
            },
            "delete": {
                "tags": ["Appointments"],
                "summary": "Cancel (or hard-delete) an appointment",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "hard", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "Cancelled"},
                    "204": {"description": "Deleted"}
                }
            }
        },
        "/appointments/{id}/status": {
            "put": {
                "tags": ["Appointments"],
                "summary": "Change an appointment's workflow status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateAppointmentStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/availability/slots": {
            "get": {
                "tags": ["Availability"],
                "summary": "List a day's bookable slots with occupancy",
                "parameters": [
                    {"name": "date", "in": "query", "required": true, "type": "string"},
                    {"name": "view", "in": "query", "type": "string", "enum": ["patient", "staff"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/availability/evaluate": {
            "get": {
                "tags": ["Availability"],
                "summary": "Evaluate availability for one moment",
                "parameters": [
                    {"name": "datetime", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "WeeklySchedule": {
            "type": "object",
            "properties": {
                "weekday": {"type": "integer", "description": "0 = Monday .. 6 = Sunday"},
                "status": {"type": "string"},
                "startTime": {"type": "string"},
                "endTime": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "Appointment": {
            "type": "object",
            "properties": {
                "appointmentId": {"type": "string"},
                "patientId": {"type": "string"},
                "serviceId": {"type": "string"},
                "preferredDateTime": {"type": "string", "example": "2026-09-01 09:00:00"},
                "symptom": {"type": "string"},
                "status": {"type": "string", "enum": ["Pending", "Accepted", "Declined", "Confirmed", "Cancelled", "Completed"]}
            }
        },
        "Slot": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "startTime": {"type": "string"},
                "endTime": {"type": "string"},
                "occupied": {"type": "boolean"},
                "appointmentId": {"type": "string"}
            }
        },
        "AvailabilityDecision": {
            "type": "object",
            "properties": {
                "available": {"type": "boolean"},
                "reason": {"type": "string"}
            }
        },
        "BookingDecision": {
            "type": "object",
            "properties": {
                "accepted": {"type": "boolean"},
                "rule": {"type": "string"},
                "reason": {"type": "string"}
            }
        },
        "UpsertScheduleRequest": {
            "type": "object",
            "properties": {
                "weekday": {"type": "integer"},
                "status": {"type": "string"},
                "startTime": {"type": "string"},
                "endTime": {"type": "string"},
                "notes": {"type": "string"}
            },
            "required": ["weekday", "status"]
        },
        "UpdateScheduleStatusRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string"}
            },
            "required": ["status"]
        },
        "BookAppointmentRequest": {
            "type": "object",
            "properties": {
                "patientId": {"type": "string"},
                "serviceId": {"type": "string"},
                "preferredDateTime": {"type": "string", "example": "2026-09-01 09:00:00"},
                "symptom": {"type": "string"}
            },
            "required": ["patientId", "serviceId", "preferredDateTime", "symptom"]
        },
        "RescheduleAppointmentRequest": {
            "type": "object",
            "properties": {
                "preferredDateTime": {"type": "string"},
                "symptom": {"type": "string"}
            },
            "required": ["preferredDateTime"]
        },
        "DecideBookingRequest": {
            "type": "object",
            "properties": {
                "preferredDateTime": {"type": "string"},
                "symptom": {"type": "string"},
                "excludeAppointmentId": {"type": "string"}
            }
        },
        "UpdateAppointmentStatusRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string"}
            },
            "required": ["status"]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
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
