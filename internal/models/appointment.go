package models

import "time"

// AppointmentStatus tracks an appointment through the clinic workflow.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "Pending"
	AppointmentAccepted  AppointmentStatus = "Accepted"
	AppointmentDeclined  AppointmentStatus = "Declined"
	AppointmentConfirmed AppointmentStatus = "Confirmed"
	AppointmentCancelled AppointmentStatus = "Cancelled"
	AppointmentCompleted AppointmentStatus = "Completed"
)

// PatientOccupyingStatuses are the statuses that block a slot in the patient
// booking view.
var PatientOccupyingStatuses = []AppointmentStatus{AppointmentPending, AppointmentAccepted}

// StaffOccupyingStatuses are the broader staff-side blocking set.
var StaffOccupyingStatuses = []AppointmentStatus{AppointmentPending, AppointmentAccepted, AppointmentConfirmed}

// Appointment is a booked or requested visit.
type Appointment struct {
	ID                string            `db:"id" json:"appointmentId"`
	PatientID         string            `db:"patient_id" json:"patientId"`
	ServiceID         string            `db:"service_id" json:"serviceId"`
	PreferredDateTime ClinicTime        `db:"preferred_datetime" json:"preferredDateTime"`
	Symptom           string            `db:"symptom" json:"symptom"`
	Status            AppointmentStatus `db:"status" json:"status"`
	CreatedAt         time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time         `db:"updated_at" json:"updated_at"`
}

// AppointmentFilter narrows appointment listings.
type AppointmentFilter struct {
	PatientID string
	Status    string
	DateFrom  *time.Time
	DateTo    *time.Time
	Page      int
	PageSize  int
}

// ValidAppointmentStatus reports whether raw names a known workflow status.
func ValidAppointmentStatus(raw string) bool {
	switch AppointmentStatus(raw) {
	case AppointmentPending, AppointmentAccepted, AppointmentDeclined,
		AppointmentConfirmed, AppointmentCancelled, AppointmentCompleted:
		return true
	}
	return false
}
