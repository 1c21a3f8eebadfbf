package models

import "time"

// ClinicService is a bookable service from the clinic catalogue.
type ClinicService struct {
	ID        string    `db:"id" json:"serviceId"`
	Name      string    `db:"name" json:"serviceName"`
	Price     string    `db:"price" json:"price"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
