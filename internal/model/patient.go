package model

import (
	"time"
)

type PatientSex string

const (
	PatientSexFemale PatientSex = "female"
	PatientSexMale   PatientSex = "male"
	PatientSexOther  PatientSex = "other"
)

type Patient struct {
	Base
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	Sex       string    `db:"sex" json:"sex"`
	Birthday  time.Time `db:"birthday" json:"birthday"`
	Ethnicity string    `db:"ethnicity" json:"ethnicity"`
	Location  string    `db:"location" json:"location"`
	Phone     string    `db:"phone" json:"phone"`
	Email     string    `db:"email" json:"email"`
	Notes     string    `db:"notes" json:"notes"`
}

// Age computes the patient's age in whole years at the given instant.
func (p *Patient) Age(now time.Time) int {
	years := now.Year() - p.Birthday.Year()
	anniversary := p.Birthday.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}

type CreatePatientRequest struct {
	FirstName string    `json:"first_name" binding:"required"`
	LastName  string    `json:"last_name" binding:"required"`
	Sex       string    `json:"sex" binding:"required,oneof=female male other"`
	Birthday  time.Time `json:"birthday" binding:"required"`
	Ethnicity string    `json:"ethnicity"`
	Location  string    `json:"location"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email" binding:"omitempty,email"`
	Notes     string    `json:"notes"`
}

type UpdatePatientRequest struct {
	FirstName *string    `json:"first_name"`
	LastName  *string    `json:"last_name"`
	Sex       *string    `json:"sex" binding:"omitempty,oneof=female male other"`
	Birthday  *time.Time `json:"birthday"`
	Ethnicity *string    `json:"ethnicity"`
	Location  *string    `json:"location"`
	Phone     *string    `json:"phone"`
	Email     *string    `json:"email" binding:"omitempty,email"`
	Notes     *string    `json:"notes"`
}
