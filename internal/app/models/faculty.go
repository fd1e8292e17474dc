package models

// Faculty represents a faculty member. Email is the primary identity and every
// member belongs to exactly one senate division.
type Faculty struct {
	Email          string `json:"email"`
	FullName       string `json:"fullName"`
	JobTitle       string `json:"jobTitle"`
	PhoneNum       string `json:"phoneNum"`
	SenateDivision string `json:"senateDivision"`
}
