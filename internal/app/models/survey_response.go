package models

import "time"

// SurveyResponse records a faculty member's committee-interest survey answer
// for one year. Keyed by (survey date, email).
type SurveyResponse struct {
	SurveyDate   time.Time `json:"surveyDate"`
	Email        string    `json:"email"`
	IsInterested bool      `json:"isInterested"`
	Expertise    string    `json:"expertise"`
}
