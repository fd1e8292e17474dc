package dto

import (
	"fmt"
	"time"

	"github.com/yigit/senatehub/internal/app/models"
)

// CommitteeAssignmentRequest is the POST/PUT body for committee assignments.
// Dates travel as ISO-8601 calendar dates.
type CommitteeAssignmentRequest struct {
	Email       string `json:"email" binding:"required,email"`
	CommitteeID int64  `json:"committeeId" binding:"required"`
	StartDate   string `json:"startDate" binding:"required,calendardate"`
	EndDate     string `json:"endDate" binding:"required,calendardate"`
}

// ToModel parses the request into a domain assignment. Malformed dates are a
// 400-level validation problem, distinct from the start>end admission rule.
func (r CommitteeAssignmentRequest) ToModel() (*models.CommitteeAssignment, error) {
	start, err := time.Parse(models.DateFormat, r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid startDate %q: %w", r.StartDate, err)
	}

	end, err := time.Parse(models.DateFormat, r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid endDate %q: %w", r.EndDate, err)
	}

	return &models.CommitteeAssignment{
		Email:       r.Email,
		CommitteeID: r.CommitteeID,
		StartDate:   start,
		EndDate:     end,
	}, nil
}

// CommitteeAssignmentResponse is the wire form of an assignment row
type CommitteeAssignmentResponse struct {
	Email       string `json:"email"`
	CommitteeID int64  `json:"committeeId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// NewCommitteeAssignmentResponse formats a domain assignment for the wire
func NewCommitteeAssignmentResponse(a *models.CommitteeAssignment) CommitteeAssignmentResponse {
	return CommitteeAssignmentResponse{
		Email:       a.Email,
		CommitteeID: a.CommitteeID,
		StartDate:   a.StartDate.Format(models.DateFormat),
		EndDate:     a.EndDate.Format(models.DateFormat),
	}
}

// NewCommitteeAssignmentListResponse formats a list of assignments
func NewCommitteeAssignmentListResponse(assignments []*models.CommitteeAssignment) []CommitteeAssignmentResponse {
	out := make([]CommitteeAssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, NewCommitteeAssignmentResponse(a))
	}
	return out
}

// CommitteeRequest is the POST/PUT body for committees
type CommitteeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	TotalSlots  *int   `json:"totalSlots" binding:"required"`
}

// CommitteeDetailResponse is a committee plus its live seat occupancy
type CommitteeDetailResponse struct {
	CommitteeID   int64  `json:"committeeId"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	TotalSlots    int    `json:"totalSlots"`
	ConsumedSlots int    `json:"consumedSlots"`
	FreeSlots     int    `json:"freeSlots"`
}

// NewCommitteeDetailResponse combines a committee row with its occupancy
func NewCommitteeDetailResponse(c *models.Committee, occupancy models.CommitteeOccupancy) CommitteeDetailResponse {
	return CommitteeDetailResponse{
		CommitteeID:   c.ID,
		Name:          c.Name,
		Description:   c.Description,
		TotalSlots:    c.TotalSlots,
		ConsumedSlots: occupancy.ConsumedSlots,
		FreeSlots:     occupancy.FreeSlots(),
	}
}

// FacultyRequest is the POST/PUT body for faculty members
type FacultyRequest struct {
	FullName       string `json:"fullName" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	JobTitle       string `json:"jobTitle" binding:"required"`
	PhoneNum       string `json:"phoneNum" binding:"required"`
	SenateDivision string `json:"senateDivision" binding:"required"`
}

// ToModel converts the request into a domain faculty member
func (r FacultyRequest) ToModel() *models.Faculty {
	return &models.Faculty{
		Email:          r.Email,
		FullName:       r.FullName,
		JobTitle:       r.JobTitle,
		PhoneNum:       r.PhoneNum,
		SenateDivision: r.SenateDivision,
	}
}

// SlotRequirementRequest is the POST body for per-division seat reservations
type SlotRequirementRequest struct {
	CommitteeID      int64  `json:"committeeId" binding:"required"`
	SenateDivision   string `json:"senateDivision" binding:"required"`
	SlotRequirements *int   `json:"slotRequirements" binding:"required"`
}

// SlotRequirementUpdateRequest is the PUT body; committee and division come
// from the path.
type SlotRequirementUpdateRequest struct {
	SlotRequirements *int `json:"slotRequirements" binding:"required"`
}

// DepartmentAssociationRequest is the POST/PUT body for department membership
type DepartmentAssociationRequest struct {
	Email        string `json:"email" binding:"required,email"`
	DepartmentID int64  `json:"departmentId" binding:"required"`
}

// DepartmentAssociationUpdateRequest moves an existing membership to a new
// department.
type DepartmentAssociationUpdateRequest struct {
	Email           string `json:"email" binding:"required,email"`
	OldDepartmentID int64  `json:"oldDepartmentId" binding:"required"`
	NewDepartmentID int64  `json:"newDepartmentId" binding:"required"`
}

// SurveyResponseRequest is the POST/PUT body for survey data
type SurveyResponseRequest struct {
	SurveyDate   string `json:"surveyDate" binding:"required,calendardate"`
	Email        string `json:"email" binding:"required,email"`
	IsInterested *bool  `json:"isInterested" binding:"required"`
	Expertise    string `json:"expertise"`
}

// ToModel parses the request into a domain survey response
func (r SurveyResponseRequest) ToModel() (*models.SurveyResponse, error) {
	date, err := time.Parse(models.DateFormat, r.SurveyDate)
	if err != nil {
		return nil, fmt.Errorf("invalid surveyDate %q: %w", r.SurveyDate, err)
	}

	return &models.SurveyResponse{
		SurveyDate:   date,
		Email:        r.Email,
		IsInterested: *r.IsInterested,
		Expertise:    r.Expertise,
	}, nil
}

// SurveyResponseData is the wire form of a survey row
type SurveyResponseData struct {
	SurveyDate   string `json:"surveyDate"`
	Email        string `json:"email"`
	IsInterested bool   `json:"isInterested"`
	Expertise    string `json:"expertise"`
}

// NewSurveyResponseData formats a survey response for the wire
func NewSurveyResponseData(s *models.SurveyResponse) SurveyResponseData {
	return SurveyResponseData{
		SurveyDate:   s.SurveyDate.Format(models.DateFormat),
		Email:        s.Email,
		IsInterested: s.IsInterested,
		Expertise:    s.Expertise,
	}
}
