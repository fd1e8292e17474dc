package models

// SlotRequirement reserves a minimum number of a committee's seats for faculty
// of one senate division. Unique per (committee, division).
type SlotRequirement struct {
	CommitteeID      int64  `json:"committeeId"`
	SenateDivision   string `json:"senateDivision"`
	SlotRequirements int    `json:"slotRequirements"`
}
