package models

// SenateDivision is static reference data identifying a division of the
// faculty senate by its short code.
type SenateDivision struct {
	ShortName string `json:"senateDivisionShortName"`
	Name      string `json:"name"`
}
