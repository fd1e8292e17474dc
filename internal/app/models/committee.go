package models

// Committee represents a university committee with a fixed number of seats.
// Consumed seats are derived from assignment rows, never stored.
type Committee struct {
	ID          int64  `json:"committeeId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TotalSlots  int    `json:"totalSlots"`
}

// CommitteeOccupancy is a point-in-time view of committee capacity.
type CommitteeOccupancy struct {
	TotalSlots    int `json:"totalSlots"`
	ConsumedSlots int `json:"consumedSlots"`
}

// FreeSlots returns the number of physically unoccupied seats.
func (o CommitteeOccupancy) FreeSlots() int {
	free := o.TotalSlots - o.ConsumedSlots
	if free < 0 {
		return 0
	}
	return free
}
