package models

// Capacity is the inclusive range of persons a room accepts.
type Capacity struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (c Capacity) Allows(persons int) bool {
	return persons >= c.Min && persons <= c.Max
}
