package models

// Document is the whole persisted database: users (username to plaintext password)
// and bookings (booking key to hour label to details).
type Document struct {
	Users    map[string]string       `json:"users"`
	Bookings map[string]SlotBookings `json:"bookings"`
}

func NewDocument() *Document {
	return &Document{
		Users:    map[string]string{},
		Bookings: map[string]SlotBookings{},
	}
}

// Normalize replaces nil maps left by decoding a partial document.
func (d *Document) Normalize() {
	if d.Users == nil {
		d.Users = map[string]string{}
	}
	if d.Bookings == nil {
		d.Bookings = map[string]SlotBookings{}
	}
}

// Booking returns the details stored at slot, if any.
func (d *Document) Booking(slot Slot) (Details, bool) {
	bucket, ok := d.Bookings[slot.Key]
	if !ok {
		return nil, false
	}

	details, ok := bucket[slot.HourLabel]
	if !ok || details == nil {
		return nil, false
	}

	return details, true
}

func (d *Document) Put(slot Slot, details Details) {
	if d.Bookings[slot.Key] == nil {
		d.Bookings[slot.Key] = SlotBookings{}
	}

	d.Bookings[slot.Key][slot.HourLabel] = details
}

// Remove deletes the booking at slot and drops its bucket once empty.
func (d *Document) Remove(slot Slot) {
	bucket, ok := d.Bookings[slot.Key]
	if !ok {
		return
	}

	delete(bucket, slot.HourLabel)

	if len(bucket) == 0 {
		delete(d.Bookings, slot.Key)
	}
}
