package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// KeySeparator joins location, room and date into a booking key. Names containing it
// make the key ambiguous; keys are stored as given.
const KeySeparator = "_"

const (
	FieldPresenter = "presenter"
	FieldPersons   = "persons"
)

// Details is the caller-supplied payload of a booked slot. Besides presenter and
// persons it keeps any other fields the client sends.
type Details map[string]any

func (d Details) Presenter() string {
	s, _ := d[FieldPresenter].(string)
	return s
}

// Persons parses the persons field as a whole number. JSON numbers are truncated;
// strings contribute their leading integer.
func (d Details) Persons() (int, error) {
	switch v := d[FieldPersons].(type) {
	case nil:
		return 0, fmt.Errorf("persons is missing")
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("persons is not a number")
		}
		return int(v), nil
	case int:
		return v, nil
	case string:
		n, err := leadingInt(v)
		if err != nil {
			return 0, fmt.Errorf("persons %q is not a number", v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("persons has unsupported type %T", v)
	}
}

// leadingInt reads an optionally signed run of digits after leading whitespace and
// ignores whatever follows it, so "12 people" and "12.5" both yield 12.
func leadingInt(s string) (int, error) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digits {
		return 0, fmt.Errorf("no leading digits in %q", s)
	}

	return strconv.Atoi(s[:end])
}

// SlotBookings maps an hour label to the booking occupying it.
type SlotBookings map[string]Details

// Slot addresses one bookable hour inside a location_room_date bucket.
type Slot struct {
	Key       string
	HourLabel string
}

type UserBooking struct {
	Key       string  `json:"key"`
	Location  string  `json:"location"`
	Room      string  `json:"room"`
	Date      string  `json:"date"`
	HourLabel string  `json:"hourLabel"`
	Details   Details `json:"details"`
}

func BookingKey(location, room, date string) string {
	return strings.Join([]string{location, room, date}, KeySeparator)
}

// SplitKey returns the first three separator-delimited parts of key. Missing parts are empty.
func SplitKey(key string) (location, room, date string) {
	parts := strings.Split(key, KeySeparator)

	get := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}

	return get(0), get(1), get(2)
}
