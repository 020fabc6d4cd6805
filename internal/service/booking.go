package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"roomBooker/internal/models"
)

const dateLayout = "2006-01-02"

// ListBookings returns the bookings stored under key, or an empty map.
func (s *Service) ListBookings(ctx context.Context, key string) (models.SlotBookings, error) {
	const op = "service.ListBookings"

	doc, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	bookings, ok := doc.Bookings[key]
	if !ok || bookings == nil {
		return models.SlotBookings{}, nil
	}

	return bookings, nil
}

func (s *Service) CreateBooking(ctx context.Context, key, roomName, hourLabel string, details models.Details) error {
	const op = "service.CreateBooking"

	if key == "" || roomName == "" || hourLabel == "" || details == nil {
		return fmt.Errorf("%s: missing booking information: %w", op, ErrValidation)
	}

	if err := s.checkDetails(roomName, details); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	doc, err := s.load(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	slot := models.Slot{Key: key, HourLabel: hourLabel}

	if _, booked := doc.Booking(slot); booked {
		return fmt.Errorf("%s: slot %s %s already booked: %w", op, key, hourLabel, ErrConflict)
	}

	doc.Put(slot, details)

	if err = s.save(ctx, doc); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Debug("booking created",
		slog.String("key", key),
		slog.String("hour_label", hourLabel),
		slog.String("presenter", details.Presenter()),
	)

	return nil
}

// UpdateBooking moves the booking at from to to, replacing its details. Only the
// presenter of the existing booking may move it. Both the removal and the insertion
// are applied to the loaded document before the single write.
func (s *Service) UpdateBooking(
	ctx context.Context,
	from, to models.Slot,
	roomName string,
	details models.Details,
	actingUser string,
) error {
	const op = "service.UpdateBooking"

	if from.Key == "" || from.HourLabel == "" || to.Key == "" || to.HourLabel == "" ||
		roomName == "" || details == nil || actingUser == "" {
		return fmt.Errorf("%s: missing update information: %w", op, ErrValidation)
	}

	doc, err := s.load(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	existing, ok := doc.Booking(from)
	if !ok {
		return fmt.Errorf("%s: original booking not found: %w", op, ErrNotFound)
	}

	if existing.Presenter() != actingUser {
		return fmt.Errorf("%s: %q does not own the booking: %w", op, actingUser, ErrAuth)
	}

	if err = s.checkDetails(roomName, details); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if from != to {
		if _, booked := doc.Booking(to); booked {
			return fmt.Errorf("%s: new slot already booked: %w", op, ErrConflict)
		}
	}

	doc.Remove(from)
	doc.Put(to, details)

	if err = s.save(ctx, doc); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Debug("booking updated",
		slog.String("from_key", from.Key),
		slog.String("from_hour_label", from.HourLabel),
		slog.String("to_key", to.Key),
		slog.String("to_hour_label", to.HourLabel),
	)

	return nil
}

func (s *Service) CancelBooking(ctx context.Context, slot models.Slot, actingUser string) error {
	const op = "service.CancelBooking"

	if slot.Key == "" || slot.HourLabel == "" || actingUser == "" {
		return fmt.Errorf("%s: missing cancellation information: %w", op, ErrValidation)
	}

	doc, err := s.load(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	existing, ok := doc.Booking(slot)
	if !ok {
		return fmt.Errorf("%s: booking not found: %w", op, ErrNotFound)
	}

	if existing.Presenter() != actingUser {
		return fmt.Errorf("%s: %q does not own the booking: %w", op, actingUser, ErrAuth)
	}

	doc.Remove(slot)

	if err = s.save(ctx, doc); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Debug("booking cancelled",
		slog.String("key", slot.Key),
		slog.String("hour_label", slot.HourLabel),
	)

	return nil
}

// ListForUser scans every bucket for bookings presented by username and returns them
// soonest date first. Buckets and hour labels are visited in lexical order so entries
// sharing a date keep a deterministic order.
func (s *Service) ListForUser(ctx context.Context, username string) ([]models.UserBooking, error) {
	const op = "service.ListForUser"

	if username == "" {
		return nil, fmt.Errorf("%s: username is required: %w", op, ErrValidation)
	}

	doc, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]models.UserBooking, 0)

	for _, key := range sortedKeys(doc.Bookings) {
		location, room, date := models.SplitKey(key)
		bucket := doc.Bookings[key]

		for _, hourLabel := range sortedKeys(bucket) {
			details := bucket[hourLabel]
			if details == nil || details.Presenter() != username {
				continue
			}

			result = append(result, models.UserBooking{
				Key:       key,
				Location:  location,
				Room:      room,
				Date:      date,
				HourLabel: hourLabel,
				Details:   details,
			})
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return dateBefore(result[i].Date, result[j].Date)
	})

	return result, nil
}

func (s *Service) checkDetails(roomName string, details models.Details) error {
	if details.Presenter() == "" {
		return fmt.Errorf("presenter is required: %w", ErrValidation)
	}

	capacity, constrained := s.catalog.CapacityFor(roomName)
	if !constrained {
		return nil
	}

	persons, err := details.Persons()
	if err != nil {
		return fmt.Errorf("invalid persons: %v: %w", err, ErrValidation)
	}

	if !capacity.Allows(persons) {
		return &CapacityError{Min: capacity.Min, Max: capacity.Max}
	}

	return nil
}

// dateBefore orders valid dates chronologically ahead of unparseable ones.
func dateBefore(a, b string) bool {
	ta, errA := time.Parse(dateLayout, a)
	tb, errB := time.Parse(dateLayout, b)

	switch {
	case errA == nil && errB == nil:
		return ta.Before(tb)
	case errA == nil:
		return true
	default:
		return false
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
