package listBookings

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsGetter
type BookingsGetter interface {
	ListBookings(ctx context.Context, key string) (models.SlotBookings, error)
}

func New(log *slog.Logger, bookings BookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.listBookings.New"

		log := log.With(slog.String("op", op))

		key := r.URL.Query().Get("key")
		if key == "" {
			log.Error("booking key is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking key is required"))
			return
		}

		log = log.With(slog.String("key", key))

		slots, err := bookings.ListBookings(r.Context(), key)
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		if slots == nil {
			slots = models.SlotBookings{}
		}

		log.Info("bookings retrieved", slog.Int("count", len(slots)))

		render.JSON(w, r, slots)
	}
}
