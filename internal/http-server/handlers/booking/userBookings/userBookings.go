package userBookings

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserBookingsGetter
type UserBookingsGetter interface {
	ListForUser(ctx context.Context, username string) ([]models.UserBooking, error)
}

func New(log *slog.Logger, bookings UserBookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.userBookings.New"

		log := log.With(slog.String("op", op))

		username := r.URL.Query().Get("username")
		if username == "" {
			log.Error("username is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("username is required"))
			return
		}

		log = log.With(slog.String("username", username))

		list, err := bookings.ListForUser(r.Context(), username)
		if err != nil {
			log.Error("failed to get user bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get user bookings"))
			return
		}

		if list == nil {
			list = []models.UserBooking{}
		}

		log.Info("user bookings retrieved", slog.Int("count", len(list)))

		render.JSON(w, r, list)
	}
}
