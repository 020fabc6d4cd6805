package listRooms

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"roomBooker/internal/catalog"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomLister
type RoomLister interface {
	RoomsFor(location string) ([]string, error)
}

func New(log *slog.Logger, rooms RoomLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.room.listRooms.New"

		location := r.URL.Query().Get("location")

		log := log.With(
			slog.String("op", op),
			slog.String("location", location),
		)

		list, err := rooms.RoomsFor(location)
		if err != nil {
			if errors.Is(err, catalog.ErrLocationNotFound) {
				log.Info("location not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("location not found"))
				return
			}

			log.Error("failed to list rooms", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list rooms"))
			return
		}

		log.Info("rooms listed", slog.Int("count", len(list)))

		render.JSON(w, r, list)
	}
}
