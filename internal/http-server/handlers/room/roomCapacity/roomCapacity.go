package roomCapacity

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"roomBooker/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CapacityGetter
type CapacityGetter interface {
	CapacityFor(roomName string) (models.Capacity, bool)
}

// New answers with {min,max} for constrained rooms and {} for every other name.
func New(log *slog.Logger, capacities CapacityGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.room.roomCapacity.New"

		roomName := r.URL.Query().Get("roomName")

		log := log.With(
			slog.String("op", op),
			slog.String("room_name", roomName),
		)

		capacity, ok := capacities.CapacityFor(roomName)
		if !ok {
			log.Debug("room has no capacity rule")
			render.JSON(w, r, struct{}{})
			return
		}

		log.Debug("capacity found", slog.Int("min", capacity.Min), slog.Int("max", capacity.Max))

		render.JSON(w, r, capacity)
	}
}
