package updateBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"
	"roomBooker/internal/service"
)

type UpdateRequest struct {
	OldKey       string         `json:"oldKey" validate:"required"`
	OldHourLabel string         `json:"oldHourLabel" validate:"required"`
	NewKey       string         `json:"newKey" validate:"required"`
	NewRoomName  string         `json:"newRoomName" validate:"required"`
	NewHourLabel string         `json:"newHourLabel" validate:"required"`
	NewDetails   models.Details `json:"newDetails" validate:"required"`
	Username     string         `json:"username" validate:"required"`
}

type UpdateResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingUpdater
type BookingUpdater interface {
	UpdateBooking(ctx context.Context, from, to models.Slot, roomName string, details models.Details, actingUser string) error
}

func New(log *slog.Logger, booking BookingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateBooking.New"

		log := log.With(slog.String("op", op))

		var req UpdateRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		from := models.Slot{Key: req.OldKey, HourLabel: req.OldHourLabel}
		to := models.Slot{Key: req.NewKey, HourLabel: req.NewHourLabel}

		err = booking.UpdateBooking(r.Context(), from, to, req.NewRoomName, req.NewDetails, req.Username)
		if err != nil {
			log.Error("failed to update booking", sl.Err(err))

			var capErr *service.CapacityError

			switch {
			case errors.Is(err, service.ErrNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("original booking not found"))
			case errors.Is(err, service.ErrAuth):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("you can only edit your own bookings"))
			case errors.As(err, &capErr):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(capErr.Error()))
			case errors.Is(err, service.ErrValidation):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("missing update information"))
			case errors.Is(err, service.ErrConflict):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("the new time slot is already booked"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update booking"))
			}
			return
		}

		log.Info("booking updated", slog.String("username", req.Username))

		responseOK(w, r)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, UpdateResponse{
		Response: response.Message("booking updated successfully"),
	})
}
