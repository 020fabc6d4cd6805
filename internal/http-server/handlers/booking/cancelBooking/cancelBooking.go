package cancelBooking

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

type CancelRequest struct {
	Key       string `json:"key" validate:"required"`
	HourLabel string `json:"hourLabel" validate:"required"`
	Username  string `json:"username" validate:"required"`
}

type CancelResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCanceller
type BookingCanceller interface {
	CancelBooking(ctx context.Context, slot models.Slot, actingUser string) error
}

func New(log *slog.Logger, booking BookingCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.cancelBooking.New"

		log := log.With(slog.String("op", op))

		var req CancelRequest

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

		slot := models.Slot{Key: req.Key, HourLabel: req.HourLabel}

		err = booking.CancelBooking(r.Context(), slot, req.Username)
		if err != nil {
			log.Error("failed to cancel booking", sl.Err(err))

			switch {
			case errors.Is(err, service.ErrNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, service.ErrAuth):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("only the user who booked this slot can cancel it"))
			case errors.Is(err, service.ErrValidation):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("missing cancellation information"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to cancel booking"))
			}
			return
		}

		log.Info("booking cancelled", slog.String("username", req.Username))

		responseOK(w, r)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, CancelResponse{
		Response: response.Message("booking cancelled"),
	})
}
