package createBooking

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

type BookingRequest struct {
	Key       string         `json:"key" validate:"required"`
	RoomName  string         `json:"roomName" validate:"required"`
	HourLabel string         `json:"hourLabel" validate:"required"`
	Details   models.Details `json:"details" validate:"required"`
}

type BookingResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(ctx context.Context, key, roomName, hourLabel string, details models.Details) error
}

func New(log *slog.Logger, booking BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log := log.With(slog.String("op", op))

		var req BookingRequest

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

		err = booking.CreateBooking(r.Context(), req.Key, req.RoomName, req.HourLabel, req.Details)
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))

			var capErr *service.CapacityError

			switch {
			case errors.As(err, &capErr):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(capErr.Error()))
			case errors.Is(err, service.ErrValidation):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("missing booking information"))
			case errors.Is(err, service.ErrConflict):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("slot already booked"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create booking"))
			}
			return
		}

		log.Info("booking created",
			slog.String("key", req.Key),
			slog.String("hour_label", req.HourLabel),
		)

		responseCreated(w, r)
	}
}

func responseCreated(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, BookingResponse{
		Response: response.Message("booking successful"),
	})
}
