package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/service"
)

type Request struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Response struct {
	response.Response
	Username string `json:"username"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserAuthenticator
type UserAuthenticator interface {
	Login(ctx context.Context, username, password string) error
}

// New checks credentials only. The username it echoes back is what the client
// presents on later booking changes; no token is issued.
func New(log *slog.Logger, users UserAuthenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

		log := log.With(slog.String("op", op))

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		err = users.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrAuth) {
				log.Info("login rejected", slog.String("username", req.Username))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("incorrect username or password"))
				return
			}

			log.Error("failed to log in", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))
			return
		}

		log.Info("user logged in", slog.String("username", req.Username))

		responseOK(w, r, req.Username)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, username string) {
	render.JSON(w, r, Response{
		Response: response.Message("login successful"),
		Username: username,
	})
}
