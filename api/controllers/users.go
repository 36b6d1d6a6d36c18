package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/storefront/api/responses"
	"github.com/angelmondragon/storefront/api/validators"
	"github.com/angelmondragon/storefront/internal/shop"
	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
	"github.com/angelmondragon/storefront/pkg/logger"
)

type demoLoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type demoLoginResponse struct {
	User    userDTO `json:"user"`
	Message string  `json:"message"`
}

// DemoLogin fetches or creates the demo user for the given email.
func DemoLogin(svc shop.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload demoLoginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, created, err := svc.DemoLogin(r.Context(), payload.Email)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		message := "Demo user retrieved"
		if created {
			message = "New demo user created"
		}
		responses.WriteJSON(w, http.StatusOK, demoLoginResponse{
			User:    userDTO{ID: user.ID, Email: user.Email},
			Message: message,
		})
	}
}

type createUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// CreateUser registers a non-demo user.
func CreateUser(svc shop.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createUserRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.CreateUser(r.Context(), payload.Name, payload.Email)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, userDTO{ID: user.ID, Email: user.Email})
	}
}

func userIDParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "userId")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id")
	}
	return id, nil
}
