package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/service"
	"github.com/MKhiriev/go-diary-keeper/internal/store"
	"github.com/MKhiriev/go-diary-keeper/internal/utils"
	"github.com/MKhiriev/go-diary-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONError(w, "username and password are required", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrLoginAlreadyExists):
			log.Err(err).Msg("username already exists")
			utils.WriteJSONError(w, "username already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSONError(w, http.StatusText(statusFromError(err)), statusFromError(err))
			return
		}
	}

	log.Debug().Str("id", registeredUser.ID.Hex()).Str("login", registeredUser.Login).Msg("user registered")

	utils.WriteJSON(w, models.RegisterResponse{
		ID:    registeredUser.ID.Hex(),
		Login: registeredUser.Login,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONError(w, "username and password are required", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			// the body never says whether the login or the password was wrong
			log.Warn().Str("login", user.Login).Msg("login attempt rejected")
			utils.WriteJSONError(w, "invalid username/password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSONError(w, http.StatusText(statusFromError(err)), statusFromError(err))
			return
		}
	}

	log.Debug().Str("id", foundUser.ID.Hex()).Str("login", foundUser.Login).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{
		Token: token.SignedString,
		ID:    foundUser.ID.Hex(),
		Login: foundUser.Login,
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Err(ErrNoIdentityInContext).Send()
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.Logout(ctx, identity.ID); err != nil {
		log.Err(err).Msg("logout failed")
		utils.WriteJSONError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	log.Debug().Str("id", identity.ID).Msg("session revoked")

	utils.WriteJSON(w, models.AckResponse{Message: "logged out"}, http.StatusOK)
}
