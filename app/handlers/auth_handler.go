package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/mehdiben7/tiwashop/app/helpers"
	"github.com/mehdiben7/tiwashop/app/models"
	"github.com/mehdiben7/tiwashop/app/repositories"
	"github.com/mehdiben7/tiwashop/app/utils/sessions"
	"github.com/unrolled/render"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	render       *render.Render
	userRepo     repositories.UserRepositoryImpl
	sessionStore sessions.SessionStore
	validator    *validator.Validate
}

func NewAuthHandler(r *render.Render, userRepo repositories.UserRepositoryImpl, sessionStore sessions.SessionStore, v *validator.Validate) *AuthHandler {
	return &AuthHandler{
		render:       r,
		userRepo:     userRepo,
		sessionStore: sessionStore,
		validator:    v,
	}
}

type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var form LoginForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
		return
	}

	if err := h.validator.Struct(&form); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		_ = h.render.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":  "validation failed",
			"fields": helpers.FormatValidationErrors(validationErrors),
		})
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), form.Email)
	if err != nil {
		log.Printf("AuthHandler.Login: failed to look up user %s: %v", form.Email, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{
			"error": "login failed",
		})
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(form.Password)) != nil {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{
			"error": "invalid email or password",
		})
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		log.Printf("AuthHandler.Login: failed to save session for user %s: %v", user.ID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{
			"error": "login failed",
		})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"user": user,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearSession(w, r); err != nil {
		log.Printf("AuthHandler.Logout: failed to clear session: %v", err)
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{
		"message": "logged out",
	})
}

// Me returns the authenticated admin, for session checks on the SPA side.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User)
	if !ok || user == nil {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{
			"error": "authentication required",
		})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"user": user,
	})
}
