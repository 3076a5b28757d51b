package handlers

import (
	"net/http"
	"time"

	"github.com/rohits-web03/lessonplanner/internal/api/dto"
	"github.com/rohits-web03/lessonplanner/internal/api/middleware"
	"github.com/rohits-web03/lessonplanner/internal/apperrors"
	"github.com/rohits-web03/lessonplanner/internal/utils"
	"go.uber.org/zap"
)

// POST /api/register
// RegisterUser godoc
// @Summary Register a new teacher account
// @Description Creates a user and returns its id with a session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.Credentials true "Email and password"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} utils.Envelope "Email and password are required."
// @Failure 409 {object} utils.Envelope "Email already in use."
// @Failure 500 {object} utils.Envelope
// @Router /api/register [post]
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var input dto.Credentials
	if err := decodeJSON(w, r, &input); err != nil {
		h.fail(w, r, err)
		return
	}

	userID, err := h.auth.Register(r.Context(), input.Email, input.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	token, expiresAt, err := h.tokens.Issue(userID)
	if err != nil {
		h.fail(w, r, apperrors.Internal("Failed to create token", err))
		return
	}

	h.log.Info("user registered", zap.Uint("user_id", userID))
	utils.JSONResponse(w, http.StatusCreated, dto.AuthResponse{
		Envelope:  utils.OK("User registered successfully."),
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// POST /api/login
// LoginUser godoc
// @Summary Log in
// @Description Verifies credentials, sets the session cookie and returns the token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.Credentials true "Email and password"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} utils.Envelope
// @Failure 401 {object} utils.Envelope "Invalid credentials."
// @Failure 500 {object} utils.Envelope
// @Router /api/login [post]
func (h *Handler) LoginUser(w http.ResponseWriter, r *http.Request) {
	var input dto.Credentials
	if err := decodeJSON(w, r, &input); err != nil {
		h.fail(w, r, err)
		return
	}

	userID, err := h.auth.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	token, expiresAt, err := h.tokens.Issue(userID)
	if err != nil {
		h.fail(w, r, apperrors.Internal("Failed to create token", err))
		return
	}

	// SameSite cookie policy
	sameSite := http.SameSiteLaxMode
	if h.secureCookies {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		Secure:   h.secureCookies,
		HttpOnly: true,
		SameSite: sameSite,
	})

	utils.JSONResponse(w, http.StatusOK, dto.AuthResponse{
		Envelope:  utils.OK("Login successful!"),
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// POST /api/logout
// Logout godoc
// @Summary Log out
// @Description Clears the session cookie. Bearer-token clients drop their token.
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.Envelope
// @Router /api/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	// Delete the token cookie
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1, // maxAge < 0 deletes the cookie
		Secure:   h.secureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.JSONResponse(w, http.StatusOK, utils.OK("Logged out successfully"))
}
