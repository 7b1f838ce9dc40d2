package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"vinyl/config"
	"vinyl/internal/delivery/http/cookie"
	"vinyl/internal/delivery/http/response"
	domainerrors "vinyl/internal/domain/errors"
	"vinyl/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the authentication endpoints.
type AuthHandler struct {
	uc           usecase.AuthUsecase
	logger       *slog.Logger
	cookieSecure bool
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	cookieSecure := false
	if cfg != nil && cfg.Session != nil {
		cookieSecure = cfg.Session.CookieSecure
	}

	return &AuthHandler{
		uc:           uc,
		logger:       logger,
		cookieSecure: cookieSecure,
	}
}

type registerRequest struct {
	Username     string   `json:"username" validate:"required,min=3,max=30"`
	Email        string   `json:"email" validate:"required,email"`
	Password     string   `json:"password" validate:"required"`
	ProfileImage string   `json:"profileImage"`
	Roles        []string `json:"roles"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	ProfileImage string   `json:"profileImage,omitempty"`
	Roles        []string `json:"roles"`
}

type loginResponse struct {
	AccessToken string       `json:"accessToken"`
	CSRFToken   string       `json:"csrfToken"`
	User        userResponse `json:"user"`
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username:     req.Username,
		Email:        req.Email,
		Password:     req.Password,
		ProfileImage: req.ProfileImage,
		Roles:        req.Roles,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	user := output.User

	return response.Success(c, http.StatusCreated, userResponse{
		ID:           user.ID.String(),
		Username:     user.Username,
		Email:        user.Email,
		ProfileImage: user.ProfileImage,
		Roles:        user.Roles().ToStrings(),
	}, "User registered successfully")
}

// Login handles the login request and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username:  req.Username,
		Password:  req.Password,
		UserAgent: c.Request().UserAgent(),
		IPAddress: c.RealIP(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	cookie.WriteSession(c, output.Session.ID, h.cookieSecure)

	return response.Success(c, http.StatusOK, loginResponse{
		AccessToken: output.AccessToken,
		CSRFToken:   output.Session.CSRFToken,
		User: userResponse{
			ID:           output.User.ID.String(),
			Username:     output.User.Username,
			Email:        output.User.Email,
			ProfileImage: output.User.ProfileImage,
			Roles:        output.User.Roles().ToStrings(),
		},
	}, "Login successful")
}

// Logout revokes the bearer token and destroys the session. A missing or
// malformed Authorization header is a 401; an already expired or revoked
// token still logs out cleanly.
func (h *AuthHandler) Logout(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return domainerrors.ErrTokenInvalid.WrapMessage("missing bearer token")
	}
	accessToken := strings.TrimPrefix(authHeader, "Bearer ")
	if accessToken == authHeader {
		return domainerrors.ErrTokenInvalid.WrapMessage("malformed authorization header")
	}

	err := h.uc.Logout(c.Request().Context(), &usecase.LogoutInput{
		AccessToken: accessToken,
		SessionID:   cookie.ReadSessionID(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	cookie.ClearSession(c, h.cookieSecure)

	return response.Success(c, http.StatusOK, nil, "Logged out")
}
