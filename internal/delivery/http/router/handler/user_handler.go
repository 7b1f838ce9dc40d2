package handler

import (
	"net/http"

	"vinyl/internal/delivery/http/response"
	"vinyl/internal/domain/entity"
	"vinyl/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for profile, account and follow endpoints.
type UserHandler struct {
	profiles usecase.ProfileUsecase
	social   usecase.SocialUsecase
	accounts usecase.AccountUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(profiles usecase.ProfileUsecase, social usecase.SocialUsecase, accounts usecase.AccountUsecase) *UserHandler {
	return &UserHandler{
		profiles: profiles,
		social:   social,
		accounts: accounts,
	}
}

type updateProfileRequest struct {
	Email        string `json:"email" validate:"omitempty,email"`
	ProfileImage string `json:"profileImage"`
}

type profileResponse struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email,omitempty"`
	ProfileImage string   `json:"profileImage,omitempty"`
	Following    []string `json:"following"`
	Followers    []string `json:"followers"`
	Favorites    []string `json:"favorites"`
}

func toProfileResponse(user *entity.User, includeEmail bool) profileResponse {
	resp := profileResponse{
		ID:           user.ID.String(),
		Username:     user.Username,
		ProfileImage: user.ProfileImage,
		Following:    uuidStrings(user.Following),
		Followers:    uuidStrings(user.Followers),
		Favorites:    uuidStrings(user.Favorites),
	}
	if includeEmail {
		resp.Email = user.Email
	}

	return resp
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}

// GetProfile returns the authenticated user's own profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.profiles.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(user, true), "")
}

// GetUserByUsername returns another user's public profile.
func (h *UserHandler) GetUserByUsername(c echo.Context) error {
	user, err := h.profiles.GetProfileByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(user, false), "")
}

// UpdateProfile updates the authenticated user's mutable profile fields.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.profiles.UpdateProfile(c.Request().Context(), &usecase.UpdateProfileInput{
		UserID:       userID,
		Email:        req.Email,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(user, true), "Profile updated")
}

// DeleteAccount removes the authenticated user's own account and everything
// attached to it.
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.accounts.DeleteAccount(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted")
}

// DeleteUser removes any account. Reserved for administrators.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	targetID, err := pathUUID(c, "userID")
	if err != nil {
		return err
	}

	if err := h.accounts.DeleteAccount(c.Request().Context(), targetID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted")
}

// ToggleFollow flips the follow state towards the target user and reports
// which way it went.
func (h *UserHandler) ToggleFollow(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	targetID, err := pathUUID(c, "userID")
	if err != nil {
		return err
	}

	output, err := h.social.ToggleFollow(c.Request().Context(), userID, targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"action": output.Action,
	}, output.Message)
}

// Unfollow removes the follow edge towards the target user.
func (h *UserHandler) Unfollow(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	targetID, err := pathUUID(c, "userID")
	if err != nil {
		return err
	}

	if err := h.social.Unfollow(c.Request().Context(), userID, targetID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Unfollowed")
}

// GetFollowState reports whether the authenticated user follows the target.
func (h *UserHandler) GetFollowState(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	targetID, err := pathUUID(c, "userID")
	if err != nil {
		return err
	}

	following, err := h.social.IsFollowing(c.Request().Context(), userID, targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"following": following}, "")
}
