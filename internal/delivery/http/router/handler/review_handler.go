package handler

import (
	"net/http"

	"vinyl/internal/delivery/http/response"
	"vinyl/internal/domain/entity"
	"vinyl/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for the review endpoints.
type ReviewHandler struct {
	reviews usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(reviews usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type reviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Content string `json:"content" validate:"required"`
}

type reviewResponse struct {
	ID       string `json:"id"`
	AlbumID  string `json:"albumId"`
	AuthorID string `json:"authorId"`
	Rating   int    `json:"rating"`
	Content  string `json:"content"`
}

func toReviewResponse(review *entity.Review) reviewResponse {
	return reviewResponse{
		ID:       review.ID.String(),
		AlbumID:  review.AlbumID.String(),
		AuthorID: review.AuthorID.String(),
		Rating:   review.Rating,
		Content:  review.Content,
	}
}

// ListByAlbum returns all reviews of an album.
func (h *ReviewHandler) ListByAlbum(c echo.Context) error {
	albumID, err := pathUUID(c, "albumID")
	if err != nil {
		return err
	}

	reviews, err := h.reviews.ListByAlbum(c.Request().Context(), albumID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]reviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, toReviewResponse(review))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// Create posts a review on an album.
func (h *ReviewHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	albumID, err := pathUUID(c, "albumID")
	if err != nil {
		return err
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.reviews.CreateReview(c.Request().Context(), &usecase.CreateReviewInput{
		AlbumID:  albumID,
		AuthorID: userID,
		Rating:   req.Rating,
		Content:  req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toReviewResponse(review), "Review posted")
}

// Update edits the caller's own review.
func (h *ReviewHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	reviewID, err := pathUUID(c, "reviewID")
	if err != nil {
		return err
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.reviews.UpdateReview(c.Request().Context(), &usecase.UpdateReviewInput{
		ReviewID: reviewID,
		AuthorID: userID,
		Rating:   req.Rating,
		Content:  req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReviewResponse(review), "Review updated")
}

// Delete removes a review. Authors delete their own, admins delete any.
func (h *ReviewHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	reviewID, err := pathUUID(c, "reviewID")
	if err != nil {
		return err
	}

	if err := h.reviews.DeleteReview(c.Request().Context(), reviewID, userID, currentUserIsAdmin(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted")
}
