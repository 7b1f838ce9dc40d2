package handler

import (
	"net/http"

	"vinyl/internal/delivery/http/response"
	"vinyl/internal/domain/entity"
	"vinyl/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AlbumHandler holds dependencies for catalog browsing and favorites.
type AlbumHandler struct {
	catalog usecase.CatalogUsecase
	social  usecase.SocialUsecase
}

// NewAlbumHandler is the constructor for AlbumHandler, injected by Fx.
func NewAlbumHandler(catalog usecase.CatalogUsecase, social usecase.SocialUsecase) *AlbumHandler {
	return &AlbumHandler{catalog: catalog, social: social}
}

type artistResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Bio   string `json:"bio,omitempty"`
	Image string `json:"image,omitempty"`
}

type albumResponse struct {
	ID            string  `json:"id"`
	ArtistID      string  `json:"artistId"`
	Title         string  `json:"title"`
	ReleaseYear   int     `json:"releaseYear"`
	Cover         string  `json:"cover,omitempty"`
	AverageRating float64 `json:"averageRating"`
}

func toArtistResponse(artist *entity.Artist) artistResponse {
	return artistResponse{
		ID:    artist.ID.String(),
		Name:  artist.Name,
		Bio:   artist.Bio,
		Image: artist.Image,
	}
}

func toAlbumResponse(album *entity.Album) albumResponse {
	return albumResponse{
		ID:            album.ID.String(),
		ArtistID:      album.ArtistID.String(),
		Title:         album.Title,
		ReleaseYear:   album.ReleaseYear,
		Cover:         album.Cover,
		AverageRating: album.AverageRating,
	}
}

func toAlbumResponses(albums []*entity.Album) []albumResponse {
	out := make([]albumResponse, 0, len(albums))
	for _, album := range albums {
		out = append(out, toAlbumResponse(album))
	}

	return out
}

// ListArtists returns all artists.
func (h *AlbumHandler) ListArtists(c echo.Context) error {
	artists, err := h.catalog.ListArtists(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]artistResponse, 0, len(artists))
	for _, artist := range artists {
		out = append(out, toArtistResponse(artist))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// GetArtist returns one artist.
func (h *AlbumHandler) GetArtist(c echo.Context) error {
	artistID, err := pathUUID(c, "artistID")
	if err != nil {
		return err
	}

	artist, err := h.catalog.GetArtist(c.Request().Context(), artistID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toArtistResponse(artist), "")
}

// ListAlbumsByArtist returns the albums of one artist.
func (h *AlbumHandler) ListAlbumsByArtist(c echo.Context) error {
	artistID, err := pathUUID(c, "artistID")
	if err != nil {
		return err
	}

	albums, err := h.catalog.ListAlbumsByArtist(c.Request().Context(), artistID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAlbumResponses(albums), "")
}

// ListAlbums returns all albums.
func (h *AlbumHandler) ListAlbums(c echo.Context) error {
	albums, err := h.catalog.ListAlbums(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAlbumResponses(albums), "")
}

// GetAlbum returns one album.
func (h *AlbumHandler) GetAlbum(c echo.Context) error {
	albumID, err := pathUUID(c, "albumID")
	if err != nil {
		return err
	}

	album, err := h.catalog.GetAlbum(c.Request().Context(), albumID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAlbumResponse(album), "")
}

// AddFavorite marks an album as a favorite of the authenticated user.
func (h *AlbumHandler) AddFavorite(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	albumID, err := pathUUID(c, "albumID")
	if err != nil {
		return err
	}

	if err := h.social.AddFavorite(c.Request().Context(), userID, albumID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Album added to favorites")
}

// RemoveFavorite clears the favorite mark.
func (h *AlbumHandler) RemoveFavorite(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	albumID, err := pathUUID(c, "albumID")
	if err != nil {
		return err
	}

	if err := h.social.RemoveFavorite(c.Request().Context(), userID, albumID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Album removed from favorites")
}

// ListFavorites returns the authenticated user's favorite albums.
func (h *AlbumHandler) ListFavorites(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	albums, err := h.social.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAlbumResponses(albums), "")
}
