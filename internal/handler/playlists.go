package handler

import (
	"github.com/deppfellow/music-catalog/internal/model"
	"github.com/deppfellow/music-catalog/internal/server"
	"github.com/deppfellow/music-catalog/internal/validation"
	"github.com/labstack/echo/v4"
)

type CreatePlaylistRequest struct {
	Name   string  `json:"name" validate:"required,min=1,max=100"`
	UserID int     `json:"user_id" validate:"required,gt=0,lte=2147483647"`
	Img    *string `json:"img" validate:"omitempty,url"`
	Songs  []int   `json:"songs" validate:"omitempty,dive,gt=0,lte=2147483647"`
}

func (r *CreatePlaylistRequest) Validate() error { return validation.ValidateStruct(r) }

type UpdatePlaylistRequest struct {
	ID   int     `json:"-" param:"id" validate:"gt=0,lte=2147483647"`
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
	Img  *string `json:"img" validate:"omitempty,url"`
}

func (r *UpdatePlaylistRequest) Validate() error { return validation.ValidateStruct(r) }

// AttachPlaylistSongRequest: :id is the playlist.
type AttachPlaylistSongRequest struct {
	PlaylistID int `json:"-" param:"id" validate:"gt=0,lte=2147483647"`
	SongID     int `json:"song_id" validate:"required,gt=0,lte=2147483647"`
}

func (r *AttachPlaylistSongRequest) Validate() error { return validation.ValidateStruct(r) }

type PlaylistHandler struct {
	Handler
	playlists playlistService
}

func NewPlaylistHandler(s *server.Server, playlists playlistService) *PlaylistHandler {
	return &PlaylistHandler{Handler: NewHandler(s), playlists: playlists}
}

func (h *PlaylistHandler) List() echo.HandlerFunc {
	return Handle(func(c echo.Context, _ *EmptyRequest) ([]model.Playlist, error) {
		return h.playlists.List(c.Request().Context())
	}, "Couldn't get playlists")
}

// ListByUser answers the playlists owned by the user id at :id.
func (h *PlaylistHandler) ListByUser() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *IDRequest) ([]model.Playlist, error) {
		return h.playlists.ListByUser(c.Request().Context(), req.ID)
	}, "Couldn't get user playlists")
}

func (h *PlaylistHandler) Get() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *IDRequest) (model.Playlist, error) {
		return h.playlists.Get(c.Request().Context(), req.ID)
	}, "Couldn't get playlist")
}

func (h *PlaylistHandler) Create() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *CreatePlaylistRequest) (model.Playlist, error) {
		return h.playlists.Create(c.Request().Context(), model.NewPlaylist{
			UserID: req.UserID,
			Name:   req.Name,
			Img:    req.Img,
		}, req.Songs)
	}, "Couldn't create playlist")
}

func (h *PlaylistHandler) Update() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *UpdatePlaylistRequest) (model.Playlist, error) {
		return h.playlists.Update(c.Request().Context(), req.ID, model.PlaylistPatch{
			Name: req.Name,
			Img:  req.Img,
		})
	}, "Couldn't update playlist")
}

func (h *PlaylistHandler) Delete() echo.HandlerFunc {
	return HandleEmpty(func(c echo.Context, req *IDRequest) error {
		return h.playlists.Delete(c.Request().Context(), req.ID)
	}, "Couldn't delete playlist")
}

// AddSong always adds a new membership, so a song can appear twice.
func (h *PlaylistHandler) AddSong() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *AttachPlaylistSongRequest) (model.Song, error) {
		return h.playlists.AddSong(c.Request().Context(), req.PlaylistID, req.SongID)
	}, "Couldn't add song to playlist")
}

// RemoveSong deletes the membership whose own id is :id.
func (h *PlaylistHandler) RemoveSong() echo.HandlerFunc {
	return HandleEmpty(func(c echo.Context, req *IDRequest) error {
		return h.playlists.RemoveSong(c.Request().Context(), req.ID)
	}, "Couldn't remove song from playlist")
}
