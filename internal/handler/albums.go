package handler

import (
	"github.com/deppfellow/music-catalog/internal/model"
	"github.com/deppfellow/music-catalog/internal/server"
	"github.com/deppfellow/music-catalog/internal/validation"
	"github.com/labstack/echo/v4"
)

// IDRequest carries only the :id path parameter.
type IDRequest struct {
	ID int `json:"-" param:"id" validate:"gt=0,lte=2147483647"`
}

func (r *IDRequest) Validate() error { return validation.ValidateStruct(r) }

// EmptyRequest is used by endpoints that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error { return nil }

type CreateAlbumRequest struct {
	Name  string  `json:"name" validate:"required,min=1,max=100"`
	Img   *string `json:"img" validate:"omitempty,url"`
	Songs []int   `json:"songs" validate:"omitempty,dive,gt=0,lte=2147483647"`
}

func (r *CreateAlbumRequest) Validate() error { return validation.ValidateStruct(r) }

type UpdateAlbumRequest struct {
	ID   int     `json:"-" param:"id" validate:"gt=0,lte=2147483647"`
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
	Img  *string `json:"img" validate:"omitempty,url"`
}

func (r *UpdateAlbumRequest) Validate() error { return validation.ValidateStruct(r) }

// AttachAlbumSongRequest: :id is the album.
type AttachAlbumSongRequest struct {
	AlbumID int `json:"-" param:"id" validate:"gt=0,lte=2147483647"`
	SongID  int `json:"song_id" validate:"required,gt=0,lte=2147483647"`
}

func (r *AttachAlbumSongRequest) Validate() error { return validation.ValidateStruct(r) }

type AlbumHandler struct {
	Handler
	albums albumService
}

func NewAlbumHandler(s *server.Server, albums albumService) *AlbumHandler {
	return &AlbumHandler{Handler: NewHandler(s), albums: albums}
}

func (h *AlbumHandler) List() echo.HandlerFunc {
	return Handle(func(c echo.Context, _ *EmptyRequest) ([]model.Album, error) {
		return h.albums.List(c.Request().Context())
	}, "Couldn't get albums")
}

func (h *AlbumHandler) Get() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *IDRequest) (model.Album, error) {
		return h.albums.Get(c.Request().Context(), req.ID)
	}, "Couldn't get album")
}

func (h *AlbumHandler) Create() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *CreateAlbumRequest) (model.Album, error) {
		return h.albums.Create(c.Request().Context(), model.NewAlbum{
			Name: req.Name,
			Img:  req.Img,
		}, req.Songs)
	}, "Couldn't create album")
}

func (h *AlbumHandler) Update() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *UpdateAlbumRequest) (model.Album, error) {
		return h.albums.Update(c.Request().Context(), req.ID, model.AlbumPatch{
			Name: req.Name,
			Img:  req.Img,
		})
	}, "Couldn't update album")
}

func (h *AlbumHandler) Delete() echo.HandlerFunc {
	return HandleEmpty(func(c echo.Context, req *IDRequest) error {
		return h.albums.Delete(c.Request().Context(), req.ID)
	}, "Couldn't delete album")
}

// AttachSong answers with the song; a song that already has an album is
// returned unchanged.
func (h *AlbumHandler) AttachSong() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *AttachAlbumSongRequest) (model.Song, error) {
		return h.albums.AttachSong(c.Request().Context(), req.AlbumID, req.SongID)
	}, "Couldn't add song to album")
}

// DetachSong clears the album of the song at :id.
func (h *AlbumHandler) DetachSong() echo.HandlerFunc {
	return HandleEmpty(func(c echo.Context, req *IDRequest) error {
		return h.albums.DetachSong(c.Request().Context(), req.ID)
	}, "Couldn't remove song from album")
}
