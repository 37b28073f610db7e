package handler

import (
	"github.com/deppfellow/music-catalog/internal/model"
	"github.com/deppfellow/music-catalog/internal/server"
	"github.com/deppfellow/music-catalog/internal/validation"
	"github.com/labstack/echo/v4"
)

type CreateSongRequest struct {
	AlbumID  *int    `json:"album_id" validate:"omitempty,gt=0,lte=2147483647"`
	AuthorID int     `json:"author_id" validate:"required,gt=0,lte=2147483647"`
	GenreID  int     `json:"genre_id" validate:"required,gt=0,lte=2147483647"`
	Name     string  `json:"name" validate:"required,min=1,max=100"`
	Audio    string  `json:"audio" validate:"required,url"`
	Img      *string `json:"img" validate:"omitempty,url"`
}

func (r *CreateSongRequest) Validate() error { return validation.ValidateStruct(r) }

// UpdateSongRequest accepts the same fields as CreateSongRequest, all optional.
type UpdateSongRequest struct {
	ID       int     `json:"-" param:"id" validate:"gt=0,lte=2147483647"`
	AlbumID  *int    `json:"album_id" validate:"omitempty,gt=0,lte=2147483647"`
	AuthorID *int    `json:"author_id" validate:"omitempty,gt=0,lte=2147483647"`
	GenreID  *int    `json:"genre_id" validate:"omitempty,gt=0,lte=2147483647"`
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Audio    *string `json:"audio" validate:"omitempty,url"`
	Img      *string `json:"img" validate:"omitempty,url"`
}

func (r *UpdateSongRequest) Validate() error { return validation.ValidateStruct(r) }

// SearchSongsRequest filters by equality; omitted fields match all songs.
type SearchSongsRequest struct {
	AuthorID *int `json:"author_id" validate:"omitempty,gt=0,lte=2147483647"`
	GenreID  *int `json:"genre_id" validate:"omitempty,gt=0,lte=2147483647"`
}

func (r *SearchSongsRequest) Validate() error { return validation.ValidateStruct(r) }

type SongHandler struct {
	Handler
	songs songService
}

func NewSongHandler(s *server.Server, songs songService) *SongHandler {
	return &SongHandler{Handler: NewHandler(s), songs: songs}
}

func (h *SongHandler) List() echo.HandlerFunc {
	return Handle(func(c echo.Context, _ *EmptyRequest) ([]model.Song, error) {
		return h.songs.List(c.Request().Context())
	}, "Couldn't get songs")
}

func (h *SongHandler) Get() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *IDRequest) (model.Song, error) {
		return h.songs.Get(c.Request().Context(), req.ID)
	}, "Couldn't get song")
}

func (h *SongHandler) Create() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *CreateSongRequest) (model.Song, error) {
		return h.songs.Create(c.Request().Context(), model.NewSong{
			AlbumID:  req.AlbumID,
			AuthorID: req.AuthorID,
			GenreID:  req.GenreID,
			Name:     req.Name,
			Audio:    req.Audio,
			Img:      req.Img,
		})
	}, "Couldn't create song")
}

func (h *SongHandler) Update() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *UpdateSongRequest) (model.Song, error) {
		return h.songs.Update(c.Request().Context(), req.ID, model.SongPatch{
			AlbumID:  req.AlbumID,
			AuthorID: req.AuthorID,
			GenreID:  req.GenreID,
			Name:     req.Name,
			Audio:    req.Audio,
			Img:      req.Img,
		})
	}, "Couldn't update song")
}

func (h *SongHandler) Delete() echo.HandlerFunc {
	return HandleEmpty(func(c echo.Context, req *IDRequest) error {
		return h.songs.Delete(c.Request().Context(), req.ID)
	}, "Couldn't delete song")
}

func (h *SongHandler) Search() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *SearchSongsRequest) ([]model.Song, error) {
		return h.songs.Search(c.Request().Context(), model.SongFilter{
			AuthorID: req.AuthorID,
			GenreID:  req.GenreID,
		})
	}, "Couldn't search songs")
}
