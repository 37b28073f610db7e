package handler

import (
	"github.com/deppfellow/music-catalog/internal/model"
	"github.com/deppfellow/music-catalog/internal/server"
	"github.com/labstack/echo/v4"
)

type GenreHandler struct {
	Handler
	genres genreService
}

func NewGenreHandler(s *server.Server, genres genreService) *GenreHandler {
	return &GenreHandler{Handler: NewHandler(s), genres: genres}
}

func (h *GenreHandler) List() echo.HandlerFunc {
	return Handle(func(c echo.Context, _ *EmptyRequest) ([]model.Genre, error) {
		return h.genres.List(c.Request().Context())
	}, "Couldn't get genres")
}

func (h *GenreHandler) Get() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *IDRequest) (model.Genre, error) {
		return h.genres.Get(c.Request().Context(), req.ID)
	}, "Couldn't get genre")
}

func (h *GenreHandler) Create() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *CreateNamedRequest) (model.Genre, error) {
		return h.genres.Create(c.Request().Context(), req.Name)
	}, "Couldn't create genre")
}

func (h *GenreHandler) Update() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *UpdateNamedRequest) (model.Genre, error) {
		return h.genres.Update(c.Request().Context(), req.ID, req.Name)
	}, "Couldn't update genre")
}

func (h *GenreHandler) Delete() echo.HandlerFunc {
	return HandleEmpty(func(c echo.Context, req *IDRequest) error {
		return h.genres.Delete(c.Request().Context(), req.ID)
	}, "Couldn't delete genre")
}
