package handler

import (
	"github.com/deppfellow/music-catalog/internal/model"
	"github.com/deppfellow/music-catalog/internal/server"
	"github.com/deppfellow/music-catalog/internal/validation"
	"github.com/labstack/echo/v4"
)

// CreateNamedRequest is the body of POST /author and POST /genre.
type CreateNamedRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

func (r *CreateNamedRequest) Validate() error { return validation.ValidateStruct(r) }

// UpdateNamedRequest is the body of PUT/PATCH on authors and genres.
type UpdateNamedRequest struct {
	ID   int     `json:"-" param:"id" validate:"gt=0,lte=2147483647"`
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}

func (r *UpdateNamedRequest) Validate() error { return validation.ValidateStruct(r) }

type AuthorHandler struct {
	Handler
	authors authorService
}

func NewAuthorHandler(s *server.Server, authors authorService) *AuthorHandler {
	return &AuthorHandler{Handler: NewHandler(s), authors: authors}
}

func (h *AuthorHandler) List() echo.HandlerFunc {
	return Handle(func(c echo.Context, _ *EmptyRequest) ([]model.Author, error) {
		return h.authors.List(c.Request().Context())
	}, "Couldn't get authors")
}

func (h *AuthorHandler) Get() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *IDRequest) (model.Author, error) {
		return h.authors.Get(c.Request().Context(), req.ID)
	}, "Couldn't get author")
}

func (h *AuthorHandler) Create() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *CreateNamedRequest) (model.Author, error) {
		return h.authors.Create(c.Request().Context(), req.Name)
	}, "Couldn't create author")
}

func (h *AuthorHandler) Update() echo.HandlerFunc {
	return Handle(func(c echo.Context, req *UpdateNamedRequest) (model.Author, error) {
		return h.authors.Update(c.Request().Context(), req.ID, req.Name)
	}, "Couldn't update author")
}

// Delete also removes every song of the author.
func (h *AuthorHandler) Delete() echo.HandlerFunc {
	return HandleEmpty(func(c echo.Context, req *IDRequest) error {
		return h.authors.Delete(c.Request().Context(), req.ID)
	}, "Couldn't delete author")
}
