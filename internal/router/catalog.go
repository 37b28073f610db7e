package router

import (
	"github.com/deppfellow/music-catalog/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerCatalogRoutes mounts the resource routes. Creation and the
// attach/detach endpoints use the singular path (/album, /album/song/:id);
// everything else is addressed through the plural collection.
func registerCatalogRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/albums", h.Albums.List())
	r.GET("/albums/:id", h.Albums.Get())
	r.POST("/album", h.Albums.Create())
	r.PATCH("/albums/:id", h.Albums.Update())
	r.DELETE("/albums/:id", h.Albums.Delete())
	r.POST("/album/song/:id", h.Albums.AttachSong())
	r.DELETE("/album/song/:id", h.Albums.DetachSong())

	r.GET("/authors", h.Authors.List())
	r.GET("/authors/:id", h.Authors.Get())
	r.POST("/author", h.Authors.Create())
	r.PUT("/authors/:id", h.Authors.Update())
	r.PATCH("/authors/:id", h.Authors.Update())
	r.DELETE("/authors/:id", h.Authors.Delete())

	r.GET("/genres", h.Genres.List())
	r.GET("/genres/:id", h.Genres.Get())
	r.POST("/genre", h.Genres.Create())
	r.PUT("/genres/:id", h.Genres.Update())
	r.PATCH("/genres/:id", h.Genres.Update())
	r.DELETE("/genres/:id", h.Genres.Delete())

	r.GET("/songs", h.Songs.List())
	r.GET("/songs/:id", h.Songs.Get())
	r.POST("/song", h.Songs.Create())
	r.PATCH("/songs/:id", h.Songs.Update())
	r.DELETE("/songs/:id", h.Songs.Delete())
	r.POST("/songs\\:search", h.Songs.Search())

	r.GET("/playlists", h.Playlists.List())
	r.GET("/playlists/user/:id", h.Playlists.ListByUser())
	r.GET("/playlists/:id", h.Playlists.Get())
	r.POST("/playlist", h.Playlists.Create())
	r.PATCH("/playlists/:id", h.Playlists.Update())
	r.DELETE("/playlists/:id", h.Playlists.Delete())
	r.POST("/playlist/song/:id", h.Playlists.AddSong())
	r.DELETE("/playlist/song/:id", h.Playlists.RemoveSong())
}
