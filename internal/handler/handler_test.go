package handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/music-catalog/internal/config"
	"github.com/deppfellow/music-catalog/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}
}

func serve(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		want   string
	}{
		{"database up", nil, http.StatusOK, `"status":"healthy"`},
		{"database down", errors.New("connection refused"), http.StatusServiceUnavailable, `"error":"connection refused"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(newTestServer())
			h.db = stubPinger{err: tt.err}

			e := echo.New()
			e.GET("/status", h.CheckHealth)

			rec := serve(e, http.MethodGet, "/status", "")
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if !strings.Contains(rec.Body.String(), tt.want) {
				t.Fatalf("body %s does not contain %s", rec.Body.String(), tt.want)
			}
		})
	}
}

func TestHandleUsesFreshRequest(t *testing.T) {
	var seen []*string

	e := echo.New()
	e.PATCH("/albums/:id", Handle(func(c echo.Context, req *UpdateAlbumRequest) (int, error) {
		seen = append(seen, req.Name)
		return req.ID, nil
	}, "Couldn't update album"))

	if rec := serve(e, http.MethodPatch, "/albums/1", `{"name":"First"}`); rec.Code != http.StatusOK {
		t.Fatalf("first status = %d", rec.Code)
	}
	rec := serve(e, http.MethodPatch, "/albums/2", `{}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("second status = %d", rec.Code)
	}

	if got := strings.TrimSpace(rec.Body.String()); got != `{"data":2}` {
		t.Fatalf("body = %s", got)
	}
	if len(seen) != 2 || seen[0] == nil || seen[1] != nil {
		t.Fatalf("second request saw state from the first: %v", seen)
	}
}

func TestHandleEmptyResponse(t *testing.T) {
	e := echo.New()
	e.DELETE("/songs/:id", HandleEmpty(func(c echo.Context, req *IDRequest) error {
		return nil
	}, "Couldn't delete song"))

	rec := serve(e, http.MethodDelete, "/songs/3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"data":{}}` {
		t.Fatalf("body = %s", got)
	}
}

func TestRequestValidationMessages(t *testing.T) {
	tests := []struct {
		name string
		req  interface{ Validate() error }
		want string
	}{
		{"album name too long", &CreateAlbumRequest{Name: strings.Repeat("a", 101)}, "name must not exceed 100 characters"},
		{"album img url", &CreateAlbumRequest{Name: "A", Img: strPtr("not a url")}, "img must be a valid URL"},
		{"song audio url", &CreateSongRequest{AuthorID: 1, GenreID: 1, Name: "S", Audio: "file"}, "audio must be a valid URL"},
		{"playlist owner", &CreatePlaylistRequest{Name: "Mix"}, "user_id is required"},
		{"empty patch name", &UpdateNamedRequest{ID: 1, Name: strPtr("")}, "name must be at least 1 characters"},
		{"path id zero", &IDRequest{ID: 0}, "id must be greater than 0"},
		{"album song id overflow", &CreateAlbumRequest{Name: "A", Songs: []int{1, math.MaxInt32 + 1}}, "songs[1] must be at most 2147483647"},
		{"song author id overflow", &CreateSongRequest{AuthorID: math.MaxInt32 + 1, GenreID: 1, Name: "S", Audio: "https://cdn.example.com/s.mp3"}, "author_id must be at most 2147483647"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if err == nil || err.Error() != tt.want {
				t.Fatalf("Validate() = %v, want %q", err, tt.want)
			}
		})
	}

	if err := (&UpdateSongRequest{ID: 1}).Validate(); err != nil {
		t.Fatalf("empty song patch rejected: %v", err)
	}
}

func strPtr(s string) *string { return &s }
