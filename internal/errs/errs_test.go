package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/goccy/go-json"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
		title  string
	}{
		{"bad request", NewBadRequestError("m"), http.StatusBadRequest, "BAD_REQUEST", "Bad request"},
		{"unauthorized", NewUnauthorizedError("m"), http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized"},
		{"forbidden", NewForbiddenError("m"), http.StatusForbidden, "FORBIDDEN", "Forbidden"},
		{"not found", NewNotFoundError("m"), http.StatusNotFound, "NOT_FOUND", "Not found"},
		{"internal", NewInternalServerError("m"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Status != tt.status {
				t.Errorf("Status = %d, want %d", tt.err.Status, tt.status)
			}
			if tt.err.Code != tt.code {
				t.Errorf("Code = %q, want %q", tt.err.Code, tt.code)
			}
			if tt.err.Title != tt.title {
				t.Errorf("Title = %q, want %q", tt.err.Title, tt.title)
			}
			if tt.err.Error() != "m" {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), "m")
			}
		})
	}
}

func TestResponseEnvelope(t *testing.T) {
	body, err := json.Marshal(NewNotFoundError("There is no album with this id").Response())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"errors":[{"code":404,"message":"Not found","meta":{"additional_info":"There is no album with this id"}}]}`
	if string(body) != want {
		t.Fatalf("envelope = %s, want %s", body, want)
	}
}

func TestIsMatchesAnyHTTPError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewBadRequestError("bad"))

	if !errors.Is(wrapped, &HTTPError{}) {
		t.Fatal("expected errors.Is to match *HTTPError")
	}

	var httpErr *HTTPError
	if !errors.As(wrapped, &httpErr) || httpErr.Status != http.StatusBadRequest {
		t.Fatalf("errors.As = %+v", httpErr)
	}
}

func TestFromStatus(t *testing.T) {
	if got := FromStatus(http.StatusMethodNotAllowed, "nope"); got.Title != "Method Not Allowed" || got.Code != "METHOD_NOT_ALLOWED" {
		t.Fatalf("FromStatus(405) = %+v", got)
	}
	if got := FromStatus(http.StatusNotFound, "x"); got.Title != TitleNotFound {
		t.Fatalf("FromStatus(404) title = %q", got.Title)
	}
}

func TestWithMessage(t *testing.T) {
	base := NewNotFoundError("a")
	copied := base.WithMessage("b")

	if base.Message != "a" || copied.Message != "b" || copied.Status != base.Status {
		t.Fatalf("WithMessage mutated or lost fields: base=%+v copy=%+v", base, copied)
	}
}
