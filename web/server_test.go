package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	plantid "github.com/vicky2004-art/plant-identifier"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	identifier, err := plantid.Default()
	if err != nil {
		t.Fatalf("building identifier: %v", err)
	}
	return New(identifier, ":0", "")
}

func TestIndexPage(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, expected := range []string{"Plant Species Identification", "stem_quality", "Lavandula"} {
		if !strings.Contains(body, expected) {
			t.Errorf("expected index page to contain %q", expected)
		}
	}
}

func TestIdentifyForm(t *testing.T) {
	s := newTestServer(t)

	form := url.Values{}
	form.Set("height_cm", "300")
	form.Set("leaf_width_cm", "4.0")
	form.Set("stem_quality", "thick")
	req := httptest.NewRequest("POST", "/identify", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Bamboo") {
		t.Errorf("expected result page to identify bamboo, got:\n%s", body)
	}
	if !strings.Contains(body, "Image not found") {
		t.Error("expected a missing-image warning when no image dir is configured")
	}
}

func TestIdentifyFormBadInput(t *testing.T) {
	s := newTestServer(t)

	form := url.Values{}
	form.Set("height_cm", "tall")
	form.Set("leaf_width_cm", "4.0")
	form.Set("stem_quality", "thick")
	req := httptest.NewRequest("POST", "/identify", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected the form to be re-rendered with status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "must be numbers") {
		t.Error("expected a warning about non-numeric measurements")
	}
}

func TestAPIIdentify(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/identify?height_cm=40&leaf_width_cm=1.5&stem_quality=thin", nil)
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var response struct {
		Species string
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if response.Species != "lavender" {
		t.Errorf("expected lavender, got %q", response.Species)
	}
}

func TestAPIIdentifyUnknownStem(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/identify?height_cm=100&leaf_width_cm=5&stem_quality=woody", nil)
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if response["error"] == "" {
		t.Error("expected an error message in the response")
	}
}
