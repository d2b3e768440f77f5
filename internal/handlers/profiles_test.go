package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/example/personality-board/internal/store"
)

func TestCreateProfile(t *testing.T) {
	ps := store.NewInMemoryProfileStore()
	handler := CreateProfile(ps)

	body := `{"name":"A Martinez","description":"Adolph Larrue Martinez III.","mbti":"ISFJ","enneagram":"9w8","image":"https://example.com/1.png"}`
	req := setupReq(http.MethodPost, "/v1/profiles", body, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var p store.Profile
	if err := json.NewDecoder(rr.Body).Decode(&p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.ID == "" || p.Name != "A Martinez" || p.MBTI != "ISFJ" {
		t.Fatalf("unexpected profile %+v", p)
	}
}

func TestCreateProfile_Duplicate(t *testing.T) {
	ps := store.NewInMemoryProfileStore()
	handler := CreateProfile(ps)

	first := setupReq(http.MethodPost, "/v1/profiles", `{"name":"Unique"}`, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, first)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}

	second := setupReq(http.MethodPost, "/v1/profiles", `{"name":"Unique"}`, nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, second)
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate name, got %d", rr.Code)
	}
}

func TestListProfiles_EmptyIs404(t *testing.T) {
	ps := store.NewInMemoryProfileStore()
	handler := ListProfiles(ps)

	req := setupReq(http.MethodGet, "/v1/profiles", "", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on empty store, got %d", rr.Code)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	ps := store.NewInMemoryProfileStore()
	handler := GetProfile(ps)

	req := setupReq(http.MethodGet, "/v1/profiles/ghost", "", map[string]string{"profile_id": "ghost"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}
