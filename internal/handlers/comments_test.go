package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/example/personality-board/internal/comments"
	"github.com/example/personality-board/internal/store"
)

type env struct {
	svc      *comments.Service
	users    *store.InMemoryUserStore
	profiles *store.InMemoryProfileStore
	userID   string
	proID    string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()

	users := store.NewInMemoryUserStore()
	profiles := store.NewInMemoryProfileStore()
	svc := comments.New(store.NewInMemoryCommentStore(), users, profiles, nil, nil)

	u, err := users.Create(ctx, "Test User - 1")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	p, err := profiles.Create(ctx, store.Profile{Name: "A Martinez"})
	if err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return &env{svc: svc, users: users, profiles: profiles, userID: u.ID, proID: p.ID}
}

// setupReq builds a request with chi URL params attached.
func setupReq(method, url, body string, params map[string]string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, url, bytes.NewBufferString(body))
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func (e *env) createComment(t *testing.T, body string) store.Comment {
	t.Helper()
	handler := CreateComment(e.svc)
	req := setupReq(http.MethodPost, "/v1/comments", body, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var c store.Comment
	if err := json.NewDecoder(rr.Body).Decode(&c); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return c
}

func (e *env) commentBody(title string) string {
	return fmt.Sprintf(`{"title":%q,"description":"a test comment","voteMBTI":"ENTJ","userId":%q,"profileId":%q}`,
		title, e.userID, e.proID)
}

func TestCreateComment(t *testing.T) {
	e := newEnv(t)

	c := e.createComment(t, e.commentBody("First comment"))
	if c.Title != "First comment" {
		t.Fatalf("expected title 'First comment', got %q", c.Title)
	}
	if c.Likes != 0 || len(c.LikedBy) != 0 {
		t.Fatalf("expected fresh comment without likes, got likes=%d likedBy=%v", c.Likes, c.LikedBy)
	}
}

func TestCreateComment_InvalidJSON(t *testing.T) {
	e := newEnv(t)
	handler := CreateComment(e.svc)

	req := setupReq(http.MethodPost, "/v1/comments", `{"title":`, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestCreateComment_EmptyTitle(t *testing.T) {
	e := newEnv(t)
	handler := CreateComment(e.svc)

	body := fmt.Sprintf(`{"description":"d","userId":%q,"profileId":%q}`, e.userID, e.proID)
	req := setupReq(http.MethodPost, "/v1/comments", body, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestCreateComment_UnknownUser(t *testing.T) {
	e := newEnv(t)
	handler := CreateComment(e.svc)

	body := fmt.Sprintf(`{"title":"t","description":"d","userId":"ghost","profileId":%q}`, e.proID)
	req := setupReq(http.MethodPost, "/v1/comments", body, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestListComments(t *testing.T) {
	e := newEnv(t)
	e.createComment(t, e.commentBody("one"))
	e.createComment(t, e.commentBody("two"))

	handler := ListComments(e.svc)
	req := setupReq(http.MethodGet, "/v1/comments?sort=recent&filter=MBTI", "", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var out []store.Comment
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(out))
	}
}

func TestListComments_EmptyIs404(t *testing.T) {
	e := newEnv(t)

	handler := ListComments(e.svc)
	req := setupReq(http.MethodGet, "/v1/comments", "", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on empty store, got %d", rr.Code)
	}
}

func TestListProfileComments_OmitsUser(t *testing.T) {
	e := newEnv(t)
	e.createComment(t, e.commentBody("scoped"))

	handler := ListProfileComments(e.svc)
	req := setupReq(http.MethodGet, "/v1/profiles/"+e.proID+"/comments", "",
		map[string]string{"profile_id": e.proID})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var out []map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(out))
	}
	if _, present := out[0]["user"]; present {
		t.Fatal("expected user field to be omitted from profile-scoped listing")
	}
}

func TestVoteComment_LikeUnlikeFlow(t *testing.T) {
	e := newEnv(t)
	c := e.createComment(t, e.commentBody("voteable"))
	handler := VoteComment(e.svc)

	vote := func(flag string) *httptest.ResponseRecorder {
		req := setupReq(http.MethodPost, "/v1/comments/"+c.ID+"/like?like="+flag,
			fmt.Sprintf(`{"userId":%q}`, e.userID),
			map[string]string{"comment_id": c.ID})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	rr := vote("1")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 on like, got %d: %s", rr.Code, rr.Body.String())
	}
	var liked store.Comment
	if err := json.NewDecoder(rr.Body).Decode(&liked); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if liked.Likes != 1 || len(liked.LikedBy) != 1 {
		t.Fatalf("unexpected state after like: likes=%d likedBy=%v", liked.Likes, liked.LikedBy)
	}

	if rr := vote("1"); rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate like, got %d", rr.Code)
	}

	if rr := vote("0"); rr.Code != http.StatusOK {
		t.Fatalf("expected 200 on unlike, got %d: %s", rr.Code, rr.Body.String())
	}

	if rr := vote("false"); rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate unlike, got %d", rr.Code)
	}
}

func TestVoteComment_UnknownComment(t *testing.T) {
	e := newEnv(t)
	handler := VoteComment(e.svc)

	req := setupReq(http.MethodPost, "/v1/comments/ghost/like?like=1",
		fmt.Sprintf(`{"userId":%q}`, e.userID),
		map[string]string{"comment_id": "ghost"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}
