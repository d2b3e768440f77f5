package events

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/example/personality-board/internal/store"
)

func TestNew_StubWhenNoURL(t *testing.T) {
	p, err := New("", zap.NewNop())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if p == nil {
		t.Fatal("expected stub publisher")
	}

	// Must not panic or block without a broker.
	p.CommentCreated(context.Background(), store.Comment{
		ID:        "comment-1",
		ProfileID: "profile-1",
		UserID:    "user-1",
		Date:      time.Now().UTC(),
	})
}
