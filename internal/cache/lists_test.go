package cache

import (
	"context"
	"testing"
	"time"

	"github.com/olegiv/portfolio-go/internal/model"
)

func newTestListCache(t *testing.T) *ListCache {
	t.Helper()
	lc := NewListCache(NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Hour}))
	t.Cleanup(func() { _ = lc.Close() })
	return lc
}

func TestListCacheRoundTrip(t *testing.T) {
	lc := newTestListCache(t)
	ctx := context.Background()

	if _, ok := lc.Get(ctx, model.KindSkill, ""); ok {
		t.Fatal("expected miss on empty cache")
	}

	payload := []byte(`[{"id":1,"name":"Rust","category":"primary"}]`)
	lc.Set(ctx, model.KindSkill, "", payload)

	got, ok := lc.Get(ctx, model.KindSkill, "")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if string(got) != string(payload) {
		t.Errorf("payload mismatch: %s", got)
	}
}

func TestListCacheInvalidateClearsFilteredVariants(t *testing.T) {
	lc := newTestListCache(t)
	ctx := context.Background()

	lc.Set(ctx, model.KindProject, "", []byte("[]"))
	lc.Set(ctx, model.KindProject, "security", []byte("[]"))
	lc.Set(ctx, model.KindDesign, "", []byte("[]"))

	lc.Invalidate(ctx, model.KindProject)

	if _, ok := lc.Get(ctx, model.KindProject, ""); ok {
		t.Error("unfiltered project list should be invalidated")
	}
	if _, ok := lc.Get(ctx, model.KindProject, "security"); ok {
		t.Error("filtered project list should be invalidated")
	}
	if _, ok := lc.Get(ctx, model.KindDesign, ""); !ok {
		t.Error("design list should be untouched")
	}
}
