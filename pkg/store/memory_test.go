package store

import (
	"context"
	"testing"

	gkerrors "github.com/matzehuels/gridkit/pkg/errors"
	"github.com/matzehuels/gridkit/pkg/schema"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	doc := schema.Document{
		Name:  "dashboard",
		Slots: 12,
		Items: []schema.Item{{ID: "a", W: 2, H: 2}},
	}

	// Unknown name before Put
	if _, err := s.Get(ctx, "dashboard"); !gkerrors.Is(err, gkerrors.ErrCodeLayoutNotFound) {
		t.Fatalf("Get before Put: %v", err)
	}

	if err := s.Put(ctx, doc); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := s.Get(ctx, "dashboard")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Slots != 12 || len(got.Items) != 1 || got.Items[0].ID != "a" {
		t.Errorf("Get returned %+v", got)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("Put should stamp UpdatedAt")
	}

	// Replace
	doc.Slots = 6
	if err := s.Put(ctx, doc); err != nil {
		t.Fatalf("Put replace: %v", err)
	}
	if got, _ := s.Get(ctx, "dashboard"); got.Slots != 6 {
		t.Errorf("replace lost: %+v", got)
	}

	if err := s.Delete(ctx, "dashboard"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, "dashboard"); !gkerrors.Is(err, gkerrors.ErrCodeLayoutNotFound) {
		t.Errorf("Delete twice: %v", err)
	}
}

func TestMemoryStoreList(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := s.Put(ctx, schema.Document{Name: name, Slots: 4}); err != nil {
			t.Fatalf("Put %s: %v", name, err)
		}
	}

	names, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("got %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("List[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestMemoryStoreRejectsBadNames(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for _, name := range []string{"", "../escape", "a//b", "bad\x00name"} {
		if err := s.Put(ctx, schema.Document{Name: name, Slots: 4}); err == nil {
			t.Errorf("Put %q should fail", name)
		}
	}
}
