package glossary

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
)

func newTestStore(t *testing.T, seed map[string]string) *Store {
	t.Helper()
	return NewStore(slog.Default(), seed)
}

func TestLookup_ExistingTerm(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, nil)
	s.Define(context.Background(), "Apple", "A fruit")

	if got := s.Lookup(context.Background(), "Apple"); got != "A fruit" {
		t.Errorf("Lookup(Apple) = %q, want %q", got, "A fruit")
	}
}

func TestLookup_MissingTerm(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, nil)

	if got := s.Lookup(context.Background(), "Banana"); got != "Can't find entry for Banana" {
		t.Errorf("Lookup(Banana) = %q", got)
	}
}

func TestLookup_ExactMatch(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, map[string]string{"Apple": "A fruit"})
	ctx := context.Background()

	tests := []struct {
		term string
		want string
	}{
		{"Apple", "A fruit"},
		{"apple", "Can't find entry for apple"},
		{" Apple", "Can't find entry for  Apple"},
		{"Apple ", "Can't find entry for Apple "},
		{"", "Can't find entry for "},
	}
	for _, tt := range tests {
		if got := s.Lookup(ctx, tt.term); got != tt.want {
			t.Errorf("Lookup(%q) = %q, want %q", tt.term, got, tt.want)
		}
	}
}

func TestDefine_Overwrites(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, nil)
	ctx := context.Background()

	s.Define(ctx, "Apple", "first")
	s.Define(ctx, "Apple", "second")

	if got := s.Lookup(ctx, "Apple"); got != "second" {
		t.Errorf("Lookup(Apple) = %q, want %q", got, "second")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestDefine_EmptyStrings(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, nil)
	ctx := context.Background()

	s.Define(ctx, "", "")
	s.Define(ctx, "blank", "")

	if got := s.Lookup(ctx, ""); got != "" {
		t.Errorf("Lookup(\"\") = %q, want empty definition", got)
	}
	if got := s.Lookup(ctx, "blank"); got != "" {
		t.Errorf("Lookup(blank) = %q, want empty definition", got)
	}
}

func TestDefineThenLookup_RoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, nil)
	ctx := context.Background()

	pairs := map[string]string{
		"Go":         "A programming language",
		"gopher":     "Mascot",
		"ünïcödé":    "Non-ASCII term",
		"with\nnl":   "multi\nline",
		"Can't find": "Not a sentinel",
	}
	for term, def := range pairs {
		s.Define(ctx, term, def)
		if got := s.Lookup(ctx, term); got != def {
			t.Errorf("Lookup(%q) = %q, want %q", term, got, def)
		}
	}
}

func TestLookup_Idempotent(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, DefaultSeed())
	ctx := context.Background()

	for _, term := range []string{"Apple", "Banana"} {
		first := s.Lookup(ctx, term)
		second := s.Lookup(ctx, term)
		if first != second {
			t.Errorf("Lookup(%q) changed between calls: %q then %q", term, first, second)
		}
	}
}

func TestNewStore_CopiesSeed(t *testing.T) {
	t.Parallel()

	seed := map[string]string{"Apple": "A fruit"}
	s := newTestStore(t, seed)

	seed["Apple"] = "mutated"
	seed["Pear"] = "added"

	if got := s.Lookup(context.Background(), "Apple"); got != "A fruit" {
		t.Errorf("store should not observe seed mutation, got %q", got)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestEntries_SortedSnapshot(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, map[string]string{"b": "2", "a": "1", "c": "3"})

	entries := s.Entries()
	if len(entries) != 3 {
		t.Fatalf("len(Entries()) = %d, want 3", len(entries))
	}
	for i, want := range []string{"a", "b", "c"} {
		if entries[i].Term != want {
			t.Errorf("entries[%d].Term = %q, want %q", i, entries[i].Term, want)
		}
	}
}

func TestStore_ConcurrentDefineLookup(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			term := fmt.Sprintf("term-%d", i)
			s.Define(ctx, term, term+"-def")
			_ = s.Lookup(ctx, term)
		}(i)
	}
	wg.Wait()

	if s.Len() != 50 {
		t.Fatalf("Len() = %d, want 50", s.Len())
	}
	for i := 0; i < 50; i++ {
		term := fmt.Sprintf("term-%d", i)
		if got := s.Lookup(ctx, term); got != term+"-def" {
			t.Errorf("Lookup(%q) = %q", term, got)
		}
	}
}
