package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestGetUnknownSession(t *testing.T) {
	store := NewInMemoryStore()

	turns, err := store.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if len(turns) != 0 {
		t.Errorf("Get on unknown session returned %d turns, want 0", len(turns))
	}
}

func TestAppendAndGet(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	store.Append(ctx, "s1", Turn{Role: RoleUser, Content: "hello"})
	store.Append(ctx, "s1", Turn{Role: RoleAssistant, Content: "hi there"})

	turns, _ := store.Get(ctx, "s1")
	if len(turns) != 2 {
		t.Fatalf("len = %d, want 2", len(turns))
	}
	if turns[0].Role != RoleUser || turns[1].Role != RoleAssistant {
		t.Errorf("unexpected roles: %q, %q", turns[0].Role, turns[1].Role)
	}
}

func TestFIFOTruncation(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	total := MaxTurns + 6
	for i := 0; i < total; i++ {
		store.Append(ctx, "s1", Turn{Role: RoleUser, Content: fmt.Sprintf("turn %d", i)})
	}

	turns, _ := store.Get(ctx, "s1")
	if len(turns) != MaxTurns {
		t.Fatalf("retained %d turns, want %d", len(turns), MaxTurns)
	}

	// Oldest entries evicted first: retained window is [total-MaxTurns, total)
	for i, turn := range turns {
		want := fmt.Sprintf("turn %d", total-MaxTurns+i)
		if turn.Content != want {
			t.Errorf("turns[%d] = %q, want %q", i, turn.Content, want)
		}
	}
}

func TestClear(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	store.Append(ctx, "s1", Turn{Role: RoleUser, Content: "hello"})
	if err := store.Clear(ctx, "s1"); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}

	if turns, _ := store.Get(ctx, "s1"); len(turns) != 0 {
		t.Errorf("after Clear, Get returned %d turns", len(turns))
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	store.Append(ctx, "a", Turn{Role: RoleUser, Content: "for a"})
	store.Append(ctx, "b", Turn{Role: RoleUser, Content: "for b"})

	turnsA, _ := store.Get(ctx, "a")
	if got := turnsA[0].Content; got != "for a" {
		t.Errorf("session a content = %q", got)
	}
	turnsB, _ := store.Get(ctx, "b")
	if got := turnsB[0].Content; got != "for b" {
		t.Errorf("session b content = %q", got)
	}
}

func TestConcurrentAppendSameSession(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			store.Append(ctx, "shared", Turn{Role: RoleUser, Content: fmt.Sprintf("%d", n)})
		}(i)
	}
	wg.Wait()

	turns, _ := store.Get(ctx, "shared")
	if len(turns) != MaxTurns {
		t.Errorf("retained %d turns under concurrency, want %d", len(turns), MaxTurns)
	}
}
