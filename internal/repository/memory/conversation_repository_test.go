package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"ai-datachat-be/internal/repository/contract"
	"ai-datachat-be/pkg/store"
)

func turn(role, content string) store.Turn {
	return store.Turn{Role: role, Content: content, Timestamp: time.Now()}
}

func TestGetUnknownDatasetIsEmpty(t *testing.T) {
	repo := NewConversationRepository()

	turns := repo.Get(context.Background(), "never-seen")
	if turns == nil {
		t.Fatal("missing key must read as empty, not nil")
	}
	if len(turns) != 0 {
		t.Fatalf("expected no turns, got %d", len(turns))
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	repo := NewConversationRepository()
	ctx := context.Background()

	repo.Append(ctx, "ds-1",
		turn(store.RoleUser, "first question"),
		turn(store.RoleAssistant, "first answer"),
	)
	repo.Append(ctx, "ds-1", turn(store.RoleUser, "second question"))

	turns := repo.Get(ctx, "ds-1")
	want := []string{"first question", "first answer", "second question"}
	if len(turns) != len(want) {
		t.Fatalf("got %d turns, want %d", len(turns), len(want))
	}
	for i, content := range want {
		if turns[i].Content != content {
			t.Errorf("turn[%d] = %q, want %q", i, turns[i].Content, content)
		}
	}
}

func TestAppendDropsOldestBeyondBound(t *testing.T) {
	repo := NewConversationRepository()
	ctx := context.Background()

	for i := 0; i < contract.MaxTurns+4; i++ {
		repo.Append(ctx, "ds-1", turn(store.RoleUser, fmt.Sprintf("turn-%d", i)))
	}

	turns := repo.Get(ctx, "ds-1")
	if len(turns) != contract.MaxTurns {
		t.Fatalf("got %d turns, want %d", len(turns), contract.MaxTurns)
	}
	if turns[0].Content != "turn-4" {
		t.Errorf("oldest surviving turn = %q, want turn-4", turns[0].Content)
	}
	if turns[len(turns)-1].Content != fmt.Sprintf("turn-%d", contract.MaxTurns+3) {
		t.Errorf("newest turn = %q", turns[len(turns)-1].Content)
	}
}

func TestDatasetsAreIsolated(t *testing.T) {
	repo := NewConversationRepository()
	ctx := context.Background()

	repo.Append(ctx, "ds-a", turn(store.RoleUser, "about invoices"))
	repo.Append(ctx, "ds-b", turn(store.RoleUser, "about payroll"))

	if got := repo.Get(ctx, "ds-a"); len(got) != 1 || got[0].Content != "about invoices" {
		t.Errorf("ds-a = %+v", got)
	}
	if got := repo.Get(ctx, "ds-b"); len(got) != 1 || got[0].Content != "about payroll" {
		t.Errorf("ds-b = %+v", got)
	}
}

func TestClear(t *testing.T) {
	repo := NewConversationRepository()
	ctx := context.Background()

	repo.Append(ctx, "ds-1", turn(store.RoleUser, "hello"))
	repo.Clear(ctx, "ds-1")

	if got := repo.Get(ctx, "ds-1"); len(got) != 0 {
		t.Fatalf("expected empty conversation after clear, got %d turns", len(got))
	}

	// the dataset stays usable after a clear
	repo.Append(ctx, "ds-1", turn(store.RoleUser, "hello again"))
	if got := repo.Get(ctx, "ds-1"); len(got) != 1 {
		t.Fatalf("expected 1 turn after re-append, got %d", len(got))
	}
}

func TestGetReturnsCopy(t *testing.T) {
	repo := NewConversationRepository()
	ctx := context.Background()

	repo.Append(ctx, "ds-1", turn(store.RoleUser, "original"))

	leaked := repo.Get(ctx, "ds-1")
	leaked[0].Content = "mutated"

	if got := repo.Get(ctx, "ds-1"); got[0].Content != "original" {
		t.Fatal("Get must return a copy, not the stored slice")
	}
}

func TestConcurrentAppendsHoldTheBound(t *testing.T) {
	repo := NewConversationRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			repo.Append(ctx, "ds-1",
				turn(store.RoleUser, fmt.Sprintf("q-%d", i)),
				turn(store.RoleAssistant, fmt.Sprintf("a-%d", i)),
			)
		}(i)
	}
	wg.Wait()

	turns := repo.Get(ctx, "ds-1")
	if len(turns) != contract.MaxTurns {
		t.Fatalf("got %d turns, want exactly %d", len(turns), contract.MaxTurns)
	}
}
