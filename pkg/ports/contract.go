package ports

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/aretw0/weft/pkg/domain"
)

// RunDefinitionStoreContract verifies that a DefinitionStore implementation
// honors the interface semantics. Adapter test suites call this against
// their concrete store.
func RunDefinitionStoreContract(t *testing.T, store DefinitionStore) {
	t.Helper()
	ctx := context.Background()

	def, err := domain.NewDefinition(
		[]domain.State{"A", "B"},
		[]domain.Symbol{"a", "b"},
		"A",
		[]domain.State{"B"},
		[]domain.Rule{{From: "A", Symbol: "a", To: "B"}, {From: "B", Symbol: "b", To: "A"}},
	)
	if err != nil {
		t.Fatalf("fixture definition failed: %v", err)
	}

	t.Run("SaveAndLoad", func(t *testing.T) {
		if err := store.Save(ctx, "binary", def); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		loaded, err := store.Load(ctx, "binary")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if !reflect.DeepEqual(loaded.Document(), def.Document()) {
			t.Errorf("loaded definition differs: got %+v, want %+v", loaded.Document(), def.Document())
		}
	})

	t.Run("LoadMissing", func(t *testing.T) {
		_, err := store.Load(ctx, "no-such-machine")
		if !errors.Is(err, domain.ErrDefinitionNotFound) {
			t.Errorf("expected ErrDefinitionNotFound, got %v", err)
		}
	})

	t.Run("List", func(t *testing.T) {
		if err := store.Save(ctx, "another", def); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		names, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		lookup := make(map[string]bool, len(names))
		for _, n := range names {
			lookup[n] = true
		}
		if !lookup["binary"] || !lookup["another"] {
			t.Errorf("List missing saved names: %v", names)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := store.Delete(ctx, "binary"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := store.Load(ctx, "binary"); !errors.Is(err, domain.ErrDefinitionNotFound) {
			t.Errorf("expected ErrDefinitionNotFound after delete, got %v", err)
		}
	})
}
