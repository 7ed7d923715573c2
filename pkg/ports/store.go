package ports

import (
	"context"

	"github.com/aretw0/weft/pkg/domain"
)

// DefinitionStore persists named machine definitions. It enables serving
// multiple machines from one process and sharing definitions between
// processes (e.g. through Redis).
type DefinitionStore interface {
	// Save persists the definition under name, overwriting any previous one.
	Save(ctx context.Context, name string, def *domain.Definition) error

	// Load retrieves the definition stored under name.
	// Returns domain.ErrDefinitionNotFound if the name is unknown.
	Load(ctx context.Context, name string) (*domain.Definition, error)

	// Delete removes the definition stored under name.
	Delete(ctx context.Context, name string) error

	// List returns the stored definition names in deterministic order.
	List(ctx context.Context) ([]string, error)
}
