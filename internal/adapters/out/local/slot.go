// Package local keeps orders on the machine running the service when no remote store
// is reachable. All orders live in a single named slot holding a JSON array, rewritten
// as a whole on every change.
package local

import (
	"context"
)

// DefaultSlotName is the slot name used when none is configured.
const DefaultSlotName = "nexa_orders_db"

// Slot is a named blob. Load returns nil data and no error while the slot was never
// written.
type Slot interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}
