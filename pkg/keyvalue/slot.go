// Package keyvalue provides a durable single-value string slot, used to
// persist the signed-in user's id across process restarts.
package keyvalue

import "context"

// Slot holds at most one string value. Read returns "" when the slot is
// empty; emptiness is not an error.
type Slot interface {
	Write(ctx context.Context, value string) error
	Read(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
