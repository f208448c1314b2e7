// Package recordstore keeps named whole-collection records. Each record is an
// opaque payload that is always read and replaced as a unit.
package recordstore

import (
	"context"
	"errors"
)

// Record names shared by every backend.
const (
	RecordCatalog     = "equipments"
	RecordRentals     = "rental_requests"
	RecordPreferences = "preferences"
)

//go:generate mockgen -source=store.go -destination=../../../tests/mock/recordstore/store.go -package=recordstoremock

var ErrRecordNotFound = errors.New("record not found")

type Store interface {
	// Get returns ErrRecordNotFound when nothing has been stored under name.
	Get(ctx context.Context, name string) ([]byte, error)
	// Put replaces the whole record.
	Put(ctx context.Context, name string, payload []byte) error
	Close(ctx context.Context) error
}
