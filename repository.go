package till

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
)

// Repository loads and saves the whole state of one store.
//
// Implementations overwrite the previous state on Save. Load returns an
// error wrapping fs.ErrNotExist when nothing was ever saved.
type Repository[T any] interface {
	Load() (T, error)
	Save(T) error
}

// load reads a store state. A missing state is the zero value; an
// unreadable one is logged and replaced by the zero value.
func load[T any](name string, repo Repository[T]) T {
	var zero T
	v, err := repo.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return zero
	}
	if err != nil {
		log.Printf("warning, %s cannot be loaded, starting empty: %v", name, err)
		return zero
	}
	return v
}

// save writes a store state, wrapping failures in ErrPersistence.
func save[T any](name string, repo Repository[T], v T) error {
	if err := repo.Save(v); err != nil {
		return fmt.Errorf("%w: saving %s: %w", ErrPersistence, name, err)
	}
	return nil
}
