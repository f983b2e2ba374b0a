package store

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Stock int      `json:"stock"`
	Tags  []string `json:"tags,omitempty"`
}

type repository[T any] interface {
	Load() (T, error)
	Save(T) error
}

// repositories returns one repository of each kind for the same document.
func repositories(t *testing.T) map[string]repository[[]item] {
	t.Helper()
	dir := t.TempDir()
	db, err := OpenDB(filepath.Join(dir, "till.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return map[string]repository[[]item]{
		"json":   NewJSONFile[[]item](dir, "items.json"),
		"sqlite": NewSQLite[[]item](db, "items"),
	}
}

func TestRepository_Missing(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.Load()
			require.ErrorIs(t, err, fs.ErrNotExist)
		})
	}
}

func TestRepository_RoundTrip(t *testing.T) {
	want := []item{{1, "Soap", 10, []string{"bath"}}, {2, "Towel", 0, nil}}
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, repo.Save([]item{{9, "old", 1, nil}}))
			require.NoError(t, repo.Save(want))
			got, err := repo.Load()
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRepository_Empty(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, repo.Save([]item{}))
			got, err := repo.Load()
			require.NoError(t, err)
			require.NotNil(t, got)
			require.Empty(t, got)
		})
	}
}

func TestJSONFile_Corrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "items.json"), []byte("{"), 0644))
	_, err := NewJSONFile[[]item](dir, "items.json").Load()
	require.Error(t, err)
	require.NotErrorIs(t, err, fs.ErrNotExist)
}

func TestJSONFile_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	repo := NewJSONFile[[]item](dir, "items.json")
	require.NoError(t, repo.Save([]item{{ID: 1, Name: "Soap"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must not be left behind")
	data, err := os.ReadFile(repo.Path)
	require.NoError(t, err)
	require.Contains(t, string(data), "\n  {\n")
}

func TestSQLite_Documents(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "till.db"))
	require.NoError(t, err)
	defer db.Close()

	a := NewSQLite[[]item](db, "a")
	b := NewSQLite[[]item](db, "b")
	require.NoError(t, a.Save([]item{{ID: 1}}))
	_, err = b.Load()
	require.ErrorIs(t, err, fs.ErrNotExist)

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM documents`))
	require.Equal(t, 1, count)
}
