package ratings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const professorsJSON = `[
  {"legacyId": 42, "firstName": "Ada", "lastName": "Lovelace", "avgRating": 4.9, "avgDifficulty": 3.1, "wouldTakeAgainPercent": 97},
  {"legacyId": 43, "firstName": "Alan", "lastName": "Turing", "avgRating": 4.5, "avgDifficulty": 4.0, "wouldTakeAgainPercent": 90}
]`

const mappingsJSON = `[{"Lovelace, A.": 42}, {"Turing, A.": 43}]`

func TestParseMappings(t *testing.T) {
	m, err := ParseMappings([]byte(mappingsJSON))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Lovelace, A.": 42, "Turing, A.": 43}, m)

	_, err = ParseMappings([]byte(`{"not": "an array"}`))
	assert.Error(t, err)
}

func TestParseProfessors(t *testing.T) {
	profs, err := ParseProfessors([]byte(professorsJSON))
	require.NoError(t, err)
	require.Len(t, profs, 2)
	assert.Equal(t, Professor{LegacyID: 42, FirstName: "Ada", LastName: "Lovelace", AvgRating: 4.9, AvgDifficulty: 3.1, WouldTakeAgainPercent: 97}, profs[0])
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	profPath := filepath.Join(dir, "professors.json")
	mapPath := filepath.Join(dir, "mappings.json")
	require.NoError(t, os.WriteFile(profPath, []byte(professorsJSON), 0644))
	require.NoError(t, os.WriteFile(mapPath, []byte(mappingsJSON), 0644))

	ix, err := NewLoader(nil).Load(context.Background(), Source{Professors: profPath, Mappings: mapPath})
	require.NoError(t, err)
	assert.Equal(t, 2, ix.Len())

	m := ix.Lookup("Turing, A.")
	assert.Equal(t, ExactMatch, m.Tier)
	assert.Equal(t, 43, m.Professor.LegacyID)
}

func TestLoadOverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/professors.json":
			_, _ = w.Write([]byte(professorsJSON))
		case "/mappings.json":
			_, _ = w.Write([]byte(mappingsJSON))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ix, err := NewLoader(nil).Load(context.Background(), Source{
		Professors: srv.URL + "/professors.json",
		Mappings:   srv.URL + "/mappings.json",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, ix.Len())
}

func TestLoadFailureFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusInternalServerError)
	}))
	defer srv.Close()

	tests := []struct {
		name string
		src  Source
	}{
		{name: "server error", src: Source{Professors: srv.URL + "/professors.json", Mappings: srv.URL + "/mappings.json"}},
		{name: "missing file", src: Source{Professors: filepath.Join(t.TempDir(), "none.json"), Mappings: "x"}},
		{name: "not configured", src: Source{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix, err := NewLoader(nil).Load(context.Background(), tt.src)
			require.ErrorIs(t, err, ErrMissingReferenceData)
			require.NotNil(t, ix)
			assert.Equal(t, Fallback().Len(), ix.Len())
		})
	}
}

func TestLoadNotConfigured(t *testing.T) {
	_, err := NewLoader(nil).Load(context.Background(), Source{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, Source{Professors: "a"}.Configured())
	assert.True(t, Source{Professors: "a", Mappings: "b"}.Configured())
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	profPath := filepath.Join(dir, "professors.json")
	require.NoError(t, os.WriteFile(profPath, []byte(`nope`), 0644))

	ix, err := NewLoader(nil).Load(context.Background(), Source{Professors: profPath, Mappings: profPath})
	assert.ErrorIs(t, err, ErrMissingReferenceData)
	assert.Equal(t, Fallback().Len(), ix.Len())
}

func TestLoadCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(professorsJSON))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader(nil).Load(ctx, Source{Professors: srv.URL, Mappings: srv.URL})
	assert.ErrorIs(t, err, context.Canceled)
}
