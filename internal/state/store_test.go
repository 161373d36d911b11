package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/billie-coop/swipetabs/internal/tui/components/tabstrip"
	"github.com/stretchr/testify/require"
)

type counter struct {
	N int `json:"n"`
}

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "counter.json")
	s := NewStore(path, counter{}, nil)
	require.NoError(t, s.Load())
	require.Equal(t, counter{}, s.Get())

	require.NoError(t, s.Update(func(c counter) counter {
		c.N += 2
		return c
	}))
	require.NoFileExists(t, path+".tmp")

	again := NewStore(path, counter{}, nil)
	require.NoError(t, again.Load())
	require.Equal(t, 2, again.Get().N)

	require.NoError(t, again.Reset())
	require.NoFileExists(t, path)
	require.Equal(t, counter{}, again.Get())
	require.NoError(t, again.Reset(), "resetting twice is fine")
}

func TestStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	s := NewStore(path, counter{N: 7}, nil)
	require.Error(t, s.Load())
	require.Equal(t, 7, s.Get().N)
}

func TestStripStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s := NewStripStore(path)
	require.NoError(t, s.Load())
	require.Equal(t, tabstrip.DefaultSavedState(), s.Get())

	saved := tabstrip.DefaultSavedState()
	saved.Position = 4
	saved.LineColor = "#ABCDEF"
	require.NoError(t, s.Set(saved))

	again := NewStripStore(path)
	require.NoError(t, again.Load())
	require.Equal(t, saved, again.Get())
	require.Equal(t, 4, again.Position(10))
	require.Equal(t, 2, again.Position(3))

	require.NoError(t, os.WriteFile(path, []byte(`{"position": 1, "text_color": "bad"}`), 0o644))
	require.Error(t, again.Load())
	require.Equal(t, tabstrip.DefaultSavedState(), again.Get())
}
