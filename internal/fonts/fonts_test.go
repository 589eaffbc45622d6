package fonts

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velvetfox/riceup/internal/userctx"
)

func testUser() *userctx.Context {
	return &userctx.Context{
		Username: "tester",
		UID:      1000,
		GID:      1000,
		Home:     "/home/tester",
		FontDir:  "/home/tester/.local/share/fonts",
	}
}

func TestInstallCopiesBundledFonts(t *testing.T) {
	fs := afero.NewMemMapFs()
	in := NewInstaller(fs, nil)

	refreshed := false
	in.refreshCache = func(ctx context.Context) error {
		refreshed = true
		return nil
	}

	require.NoError(t, in.Install(context.Background(), testUser()))
	assert.True(t, refreshed, "font cache must be rebuilt after install")

	entries, err := afero.ReadDir(fs, "/home/tester/.local/share/fonts")
	require.NoError(t, err)
	assert.NotEmpty(t, entries)

	names := make(map[string]bool)
	for _, entry := range entries {
		names[entry.Name()] = true
	}
	assert.True(t, names["Inter-Regular.ttf"])
	assert.True(t, names["FiraCode-Regular.ttf"])
}

func TestInstallOverwritesExistingFonts(t *testing.T) {
	fs := afero.NewMemMapFs()
	in := NewInstaller(fs, nil)
	in.refreshCache = func(ctx context.Context) error { return nil }

	require.NoError(t, afero.WriteFile(fs,
		"/home/tester/.local/share/fonts/Inter-Regular.ttf", []byte("stale"), 0644))

	require.NoError(t, in.Install(context.Background(), testUser()))

	data, err := afero.ReadFile(fs, "/home/tester/.local/share/fonts/Inter-Regular.ttf")
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(data))
}

func TestInstallReportsCacheRefreshFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	in := NewInstaller(fs, nil)
	in.refreshCache = func(ctx context.Context) error {
		return errors.New("fc-cache missing")
	}

	err := in.Install(context.Background(), testUser())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "font cache refresh failed")

	// Fonts themselves still landed; only the refresh failed.
	exists, statErr := afero.Exists(fs, "/home/tester/.local/share/fonts/Inter-Regular.ttf")
	require.NoError(t, statErr)
	assert.True(t, exists)
}
