package userctx

import (
	"os"
	"os/user"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velvetfox/riceup/internal/errdefs"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestResolveRejectsRootTarget(t *testing.T) {
	_, err := resolve(envMap(map[string]string{"SUDO_UID": "0"}))
	require.Error(t, err)

	var custom *errdefs.CustomError
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, errdefs.ErrTypeNoTargetUser, custom.Type)
}

func TestResolveUnknownSudoUser(t *testing.T) {
	_, err := resolve(envMap(map[string]string{"SUDO_USER": "no-such-user-riceup"}))
	require.Error(t, err)

	var custom *errdefs.CustomError
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, errdefs.ErrTypeNoTargetUser, custom.Type)
}

func TestResolveViaSudoUser(t *testing.T) {
	u, err := user.Lookup("nobody")
	if err != nil {
		t.Skip("no nobody user on this system")
	}

	ctx, err := resolve(envMap(map[string]string{"SUDO_USER": "nobody"}))
	require.NoError(t, err)
	assert.Equal(t, u.Username, ctx.Username)
	assert.Equal(t, filepath.Join(ctx.Home, ".config"), ctx.ConfigDir)
	assert.Equal(t, filepath.Join(ctx.Home, ".local", "share", "fonts"), ctx.FontDir)
}

func TestResolveSudoUIDTakesPrecedence(t *testing.T) {
	u, err := user.Lookup("nobody")
	if err != nil {
		t.Skip("no nobody user on this system")
	}

	ctx, err := resolve(envMap(map[string]string{
		"SUDO_UID":  u.Uid,
		"SUDO_USER": "some-other-name",
	}))
	require.NoError(t, err)
	assert.Equal(t, u.Username, ctx.Username)
}

func TestResolveFallsBackToCurrentUser(t *testing.T) {
	if os.Getuid() == 0 {
		// Without sudo context the process owner is the target; root is
		// refused.
		_, err := resolve(envMap(nil))
		require.Error(t, err)
		return
	}

	ctx, err := resolve(envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, os.Getuid(), ctx.UID)
}

func TestRequireRoot(t *testing.T) {
	err := RequireRoot()
	if os.Geteuid() == 0 {
		assert.NoError(t, err)
	} else {
		assert.ErrorIs(t, err, errdefs.ErrNotRoot)
	}
}
