package greeter

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velvetfox/riceup/internal/errdefs"
)

func TestInstallRemovesCheckoutOnBuildFailure(t *testing.T) {
	b := NewBuilder("", "", nil)

	var checkout string
	b.cloneCmd = func(ctx context.Context, dir string) error {
		checkout = dir
		return os.WriteFile(dir+"/Makefile", []byte("install:\n"), 0644)
	}
	b.buildCmd = func(ctx context.Context, dir string) error {
		return errors.New("compiler exploded")
	}

	err := b.Install(context.Background())
	require.Error(t, err)

	var custom *errdefs.CustomError
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, errdefs.ErrTypeGreeterBuild, custom.Type)

	require.NotEmpty(t, checkout)
	_, statErr := os.Stat(checkout)
	assert.True(t, os.IsNotExist(statErr), "checkout directory must be removed after a failed build")
}

func TestInstallRemovesCheckoutOnCloneFailure(t *testing.T) {
	b := NewBuilder("", "", nil)

	var checkout string
	b.cloneCmd = func(ctx context.Context, dir string) error {
		checkout = dir
		return errors.New("remote unreachable")
	}
	b.buildCmd = func(ctx context.Context, dir string) error {
		t.Fatal("build must not run after a failed clone")
		return nil
	}

	err := b.Install(context.Background())
	require.Error(t, err)

	require.NotEmpty(t, checkout)
	_, statErr := os.Stat(checkout)
	assert.True(t, os.IsNotExist(statErr))
}

func TestInstallRemovesCheckoutOnSuccess(t *testing.T) {
	b := NewBuilder("", "", nil)

	var checkout string
	b.cloneCmd = func(ctx context.Context, dir string) error {
		checkout = dir
		return nil
	}
	b.buildCmd = func(ctx context.Context, dir string) error { return nil }

	require.NoError(t, b.Install(context.Background()))

	require.NotEmpty(t, checkout)
	_, statErr := os.Stat(checkout)
	assert.True(t, os.IsNotExist(statErr), "checkout directory must be removed after success too")
}

func TestNewBuilderDefaultsRepoURL(t *testing.T) {
	assert.Equal(t, DefaultRepoURL, NewBuilder("", "", nil).RepoURL)
	assert.Equal(t, "https://example.com/fork.git", NewBuilder("https://example.com/fork.git", "", nil).RepoURL)
}
