package deploy

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserCustomizationSkipsWhenNoProfile(t *testing.T) {
	d, fs := newTestDeployer()
	usr := testUser()

	var logged []string
	d.logFunc = func(msg string) { logged = append(logged, msg) }

	require.NoError(t, d.DeployBrowserCustomization(usr))

	exists, err := afero.DirExists(fs, "/home/tester/.mozilla")
	require.NoError(t, err)
	assert.False(t, exists, "nothing should be created without a profile")
	require.NotEmpty(t, logged)
	assert.Contains(t, logged[len(logged)-1], "skipping")
}

func TestBrowserCustomizationWritesIntoProfile(t *testing.T) {
	d, fs := newTestDeployer()
	usr := testUser()
	profile := "/home/tester/.mozilla/firefox/ab12cd34.default-release"
	require.NoError(t, fs.MkdirAll(profile, 0755))

	require.NoError(t, d.DeployBrowserCustomization(usr))

	for _, name := range []string{"userChrome.css", "userContent.css"} {
		data, err := afero.ReadFile(fs, profile+"/chrome/"+name)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}
}

func TestBrowserCustomizationPrefersDefaultRelease(t *testing.T) {
	d, fs := newTestDeployer()
	usr := testUser()
	require.NoError(t, fs.MkdirAll("/home/tester/.mozilla/firefox/old.default", 0755))
	require.NoError(t, fs.MkdirAll("/home/tester/.mozilla/firefox/new.default-release", 0755))

	require.NoError(t, d.DeployBrowserCustomization(usr))

	exists, err := afero.Exists(fs,
		"/home/tester/.mozilla/firefox/new.default-release/chrome/userChrome.css")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = afero.Exists(fs,
		"/home/tester/.mozilla/firefox/old.default/chrome/userChrome.css")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBrowserCustomizationFallsBackToDefaultProfile(t *testing.T) {
	d, fs := newTestDeployer()
	usr := testUser()
	require.NoError(t, fs.MkdirAll("/home/tester/.mozilla/firefox/xy99.default", 0755))

	require.NoError(t, d.DeployBrowserCustomization(usr))

	exists, err := afero.Exists(fs,
		"/home/tester/.mozilla/firefox/xy99.default/chrome/userChrome.css")
	require.NoError(t, err)
	assert.True(t, exists)
}
