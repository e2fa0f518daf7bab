package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/lidarview/internal/config"
	"github.com/philipparndt/lidarview/pkg/lidar"
	"github.com/philipparndt/lidarview/pkg/view"
)

func writeCloud(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.txt")
	writeCloud(t, path, "x y z r n c\n0 0 0 1 1 2\n10 0 0 1 1 2\n0 10 0 1 1 2\n")

	cfg := config.Default()
	cfg.ColorMode = "derived"
	cfg.Hide = []string{"other"}

	s, err := Open(path, &cfg)
	require.NoError(t, err)

	assert.Equal(t, 3, s.Cloud.Size())
	assert.InDelta(t, 0.1, s.View.Scale, 1e-10)
	assert.Equal(t, view.ColorByDerived, s.View.ColorMode)
	assert.False(t, s.View.Buckets[view.BucketOther])
	for _, p := range s.Cloud.All() {
		assert.Equal(t, lidar.Building, p.Derived)
	}
}

func TestOpenErrors(t *testing.T) {
	cfg := config.Default()
	dir := t.TempDir()

	_, err := Open(filepath.Join(dir, "missing.txt"), &cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)

	empty := filepath.Join(dir, "empty.txt")
	writeCloud(t, empty, "")
	_, err = Open(empty, &cfg)
	assert.ErrorIs(t, err, view.ErrEmptyCloud)
}

func TestReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.txt")
	writeCloud(t, path, "0 0 0 1 1 2\n10 0 0 1 1 2\n")

	cfg := config.Default()
	s, err := Open(path, &cfg)
	require.NoError(t, err)
	s.View.Apply(view.CmdZoomIn)
	s.View.Apply(view.CmdToggleGround)

	writeCloud(t, path, "0 0 0 1 1 2\n20 0 0 1 1 2\n20 5 3 1 1 6\n")
	require.NoError(t, s.Reload())
	assert.Equal(t, 3, s.Cloud.Size())
	assert.InDelta(t, 0.05*view.ZoomFactor, s.View.Scale, 1e-10)
	assert.False(t, s.View.Buckets[view.BucketGround])

	writeCloud(t, path, "")
	err = s.Reload()
	require.ErrorIs(t, err, view.ErrEmptyCloud)
	assert.Equal(t, 3, s.Cloud.Size(), "previous cloud is kept")
}
