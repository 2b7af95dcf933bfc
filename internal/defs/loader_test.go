package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRange(t *testing.T) {
	def, err := DefaultRange()
	require.NoError(t, err)

	assert.Equal(t, "training range", def.Name)
	assert.NotEmpty(t, def.Placements)

	crate, ok := def.Kind("crate")
	require.True(t, ok)
	assert.True(t, crate.Destructible())
	assert.True(t, crate.HasBody())
	assert.Equal(t, 3, crate.Health)

	wall, ok := def.Kind("wall")
	require.True(t, ok)
	assert.False(t, wall.Destructible())
	assert.False(t, wall.HasBody())

	target, ok := def.Kind("target")
	require.True(t, ok)
	assert.True(t, target.HasBody(), "kinematic target has a body")
}

func TestParseRange_Minimal(t *testing.T) {
	def, err := ParseRange([]byte(`
name: lane
spawn: [1, 0, -2]
kinds:
  - {id: post, size: [0.5, 2, 0.5], health: 1, color: [10, 20, 30]}
placements:
  - {kind: post, name: p1, position: [0, 1, 10]}
`))
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{1, 0, -2}, def.Spawn.Vec())
	require.Len(t, def.Placements, 1)
	assert.Equal(t, mgl64.Vec3{0, 1, 10}, def.Placements[0].Position.Vec())
	assert.Equal(t, RGB{10, 20, 30}, def.Kinds[0].Color)
}

func TestParseRange_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown kind":   "kinds: [{id: a, size: [1, 1, 1]}]\nplacements: [{kind: b, position: [0, 0, 0]}]",
		"duplicate kind": "kinds: [{id: a, size: [1, 1, 1]}, {id: a, size: [1, 1, 1]}]",
		"zero size":      "kinds: [{id: a, size: [1, 0, 1]}]",
		"negative mass":  "kinds: [{id: a, size: [1, 1, 1], mass: -1}]",
		"bouncy":         "kinds: [{id: a, size: [1, 1, 1], restitution: 2}]",
		"missing id":     "kinds: [{size: [1, 1, 1]}]",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRange([]byte(body))
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

func TestParseRange_WrongVectorLength(t *testing.T) {
	_, err := ParseRange([]byte("spawn: [1, 2]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal range definitions")
}

func TestLoadRange_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lane.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: lane\nkinds: [{id: a, size: [1, 1, 1]}]\n"), 0644))

	def, err := LoadRange(path)
	require.NoError(t, err)
	assert.Equal(t, "lane", def.Name)
}

func TestLoadRange_EmptyPathIsBuiltIn(t *testing.T) {
	def, err := LoadRange("")
	require.NoError(t, err)
	assert.Equal(t, "training range", def.Name)
}

func TestLoadRange_MissingFile(t *testing.T) {
	_, err := LoadRange(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read range definitions file")
}
