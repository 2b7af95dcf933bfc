package config

import (
	"os"
	"path/filepath"
	"testing"

	"go-raycast-shooter/internal/weapon"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "range.yaml"), []byte(body), 0644))
	return dir
}

func TestLoad_DefaultValues(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, weapon.DefaultConfig(), s.Weapon.Config)
	assert.Equal(t, mgl64.Vec3{0.25, -0.2, 0.6}, s.Weapon.GunEnd.Vec())
	assert.Equal(t, ScreenWidth, s.Window.Width)
	assert.Equal(t, 60, s.Window.TargetFPS)
	assert.Equal(t, 60.0, s.Camera.Fovy)
	assert.Equal(t, 1.6, s.Camera.EyeHeight)
	assert.True(t, s.Audio.Enabled)
	assert.Equal(t, 44100, s.Audio.SampleRate)
	assert.Empty(t, s.Range.Definitions)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := writeSettings(t, `
logLevel: debug
weapon:
  gunDamage: 10
  fireRate: 0.1
  overlapPolicy: independent
  gunEnd: {x: 0.1, y: -0.1, z: 0.4}
audio:
  enabled: false
range:
  definitions: ./ranges/long.yaml
`)
	s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, 10, s.Weapon.GunDamage)
	assert.Equal(t, 0.1, s.Weapon.FireRate)
	assert.Equal(t, 50.0, s.Weapon.WeaponRange, "untouched keys keep defaults")
	assert.Equal(t, weapon.OverlapIndependent, s.Weapon.Overlap)
	assert.Equal(t, mgl64.Vec3{0.1, -0.1, 0.4}, s.Weapon.GunEnd.Vec())
	assert.False(t, s.Audio.Enabled)
	assert.Equal(t, "./ranges/long.yaml", s.Range.Definitions)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := writeSettings(t, "weapon:\n  weaponRange: 30\n")
	t.Setenv("RANGE_WEAPON_WEAPONRANGE", "75")
	t.Setenv("RANGE_LOGLEVEL", "warn")

	s, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 75.0, s.Weapon.WeaponRange)
	assert.Equal(t, "warn", s.LogLevel)
}

func TestLoad_MissingDirUsesDefaults(t *testing.T) {
	s, err := Load("/nonexistent/path")
	require.NoError(t, err)
	assert.Equal(t, weapon.DefaultConfig(), s.Weapon.Config)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := writeSettings(t, "weapon: [gunDamage: 1\n")
	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_RejectsInvalidWeapon(t *testing.T) {
	dir := writeSettings(t, "weapon:\n  fireRate: 0\n")
	_, err := Load(dir)
	assert.ErrorIs(t, err, ErrInvalidSettings)
	assert.ErrorIs(t, err, weapon.ErrInvalidConfig)
}

func TestLoad_RejectsNonFiniteFromEnv(t *testing.T) {
	cases := map[string]string{
		"RANGE_WEAPON_FIRERATE":       "NaN",
		"RANGE_WEAPON_WEAPONRANGE":    "+Inf",
		"RANGE_WEAPON_HITFORCE":       "NaN",
		"RANGE_WEAPON_EFFECTDURATION": "Inf",
		"RANGE_CAMERA_FOVY":           "NaN",
		"RANGE_AUDIO_VOLUME":          "NaN",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load(t.TempDir())
			assert.ErrorIs(t, err, ErrInvalidSettings)
		})
	}
}

func TestLoad_RejectsUnknownOverlapPolicy(t *testing.T) {
	dir := writeSettings(t, "weapon:\n  overlapPolicy: sometimes\n")
	_, err := Load(dir)
	assert.ErrorIs(t, err, weapon.ErrInvalidConfig)
}

func TestValidate_AudioVolume(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)

	s.Audio.Volume = 1.5
	assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)
}
