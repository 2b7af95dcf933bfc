package weapon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.GunDamage)
	assert.Equal(t, 0.25, cfg.FireRate)
	assert.Equal(t, 50.0, cfg.WeaponRange)
	assert.Equal(t, 100.0, cfg.HitForce)
	assert.Equal(t, 0.07, cfg.EffectDuration)
	assert.Equal(t, OverlapRestart, cfg.Overlap)
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"zero damage allowed", func(c *Config) { c.GunDamage = 0 }, true},
		{"negative damage", func(c *Config) { c.GunDamage = -1 }, false},
		{"zero fire rate", func(c *Config) { c.FireRate = 0 }, false},
		{"zero range", func(c *Config) { c.WeaponRange = 0 }, false},
		{"negative force", func(c *Config) { c.HitForce = -5 }, false},
		{"zero force allowed", func(c *Config) { c.HitForce = 0 }, true},
		{"zero effect", func(c *Config) { c.EffectDuration = 0 }, false},
		{"independent overlap", func(c *Config) { c.Overlap = OverlapIndependent }, true},
		{"unknown overlap", func(c *Config) { c.Overlap = "queue" }, false},
		{"NaN fire rate", func(c *Config) { c.FireRate = math.NaN() }, false},
		{"infinite fire rate", func(c *Config) { c.FireRate = math.Inf(1) }, false},
		{"NaN range", func(c *Config) { c.WeaponRange = math.NaN() }, false},
		{"infinite range", func(c *Config) { c.WeaponRange = math.Inf(1) }, false},
		{"NaN force", func(c *Config) { c.HitForce = math.NaN() }, false},
		{"infinite force", func(c *Config) { c.HitForce = math.Inf(1) }, false},
		{"NaN effect", func(c *Config) { c.EffectDuration = math.NaN() }, false},
		{"infinite effect", func(c *Config) { c.EffectDuration = math.Inf(1) }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}
