// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"go-raycast-shooter/internal/weapon"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/viper"
)

// FileName - имя файла настроек без расширения
const FileName = "range"

// ErrInvalidSettings возвращается, если значения вне допустимых диапазонов.
var ErrInvalidSettings = errors.New("invalid settings")

// Offset - смещение в осях камеры: вправо, вверх, вперёд.
type Offset struct {
	X float64 `mapstructure:"x"`
	Y float64 `mapstructure:"y"`
	Z float64 `mapstructure:"z"`
}

func (o Offset) Vec() mgl64.Vec3 {
	return mgl64.Vec3{o.X, o.Y, o.Z}
}

type WindowSettings struct {
	Width     int    `mapstructure:"width"`
	Height    int    `mapstructure:"height"`
	Title     string `mapstructure:"title"`
	TargetFPS int    `mapstructure:"targetFPS"`
}

type WeaponSettings struct {
	weapon.Config `mapstructure:",squash"`
	GunEnd        Offset `mapstructure:"gunEnd"`
}

type CameraSettings struct {
	Fovy        float64 `mapstructure:"fovy"`
	Near        float64 `mapstructure:"near"`
	EyeHeight   float64 `mapstructure:"eyeHeight"`
	Sensitivity float64 `mapstructure:"sensitivity"` // Радиан на пиксель мыши
}

type AudioSettings struct {
	Enabled    bool    `mapstructure:"enabled"`
	Volume     float64 `mapstructure:"volume"` // 0..1
	SampleRate int     `mapstructure:"sampleRate"`
}

type RangeSettings struct {
	// Definitions - путь к YAML с полигоном. Пустой путь - встроенный полигон.
	Definitions string `mapstructure:"definitions"`
}

// Settings - всё, что можно переопределить файлом range.yaml или окружением RANGE_*.
type Settings struct {
	LogLevel string         `mapstructure:"logLevel"`
	Window   WindowSettings `mapstructure:"window"`
	Weapon   WeaponSettings `mapstructure:"weapon"`
	Camera   CameraSettings `mapstructure:"camera"`
	Audio    AudioSettings  `mapstructure:"audio"`
	Range    RangeSettings  `mapstructure:"range"`
}

func setDefaults(v *viper.Viper) {
	w := weapon.DefaultConfig()

	v.SetDefault("logLevel", "info")

	v.SetDefault("window.width", ScreenWidth)
	v.SetDefault("window.height", ScreenHeight)
	v.SetDefault("window.title", "Raycast Range")
	v.SetDefault("window.targetFPS", 60)

	v.SetDefault("weapon.gunDamage", w.GunDamage)
	v.SetDefault("weapon.fireRate", w.FireRate)
	v.SetDefault("weapon.weaponRange", w.WeaponRange)
	v.SetDefault("weapon.hitForce", w.HitForce)
	v.SetDefault("weapon.effectDuration", w.EffectDuration)
	v.SetDefault("weapon.overlapPolicy", string(w.Overlap))
	v.SetDefault("weapon.gunEnd.x", 0.25)
	v.SetDefault("weapon.gunEnd.y", -0.2)
	v.SetDefault("weapon.gunEnd.z", 0.6)

	v.SetDefault("camera.fovy", 60.0)
	v.SetDefault("camera.near", 0.1)
	v.SetDefault("camera.eyeHeight", 1.6)
	v.SetDefault("camera.sensitivity", 0.003)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.6)
	v.SetDefault("audio.sampleRate", 44100)

	v.SetDefault("range.definitions", "")
}

// Load читает настройки из dir/range.yaml поверх значений по умолчанию
// и применяет переменные окружения RANGE_* (RANGE_WEAPON_FIRERATE и т.п.).
// Отсутствие файла не ошибка, битый файл - ошибка.
func Load(dir string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	if dir != "" {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix("RANGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if dir != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error decoding settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate проверяет настройки оружия, окна, камеры и звука.
func (s *Settings) Validate() error {
	if err := s.Weapon.Config.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	switch {
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalidSettings, s.Window.Width, s.Window.Height)
	case !(s.Camera.Fovy > 0 && s.Camera.Fovy < 180):
		return fmt.Errorf("%w: camera.fovy %g out of (0, 180)", ErrInvalidSettings, s.Camera.Fovy)
	case !finite(s.Camera.Near) || s.Camera.Near <= 0:
		return fmt.Errorf("%w: camera.near %g must be finite and > 0", ErrInvalidSettings, s.Camera.Near)
	case !finite(s.Camera.EyeHeight) || !finite(s.Camera.Sensitivity):
		return fmt.Errorf("%w: camera eyeHeight %g and sensitivity %g must be finite", ErrInvalidSettings, s.Camera.EyeHeight, s.Camera.Sensitivity)
	case !finite(s.Weapon.GunEnd.X) || !finite(s.Weapon.GunEnd.Y) || !finite(s.Weapon.GunEnd.Z):
		return fmt.Errorf("%w: weapon.gunEnd %+v must be finite", ErrInvalidSettings, s.Weapon.GunEnd)
	case !(s.Audio.Volume >= 0 && s.Audio.Volume <= 1):
		return fmt.Errorf("%w: audio.volume %g out of [0, 1]", ErrInvalidSettings, s.Audio.Volume)
	case s.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: audio.sampleRate %d must be > 0", ErrInvalidSettings, s.Audio.SampleRate)
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
