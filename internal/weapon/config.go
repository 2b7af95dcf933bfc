package weapon

import (
	"errors"
	"fmt"
	"math"
)

// OverlapPolicy - что делать с таймером скрытия лазера, если новый выстрел
// случился раньше, чем погас предыдущий.
type OverlapPolicy string

const (
	// OverlapRestart - новый выстрел отменяет старый таймер, лазер гаснет
	// через полную длительность после последнего выстрела.
	OverlapRestart OverlapPolicy = "restart"
	// OverlapIndependent - каждый выстрел гасит лазер по своему таймеру.
	OverlapIndependent OverlapPolicy = "independent"
)

// DefaultEffectDuration - сколько секунд виден лазер после выстрела
const DefaultEffectDuration = 0.07

// ErrInvalidConfig возвращается при недопустимых параметрах оружия.
var ErrInvalidConfig = errors.New("invalid weapon config")

// Config - настраиваемые параметры оружия.
type Config struct {
	GunDamage      int           `mapstructure:"gunDamage"`      // Урон за попадание
	FireRate       float64       `mapstructure:"fireRate"`       // Минимальный интервал между выстрелами, с
	WeaponRange    float64       `mapstructure:"weaponRange"`    // Дальность луча
	HitForce       float64       `mapstructure:"hitForce"`       // Сила толчка физического тела
	EffectDuration float64       `mapstructure:"effectDuration"` // Время видимости лазера, с
	Overlap        OverlapPolicy `mapstructure:"overlapPolicy"`
}

// DefaultConfig возвращает параметры пистолета из обучающего полигона.
func DefaultConfig() Config {
	return Config{
		GunDamage:      1,
		FireRate:       0.25,
		WeaponRange:    50,
		HitForce:       100,
		EffectDuration: DefaultEffectDuration,
		Overlap:        OverlapRestart,
	}
}

// Validate проверяет диапазоны параметров.
func (c Config) Validate() error {
	switch {
	case c.GunDamage < 0:
		return fmt.Errorf("%w: gunDamage %d < 0", ErrInvalidConfig, c.GunDamage)
	case !positive(c.FireRate):
		return fmt.Errorf("%w: fireRate %g must be finite and > 0", ErrInvalidConfig, c.FireRate)
	case !positive(c.WeaponRange):
		return fmt.Errorf("%w: weaponRange %g must be finite and > 0", ErrInvalidConfig, c.WeaponRange)
	case !finite(c.HitForce) || c.HitForce < 0:
		return fmt.Errorf("%w: hitForce %g must be finite and >= 0", ErrInvalidConfig, c.HitForce)
	case !positive(c.EffectDuration):
		return fmt.Errorf("%w: effectDuration %g must be finite and > 0", ErrInvalidConfig, c.EffectDuration)
	}
	switch c.Overlap {
	case OverlapRestart, OverlapIndependent:
	default:
		return fmt.Errorf("%w: unknown overlapPolicy %q", ErrInvalidConfig, c.Overlap)
	}
	return nil
}

// NaN не проходит ни одно сравнение, поэтому проверяем явно.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func positive(x float64) bool {
	return finite(x) && x > 0
}
