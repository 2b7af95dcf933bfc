// internal/defs/loader.go
package defs

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidRange возвращается, если описание полигона не проходит проверку.
var ErrInvalidRange = errors.New("invalid range definition")

//go:embed default_range.yaml
var defaultRangeYAML []byte

// DefaultRange возвращает встроенный полигон.
func DefaultRange() (*RangeDefinition, error) {
	def, err := ParseRange(defaultRangeYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse built-in range: %w", err)
	}
	return def, nil
}

// LoadRange читает полигон из YAML-файла. Пустой путь - встроенный полигон.
func LoadRange(path string) (*RangeDefinition, error) {
	if path == "" {
		return DefaultRange()
	}
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read range definitions file: %w", err)
	}
	def, err := ParseRange(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// ParseRange разбирает и проверяет описание полигона.
func ParseRange(data []byte) (*RangeDefinition, error) {
	var def RangeDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to unmarshal range definitions: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate проверяет типы объектов и ссылки на них из расстановки.
func (r *RangeDefinition) Validate() error {
	seen := make(map[string]bool, len(r.Kinds))
	for i, k := range r.Kinds {
		if k.ID == "" {
			return fmt.Errorf("%w: kind #%d has no id", ErrInvalidRange, i)
		}
		if seen[k.ID] {
			return fmt.Errorf("%w: duplicate kind %q", ErrInvalidRange, k.ID)
		}
		seen[k.ID] = true

		for axis, s := range k.Size {
			if s <= 0 {
				return fmt.Errorf("%w: kind %q size[%d] = %g must be > 0", ErrInvalidRange, k.ID, axis, s)
			}
		}
		switch {
		case k.Health < 0:
			return fmt.Errorf("%w: kind %q health %d < 0", ErrInvalidRange, k.ID, k.Health)
		case k.Mass < 0:
			return fmt.Errorf("%w: kind %q mass %g < 0", ErrInvalidRange, k.ID, k.Mass)
		case k.Restitution < 0 || k.Restitution > 1:
			return fmt.Errorf("%w: kind %q restitution %g out of [0, 1]", ErrInvalidRange, k.ID, k.Restitution)
		case k.Drag < 0 || k.Friction < 0:
			return fmt.Errorf("%w: kind %q drag and friction must be >= 0", ErrInvalidRange, k.ID)
		}
	}
	for i, p := range r.Placements {
		if !seen[p.Kind] {
			return fmt.Errorf("%w: placement #%d uses unknown kind %q", ErrInvalidRange, i, p.Kind)
		}
	}
	return nil
}
