// internal/types/types.go
package types

// EntityID - идентификатор сущности в ECS. Ноль зарезервирован как "нет сущности".
type EntityID uint64
