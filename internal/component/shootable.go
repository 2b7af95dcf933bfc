// internal/component/shootable.go
package component

// Shootable - разрушаемая мишень со здоровьем.
type Shootable struct {
	Health    int
	MaxHealth int
	Active    bool // После уничтожения мишень неактивна до сброса полигона
	Kind      string
}

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // Сколько секунд эффекта осталось
	Duration float64 // Общая продолжительность эффекта
}
