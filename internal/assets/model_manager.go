package assets

import (
	"go-raycast-shooter/internal/defs"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// ModelManager управляет созданием, кэшированием и выгрузкой моделей
// для типов объектов полигона. Работает только при открытом окне.
type ModelManager struct {
	models map[string]rl.Model
	log    zerolog.Logger
}

// NewModelManager создает новый экземпляр ModelManager.
func NewModelManager(log zerolog.Logger) *ModelManager {
	return &ModelManager{
		models: make(map[string]rl.Model),
		log:    log.With().Str("component", "models").Logger(),
	}
}

// loadSingleModel безопасно строит модель-бокс для одного типа.
func (m *ModelManager) loadSingleModel(kind defs.TargetKind) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error().Str("kind", kind.ID).Interface("panic", r).Msg("raylib panicked while building model, skipping")
		}
	}()

	if _, ok := m.models[kind.ID]; ok {
		return
	}

	mesh := rl.GenMeshCube(float32(kind.Size[0]), float32(kind.Size[1]), float32(kind.Size[2]))
	model := rl.LoadModelFromMesh(mesh)
	if model.MeshCount == 0 {
		m.log.Warn().Str("kind", kind.ID).Msg("failed to build model, falling back to DrawCube")
		return
	}

	m.models[kind.ID] = model
	m.log.Debug().Str("kind", kind.ID).Msg("model built")
}

// LoadKindModels строит модели для всех типов полигона.
func (m *ModelManager) LoadKindModels(def *defs.RangeDefinition) {
	for _, kind := range def.Kinds {
		m.loadSingleModel(kind)
	}
}

// Cleanup выгружает все загруженные модели.
func (m *ModelManager) Cleanup() {
	for id, model := range m.models {
		rl.UnloadModel(model)
		delete(m.models, id)
	}
	m.log.Debug().Msg("all models unloaded")
}

// GetModel возвращает модель по ID типа.
func (m *ModelManager) GetModel(id string) (rl.Model, bool) {
	model, ok := m.models[id]
	return model, ok
}
