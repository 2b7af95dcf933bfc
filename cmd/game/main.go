// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go-raycast-shooter/internal/app"
	"go-raycast-shooter/internal/assets"
	"go-raycast-shooter/internal/audio"
	"go-raycast-shooter/internal/config"
	"go-raycast-shooter/internal/defs"
	"go-raycast-shooter/internal/logging"
	"go-raycast-shooter/internal/state"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

func main() {
	// --- Флаги командной строки ---
	configDir := flag.String("config", ".", "Directory with range.yaml")
	devMode := flag.Bool("dev", false, "Start directly on the range, skipping the menu")
	flag.Parse()

	settings, err := config.Load(*configDir)
	if err != nil {
		// Логгер ещё не настроен
		bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLog.Fatal().Err(err).Msg("failed to load settings")
	}
	log := logging.Setup(settings.LogLevel, os.Stdout)

	// Fatal только здесь: к этому моменту окно и звук в run уже закрыты
	if err := run(settings, *devMode, log); err != nil {
		log.Fatal().Err(err).Msg("range stopped")
	}
}

// run открывает окно и крутит главный цикл. Все ресурсы освобождаются
// через defer до возврата, в том числе при ошибке.
func run(settings *config.Settings, devMode bool, log zerolog.Logger) error {
	// --- Загрузка полигона ---
	rangeDef, err := defs.LoadRange(settings.Range.Definitions)
	if err != nil {
		return fmt.Errorf("load range %q: %w", settings.Range.Definitions, err)
	}

	// --- Инициализация Raylib ---
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(settings.Window.Width), int32(settings.Window.Height), settings.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(settings.Window.TargetFPS))
	rl.SetExitKey(rl.KeyEscape)

	clip := audio.NewGunshotClip(settings.Audio.SampleRate, settings.Audio.Volume)
	emitter, closeAudio := state.NewAudioEmitter(settings.Audio.Enabled, clip, log)
	defer closeAudio()

	// --- Инициализация игры ---
	game, err := app.NewGame(app.Options{
		Settings: settings,
		Range:    rangeDef,
		Input:    state.MouseFireInput{},
		Audio:    emitter,
		Logger:   log,
	})
	if err != nil {
		return err
	}

	models := assets.NewModelManager(log)
	models.LoadKindModels(rangeDef)
	defer models.Cleanup()

	sm := state.NewStateMachine()
	newRange := func() state.State {
		return state.NewRangeState(sm, game, models, settings)
	}

	// --- Выбор начального состояния ---
	if devMode {
		log.Info().Msg("dev mode: starting on the range")
		sm.SetState(newRange())
	} else {
		sm.SetState(state.NewMenuState(sm, settings.Window.Title, newRange))
	}

	log.Info().
		Str("range", rangeDef.Name).
		Int("objects", len(rangeDef.Placements)).
		Msg("range loaded")

	lastUpdateTime := time.Now()

	// --- Главный цикл игры ---
	for !rl.WindowShouldClose() {
		now := time.Now()
		deltaTime := now.Sub(lastUpdateTime).Seconds()
		if deltaTime > config.MaxDeltaTime {
			deltaTime = config.MaxDeltaTime
		}
		lastUpdateTime = now

		sm.Update(deltaTime)
		if quitter, ok := sm.Current().(interface{ ShouldQuit() bool }); ok && quitter.ShouldQuit() {
			break
		}

		// --- Отрисовка ---
		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(config.BackgroundColor.R, config.BackgroundColor.G, config.BackgroundColor.B, 255))

		sm.Draw()
		if uiDrawable, ok := sm.Current().(interface{ DrawUI() }); ok {
			uiDrawable.DrawUI()
		}
		rl.DrawFPS(10, 10)

		rl.EndDrawing()
	}

	sm.SetState(nil)
	log.Info().Interface("stats", game.Stats()).Msg("session finished")
	return nil
}
