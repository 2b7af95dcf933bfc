// cmd/overview/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"go-raycast-shooter/internal/app"
	"go-raycast-shooter/internal/audio"
	"go-raycast-shooter/internal/config"
	"go-raycast-shooter/internal/defs"
	"go-raycast-shooter/internal/logging"
	"go-raycast-shooter/internal/overview"
	"go-raycast-shooter/internal/weapon"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

func main() {
	configDir := flag.String("config", ".", "Directory with range.yaml")
	flag.Parse()

	settings, err := config.Load(*configDir)
	if err != nil {
		bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLog.Fatal().Err(err).Msg("failed to load settings")
	}
	log := logging.Setup(settings.LogLevel, os.Stdout)

	if err := run(settings, log); err != nil {
		log.Fatal().Err(err).Msg("overview stopped")
	}
}

// run собирает полигон и запускает окно ebiten. Плеер закрывается до возврата.
func run(settings *config.Settings, log zerolog.Logger) error {
	rangeDef, err := defs.LoadRange(settings.Range.Definitions)
	if err != nil {
		return fmt.Errorf("load range %q: %w", settings.Range.Definitions, err)
	}

	var emitter weapon.AudioEmitter = &audio.SilentEmitter{}
	if settings.Audio.Enabled {
		player := overview.NewGunshotPlayer(audio.NewGunshotClip(settings.Audio.SampleRate, settings.Audio.Volume), log)
		defer player.Close()
		emitter = player
	}

	game, err := app.NewGame(app.Options{
		Settings: settings,
		Range:    rangeDef,
		Input:    overview.ClickInput{},
		Audio:    emitter,
		Logger:   log,
	})
	if err != nil {
		return err
	}

	viewer := overview.NewViewer(game, settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title + " | overview")
	ebiten.SetTPS(settings.Window.TargetFPS)
	if err := ebiten.RunGame(viewer); err != nil {
		return fmt.Errorf("run overview: %w", err)
	}
	log.Info().Interface("stats", game.Stats()).Msg("session finished")
	return nil
}
