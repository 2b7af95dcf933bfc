// internal/overview/viewer.go
package overview

import (
	"fmt"
	"image/color"
	"time"

	"go-raycast-shooter/internal/app"
	"go-raycast-shooter/internal/config"
	"go-raycast-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что Viewer реализует ebiten.Game
var _ ebiten.Game = (*Viewer)(nil)

// ClickInput - ЛКМ или пробел, только кадр нажатия.
type ClickInput struct{}

func (ClickInput) FirePressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// Viewer показывает полигон сверху. A/D поворачивают стрелка, W/S двигают,
// ЛКМ стреляет, P пауза, R сброс.
type Viewer struct {
	game           *app.Game
	width, height  int
	projection     render.TopDown
	fontFace       font.Face
	lastUpdateTime time.Time
}

func NewViewer(game *app.Game, width, height int) *Viewer {
	return &Viewer{
		game:   game,
		width:  width,
		height: height,
		projection: render.TopDown{
			OriginX: float64(width) / 2,
			OriginY: float64(height) - 80,
			Scale:   config.OverviewScale,
		},
		fontFace:       basicfont.Face7x13,
		lastUpdateTime: time.Now(),
	}
}

func (v *Viewer) Update() error {
	now := time.Now()
	deltaTime := now.Sub(v.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	v.lastUpdateTime = now

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		v.game.SetPaused(!v.game.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.game.Reset()
	}
	if !v.game.Paused() {
		v.steer(deltaTime)
	}

	v.game.Update(deltaTime)
	return nil
}

func (v *Viewer) steer(deltaTime float64) {
	turn := config.OverviewTurnRad * deltaTime
	// На экране +X слева, поэтому D (поворот вправо) уменьшает yaw
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		v.game.Camera.Rotate(turn, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		v.game.Camera.Rotate(-turn, 0)
	}

	step := config.MoveSpeed * deltaTime
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		v.game.Camera.MoveFlat(step, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		v.game.Camera.MoveFlat(-step, 0)
	}
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	v.drawObjects(screen)
	v.drawShooter(screen)
	v.drawLaser(screen)
	v.drawStats(screen)
}

func (v *Viewer) drawObjects(screen *ebiten.Image) {
	ecs := v.game.ECS
	for id, renderable := range ecs.Renderables {
		if renderable.Hidden {
			continue
		}
		tr, hasTr := ecs.Transforms[id]
		collider, hasCollider := ecs.Colliders[id]
		if !hasTr || !hasCollider {
			continue
		}

		col := renderable.Color
		if flash := v.game.VisualEffectSystem.Flash(id); flash > 0 {
			col = render.LerpColor(col, config.FlashColor, flash)
		}
		x, y, w, h := v.projection.Rect(tr.Position, collider.HalfExtents)
		vector.DrawFilledRect(screen, x, y, w, h, col, true)
		if renderable.Wire {
			vector.StrokeRect(screen, x, y, w, h, 1, render.DarkenColor(col), true)
		}
	}
}

func (v *Viewer) drawShooter(screen *ebiten.Image) {
	cam := v.game.Camera
	x, y := v.projection.ToScreen(cam.Position)
	vector.DrawFilledCircle(screen, x, y, 6, config.CameraColor, true)

	// Направление взгляда на длину в два метра
	tx, ty := v.projection.ToScreen(cam.Position.Add(cam.Forward().Mul(2)))
	vector.StrokeLine(screen, x, y, tx, ty, float32(config.StrokeWidth), config.CameraColor, true)
}

func (v *Viewer) drawLaser(screen *ebiten.Image) {
	laser := v.game.Laser()
	if !laser.Visible {
		return
	}
	x0, y0 := v.projection.ToScreen(laser.Points[0])
	x1, y1 := v.projection.ToScreen(laser.Points[1])
	vector.StrokeLine(screen, x0, y0, x1, y1, float32(config.StrokeWidth), laser.Color, true)
	vector.DrawFilledCircle(screen, x1, y1, 3, laser.Color, true)
}

func (v *Viewer) drawStats(screen *ebiten.Image) {
	lines := v.game.Stats().Lines()
	if shot, ok := v.game.Weapon.LastShot(); ok {
		lines = append(lines, "Last: "+shot.Label())
	}
	if v.game.Paused() {
		lines = append(lines, "PAUSED")
	}
	lineHeight := v.fontFace.Metrics().Height.Ceil() + config.TextOffsetY

	var widest int
	for _, line := range lines {
		widest = max(widest, len(line)*config.TextCharWidth)
	}
	panelHeight := float32(len(lines)*lineHeight + 2*config.TextOffsetY)
	vector.DrawFilledRect(screen, 10, 10, float32(widest+16), panelHeight, config.PanelColor, false)

	for i, line := range lines {
		y := 10 + (i+1)*lineHeight
		text.Draw(screen, line, v.fontFace, 18, y, config.TextLightColor)
	}

	hint := fmt.Sprintf("%s | LMB fire, A/D turn, W/S move, P pause, R reset", v.game.Range.Name)
	text.Draw(screen, hint, v.fontFace, 10, v.height-12, color.RGBA{180, 180, 190, 255})
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}
