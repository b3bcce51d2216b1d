package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/highwayrush/background"
	"github.com/golangdaddy/highwayrush/car"
	"github.com/golangdaddy/highwayrush/internal/config"
	"github.com/golangdaddy/highwayrush/internal/hud"
	"github.com/golangdaddy/highwayrush/internal/monitoring"
	"github.com/golangdaddy/highwayrush/models"
	"github.com/golangdaddy/highwayrush/road"
	"github.com/golangdaddy/highwayrush/traffic"
	"github.com/golangdaddy/highwayrush/vehicle"
)

// TPS is the ebiten tick rate. Each tick advances the simulation by TickDt.
const (
	TPS    = 60
	TickDt = 1.0 / TPS
)

const (
	pixelsPerMeter = 8.0
	playerAnchorY  = 0.85 // Player position as a fraction of screen height
	nearMissFlash  = 0.6  // Seconds the near miss banner stays up
)

// DriveView is the main driving view. It owns the traffic engine, the
// player's car and the scoring for the current run.
type DriveView struct {
	road    *road.Road
	engine  *traffic.Engine
	player  *vehicle.Player
	run     *models.Run
	career  *models.Career
	verges  *background.Generator
	onCrash func(run *models.Run, best bool)

	nearMiss *hud.Banner
}

// NewDriveView builds the road, traffic and player from tuning. onCrash is
// called once when the player hits traffic.
func NewDriveView(tuning *config.Tuning, career *models.Career, width, height int, onCrash func(run *models.Run, best bool)) *DriveView {
	r := tuning.Road()
	dv := &DriveView{
		road:    r,
		engine:  tuning.NewEngine(r),
		player:  vehicle.NewPlayer(vehicle.DefaultHandling(), r),
		run:     models.NewRun(models.DefaultScoring()),
		career:  career,
		verges:  background.NewGenerator(width, height, tuning.GetSeed()),
		onCrash: onCrash,

		nearMiss: hud.NewBanner(nearMissFlash),
	}
	dv.engine.OnNearMiss = dv.recordNearMiss
	return dv
}

func (dv *DriveView) recordNearMiss() {
	dv.run.RecordNearMiss()
	dv.nearMiss.Show()
}

// Run returns the current run.
func (dv *DriveView) Run() *models.Run {
	return dv.run
}

// Restart clears traffic and puts the player back at the start.
func (dv *DriveView) Restart() {
	dv.engine.Reset()
	dv.player.Reset(dv.road)
	dv.run.Reset()
	dv.nearMiss.Hide()
	monitoring.Logf("drive: restart")
}

// Update handles input and advances the simulation one tick.
func (dv *DriveView) Update() error {
	if dv.run.Crashed {
		return nil
	}

	controls := vehicle.Controls{
		Throttle: ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Brake:    ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:     inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA),
		Right:    inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD),
	}

	p := dv.player
	before := p.Distance
	p.Update(TickDt, controls, dv.road)
	dv.run.Tick(TickDt, p.Distance-before, p.Speed)

	dv.engine.Update(TickDt, p.X, p.Z, p.Speed, p.Distance)
	dv.nearMiss.Tick(TickDt)

	if dv.engine.CheckCollision(p.X, p.Z, p.HalfWidth, p.HalfLength) {
		dv.run.Crash()
		best := dv.career.Record(dv.run)
		monitoring.Logf("drive: crashed at %.0fm, score %d, %d near misses",
			dv.run.Distance, dv.run.Score, dv.run.NearMisses)
		if dv.onCrash != nil {
			dv.onCrash(dv.run, best)
		}
	}
	return nil
}

// view returns the camera for a screen: road centred, player near the bottom.
func (dv *DriveView) view(width, height int) road.View {
	return road.View{
		CameraX:        0,
		CameraZ:        dv.player.Z,
		PixelsPerMeter: pixelsPerMeter,
		AnchorX:        float64(width) / 2,
		AnchorY:        float64(height) * playerAnchorY,
	}
}

// Draw renders the drive view
func (dv *DriveView) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	view := dv.view(width, height)
	theme := background.ThemeAt(dv.player.Distance)

	dv.verges.Draw(screen, theme, dv.player.Z*pixelsPerMeter)
	drawRoad(screen, dv.road, view, theme.Palette())

	dv.engine.ForEachActive(func(slot int, a traffic.Agent) {
		car.RenderAgent(screen, view, slot, a)
	})

	p := dv.player
	x, y := view.ToScreen(p.X, p.Z)
	car.RenderCar(screen, x, y,
		2*p.HalfWidth*pixelsPerMeter, 2*p.HalfLength*pixelsPerMeter,
		5*p.Tilt, car.PlayerColor)

	dv.drawHUD(screen, theme)
}
