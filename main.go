package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/highwayrush/game"
	"github.com/golangdaddy/highwayrush/internal/config"
	"github.com/golangdaddy/highwayrush/internal/monitoring"
	"github.com/golangdaddy/highwayrush/models"
	"github.com/golangdaddy/highwayrush/ui"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

// GameState represents the current state of the game
type GameState int

const (
	StateTitle GameState = iota
	StateDriving
	StateGameOver
)

// Game implements ebiten.Game interface.
type Game struct {
	state    GameState
	career   *models.Career
	title    *ui.TitleScreen
	drive    *game.DriveView
	gameOver *ui.GameOverScreen
}

func newGame(tuning *config.Tuning) *Game {
	g := &Game{state: StateTitle, career: &models.Career{}}
	g.title = ui.NewTitleScreen(g.career, g.onStart)
	g.drive = game.NewDriveView(tuning, g.career, screenWidth, screenHeight, g.onCrash)
	return g
}

// Update proceeds the game state.
// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	switch g.state {
	case StateTitle:
		return g.title.Update()
	case StateDriving:
		return g.drive.Update()
	case StateGameOver:
		return g.gameOver.Update()
	}
	return nil
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.state {
	case StateTitle:
		g.title.Draw(screen)
	case StateDriving:
		g.drive.Draw(screen)
	case StateGameOver:
		g.drive.Draw(screen)
		g.gameOver.Draw(screen)
	}
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func (g *Game) onStart() {
	g.drive.Restart()
	g.state = StateDriving
}

func (g *Game) onCrash(run *models.Run, best bool) {
	g.gameOver = ui.NewGameOverScreen(run, best, g.onStart)
	g.state = StateGameOver
	monitoring.Logf("Run over: score %d (best %d, %d runs)", run.Score, g.career.BestScore, g.career.Runs)
}

func main() {
	configPath := flag.String("config", "", "path to traffic tuning JSON")
	flag.Parse()

	tuning, err := config.LoadTuningOrDefault(*configPath)
	if err != nil {
		log.Fatalf("load tuning: %v", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Highway Rush")
	ebiten.SetTPS(game.TPS)
	if err := ebiten.RunGame(newGame(tuning)); err != nil {
		log.Fatal(err)
	}
}
