package gui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/widget"
)

// ErrAssetLoad is returned when a required asset such as the font is missing.
var ErrAssetLoad = errors.New("gui: asset load failure")

var (
	ColBg        = rl.Black
	ColBar       = rl.White
	ColHighlight = rl.Red
	ColDone      = rl.NewColor(120, 220, 140, 255)
	ColPanel     = rl.White
	ColOutline   = rl.Black
	ColText      = rl.Black
	ColTextDim   = rl.NewColor(140, 140, 140, 255)
)

const fontSize = 32

type App struct {
	Session  *session.Controller
	Dropdown *widget.Dropdown
	Font     rl.Font
	Width    int32
	Height   int32
	Delay    time.Duration

	log *zap.Logger
}

// initWindow opens the window at the configured size and frame rate and
// disables the default exit key.
func initWindow(cfg *config.Config) {
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(0)
}

// loadFont loads the dropdown font with bilinear filtering.
func loadFont(path string) (rl.Font, error) {
	if _, err := os.Stat(path); err != nil {
		return rl.Font{}, fmt.Errorf("%w: font %s: %v", ErrAssetLoad, path, err)
	}
	font := rl.LoadFontEx(path, fontSize, nil, 0)
	if font.Texture.ID == 0 {
		return rl.Font{}, fmt.Errorf("%w: font %s could not be decoded", ErrAssetLoad, path)
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font, nil
}

// Run opens the window and blocks until it is closed or ctx is done. A
// missing font aborts before the first frame.
func Run(ctx context.Context, cfg *config.Config, ctrl *session.Controller, log *zap.Logger) error {
	initWindow(cfg)
	defer rl.CloseWindow()

	font, err := loadFont(cfg.Window.Font)
	if err != nil {
		return err
	}
	defer rl.UnloadFont(font)

	app := &App{
		Session:  ctrl,
		Dropdown: widget.NewDropdown(),
		Font:     font,
		Width:    int32(cfg.Window.Width),
		Height:   int32(cfg.Window.Height),
		Delay:    cfg.FrameDelay,
		log:      log,
	}
	log.Info("window opened", zap.Int32("width", app.Width), zap.Int32("height", app.Height))
	return app.RunLoop(ctx)
}

func (a *App) RunLoop(ctx context.Context) error {
	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			return nil
		}
		a.Update()
		a.Draw()
		if a.Delay > 0 {
			time.Sleep(a.Delay)
		}
	}
	return nil
}

func (a *App) Update() {
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		if kind, ok := a.Dropdown.Click(pos.X, pos.Y); ok {
			if err := a.Session.SelectAlgorithm(kind); err != nil {
				a.log.Warn("select algorithm", zap.Error(err))
			}
		}
	}
	a.Session.Tick()
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	snap := a.Session.Snapshot()
	a.drawBars(snap)
	a.drawDropdown()
	a.drawStatus(snap)

	rl.EndDrawing()
}

func (a *App) drawText(text string, x, y float32, size float32, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(x, y), size, 1, color)
}
