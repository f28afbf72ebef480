// Package gui renders the fire in a raylib window. Two modes exist: a
// plain blit of the field to a scaled texture, and a rotating cube
// wrapped in the burning texture.
package gui

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/pyre/internal/audio"
	"github.com/san-kum/pyre/internal/config"
	"github.com/san-kum/pyre/internal/fire"
	"github.com/san-kum/pyre/internal/palette"
)

type App struct {
	grid    *fire.Grid
	pal     *palette.Table
	pixels  []color.RGBA
	tex     rl.Texture2D
	sound   *audio.Processor
	running bool
}

func newApp(w, h int, cfg *config.Config) (*App, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	grid, err := fire.NewGrid(w, h, cfg.FireParams(), rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	app := &App{
		grid:    grid,
		pal:     palette.Generate(),
		pixels:  make([]color.RGBA, w*h),
		running: true,
	}

	img := rl.GenImageColor(w, h, rl.Black)
	app.tex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(app.tex, rl.FilterPoint)

	if cfg.Sound.Enabled {
		app.sound = audio.NewProcessor()
		if err := app.sound.Start(); err != nil {
			// Keep rendering; the fire just burns silently.
			app.sound = nil
		}
	}
	return app, nil
}

func (a *App) close() {
	if a.sound != nil {
		a.sound.Stop()
	}
	rl.UnloadTexture(a.tex)
}

// step handles input, advances the simulation and refreshes the texture.
// It reports false when the user asked to quit.
func (a *App) step() bool {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		return false
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.running = !a.running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.grid.Fill(0)
	}

	if a.running {
		a.grid.Step()
		if a.sound != nil {
			a.sound.SetHeat(a.grid.MeanHeat())
		}
	}

	cells := a.grid.Cells()
	for i, heat := range cells {
		c := a.pal.RGB[heat]
		a.pixels[i] = color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	}
	rl.UpdateTexture(a.tex, a.pixels)
	return true
}

func (a *App) drawHUD() {
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 10, 10, 20, rl.Gray)
	if !a.running {
		rl.DrawText("PAUSED", 10, 34, 20, rl.LightGray)
	}
}

// Run opens a window and blits the fire scaled to fill it.
func Run(cfg *config.Config) error {
	w, h := cfg.Window.FireWidth, cfg.Window.FireHeight
	scale := cfg.Window.Scale
	if scale < 1 {
		scale = 1
	}

	rl.InitWindow(int32(w*scale), int32(h*scale), "pyre")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Display.FPS))
	rl.SetExitKey(0)

	app, err := newApp(w, h, cfg)
	if err != nil {
		return err
	}
	defer app.close()

	src := rl.NewRectangle(0, 0, float32(w), float32(h))
	dst := rl.NewRectangle(0, 0, float32(w*scale), float32(h*scale))

	for !rl.WindowShouldClose() {
		if !app.step() {
			break
		}
		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		rl.DrawTexturePro(app.tex, src, dst, rl.NewVector2(0, 0), 0, rl.White)
		app.drawHUD()
		rl.EndDrawing()
	}
	return nil
}
