package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/pyre/internal/config"
)

// Cube rotation rates in radians per frame, deliberately incommensurate
// so the tumble never settles into a cycle.
const (
	rateX = 0.011
	rateY = 0.017
	rateZ = 0.007
)

// RunCube opens a window with the fire texture wrapped around a
// tumbling cube. The simulation field is square here; every face shows
// the same flame.
func RunCube(cfg *config.Config) error {
	size := cfg.Window.CubeSize
	if size < 2 {
		size = config.DefaultCubeSize
	}

	rl.InitWindow(1024, 768, "pyre")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Display.FPS))
	rl.SetExitKey(0)

	app, err := newApp(size, size, cfg)
	if err != nil {
		return err
	}
	defer app.close()

	camera := rl.NewCamera3D(
		rl.NewVector3(0, 0, 7),
		rl.NewVector3(0, 0, 0),
		rl.NewVector3(0, 1, 0),
		45.0,
		rl.CameraPerspective,
	)

	mesh := rl.GenMeshCube(3, 3, 3)
	model := rl.LoadModelFromMesh(mesh)
	defer rl.UnloadModel(model)
	rl.SetMaterialTexture(model.Materials, rl.MapDiffuse, app.tex)

	var ax, ay, az float32
	for !rl.WindowShouldClose() {
		if !app.step() {
			break
		}
		if app.running {
			ax += rateX
			ay += rateY
			az += rateZ
		}
		model.Transform = rl.MatrixRotateXYZ(rl.NewVector3(ax, ay, az))

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		rl.BeginMode3D(camera)
		rl.DrawModel(model, rl.NewVector3(0, 0, 0), 1.0, rl.White)
		rl.EndMode3D()
		app.drawHUD()
		rl.EndDrawing()
	}
	return nil
}
