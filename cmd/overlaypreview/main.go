// Overlay preview tool - interactive visualization of zones, contours
// and safe-position queries.
//
// Usage: go run ./cmd/overlaypreview
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ShoOtaku/HaiyaBox/aoe"
	"github.com/ShoOtaku/HaiyaBox/arena"
	"github.com/ShoOtaku/HaiyaBox/camera"
	"github.com/ShoOtaku/HaiyaBox/config"
	"github.com/ShoOtaku/HaiyaBox/contour"
	"github.com/ShoOtaku/HaiyaBox/geom"
	"github.com/ShoOtaku/HaiyaBox/safety"
	"github.com/ShoOtaku/HaiyaBox/sdf"
)

const (
	panelWidth  = 270
	arenaRadius = 40.0
	worldSpan   = 2.2 * arenaRadius
)

// demoZone pairs a footprint with its anchor and activation for the
// preview timeline.
type demoZone struct {
	shape      aoe.Shape
	origin     geom.Vec2
	activation float64
	color      rl.Color
}

func demoZones() []demoZone {
	return []demoZone{
		{aoe.NewCircle(10), geom.Vec2{}, 0, rl.Red},
		{aoe.NewDonutSector(6, 24, geom.FromDeg(45), geom.FromDeg(60)), geom.Vec2{}, 2, rl.Orange},
		{aoe.NewCross(geom.FromDeg(10), 30, 3), geom.Vec2{X: -12, Z: 12}, 4, rl.Purple},
		{aoe.NewArcCapsule(geom.Vec2{X: -18}, geom.FromDeg(150), 3), geom.Vec2{X: 30, Z: -5}, 6, rl.Maroon},
	}
}

type previewState struct {
	time       float32
	step       float32
	spacing    float32
	count      float32
	showSafest bool

	contours  []contour.Segment
	positions []geom.Vec2
	safest    geom.Vec2
}

func main() {
	config.MustInit("")
	cfg := config.Cfg()

	rl.InitWindow(int32(cfg.Preview.Width), int32(cfg.Preview.Height), "AOE Overlay Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Preview.TargetFPS))

	viewW := float32(cfg.Preview.Width - panelWidth)
	viewH := float32(cfg.Preview.Height)
	cam := camera.New(viewW, viewH, worldSpan, worldSpan)
	cam.SetZoom(viewH / worldSpan)

	bounds := arena.NewCircle(geom.Vec2{}, arenaRadius)
	calc := safety.NewCalculator(safety.Options{Seed: 1, Arena: bounds})
	zones := demoZones()
	for _, z := range zones {
		calc.AddZone(safety.NewZone(z.shape.Distance(z.origin), z.activation))
	}

	state := previewState{
		time:    0,
		step:    float32(cfg.Contour.Step),
		spacing: 5,
		count:   6,
	}
	needsRebuild := true

	for !rl.WindowShouldClose() {
		// Pan with right mouse drag, zoom with the wheel.
		if rl.IsMouseButtonDown(rl.MouseRightButton) {
			delta := rl.GetMouseDelta()
			cam.Pan(-delta.X, -delta.Y)
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			cam.ZoomBy(1 + wheel*0.1)
		}

		if needsRebuild {
			rebuild(&state, calc, zones, cfg)
			needsRebuild = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		drawArena(cam, bounds)
		drawSegments(cam, state.contours)
		drawPositions(cam, state.positions)
		if state.showSafest {
			sx, sy := worldToScreen(cam, state.safest)
			rl.DrawCircleLines(int32(sx), int32(sy), 8, rl.DarkGreen)
			rl.DrawText("safest", int32(sx)+10, int32(sy)-6, 12, rl.DarkGreen)
		}

		needsRebuild = drawPanel(cfg, &state, calc) || needsRebuild

		rl.EndDrawing()
	}
}

func rebuild(state *previewState, calc *safety.Calculator, zones []demoZone, cfg *config.Config) {
	t := float64(state.time)

	state.contours = state.contours[:0]
	for _, z := range zones {
		if z.activation > t {
			continue
		}
		segs := contour.Build(z.shape.Distance(z.origin), z.origin,
			arenaRadius*1.4, float64(state.step), 0, z.color, cfg.Contour.Thickness)
		state.contours = append(state.contours, segs...)
	}

	state.positions = calc.FindSafePositions(int(state.count), t).
		MinDistanceBetween(float64(state.spacing)).
		Execute()
	state.safest = calc.FindSafestPosition(geom.Vec2{}, arenaRadius, t, 0)
	state.showSafest = true
}

func worldToScreen(cam *camera.Camera, p geom.Vec2) (float32, float32) {
	return cam.WorldToScreen(float32(p.X)+worldSpan/2, float32(p.Z)+worldSpan/2)
}

func drawArena(cam *camera.Camera, bounds arena.Bounds) {
	// Draw the arena border as its own contour so the preview shows
	// exactly what the engine considers in-bounds.
	border := sdf.Circle(bounds.Center(), bounds.ApproximateRadius())
	for _, s := range contour.Build(border, bounds.Center(), arenaRadius*1.2, 0.5, 0, rl.DarkGray, 1) {
		ax, ay := worldToScreen(cam, s.A)
		bx, by := worldToScreen(cam, s.B)
		rl.DrawLineEx(rl.Vector2{X: ax, Y: ay}, rl.Vector2{X: bx, Y: by}, 1, rl.DarkGray)
	}
}

func drawSegments(cam *camera.Camera, segments []contour.Segment) {
	for _, s := range segments {
		ax, ay := worldToScreen(cam, s.A)
		bx, by := worldToScreen(cam, s.B)
		rl.DrawLineEx(rl.Vector2{X: ax, Y: ay}, rl.Vector2{X: bx, Y: by}, s.Thickness, s.Color)
	}
}

func drawPositions(cam *camera.Camera, positions []geom.Vec2) {
	for i, p := range positions {
		sx, sy := worldToScreen(cam, p)
		rl.DrawCircle(int32(sx), int32(sy), 5, rl.Green)
		rl.DrawText(fmt.Sprintf("%d", i+1), int32(sx)-3, int32(sy)-6, 12, rl.White)
	}
}

// drawPanel renders the control sidebar; it reports whether any control
// changed and the overlay needs rebuilding.
func drawPanel(cfg *config.Config, state *previewState, calc *safety.Calculator) bool {
	panelX := float32(cfg.Preview.Width - panelWidth + 15)
	panelY := float32(15)
	sliderW := float32(panelWidth - 90)
	changed := false

	rl.DrawText("AOE Safety Preview", int32(panelX), int32(panelY), 20, rl.DarkGray)
	panelY += 35

	rl.DrawText("Time (zone activations gate on it)", int32(panelX), int32(panelY), 14, rl.Gray)
	panelY += 18
	newTime := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: sliderW, Height: 20},
		"0", "10", state.time, 0, 10,
	)
	rl.DrawText(fmt.Sprintf("%.1f", state.time), int32(panelX+sliderW+10), int32(panelY+2), 16, rl.DarkGray)
	if newTime != state.time {
		state.time = newTime
		changed = true
	}
	panelY += 35

	rl.DrawText("Contour step", int32(panelX), int32(panelY), 14, rl.Gray)
	panelY += 18
	newStep := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: sliderW, Height: 20},
		"0.2", "3.0", state.step, 0.2, 3.0,
	)
	rl.DrawText(fmt.Sprintf("%.2f", state.step), int32(panelX+sliderW+10), int32(panelY+2), 16, rl.DarkGray)
	if newStep != state.step {
		state.step = newStep
		changed = true
	}
	panelY += 35

	rl.DrawText("Min spacing", int32(panelX), int32(panelY), 14, rl.Gray)
	panelY += 18
	newSpacing := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: sliderW, Height: 20},
		"1", "12", state.spacing, 1, 12,
	)
	rl.DrawText(fmt.Sprintf("%.1f", state.spacing), int32(panelX+sliderW+10), int32(panelY+2), 16, rl.DarkGray)
	if newSpacing != state.spacing {
		state.spacing = newSpacing
		changed = true
	}
	panelY += 35

	rl.DrawText("Positions requested", int32(panelX), int32(panelY), 14, rl.Gray)
	panelY += 18
	newCount := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: sliderW, Height: 20},
		"1", "16", state.count, 1, 16,
	)
	rl.DrawText(fmt.Sprintf("%d", int(state.count)), int32(panelX+sliderW+10), int32(panelY+2), 16, rl.DarkGray)
	if int(newCount) != int(state.count) {
		state.count = newCount
		changed = true
	}
	panelY += 45

	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 110, Height: 30}, "Re-query") {
		changed = true
	}
	if gui.Button(rl.Rectangle{X: panelX + 120, Y: panelY, Width: 110, Height: 30}, "Reset") {
		state.time = 0
		state.step = float32(cfg.Contour.Step)
		state.spacing = 5
		state.count = 6
		changed = true
	}
	panelY += 45

	rl.DrawText(fmt.Sprintf("Active zones: %d / %d",
		calc.ActiveZoneCount(float64(state.time)), calc.ZoneCount()),
		int32(panelX), int32(panelY), 14, rl.DarkGray)
	panelY += 20
	rl.DrawText(fmt.Sprintf("Placed: %d", len(state.positions)),
		int32(panelX), int32(panelY), 14, rl.DarkGray)
	panelY += 30

	rl.DrawText("Right-drag to pan, wheel to zoom", int32(panelX), int32(panelY), 12, rl.LightGray)

	return changed
}
