package app

import (
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/texscene/internal/engine/capture"
	"github.com/Faultbox/texscene/internal/engine/input"
	"github.com/Faultbox/texscene/internal/scene"
)

// Run drives the viewer until the window closes or a quit key is pressed.
// Frames are only redrawn when animation, input or the window changed
// something.
func (a *App) Run() error {
	a.log.Info("starting render loop")
	a.log.Info("key bindings\n" + scene.Help())

	frames := 0
	fpsTimer := time.Now()

	for {
		a.driver.Tick()

		wait := a.cfg.Scene.FrameInterval
		if a.driver.Dirty() {
			a.window.SetTitle(a.driver.Title())
			a.draw()
			a.window.SwapBuffers()
			a.driver.ClearDirty()
			frames++
			// Keep animating without blocking on input.
			if a.driver.Registry().AnyAnimating() {
				wait = 0
			}
		}

		if time.Since(fpsTimer) >= time.Second {
			if frames > 0 {
				a.log.Debug("fps", zap.Int("count", frames))
			}
			frames = 0
			fpsTimer = time.Now()
		}

		if a.input.Update(wait) {
			return nil
		}
		if a.watch != nil && a.watch.Changed() {
			a.reload()
		}
		for _, ev := range a.input.Events() {
			switch ev.Type {
			case input.EventKeyDown:
				if ev.IsCapture() {
					a.capture()
					continue
				}
				if a.driver.HandleKey(ev.Key) {
					return nil
				}
			case input.EventWindowResize:
				a.resize(ev.Width, ev.Height)
			case input.EventWindowExposed:
				a.driver.Invalidate()
			}
		}
	}
}

func (a *App) resize(w, h int) {
	a.width, a.height = a.window.DrawableSize()
	if a.width == 0 || a.height == 0 {
		a.width, a.height = w, h
	}
	gl.Viewport(0, 0, int32(a.width), int32(a.height))
	a.driver.Invalidate()
	a.log.Debug("window resized", zap.Int("width", a.width), zap.Int("height", a.height))
}

func (a *App) draw() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := a.desc.Camera.ViewMatrix()
	proj := a.desc.Camera.ProjectionMatrix(a.width, a.height)
	light := a.driver.Light()

	for _, o := range a.driver.Registry().All() {
		prog := a.programs[o.Program]
		prog.Use()
		prog.SetMat4(scene.UniformView, view)
		prog.SetMat4(scene.UniformProjection, proj)
		prog.SetVec4(scene.UniformLightPosition, light.Position)
		prog.SetVec4(scene.UniformLightColor, light.Color)
		prog.SetVec4(scene.UniformAmbientLight, light.Ambient)
		o.ApplyMaterial(prog, a.desc.Material)
		prog.SetMat4(scene.UniformModel, o.ModelMatrix())

		o.Buffers.Bind(prog, o.Mapped)
		o.Buffers.Draw()
	}
	gl.BindVertexArray(0)
}

// capture redraws the current state into the back buffer and saves it.
func (a *App) capture() {
	if a.width <= 0 || a.height <= 0 {
		a.log.Warn("frame capture skipped: empty viewport")
		return
	}
	a.draw()

	pixels := make([]byte, a.width*a.height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(a.width), int32(a.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	a.window.SwapBuffers()

	img, err := capture.FromFramebuffer(pixels, a.width, a.height)
	if err != nil {
		a.log.Warn("frame capture failed", zap.Error(err))
		return
	}
	name, err := a.frames.Save(img)
	if err != nil {
		a.log.Warn("frame capture failed", zap.Error(err))
		return
	}
	a.log.Info("frame captured", zap.String("file", name))
}
