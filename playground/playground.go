// Package playground is an interactive test harness that drives the
// renderer through one frame-presentation cycle per iteration. Tests ask
// it to render a scene without reimplementing window creation, drawable
// acquisition, input capture, and teardown.
package playground

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/sortie/impeller-playground/fixtures"
	"github.com/sortie/impeller-playground/glfwcontext"
	"github.com/sortie/impeller-playground/graphics"
	log "github.com/sortie/impeller-playground/log"
	"github.com/sortie/impeller-playground/renderer"
)

var logger = log.New("playground")

// Frame-loop failure kinds. OpenPlaygroundHere folds them into its boolean
// result; tests assert on them through errors.Is.
var (
	ErrInitFailed          = errors.New("playground: initialization failed")
	ErrDrawableUnavailable = errors.New("playground: could not acquire next drawable")
	ErrRenderFailed        = errors.New("playground: renderer reported failure")
)

const (
	windowWidth  = 1024
	windowHeight = 768

	// Frame-pacing wait; the loop stays responsive to close requests
	// while targeting roughly 30 Hz.
	frameTimeout = time.Second / 30

	mainPassLabel = "Playground Main Render Pass"
)

// Every frame clears to sky blue.
var clearColor = wgpu.Color{R: 0.529, G: 0.808, B: 0.922, A: 1.0}

// Point is a cursor position in window-local coordinates.
type Point struct {
	X, Y float64
}

// playgroundRenderer is the slice of the renderer the harness drives:
// validity, context access, and the per-frame render entry point.
type playgroundRenderer interface {
	IsValid() bool
	GetContext() *graphics.Context
	Render(surface *renderer.Surface, callback renderer.RenderCallback) bool
}

// playgroundWindow is the slice of the platform window the frame loop
// drives. *glfwcontext.Context satisfies it.
type playgroundWindow interface {
	OnCursorMove(func(x, y float64))
	WaitEvents(timeout time.Duration)
	ShouldClose() bool
	GetFramebufferSize() (int, int)
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Destroy()
}

// Platform entry points, overridden in tests.
var (
	initGraphics      = glfwcontext.InitGraphics
	terminateGraphics = glfwcontext.TerminateGraphics
	createWindow      = func(width, height int, title string) (playgroundWindow, error) {
		return glfwcontext.New(width, height, title)
	}
)

// frameFunc renders and presents one frame on the bound surface.
type frameFunc func(render renderer.RenderCallback) error

// Playground bridges the platform window, the renderer, and per-test
// fixture resources. One Playground drives at most one window at a time.
type Playground struct {
	renderer    playgroundRenderer
	openFixture fixtures.Opener
	testName    string

	// bindSurface attaches a presentable surface to the window and
	// returns the per-frame render step plus its release. Overridden
	// in tests.
	bindSurface func(window playgroundWindow) (frameFunc, func(), error)

	// Written by the cursor-move callback, read by test code. Both run
	// on the thread that pumps window events, so no lock.
	cursorPosition Point

	// frameLimit > 0 ends the loop with success after that many
	// presented frames, for unattended runs.
	frameLimit int
}

// New creates a playground for the given renderer. testName appears in
// the window title.
func New(r *renderer.Renderer, testName string) *Playground {
	p := &Playground{
		renderer:    r,
		testName:    testName,
		openFixture: fixtures.DirOpener(fixtures.DefaultDir()),
	}
	p.bindSurface = p.bindWindowSurface
	return p
}

// SetFixtureOpener overrides where fixture bytes are resolved from.
func (p *Playground) SetFixtureOpener(open fixtures.Opener) {
	p.openFixture = open
}

// SetFrameLimit caps the number of frames the loop presents before it
// ends with success. Zero (the default) runs until the window closes.
func (p *Playground) SetFrameLimit(frames int) {
	p.frameLimit = frames
}

// GetContext returns the shared GPU context, or nil if the renderer
// failed to initialize. Nil means the harness is unusable.
func (p *Playground) GetContext() *graphics.Context {
	if !p.renderer.IsValid() {
		return nil
	}
	return p.renderer.GetContext()
}

// GetWindowSize returns the fixed playground window size in logical
// units, regardless of window state.
func (p *Playground) GetWindowSize() image.Point {
	return image.Point{X: windowWidth, Y: windowHeight}
}

// SetCursorPosition records the most recent pointer position. Called by
// the platform cursor callback.
func (p *Playground) SetCursorPosition(pos Point) {
	p.cursorPosition = pos
}

// GetCursorPosition returns the last-set pointer position, or the zero
// point if none was ever set.
func (p *Playground) GetCursorPosition() Point {
	return p.cursorPosition
}

func windowTitle(testName string) string {
	return fmt.Sprintf("Impeller Playground for '%s' (Press ESC or 'q' to quit)", testName)
}

// labeled wraps a render callback so the pass is labeled before the
// caller-supplied callback runs.
func labeled(label string, callback renderer.RenderCallback) renderer.RenderCallback {
	return func(pass *renderer.RenderPass) bool {
		pass.SetLabel(label)
		return callback(pass)
	}
}

// OpenPlaygroundHere opens the playground window and runs the frame loop
// with the given callback until the window is closed. A nil callback is a
// valid no-op run and succeeds without creating a window. Returns false
// on any initialization, acquisition, or render failure.
func (p *Playground) OpenPlaygroundHere(callback renderer.RenderCallback) bool {
	if callback == nil {
		return true
	}
	if err := p.run(callback); err != nil {
		logger.Errorf("playground aborted: %v", err)
		return false
	}
	return true
}

func (p *Playground) run(callback renderer.RenderCallback) error {
	if !p.renderer.IsValid() {
		return fmt.Errorf("%w: renderer is not valid", ErrInitFailed)
	}

	if err := initGraphics(); err != nil {
		return fmt.Errorf("%w: %v", ErrInitFailed, err)
	}
	defer terminateGraphics()

	size := p.GetWindowSize()
	window, err := createWindow(size.X, size.Y, windowTitle(p.testName))
	if err != nil {
		return fmt.Errorf("%w: could not create window: %v", ErrInitFailed, err)
	}
	defer window.Destroy()

	window.OnCursorMove(func(x, y float64) {
		p.SetCursorPosition(Point{X: x, Y: y})
	})

	frame, release, err := p.bindSurface(window)
	if err != nil {
		return err
	}
	defer release()

	return p.frameLoop(window, frame, labeled(mainPassLabel, callback))
}

// frameLoop runs until the window close flag is set, the frame limit is
// reached, or a frame fails.
func (p *Playground) frameLoop(window playgroundWindow, frame frameFunc, render renderer.RenderCallback) error {
	frames := 0
	for {
		window.WaitEvents(frameTimeout)
		if window.ShouldClose() {
			return nil
		}
		if err := frame(render); err != nil {
			return err
		}
		frames++
		if p.frameLimit > 0 && frames >= p.frameLimit {
			return nil
		}
	}
}

// bindWindowSurface attaches the presentable wgpu surface to the window's
// native view. The window is fixed-size, so the surface is configured
// once for the drawable's pixel dimensions and never recreated.
func (p *Playground) bindWindowSurface(window playgroundWindow) (frameFunc, func(), error) {
	ctx := p.renderer.GetContext()
	surface := ctx.Instance().CreateSurface(window.SurfaceDescriptor())
	if surface == nil {
		return nil, nil, fmt.Errorf("%w: could not bind surface to window", ErrInitFailed)
	}

	fbWidth, fbHeight := window.GetFramebufferSize()
	surface.Configure(ctx.Adapter(), ctx.Device(), &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      wgpu.TextureFormatBGRA8Unorm,
		Width:       uint32(fbWidth),
		Height:      uint32(fbHeight),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   wgpu.CompositeAlphaModeOpaque,
	})

	frame := func(render renderer.RenderCallback) error {
		return p.renderFrame(surface, render)
	}
	return frame, surface.Release, nil
}

// renderFrame acquires the next drawable, builds the frame's render-pass
// descriptor, invokes the renderer, and presents. Any failure is terminal
// for the loop.
func (p *Playground) renderFrame(surface *wgpu.Surface, render renderer.RenderCallback) error {
	drawable, err := surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDrawableUnavailable, err)
	}
	view, err := drawable.CreateView(nil)
	if err != nil {
		drawable.Release()
		return fmt.Errorf("%w: could not create drawable view: %v", ErrDrawableUnavailable, err)
	}

	// Built fresh every frame, never reused.
	descriptor := &wgpu.RenderPassDescriptor{
		Label: "Playground Frame",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: clearColor,
		}},
	}

	frame := renderer.NewSurface(drawable, view, descriptor)
	defer frame.Release()

	if !p.renderer.Render(frame, render) {
		return ErrRenderFailed
	}
	surface.Present()
	return nil
}
