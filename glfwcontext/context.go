package glfwcontext

import (
	"runtime"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	glfw "github.com/go-gl/glfw/v3.3/glfw"

	log "github.com/sortie/impeller-playground/log"
)

var logger = log.New("glfwcontext")

// InitGraphics initializes the windowing subsystem (GLFW). Must be called
// from the main thread, and must be balanced by TerminateGraphics on every
// exit path.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	logger.Debug("GLFW initialized")
	return nil
}

// TerminateGraphics shuts down the windowing subsystem. Must be called from
// the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	logger.Debug("GLFW terminated")
}

// Context wraps a fixed-size GLFW window with no client graphics API bound;
// the caller supplies its own GPU surface for the native view.
type Context struct {
	window       *glfw.Window
	onCursorMove func(x, y float64)
}

// New creates the window. The window is not resizable; the harness does
// not support render-target recreation.
func New(width, height int, title string) (*Context, error) {
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{window: win}
	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetCursorPosCallback(c.glfwCursorPosCallback)
	return c, nil
}

// closeRequested reports whether a key event asks the window to close:
// releasing ESC or 'q'.
func closeRequested(key glfw.Key, action glfw.Action) bool {
	if action != glfw.Release {
		return false
	}
	return key == glfw.KeyEscape || key == glfw.KeyQ
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if closeRequested(key, action) {
		w.SetShouldClose(true)
	}
}

func (c *Context) glfwCursorPosCallback(w *glfw.Window, x, y float64) {
	if c.onCursorMove != nil {
		c.onCursorMove(x, y)
	}
}

// OnCursorMove registers the cursor-move handler. GLFW dispatches it on
// the same thread that runs WaitEvents.
func (c *Context) OnCursorMove(f func(x, y float64)) {
	c.onCursorMove = f
}

// WaitEvents blocks for window events up to the given timeout, dispatching
// registered callbacks before returning.
func (c *Context) WaitEvents(timeout time.Duration) {
	glfw.WaitEventsTimeout(timeout.Seconds())
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

// RequestClose sets the window close flag; the frame loop observes it on
// the next poll.
func (c *Context) RequestClose() {
	c.window.SetShouldClose(true)
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

// SurfaceDescriptor describes the window's native view for binding a
// presentable wgpu surface.
func (c *Context) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(c.window)
}

// Destroy destroys the window.
func (c *Context) Destroy() {
	c.window.Destroy()
}
