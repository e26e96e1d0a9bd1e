package playground

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sortie/impeller-playground/graphics"
	"github.com/sortie/impeller-playground/renderer"
)

type fakeRenderer struct {
	valid bool
}

func (r *fakeRenderer) IsValid() bool                 { return r.valid }
func (r *fakeRenderer) GetContext() *graphics.Context { return nil }
func (r *fakeRenderer) Render(surface *renderer.Surface, callback renderer.RenderCallback) bool {
	return true
}

type fakeWindow struct {
	closeAt   int // ShouldClose turns true on the nth event wait; 0 = never
	waits     int
	destroyed int
	title     string
	cursor    func(x, y float64)
	onWait    func(w *fakeWindow)
}

func (w *fakeWindow) OnCursorMove(f func(x, y float64)) { w.cursor = f }
func (w *fakeWindow) GetFramebufferSize() (int, int)    { return 1024, 768 }
func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return nil
}
func (w *fakeWindow) Destroy() { w.destroyed++ }

func (w *fakeWindow) WaitEvents(timeout time.Duration) {
	w.waits++
	if w.onWait != nil {
		w.onWait(w)
	}
}

func (w *fakeWindow) ShouldClose() bool {
	return w.closeAt > 0 && w.waits >= w.closeAt
}

// platformCounts tracks init/terminate pairing across one loop run.
type platformCounts struct {
	inits      int
	terminates int
}

func stubPlatform(t *testing.T, window *fakeWindow, initErr, createErr error) *platformCounts {
	t.Helper()
	counts := &platformCounts{}
	origInit, origTerminate, origCreate := initGraphics, terminateGraphics, createWindow
	initGraphics = func() error {
		if initErr != nil {
			return initErr
		}
		counts.inits++
		return nil
	}
	terminateGraphics = func() {
		counts.terminates++
	}
	createWindow = func(width, height int, title string) (playgroundWindow, error) {
		if createErr != nil {
			return nil, createErr
		}
		window.title = title
		return window, nil
	}
	t.Cleanup(func() {
		initGraphics, terminateGraphics, createWindow = origInit, origTerminate, origCreate
	})
	return counts
}

// loopPlayground returns a playground with a valid renderer whose surface
// binding is faked: the nth frame fails with frameErrs[n-1] when set.
func loopPlayground(t *testing.T, frameErrs ...error) (*Playground, *int, *int) {
	t.Helper()
	pg := New(nil, "loop")
	pg.renderer = &fakeRenderer{valid: true}

	frames := 0
	releases := 0
	pg.bindSurface = func(window playgroundWindow) (frameFunc, func(), error) {
		frame := func(render renderer.RenderCallback) error {
			frames++
			if frames <= len(frameErrs) && frameErrs[frames-1] != nil {
				return frameErrs[frames-1]
			}
			return nil
		}
		return frame, func() { releases++ }, nil
	}
	return pg, &frames, &releases
}

func passthrough(pass *renderer.RenderPass) bool { return true }

func TestLoopCloseFlagEndsWithSuccess(t *testing.T) {
	window := &fakeWindow{closeAt: 3}
	counts := stubPlatform(t, window, nil, nil)
	pg, frames, releases := loopPlayground(t)

	ok := pg.OpenPlaygroundHere(passthrough)
	assert.True(t, ok)

	// Two frames before the wait that observes the close flag.
	assert.Equal(t, 2, *frames)
	assert.Equal(t, windowTitle("loop"), window.title)

	// Teardown runs exactly once per resource.
	assert.Equal(t, 1, counts.inits)
	assert.Equal(t, 1, counts.terminates)
	assert.Equal(t, 1, window.destroyed)
	assert.Equal(t, 1, *releases)
}

func TestLoopFrameLimitEndsWithSuccess(t *testing.T) {
	window := &fakeWindow{} // never closes
	counts := stubPlatform(t, window, nil, nil)
	pg, frames, releases := loopPlayground(t)
	pg.SetFrameLimit(5)

	assert.True(t, pg.OpenPlaygroundHere(passthrough))
	assert.Equal(t, 5, *frames)
	assert.Equal(t, 1, counts.terminates)
	assert.Equal(t, 1, window.destroyed)
	assert.Equal(t, 1, *releases)
}

func TestLoopDrawableFailureAborts(t *testing.T) {
	window := &fakeWindow{}
	counts := stubPlatform(t, window, nil, nil)
	pg, frames, releases := loopPlayground(t,
		nil, fmt.Errorf("%w: surface timed out", ErrDrawableUnavailable))

	err := pg.run(passthrough)
	require.ErrorIs(t, err, ErrDrawableUnavailable)
	assert.Equal(t, 2, *frames)

	// The failure path still tears everything down exactly once.
	assert.Equal(t, 1, counts.terminates)
	assert.Equal(t, 1, window.destroyed)
	assert.Equal(t, 1, *releases)
}

func TestLoopRenderFailureAborts(t *testing.T) {
	window := &fakeWindow{}
	counts := stubPlatform(t, window, nil, nil)
	pg, frames, releases := loopPlayground(t, ErrRenderFailed)

	err := pg.run(passthrough)
	require.ErrorIs(t, err, ErrRenderFailed)
	assert.Equal(t, 1, *frames)
	assert.Equal(t, 1, counts.terminates)
	assert.Equal(t, 1, window.destroyed)
	assert.Equal(t, 1, *releases)
}

func TestLoopRenderFailureReportsFalse(t *testing.T) {
	window := &fakeWindow{}
	stubPlatform(t, window, nil, nil)
	pg, _, _ := loopPlayground(t, ErrRenderFailed)

	assert.False(t, pg.OpenPlaygroundHere(passthrough))
}

func TestLoopWindowCreationFailure(t *testing.T) {
	window := &fakeWindow{}
	counts := stubPlatform(t, window, nil, errors.New("no display"))
	pg, frames, releases := loopPlayground(t)

	err := pg.run(passthrough)
	require.ErrorIs(t, err, ErrInitFailed)
	assert.Equal(t, 0, *frames)
	assert.Equal(t, 0, *releases)
	assert.Equal(t, 0, window.destroyed)

	// The platform was initialized, so it must still be terminated.
	assert.Equal(t, 1, counts.terminates)
}

func TestLoopGraphicsInitFailure(t *testing.T) {
	window := &fakeWindow{}
	counts := stubPlatform(t, window, errors.New("glfw unavailable"), nil)
	pg, frames, _ := loopPlayground(t)

	err := pg.run(passthrough)
	require.ErrorIs(t, err, ErrInitFailed)
	assert.Equal(t, 0, *frames)

	// Nothing was initialized, so nothing may be terminated.
	assert.Equal(t, 0, counts.terminates)
	assert.Equal(t, 0, window.destroyed)
}

func TestLoopInvalidRendererSkipsPlatform(t *testing.T) {
	window := &fakeWindow{}
	counts := stubPlatform(t, window, nil, nil)
	pg := New(nil, "invalid")

	err := pg.run(passthrough)
	require.ErrorIs(t, err, ErrInitFailed)
	assert.Equal(t, 0, counts.inits)
	assert.Equal(t, 0, counts.terminates)
}

func TestLoopForwardsCursorEvents(t *testing.T) {
	window := &fakeWindow{closeAt: 2}
	window.onWait = func(w *fakeWindow) {
		if w.cursor != nil {
			w.cursor(40, 60)
		}
	}
	stubPlatform(t, window, nil, nil)
	pg, _, _ := loopPlayground(t)

	require.NoError(t, pg.run(passthrough))
	assert.Equal(t, Point{X: 40, Y: 60}, pg.GetCursorPosition())
}
