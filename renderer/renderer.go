package renderer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/sortie/impeller-playground/graphics"
	log "github.com/sortie/impeller-playground/log"
)

var logger = log.New("renderer")

// RenderCallback is invoked with the open render pass for the frame being
// encoded. Returning false fails the frame.
type RenderCallback func(pass *RenderPass) bool

// Renderer owns the graphics context and the shader library. A Renderer
// that failed to initialize is invalid and every other operation on it
// must be skipped.
type Renderer struct {
	context *graphics.Context
	library *wgpu.ShaderModule
}

// New creates a renderer from a shader library directory and file name.
// The library is a WGSL source file compiled into a single shader module.
func New(shaderDir, libraryName string) (*Renderer, error) {
	ctx, err := graphics.NewContext()
	if err != nil {
		return nil, fmt.Errorf("failed to create graphics context: %w", err)
	}

	path := filepath.Join(shaderDir, libraryName)
	source, err := os.ReadFile(path)
	if err != nil {
		ctx.Release()
		return nil, fmt.Errorf("failed to read shader library %q: %w", path, err)
	}

	library, err := ctx.Device().CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: libraryName,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: string(source),
		},
	})
	if err != nil {
		ctx.Release()
		return nil, fmt.Errorf("failed to compile shader library %q: %w", path, err)
	}

	return &Renderer{context: ctx, library: library}, nil
}

// ShaderLibraryDirectory is the default shader library location: a
// "shaders" directory next to the running executable.
func ShaderLibraryDirectory() string {
	exe, err := os.Executable()
	if err != nil {
		return "shaders"
	}
	return filepath.Join(filepath.Dir(exe), "shaders")
}

// IsValid reports whether the renderer initialized successfully.
func (r *Renderer) IsValid() bool {
	return r != nil && r.context != nil
}

// GetContext returns the shared graphics context, or nil if the renderer
// is invalid.
func (r *Renderer) GetContext() *graphics.Context {
	if !r.IsValid() {
		return nil
	}
	return r.context
}

// Library returns the compiled shader library module.
func (r *Renderer) Library() *wgpu.ShaderModule {
	if !r.IsValid() {
		return nil
	}
	return r.library
}

// Render encodes one frame: it opens the surface's render pass, hands it
// to the callback, and submits the commands. Returns false on any
// encoding failure or when the callback declines the frame.
func (r *Renderer) Render(surface *Surface, callback RenderCallback) bool {
	if !r.IsValid() || surface == nil {
		return false
	}

	encoder, err := r.context.Device().CreateCommandEncoder(nil)
	if err != nil {
		logger.Errorf("failed to create command encoder: %v", err)
		return false
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(surface.Descriptor())
	rp := &RenderPass{encoder: pass}
	ok := true
	if callback != nil {
		ok = callback(rp)
	}
	pass.End()
	pass.Release()
	if !ok {
		return false
	}

	commands, err := encoder.Finish(nil)
	if err != nil {
		logger.Errorf("failed to finish command encoding: %v", err)
		return false
	}
	r.context.Queue().Submit(commands)
	commands.Release()
	return true
}

// Release frees the shader library and the graphics context.
func (r *Renderer) Release() {
	if r == nil {
		return
	}
	if r.library != nil {
		r.library.Release()
		r.library = nil
	}
	if r.context != nil {
		r.context.Release()
		r.context = nil
	}
}
