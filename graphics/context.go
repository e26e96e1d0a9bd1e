package graphics

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	log "github.com/sortie/impeller-playground/log"
)

var logger = log.New("graphics")

// Context owns the WebGPU instance, adapter, device and queue shared by
// every GPU-resident resource in the harness. Textures and drawables must
// not outlive the Context that created them.
type Context struct {
	instance  *wgpu.Instance
	adapter   *wgpu.Adapter
	device    *wgpu.Device
	queue     *wgpu.Queue
	allocator *Allocator
}

// NewContext brings up the WebGPU stack: instance, adapter, device, queue.
func NewContext() (*Context, error) {
	instance := wgpu.CreateInstance(nil)

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		instance.Release()
		return nil, fmt.Errorf("no suitable GPU adapter: %w", err)
	}

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Playground Device",
	})
	if err != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("failed to create GPU device: %w", err)
	}

	queue := device.GetQueue()

	c := &Context{
		instance: instance,
		adapter:  adapter,
		device:   device,
		queue:    queue,
	}
	c.allocator = &Allocator{device: device, queue: queue}
	logger.Debug("graphics context ready")
	return c, nil
}

func (c *Context) Instance() *wgpu.Instance { return c.instance }
func (c *Context) Adapter() *wgpu.Adapter   { return c.adapter }
func (c *Context) Device() *wgpu.Device     { return c.device }
func (c *Context) Queue() *wgpu.Queue       { return c.queue }

// Allocator returns the permanent-resource allocator for this context.
func (c *Context) Allocator() *Allocator { return c.allocator }

// Release tears down the WebGPU stack. Every texture and surface created
// from this context must already be released.
func (c *Context) Release() {
	if c.queue != nil {
		c.queue.Release()
		c.queue = nil
	}
	if c.device != nil {
		c.device.Release()
		c.device = nil
	}
	if c.adapter != nil {
		c.adapter.Release()
		c.adapter = nil
	}
	if c.instance != nil {
		c.instance.Release()
		c.instance = nil
	}
}
