// Package window provides the presentation windows the bootstrap draws its
// surface from. Two toolkits are supported: SDL2 and GLFW.
package window

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/devblok/vkboot/core"
)

// Backend names accepted by New
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Window is a toolkit window capable of hosting a Vulkan surface
type Window interface {
	core.Windowing

	// ProcAddr returns the toolkit's vkGetInstanceProcAddr
	ProcAddr() unsafe.Pointer

	// PollEvents pumps pending window events
	PollEvents()

	// ShouldClose reports whether the user asked the window to close
	ShouldClose() bool

	// Destroy closes the window and shuts the toolkit down
	Destroy()
}

// New creates a window using the backend named in cfg. An empty backend
// selects SDL.
func New(cfg core.WindowConfiguration) (Window, error) {
	var (
		w   Window
		err error
	)
	switch strings.ToLower(cfg.Backend) {
	case "", BackendSDL:
		w, err = newSDL(cfg)
	case BackendGLFW:
		w, err = newGLFW(cfg)
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}
