package window

import (
	"errors"
	"unsafe"

	"github.com/devblok/vkboot/core"
	"github.com/veandco/go-sdl2/sdl"
)

type sdlWindow struct {
	window *sdl.Window
	closed bool
}

func newSDL(cfg core.WindowConfiguration) (*sdlWindow, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, errors.New("sdl.Init(): " + err.Error())
	}

	if err := sdl.VulkanLoadLibrary(""); err != nil {
		sdl.Quit()
		return nil, errors.New("sdl.VulkanLoadLibrary(): " + err.Error())
	}

	window, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width),
		int32(cfg.Height),
		sdl.WINDOW_VULKAN)
	if err != nil {
		sdl.VulkanUnloadLibrary()
		sdl.Quit()
		return nil, errors.New("sdl.CreateWindow(): " + err.Error())
	}

	return &sdlWindow{window: window}, nil
}

func (w *sdlWindow) RequiredInstanceExtensions() []string {
	return w.window.VulkanGetInstanceExtensions()
}

func (w *sdlWindow) CreateSurface(nativeInstance interface{}) (uintptr, error) {
	surface, err := w.window.VulkanCreateSurface(nativeInstance)
	if err != nil {
		return 0, errors.New("sdl.VulkanCreateSurface(): " + err.Error())
	}
	return uintptr(surface), nil
}

func (w *sdlWindow) ProcAddr() unsafe.Pointer {
	return sdl.VulkanGetVkGetInstanceProcAddr()
}

func (w *sdlWindow) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch et := event.(type) {
		case *sdl.KeyboardEvent:
			if et.Keysym.Sym == sdl.K_ESCAPE {
				w.closed = true
			}
		case *sdl.QuitEvent:
			w.closed = true
		}
	}
}

func (w *sdlWindow) ShouldClose() bool {
	return w.closed
}

func (w *sdlWindow) Destroy() {
	if w.window == nil {
		return
	}
	w.window.Destroy()
	w.window = nil
	sdl.VulkanUnloadLibrary()
	sdl.Quit()
}
