package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gobuffalo/envy"
)

// Configuration defines a global bootstrap configuration setting
type Configuration struct {
	Application ApplicationInfo
	Window      WindowConfiguration
	Time        TimeConfiguration

	// Validation enables validation layers and the debug messenger
	Validation bool
}

// WindowConfiguration is used to configure the presentation window
type WindowConfiguration struct {
	// Backend selects the window toolkit, "sdl" or "glfw"
	Backend string
	Title   string
	Width   uint32
	Height  uint32
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int

	// EventPollDelay is the delay between event pumps, in milliseconds
	EventPollDelay int
}

// DefaultConfiguration returns the configuration used when nothing is overridden
func DefaultConfiguration() Configuration {
	return Configuration{
		Application: ApplicationInfo{
			Name:          "Koru3D",
			Version:       MakeVersion(1, 0, 0),
			EngineName:    "Koru3D",
			EngineVersion: MakeVersion(1, 0, 0),
			APIVersion:    MakeVersion(1, 0, 0),
		},
		Window: WindowConfiguration{
			Backend: "sdl",
			Title:   "Koru3D",
			Width:   800,
			Height:  600,
		},
		Time: TimeConfiguration{
			FramesPerSecond: 60,
			EventPollDelay:  50,
		},
	}
}

// Environment variables understood by ConfigurationFromEnv
const (
	EnvAppName        = "KORU_APP_NAME"
	EnvValidation     = "KORU_VALIDATION"
	EnvWindowBackend  = "KORU_WINDOW_BACKEND"
	EnvWindowTitle    = "KORU_WINDOW_TITLE"
	EnvWindowWidth    = "KORU_WINDOW_WIDTH"
	EnvWindowHeight   = "KORU_WINDOW_HEIGHT"
	EnvFPS            = "KORU_FPS"
	EnvEventPollDelay = "KORU_EVENT_POLL_DELAY"
)

// ConfigurationFromEnv overlays environment variables (and a .env file,
// if present) onto base. Unset variables leave base untouched.
func ConfigurationFromEnv(base Configuration) (Configuration, error) {
	cfg := base

	if v := envy.Get(EnvAppName, ""); v != "" {
		cfg.Application.Name = v
	}
	if v := envy.Get(EnvValidation, ""); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return base, fmt.Errorf("%s: %w", EnvValidation, err)
		}
		cfg.Validation = b
	}
	if v := envy.Get(EnvWindowBackend, ""); v != "" {
		cfg.Window.Backend = strings.ToLower(v)
	}
	if v := envy.Get(EnvWindowTitle, ""); v != "" {
		cfg.Window.Title = v
	}

	uints := []struct {
		key string
		dst *uint32
	}{
		{EnvWindowWidth, &cfg.Window.Width},
		{EnvWindowHeight, &cfg.Window.Height},
	}
	for _, u := range uints {
		v := envy.Get(u.key, "")
		if v == "" {
			continue
		}
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return base, fmt.Errorf("%s: %w", u.key, err)
		}
		*u.dst = uint32(n)
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvFPS, &cfg.Time.FramesPerSecond},
		{EnvEventPollDelay, &cfg.Time.EventPollDelay},
	}
	for _, i := range ints {
		v := envy.Get(i.key, "")
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return base, fmt.Errorf("%s: %w", i.key, err)
		}
		if n < 0 {
			return base, fmt.Errorf("%s: negative value %d", i.key, n)
		}
		*i.dst = n
	}

	return cfg, nil
}

// Requirements is the immutable set of capabilities the application needs.
// Build it once at startup and share the pointer.
type Requirements struct {
	validationLayers []string
	deviceExtensions []string
	deviceFeatures   Features
}

// Well known layer and extension names
const (
	KhronosValidationLayer = "VK_LAYER_KHRONOS_validation"
	KhrSwapchainExtension  = "VK_KHR_swapchain"
)

// NewRequirements copies its inputs into a new Requirements
func NewRequirements(layers, deviceExtensions []string, features Features) *Requirements {
	return &Requirements{
		validationLayers: append([]string(nil), layers...),
		deviceExtensions: append([]string(nil), deviceExtensions...),
		deviceFeatures:   features,
	}
}

// DefaultRequirements asks for Khronos validation, the swapchain extension
// and geometry shaders
func DefaultRequirements() *Requirements {
	return NewRequirements(
		[]string{KhronosValidationLayer},
		[]string{KhrSwapchainExtension},
		Features{GeometryShader: true},
	)
}

// ValidationLayers returns the layers required when validation is enabled
func (r *Requirements) ValidationLayers() []string {
	return append([]string(nil), r.validationLayers...)
}

// DeviceExtensions returns the extensions every usable device must expose
func (r *Requirements) DeviceExtensions() []string {
	return append([]string(nil), r.deviceExtensions...)
}

// DeviceFeatures returns the features every usable device must support
func (r *Requirements) DeviceFeatures() Features {
	return r.deviceFeatures
}
