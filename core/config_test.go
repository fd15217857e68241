package core_test

import (
	"testing"

	"github.com/devblok/vkboot/core"
	qt "github.com/frankban/quicktest"
	"github.com/gobuffalo/envy"
)

func TestConfigurationFromEnvDefaults(t *testing.T) {
	envy.Temp(func() {
		for _, key := range []string{
			core.EnvAppName, core.EnvValidation, core.EnvWindowBackend, core.EnvWindowTitle,
			core.EnvWindowWidth, core.EnvWindowHeight, core.EnvFPS, core.EnvEventPollDelay,
		} {
			envy.Set(key, "")
		}

		c := qt.New(t)
		cfg, err := core.ConfigurationFromEnv(core.DefaultConfiguration())
		c.Assert(err, qt.IsNil)
		c.Assert(cfg, qt.DeepEquals, core.DefaultConfiguration())
	})
}

func TestConfigurationFromEnvOverrides(t *testing.T) {
	envy.Temp(func() {
		envy.Set(core.EnvAppName, "triangle")
		envy.Set(core.EnvValidation, "true")
		envy.Set(core.EnvWindowBackend, "GLFW")
		envy.Set(core.EnvWindowTitle, "Triangle")
		envy.Set(core.EnvWindowWidth, "1280")
		envy.Set(core.EnvWindowHeight, "720")
		envy.Set(core.EnvFPS, "0")
		envy.Set(core.EnvEventPollDelay, "16")

		c := qt.New(t)
		cfg, err := core.ConfigurationFromEnv(core.DefaultConfiguration())
		c.Assert(err, qt.IsNil)
		c.Assert(cfg.Application.Name, qt.Equals, "triangle")
		c.Assert(cfg.Application.EngineName, qt.Equals, "Koru3D")
		c.Assert(cfg.Validation, qt.IsTrue)
		c.Assert(cfg.Window, qt.Equals, core.WindowConfiguration{
			Backend: "glfw",
			Title:   "Triangle",
			Width:   1280,
			Height:  720,
		})
		c.Assert(cfg.Time, qt.Equals, core.TimeConfiguration{FramesPerSecond: 0, EventPollDelay: 16})
	})
}

func TestConfigurationFromEnvInvalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
		err   string
	}{
		{core.EnvValidation, "maybe", `KORU_VALIDATION: .*invalid syntax`},
		{core.EnvWindowWidth, "-1", `KORU_WINDOW_WIDTH: .*invalid syntax`},
		{core.EnvWindowHeight, "tall", `KORU_WINDOW_HEIGHT: .*invalid syntax`},
		{core.EnvFPS, "-30", `KORU_FPS: negative value -30`},
		{core.EnvEventPollDelay, "soon", `KORU_EVENT_POLL_DELAY: .*invalid syntax`},
	}

	for _, test := range tests {
		t.Run(test.key, func(t *testing.T) {
			envy.Temp(func() {
				envy.Set(test.key, test.value)

				c := qt.New(t)
				base := core.DefaultConfiguration()
				cfg, err := core.ConfigurationFromEnv(base)
				c.Assert(err, qt.ErrorMatches, test.err)
				c.Assert(cfg, qt.DeepEquals, base)
			})
		})
	}
}

func TestRequirementsAreCopied(t *testing.T) {
	c := qt.New(t)

	layers := []string{core.KhronosValidationLayer}
	extensions := []string{core.KhrSwapchainExtension}
	req := core.NewRequirements(layers, extensions, core.Features{GeometryShader: true})

	layers[0] = "VK_LAYER_changed"
	extensions[0] = "VK_KHR_changed"
	c.Assert(req.ValidationLayers(), qt.DeepEquals, []string{core.KhronosValidationLayer})
	c.Assert(req.DeviceExtensions(), qt.DeepEquals, []string{core.KhrSwapchainExtension})

	got := req.DeviceExtensions()
	got[0] = "VK_KHR_changed"
	c.Assert(req.DeviceExtensions(), qt.DeepEquals, []string{core.KhrSwapchainExtension})
	c.Assert(req.DeviceFeatures(), qt.Equals, core.Features{GeometryShader: true})
}
