package main

import (
	"flag"
	"os"
	"runtime"
	"strings"

	"github.com/devblok/vkboot/core"
	"github.com/devblok/vkboot/device"
	"github.com/devblok/vkboot/window"
	log "github.com/sirupsen/logrus"
)

func init() {
	runtime.LockOSThread()
}

var (
	vkDebug = flag.Bool("vkdbg", false, "enable validation layers and the debug messenger")
	backend = flag.String("backend", "", "window backend, sdl or glfw")
)

func main() {
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if err := run(); err != nil {
		log.WithError(err).Error("bootstrap failed")
		os.Exit(1)
	}
}

func run() error {
	configuration, err := core.ConfigurationFromEnv(core.DefaultConfiguration())
	if err != nil {
		return err
	}
	if *vkDebug {
		configuration.Validation = true
	}
	if *backend != "" {
		configuration.Window.Backend = *backend
	}
	if configuration.Validation {
		log.SetLevel(log.DebugLevel)
	}

	win, err := window.New(configuration.Window)
	if err != nil {
		return err
	}
	defer win.Destroy()

	driver, err := device.NewVulkan(win.ProcAddr())
	if err != nil {
		return err
	}

	bootstrap := core.NewBootstrap(driver, win, configuration, core.DefaultRequirements(), log.WithField("app", configuration.Application.Name))
	defer func() {
		bootstrap.Destroy()
		if live := bootstrap.Live(); len(live) > 0 {
			log.WithField("handles", strings.Join(live, ", ")).Error("handles outlived teardown")
		}
	}()

	if err := bootstrap.Initialise(); err != nil {
		return err
	}

	time := core.NewTime(configuration.Time)
	defer time.Stop()

	log.Info("entering event loop")
	for range time.EventTicker().C {
		win.PollEvents()
		if win.ShouldClose() {
			break
		}
	}
	log.Info("event loop exited")
	return nil
}
