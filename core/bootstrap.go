package core

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Bootstrap owns every handle created while bringing up the execution context.
// Handles are created in the order instance, debug messenger, surface,
// physical device, logical device, and destroyed in reverse.
// A Bootstrap must not be copied.
type Bootstrap struct {
	noCopy noCopy

	driver        Driver
	windowing     Windowing
	configuration Configuration
	requirements  *Requirements
	log           log.FieldLogger

	instance       InstanceHandle
	messenger      *DebugMessenger
	surface        SurfaceHandle
	physicalDevice PhysicalDeviceHandle
	device         *LogicalDevice
	swapChain      SwapChainSupportDetails
}

// NewBootstrap creates a not yet initialised Bootstrap
func NewBootstrap(driver Driver, windowing Windowing, cfg Configuration, req *Requirements, logger log.FieldLogger) *Bootstrap {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Bootstrap{
		driver:        driver,
		windowing:     windowing,
		configuration: cfg,
		requirements:  req,
		log:           logger,
	}
}

// Initialise runs the whole bootstrap sequence and stops at the first failing
// stage. Handles created before the failure stay owned by the Bootstrap and
// are released by Destroy.
func (b *Bootstrap) Initialise() error {
	validation := b.configuration.Validation

	instance, err := CreateInstance(b.driver, b.windowing, b.configuration.Application, b.requirements, validation, b.log)
	if err != nil {
		return fmt.Errorf("createInstance: %w", err)
	}
	b.instance = instance

	messenger, err := AttachDebugMessenger(b.driver, b.instance, validation, b.log.WithField("source", "validation"))
	switch {
	case errors.Is(err, ErrExtensionNotPresent):
		b.log.Warn("debug messenger entry points not present, continuing without diagnostics")
	case err != nil:
		return fmt.Errorf("attachDebugMessenger: %w", err)
	}
	b.messenger = messenger

	surface, err := CreateSurface(b.driver, b.windowing, b.instance)
	if err != nil {
		return fmt.Errorf("createSurface: %w", err)
	}
	b.surface = surface

	physicalDevice, err := PickPhysicalDevice(b.driver, b.instance, b.surface, b.requirements, b.log)
	if err != nil {
		return fmt.Errorf("pickPhysicalDevice: %w", err)
	}
	b.physicalDevice = physicalDevice

	props := b.driver.PhysicalDeviceProperties(physicalDevice)
	b.log.WithFields(log.Fields{
		"device": props.Name,
		"type":   props.Type.String(),
	}).Info("physical device selected")

	indices := FindQueueFamilies(b.driver, physicalDevice, b.surface, b.log)
	device, err := CreateLogicalDevice(b.driver, physicalDevice, indices, b.requirements, validation)
	if err != nil {
		return fmt.Errorf("createLogicalDevice: %w", err)
	}
	b.device = device

	b.swapChain = QuerySwapChainSupport(b.driver, physicalDevice, b.surface, b.log)
	format, preferred := ChooseSurfaceFormat(b.swapChain.Formats)
	b.log.WithFields(log.Fields{
		"graphicsFamily":  indices.Unique()[0],
		"queueFamilies":   len(indices.Unique()),
		"formats":         len(b.swapChain.Formats),
		"presentModes":    len(b.swapChain.PresentModes),
		"preferredFormat": preferred,
		"format":          format.Format,
		"presentMode":     ChoosePresentMode(b.swapChain.PresentModes),
	}).Info("logical device ready")

	return nil
}

// Destroy releases every handle that was created, in reverse creation order.
// It is safe to call after a failed Initialise and more than once.
func (b *Bootstrap) Destroy() {
	if b.device != nil {
		b.driver.DestroyDevice(b.device.Handle)
		b.device = nil
	}
	if b.messenger != nil {
		b.messenger.Destroy()
		b.messenger = nil
	}
	if b.surface != 0 {
		b.driver.DestroySurface(b.instance, b.surface)
		b.surface = 0
	}
	b.physicalDevice = 0
	if b.instance != 0 {
		b.driver.DestroyInstance(b.instance)
		b.instance = 0
	}
}

// Live lists the owning handles that have not been destroyed yet
func (b *Bootstrap) Live() []string {
	var live []string
	if b.instance != 0 {
		live = append(live, "instance")
	}
	if b.messenger != nil && b.messenger.Status() == MessengerAttached {
		live = append(live, "debug messenger")
	}
	if b.surface != 0 {
		live = append(live, "surface")
	}
	if b.device != nil {
		live = append(live, "logical device")
	}
	return live
}

// Instance returns the instance handle, zero before Initialise
func (b *Bootstrap) Instance() InstanceHandle {
	return b.instance
}

// Messenger returns the debug messenger, nil before Initialise
func (b *Bootstrap) Messenger() *DebugMessenger {
	return b.messenger
}

// Surface returns the surface handle
func (b *Bootstrap) Surface() SurfaceHandle {
	return b.surface
}

// PhysicalDevice returns the selected physical device
func (b *Bootstrap) PhysicalDevice() PhysicalDeviceHandle {
	return b.physicalDevice
}

// Device returns the logical device and its queues
func (b *Bootstrap) Device() *LogicalDevice {
	return b.device
}

// SwapChainSupport returns what the selected device offers for the surface
func (b *Bootstrap) SwapChainSupport() SwapChainSupportDetails {
	return b.swapChain
}
