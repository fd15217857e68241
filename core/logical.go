package core

import (
	"fmt"
)

// LogicalDevice is the logical device together with the queues retrieved from it.
// Queues stay valid only while the device lives.
type LogicalDevice struct {
	noCopy noCopy

	Handle        DeviceHandle
	GraphicsQueue QueueHandle
	PresentQueue  QueueHandle
	Indices       QueueFamilyIndices
}

// CreateLogicalDevice creates the logical device with one queue per unique
// family of indices and retrieves the graphics and present queues.
// Validation layers are mirrored into the request for older API revisions.
func CreateLogicalDevice(driver Driver, physicalDevice PhysicalDeviceHandle, indices QueueFamilyIndices, req *Requirements, wantValidation bool) (*LogicalDevice, error) {
	graphics, hasGraphics := indices.Graphics.Get()
	present, hasPresent := indices.Present.Get()
	if !hasGraphics || !hasPresent {
		return nil, fmt.Errorf("%w: queue families not resolved", ErrCreationFailed)
	}

	var queues []DeviceQueueCreateInfo
	for _, family := range indices.Unique() {
		queues = append(queues, DeviceQueueCreateInfo{
			Family:     family,
			Priorities: []float32{1.0},
		})
	}

	info := DeviceCreateInfo{
		Queues:     queues,
		Features:   Features{},
		Extensions: req.DeviceExtensions(),
	}
	if wantValidation {
		info.Layers = req.ValidationLayers()
	}

	handle, err := driver.CreateDevice(physicalDevice, info)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCreationFailed, err)
	}

	return &LogicalDevice{
		Handle:        handle,
		GraphicsQueue: driver.DeviceQueue(handle, graphics, 0),
		PresentQueue:  driver.DeviceQueue(handle, present, 0),
		Indices:       indices,
	}, nil
}
