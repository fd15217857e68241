// Package core bootstraps a Vulkan execution context: instance, validation,
// surface, physical device selection, logical device and queues.
//
// The package never talks to the graphics API directly. Every call goes through
// a Driver, and window-system integration goes through Windowing, so the
// bootstrap sequence is the same whichever binding or window toolkit is used.
package core

import "errors"

// Opaque handles returned by a Driver. The zero value means "not created".
type (
	InstanceHandle       uintptr
	DebugMessengerHandle uintptr
	SurfaceHandle        uintptr
	PhysicalDeviceHandle uintptr
	DeviceHandle         uintptr
	QueueHandle          uintptr
)

// Driver describes the graphics API surface the bootstrap depends on.
// Implementations own the count-then-fill enumeration details.
type Driver interface {
	// InstanceLayers lists layers available on the host
	InstanceLayers() ([]string, error)

	// InstanceExtensions lists instance extensions available on the host
	InstanceExtensions() ([]string, error)

	// CreateInstance creates the API instance
	CreateInstance(InstanceCreateInfo) (InstanceHandle, error)

	// DestroyInstance destroys the API instance
	DestroyInstance(InstanceHandle)

	// DebugExtension names the instance extension providing the debug messenger
	DebugExtension() string

	// LookupDebugMessenger resolves the optional debug messenger entry points
	// of the instance. Either function is nil when the host does not expose it.
	LookupDebugMessenger(InstanceHandle) (CreateDebugMessengerFunc, DestroyDebugMessengerFunc)

	// NativeInstance returns the binding's own instance value, used
	// by window toolkits to create a surface
	NativeInstance(InstanceHandle) interface{}

	// SurfaceFromPointer converts a native surface address into a handle
	SurfaceFromPointer(uintptr) SurfaceHandle

	// DestroySurface destroys a surface created for the instance
	DestroySurface(InstanceHandle, SurfaceHandle)

	// PhysicalDevices enumerates every device visible to the instance
	PhysicalDevices(InstanceHandle) ([]PhysicalDeviceHandle, error)

	// PhysicalDeviceProperties returns general information about the device
	PhysicalDeviceProperties(PhysicalDeviceHandle) PhysicalDeviceProperties

	// PhysicalDeviceFeatures returns the optional features the device supports
	PhysicalDeviceFeatures(PhysicalDeviceHandle) Features

	// DeviceExtensions lists extensions the device exposes
	DeviceExtensions(PhysicalDeviceHandle) ([]string, error)

	// DeviceLayers lists device layers, kept for older API revisions
	DeviceLayers(PhysicalDeviceHandle) ([]string, error)

	// QueueFamilies lists queue family descriptors in index order
	QueueFamilies(PhysicalDeviceHandle) []QueueFamilyProperties

	// SurfaceSupport reports whether a queue family can present to the surface
	SurfaceSupport(device PhysicalDeviceHandle, family uint32, surface SurfaceHandle) (bool, error)

	// SurfaceCapabilities returns capability limits of the surface on the device
	SurfaceCapabilities(PhysicalDeviceHandle, SurfaceHandle) (SurfaceCapabilities, error)

	// SurfaceFormats lists supported surface formats, in driver order
	SurfaceFormats(PhysicalDeviceHandle, SurfaceHandle) ([]SurfaceFormat, error)

	// SurfacePresentModes lists supported present modes, in driver order
	SurfacePresentModes(PhysicalDeviceHandle, SurfaceHandle) ([]PresentMode, error)

	// CreateDevice creates a logical device on the physical device
	CreateDevice(PhysicalDeviceHandle, DeviceCreateInfo) (DeviceHandle, error)

	// DeviceQueue retrieves a queue created together with the device
	DeviceQueue(device DeviceHandle, family, index uint32) QueueHandle

	// DestroyDevice destroys the logical device
	DestroyDevice(DeviceHandle)
}

// Windowing is the part of the window toolkit the bootstrap needs.
type Windowing interface {
	// RequiredInstanceExtensions returns instance extensions needed to present
	// into the toolkit's windows
	RequiredInstanceExtensions() []string

	// CreateSurface creates a presentable surface for the window. It takes the
	// binding's native instance and returns the address of the native surface.
	CreateSurface(nativeInstance interface{}) (uintptr, error)
}

// CreateDebugMessengerFunc is a resolved debug messenger create entry point.
type CreateDebugMessengerFunc func(DebugMessengerCreateInfo) (DebugMessengerHandle, error)

// DestroyDebugMessengerFunc is a resolved debug messenger destroy entry point.
type DestroyDebugMessengerFunc func(DebugMessengerHandle)

// Error taxonomy of the bootstrap sequence.
var (
	ErrMissingLayer        = errors.New("required layer not available")
	ErrMissingExtension    = errors.New("required extension not available")
	ErrNoDevices           = errors.New("no physical devices with Vulkan support")
	ErrNoSuitableDevice    = errors.New("no suitable physical device")
	ErrCreationFailed      = errors.New("creation failed")
	ErrExtensionNotPresent = errors.New("extension entry point not present")
)

// noCopy may be embedded into structs which must not be copied
// after first use. It is checked by go vet's copylocks.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
