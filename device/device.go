// Package device implements core.Driver on top of the vulkan-go bindings.
package device

import (
	"errors"
	"unsafe"

	"github.com/devblok/vkboot/core"
	vk "github.com/vulkan-go/vulkan"
)

// NewVulkan loads the Vulkan loader and returns a driver. procAddr is the
// vkGetInstanceProcAddr exposed by the window toolkit; when nil the system
// loader is used, which is enough for windowless use.
func NewVulkan(procAddr unsafe.Pointer) (*Vulkan, error) {
	if procAddr == nil {
		if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
			return nil, errors.New("vk.SetDefaultGetInstanceProcAddr(): " + err.Error())
		}
	} else {
		vk.SetGetInstanceProcAddr(procAddr)
	}

	if err := vk.Init(); err != nil {
		return nil, errors.New("vk.Init(): " + err.Error())
	}

	return &Vulkan{}, nil
}

// Vulkan is a core.Driver backed by the Vulkan API
type Vulkan struct{}

var _ core.Driver = (*Vulkan)(nil)

// InstanceLayers implements interface
func (v *Vulkan) InstanceLayers() ([]string, error) {
	var count uint32
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&count, nil)); err != nil {
		return nil, errors.New("vk.EnumerateInstanceLayerProperties(): " + err.Error())
	}
	layers := make([]vk.LayerProperties, count)
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&count, layers)); err != nil {
		return nil, errors.New("vk.EnumerateInstanceLayerProperties(): " + err.Error())
	}

	names := make([]string, 0, count)
	for _, layer := range layers[:count] {
		layer.Deref()
		names = append(names, vk.ToString(layer.LayerName[:]))
	}
	return names, nil
}

// InstanceExtensions implements interface
func (v *Vulkan) InstanceExtensions() ([]string, error) {
	var count uint32
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &count, nil)); err != nil {
		return nil, errors.New("vk.EnumerateInstanceExtensionProperties(): " + err.Error())
	}
	extensions := make([]vk.ExtensionProperties, count)
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &count, extensions)); err != nil {
		return nil, errors.New("vk.EnumerateInstanceExtensionProperties(): " + err.Error())
	}

	names := make([]string, 0, count)
	for _, ext := range extensions[:count] {
		ext.Deref()
		names = append(names, vk.ToString(ext.ExtensionName[:]))
	}
	return names, nil
}

// CreateInstance implements interface
func (v *Vulkan) CreateInstance(info core.InstanceCreateInfo) (core.InstanceHandle, error) {
	appInfo := &vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   safeString(info.Application.Name),
		ApplicationVersion: info.Application.Version,
		PEngineName:        safeString(info.Application.EngineName),
		EngineVersion:      info.Application.EngineVersion,
		ApiVersion:         info.Application.APIVersion,
	}

	instanceInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        appInfo,
		EnabledExtensionCount:   uint32(len(info.Extensions)),
		PpEnabledExtensionNames: safeStrings(info.Extensions),
		EnabledLayerCount:       uint32(len(info.Layers)),
		PpEnabledLayerNames:     safeStrings(info.Layers),
	}

	var instance vk.Instance
	if err := vk.Error(vk.CreateInstance(&instanceInfo, nil, &instance)); err != nil {
		return 0, errors.New("vk.CreateInstance(): " + err.Error())
	}
	if err := vk.InitInstance(instance); err != nil {
		vk.DestroyInstance(instance, nil)
		return 0, errors.New("vk.InitInstance(): " + err.Error())
	}
	return core.InstanceHandle(unsafe.Pointer(instance)), nil
}

// DestroyInstance implements interface
func (v *Vulkan) DestroyInstance(instance core.InstanceHandle) {
	vk.DestroyInstance(toInstance(instance), nil)
}

// NativeInstance implements interface
func (v *Vulkan) NativeInstance(instance core.InstanceHandle) interface{} {
	return toInstance(instance)
}

// SurfaceFromPointer implements interface
func (v *Vulkan) SurfaceFromPointer(ptr uintptr) core.SurfaceHandle {
	surface := vk.SurfaceFromPointer(ptr)
	return core.SurfaceHandle(unsafe.Pointer(surface))
}

// DestroySurface implements interface
func (v *Vulkan) DestroySurface(instance core.InstanceHandle, surface core.SurfaceHandle) {
	vk.DestroySurface(toInstance(instance), toSurface(surface), nil)
}

func toInstance(h core.InstanceHandle) vk.Instance {
	return vk.Instance(unsafe.Pointer(h))
}

func toSurface(h core.SurfaceHandle) vk.Surface {
	return vk.Surface(unsafe.Pointer(h))
}

func toPhysicalDevice(h core.PhysicalDeviceHandle) vk.PhysicalDevice {
	return vk.PhysicalDevice(unsafe.Pointer(h))
}

func toDevice(h core.DeviceHandle) vk.Device {
	return vk.Device(unsafe.Pointer(h))
}
