package device

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/devblok/vkboot/core"
	vk "github.com/vulkan-go/vulkan"
)

// PhysicalDevices implements interface
func (v *Vulkan) PhysicalDevices(instance core.InstanceHandle) ([]core.PhysicalDeviceHandle, error) {
	var deviceCount uint32
	if err := vk.Error(vk.EnumeratePhysicalDevices(toInstance(instance), &deviceCount, nil)); err != nil {
		return nil, fmt.Errorf("vulkan physical device enumeration failed: %s", err)
	}
	availableDevices := make([]vk.PhysicalDevice, deviceCount)
	if err := vk.Error(vk.EnumeratePhysicalDevices(toInstance(instance), &deviceCount, availableDevices)); err != nil {
		return nil, fmt.Errorf("vulkan physical device enumeration failed: %s", err)
	}

	handles := make([]core.PhysicalDeviceHandle, 0, deviceCount)
	for _, device := range availableDevices[:deviceCount] {
		handles = append(handles, core.PhysicalDeviceHandle(unsafe.Pointer(device)))
	}
	return handles, nil
}

// PhysicalDeviceProperties implements interface
func (v *Vulkan) PhysicalDeviceProperties(device core.PhysicalDeviceHandle) core.PhysicalDeviceProperties {
	var properties vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(toPhysicalDevice(device), &properties)
	properties.Deref()
	properties.Limits.Deref()

	var memoryProperties vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(toPhysicalDevice(device), &memoryProperties)
	memoryProperties.Deref()

	var memory uint64
	for i := uint32(0); i < memoryProperties.MemoryHeapCount; i++ {
		memoryProperties.MemoryHeaps[i].Deref()
		memory += uint64(memoryProperties.MemoryHeaps[i].Size)
	}

	return core.PhysicalDeviceProperties{
		Name:                vk.ToString(properties.DeviceName[:]),
		Type:                core.PhysicalDeviceType(properties.DeviceType),
		VendorID:            properties.VendorID,
		DeviceID:            properties.DeviceID,
		DriverVersion:       properties.DriverVersion,
		APIVersion:          properties.ApiVersion,
		MaxImageDimension2D: properties.Limits.MaxImageDimension2D,
		MemoryHeapSize:      memory,
	}
}

// PhysicalDeviceFeatures implements interface
func (v *Vulkan) PhysicalDeviceFeatures(device core.PhysicalDeviceHandle) core.Features {
	var features vk.PhysicalDeviceFeatures
	vk.GetPhysicalDeviceFeatures(toPhysicalDevice(device), &features)
	features.Deref()

	return core.Features{
		GeometryShader:    features.GeometryShader == vk.True,
		SamplerAnisotropy: features.SamplerAnisotropy == vk.True,
	}
}

// DeviceExtensions implements interface
func (v *Vulkan) DeviceExtensions(device core.PhysicalDeviceHandle) ([]string, error) {
	var numDeviceExtensions uint32
	if err := vk.Error(vk.EnumerateDeviceExtensionProperties(toPhysicalDevice(device), "", &numDeviceExtensions, nil)); err != nil {
		return nil, errors.New("vk.EnumerateDeviceExtensionProperties(): " + err.Error())
	}
	deviceExt := make([]vk.ExtensionProperties, numDeviceExtensions)
	if err := vk.Error(vk.EnumerateDeviceExtensionProperties(toPhysicalDevice(device), "", &numDeviceExtensions, deviceExt)); err != nil {
		return nil, errors.New("vk.EnumerateDeviceExtensionProperties(): " + err.Error())
	}

	extensions := make([]string, 0, numDeviceExtensions)
	for _, ext := range deviceExt[:numDeviceExtensions] {
		ext.Deref()
		extensions = append(extensions, vk.ToString(ext.ExtensionName[:]))
	}
	return extensions, nil
}

// DeviceLayers implements interface
func (v *Vulkan) DeviceLayers(device core.PhysicalDeviceHandle) ([]string, error) {
	var numDeviceLayers uint32
	if err := vk.Error(vk.EnumerateDeviceLayerProperties(toPhysicalDevice(device), &numDeviceLayers, nil)); err != nil {
		return nil, errors.New("vk.EnumerateDeviceLayerProperties(): " + err.Error())
	}
	deviceLayers := make([]vk.LayerProperties, numDeviceLayers)
	if err := vk.Error(vk.EnumerateDeviceLayerProperties(toPhysicalDevice(device), &numDeviceLayers, deviceLayers)); err != nil {
		return nil, errors.New("vk.EnumerateDeviceLayerProperties(): " + err.Error())
	}

	layers := make([]string, 0, numDeviceLayers)
	for _, layer := range deviceLayers[:numDeviceLayers] {
		layer.Deref()
		layers = append(layers, vk.ToString(layer.LayerName[:]))
	}
	return layers, nil
}

// QueueFamilies implements interface
func (v *Vulkan) QueueFamilies(device core.PhysicalDeviceHandle) []core.QueueFamilyProperties {
	var queueFamilyCount uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(toPhysicalDevice(device), &queueFamilyCount, nil)
	queueFamilies := make([]vk.QueueFamilyProperties, queueFamilyCount)
	vk.GetPhysicalDeviceQueueFamilyProperties(toPhysicalDevice(device), &queueFamilyCount, queueFamilies)

	families := make([]core.QueueFamilyProperties, 0, queueFamilyCount)
	for _, family := range queueFamilies[:queueFamilyCount] {
		family.Deref()
		families = append(families, core.QueueFamilyProperties{
			Flags: core.QueueFlags(family.QueueFlags),
			Count: family.QueueCount,
		})
	}
	return families
}

// SurfaceSupport implements interface
func (v *Vulkan) SurfaceSupport(device core.PhysicalDeviceHandle, family uint32, surface core.SurfaceHandle) (bool, error) {
	var supported vk.Bool32
	if err := vk.Error(vk.GetPhysicalDeviceSurfaceSupport(toPhysicalDevice(device), family, toSurface(surface), &supported)); err != nil {
		return false, errors.New("vk.GetPhysicalDeviceSurfaceSupport(): " + err.Error())
	}
	return supported.B(), nil
}

// SurfaceCapabilities implements interface
func (v *Vulkan) SurfaceCapabilities(device core.PhysicalDeviceHandle, surface core.SurfaceHandle) (core.SurfaceCapabilities, error) {
	var caps vk.SurfaceCapabilities
	if err := vk.Error(vk.GetPhysicalDeviceSurfaceCapabilities(toPhysicalDevice(device), toSurface(surface), &caps)); err != nil {
		return core.SurfaceCapabilities{}, errors.New("vk.GetPhysicalDeviceSurfaceCapabilities(): " + err.Error())
	}
	caps.Deref()
	caps.CurrentExtent.Deref()
	caps.MinImageExtent.Deref()
	caps.MaxImageExtent.Deref()

	return core.SurfaceCapabilities{
		MinImageCount:       caps.MinImageCount,
		MaxImageCount:       caps.MaxImageCount,
		CurrentExtent:       core.Extent2D{Width: caps.CurrentExtent.Width, Height: caps.CurrentExtent.Height},
		MinImageExtent:      core.Extent2D{Width: caps.MinImageExtent.Width, Height: caps.MinImageExtent.Height},
		MaxImageExtent:      core.Extent2D{Width: caps.MaxImageExtent.Width, Height: caps.MaxImageExtent.Height},
		MaxImageArrayLayers: caps.MaxImageArrayLayers,
		SupportedTransforms: uint32(caps.SupportedTransforms),
		CurrentTransform:    uint32(caps.CurrentTransform),
	}, nil
}

// SurfaceFormats implements interface
func (v *Vulkan) SurfaceFormats(device core.PhysicalDeviceHandle, surface core.SurfaceHandle) ([]core.SurfaceFormat, error) {
	var surfaceFormatCount uint32
	if err := vk.Error(vk.GetPhysicalDeviceSurfaceFormats(toPhysicalDevice(device), toSurface(surface), &surfaceFormatCount, nil)); err != nil {
		return nil, errors.New("vk.GetPhysicalDeviceSurfaceFormats(): " + err.Error())
	}
	if surfaceFormatCount == 0 {
		return nil, nil
	}

	surfaceFormats := make([]vk.SurfaceFormat, surfaceFormatCount)
	if err := vk.Error(vk.GetPhysicalDeviceSurfaceFormats(toPhysicalDevice(device), toSurface(surface), &surfaceFormatCount, surfaceFormats)); err != nil {
		return nil, errors.New("vk.GetPhysicalDeviceSurfaceFormats(): " + err.Error())
	}

	formats := make([]core.SurfaceFormat, 0, surfaceFormatCount)
	for _, format := range surfaceFormats[:surfaceFormatCount] {
		format.Deref()
		formats = append(formats, core.SurfaceFormat{
			Format:     core.Format(format.Format),
			ColorSpace: core.ColorSpace(format.ColorSpace),
		})
	}
	return formats, nil
}

// SurfacePresentModes implements interface
func (v *Vulkan) SurfacePresentModes(device core.PhysicalDeviceHandle, surface core.SurfaceHandle) ([]core.PresentMode, error) {
	var presentModeCount uint32
	if err := vk.Error(vk.GetPhysicalDeviceSurfacePresentModes(toPhysicalDevice(device), toSurface(surface), &presentModeCount, nil)); err != nil {
		return nil, errors.New("vk.GetPhysicalDeviceSurfacePresentModes(): " + err.Error())
	}
	if presentModeCount == 0 {
		return nil, nil
	}

	presentModes := make([]vk.PresentMode, presentModeCount)
	if err := vk.Error(vk.GetPhysicalDeviceSurfacePresentModes(toPhysicalDevice(device), toSurface(surface), &presentModeCount, presentModes)); err != nil {
		return nil, errors.New("vk.GetPhysicalDeviceSurfacePresentModes(): " + err.Error())
	}

	modes := make([]core.PresentMode, 0, presentModeCount)
	for _, mode := range presentModes[:presentModeCount] {
		modes = append(modes, core.PresentMode(mode))
	}
	return modes, nil
}

// CreateDevice implements interface
func (v *Vulkan) CreateDevice(physicalDevice core.PhysicalDeviceHandle, info core.DeviceCreateInfo) (core.DeviceHandle, error) {
	queueInfos := make([]vk.DeviceQueueCreateInfo, 0, len(info.Queues))
	for _, q := range info.Queues {
		queueInfos = append(queueInfos, vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: q.Family,
			QueueCount:       uint32(len(q.Priorities)),
			PQueuePriorities: q.Priorities,
		})
	}

	dci := vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       queueInfos,
		EnabledExtensionCount:   uint32(len(info.Extensions)),
		PpEnabledExtensionNames: safeStrings(info.Extensions),
		EnabledLayerCount:       uint32(len(info.Layers)),
		PpEnabledLayerNames:     safeStrings(info.Layers),
		PEnabledFeatures:        []vk.PhysicalDeviceFeatures{toFeatures(info.Features)},
	}

	var vkDevice vk.Device
	if err := vk.Error(vk.CreateDevice(toPhysicalDevice(physicalDevice), &dci, nil, &vkDevice)); err != nil {
		return 0, errors.New("vk.CreateDevice(): " + err.Error())
	}
	return core.DeviceHandle(unsafe.Pointer(vkDevice)), nil
}

// DeviceQueue implements interface
func (v *Vulkan) DeviceQueue(device core.DeviceHandle, family, index uint32) core.QueueHandle {
	var queue vk.Queue
	vk.GetDeviceQueue(toDevice(device), family, index, &queue)
	return core.QueueHandle(unsafe.Pointer(queue))
}

// DestroyDevice implements interface
func (v *Vulkan) DestroyDevice(device core.DeviceHandle) {
	vk.DeviceWaitIdle(toDevice(device))
	vk.DestroyDevice(toDevice(device), nil)
}

func toFeatures(f core.Features) vk.PhysicalDeviceFeatures {
	var features vk.PhysicalDeviceFeatures
	if f.GeometryShader {
		features.GeometryShader = vk.True
	}
	if f.SamplerAnisotropy {
		features.SamplerAnisotropy = vk.True
	}
	return features
}
