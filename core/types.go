package core

import "fmt"

// MakeVersion packs a version the way the API expects it
func MakeVersion(major, minor, patch uint32) uint32 {
	return major<<22 | minor<<12 | patch
}

// VersionString unpacks a version made with MakeVersion
func VersionString(v uint32) string {
	return fmt.Sprintf("%d.%d.%d", v>>22, (v>>12)&0x3ff, v&0xfff)
}

// ApplicationInfo is informational metadata passed to the instance.
// It does not take part in capability negotiation.
type ApplicationInfo struct {
	Name          string
	Version       uint32
	EngineName    string
	EngineVersion uint32
	APIVersion    uint32
}

// InstanceCreateInfo describes the instance to create
type InstanceCreateInfo struct {
	Application ApplicationInfo
	Extensions  []string
	Layers      []string
}

// PhysicalDeviceType mirrors VkPhysicalDeviceType
type PhysicalDeviceType uint32

// Physical device types
const (
	PhysicalDeviceTypeOther PhysicalDeviceType = iota
	PhysicalDeviceTypeIntegratedGPU
	PhysicalDeviceTypeDiscreteGPU
	PhysicalDeviceTypeVirtualGPU
	PhysicalDeviceTypeCPU
)

func (t PhysicalDeviceType) String() string {
	switch t {
	case PhysicalDeviceTypeIntegratedGPU:
		return "integrated"
	case PhysicalDeviceTypeDiscreteGPU:
		return "discrete"
	case PhysicalDeviceTypeVirtualGPU:
		return "virtual"
	case PhysicalDeviceTypeCPU:
		return "cpu"
	default:
		return "other"
	}
}

// PhysicalDeviceProperties is the subset of device properties used for selection
// and reporting
type PhysicalDeviceProperties struct {
	Name                string
	Type                PhysicalDeviceType
	VendorID            uint32
	DeviceID            uint32
	DriverVersion       uint32
	APIVersion          uint32
	MaxImageDimension2D uint32
	MemoryHeapSize      uint64
}

// Features is the subset of optional device features the bootstrap
// knows how to gate on
type Features struct {
	GeometryShader    bool
	SamplerAnisotropy bool
}

// Covers reports whether every feature enabled in required is enabled in f
func (f Features) Covers(required Features) bool {
	if required.GeometryShader && !f.GeometryShader {
		return false
	}
	if required.SamplerAnisotropy && !f.SamplerAnisotropy {
		return false
	}
	return true
}

// QueueFlags mirrors VkQueueFlags
type QueueFlags uint32

// Queue capability bits
const (
	QueueGraphicsBit QueueFlags = 1 << iota
	QueueComputeBit
	QueueTransferBit
	QueueSparseBindingBit
)

// QueueFamilyProperties describes one queue family of a device
type QueueFamilyProperties struct {
	Flags QueueFlags
	Count uint32
}

// Extent2D is a two-dimensional size in pixels
type Extent2D struct {
	Width  uint32
	Height uint32
}

// SurfaceCapabilities holds the capability limits of a surface on a device
type SurfaceCapabilities struct {
	MinImageCount       uint32
	MaxImageCount       uint32
	CurrentExtent       Extent2D
	MinImageExtent      Extent2D
	MaxImageExtent      Extent2D
	MaxImageArrayLayers uint32
	SupportedTransforms uint32
	CurrentTransform    uint32
}

// Format mirrors VkFormat. Only values the bootstrap refers to are named.
type Format uint32

// Surface formats
const (
	FormatUndefined     Format = 0
	FormatB8G8R8A8Unorm Format = 44
	FormatB8G8R8A8Srgb  Format = 50
)

// ColorSpace mirrors VkColorSpaceKHR
type ColorSpace uint32

// Color spaces
const (
	ColorSpaceSrgbNonlinear ColorSpace = 0
)

// SurfaceFormat pairs a pixel format with a color space
type SurfaceFormat struct {
	Format     Format
	ColorSpace ColorSpace
}

// PresentMode mirrors VkPresentModeKHR
type PresentMode uint32

// Present modes
const (
	PresentModeImmediate PresentMode = iota
	PresentModeMailbox
	PresentModeFifo
	PresentModeFifoRelaxed
)

// DeviceQueueCreateInfo requests queues from one family
type DeviceQueueCreateInfo struct {
	Family     uint32
	Priorities []float32
}

// DeviceCreateInfo describes the logical device to create
type DeviceCreateInfo struct {
	Queues     []DeviceQueueCreateInfo
	Features   Features
	Extensions []string
	Layers     []string
}

// DebugSeverity is a bit set of diagnostic message severities
type DebugSeverity uint32

// Debug message severities
const (
	DebugSeverityVerbose DebugSeverity = 1 << iota
	DebugSeverityInfo
	DebugSeverityWarning
	DebugSeverityError
)

func (s DebugSeverity) String() string {
	switch {
	case s&DebugSeverityError != 0:
		return "error"
	case s&DebugSeverityWarning != 0:
		return "warning"
	case s&DebugSeverityInfo != 0:
		return "info"
	default:
		return "verbose"
	}
}

// DebugMessageType is a bit set of diagnostic message types
type DebugMessageType uint32

// Debug message types
const (
	DebugTypeGeneral DebugMessageType = 1 << iota
	DebugTypeValidation
	DebugTypePerformance
)

func (t DebugMessageType) String() string {
	switch {
	case t&DebugTypePerformance != 0:
		return "performance"
	case t&DebugTypeValidation != 0:
		return "validation"
	default:
		return "general"
	}
}

// DebugCallback receives diagnostic messages. Returning true asks the
// driver to abort the call that triggered the message.
type DebugCallback func(severity DebugSeverity, kind DebugMessageType, message string) bool

// DebugMessengerCreateInfo describes the debug messenger to attach
type DebugMessengerCreateInfo struct {
	Severities DebugSeverity
	Types      DebugMessageType
	Callback   DebugCallback
}
