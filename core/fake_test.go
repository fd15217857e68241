package core_test

import (
	"errors"

	"github.com/devblok/vkboot/core"
)

const (
	fakeInstance  core.InstanceHandle       = 0x10
	fakeMessenger core.DebugMessengerHandle = 0x20
	fakeSurface   uintptr                   = 0x30
	fakeDevice    core.DeviceHandle         = 0x40
)

type fakeGPU struct {
	props      core.PhysicalDeviceProperties
	features   core.Features
	extensions []string
	extErr     error
	layers     []string
	families   []core.QueueFamilyProperties
	present    map[uint32]bool
	presentErr error
	formats    []core.SurfaceFormat
	modes      []core.PresentMode
}

// suitableGPU returns a device whose family 0 does graphics and presents
func suitableGPU(name string, kind core.PhysicalDeviceType, maxImage2D uint32) fakeGPU {
	return fakeGPU{
		props: core.PhysicalDeviceProperties{
			Name:                name,
			Type:                kind,
			MaxImageDimension2D: maxImage2D,
			APIVersion:          core.MakeVersion(1, 2, 0),
		},
		features:   core.Features{GeometryShader: true},
		extensions: []string{core.KhrSwapchainExtension},
		families: []core.QueueFamilyProperties{
			{Flags: core.QueueGraphicsBit | core.QueueComputeBit, Count: 1},
		},
		present: map[uint32]bool{0: true},
		formats: []core.SurfaceFormat{core.PreferredSurfaceFormat},
		modes:   []core.PresentMode{core.PresentModeFifo},
	}
}

type queueRequest struct {
	Device core.DeviceHandle
	Family uint32
	Index  uint32
}

type fakeDriver struct {
	layers            []string
	extensions        []string
	debugAvailable    bool
	messengerErr      error
	gpus              []fakeGPU
	devicesErr        error
	createInstanceErr error
	createDeviceErr   error

	instanceCreates  []core.InstanceCreateInfo
	messengerCreates []core.DebugMessengerCreateInfo
	deviceCreates    []core.DeviceCreateInfo
	queueRequests    []queueRequest
	destroyed        []string
}

func newFakeDriver(gpus ...fakeGPU) *fakeDriver {
	return &fakeDriver{
		layers:         []string{core.KhronosValidationLayer},
		extensions:     []string{"VK_KHR_surface", "VK_KHR_xcb_surface", "VK_EXT_debug_report"},
		debugAvailable: true,
		gpus:           gpus,
	}
}

func (d *fakeDriver) gpu(h core.PhysicalDeviceHandle) fakeGPU {
	return d.gpus[int(h)-1]
}

func (d *fakeDriver) InstanceLayers() ([]string, error) {
	return d.layers, nil
}

func (d *fakeDriver) InstanceExtensions() ([]string, error) {
	return d.extensions, nil
}

func (d *fakeDriver) CreateInstance(info core.InstanceCreateInfo) (core.InstanceHandle, error) {
	d.instanceCreates = append(d.instanceCreates, info)
	if d.createInstanceErr != nil {
		return 0, d.createInstanceErr
	}
	return fakeInstance, nil
}

func (d *fakeDriver) DestroyInstance(core.InstanceHandle) {
	d.destroyed = append(d.destroyed, "instance")
}

func (d *fakeDriver) DebugExtension() string {
	return "VK_EXT_debug_report"
}

func (d *fakeDriver) LookupDebugMessenger(core.InstanceHandle) (core.CreateDebugMessengerFunc, core.DestroyDebugMessengerFunc) {
	if !d.debugAvailable {
		return nil, nil
	}
	create := func(info core.DebugMessengerCreateInfo) (core.DebugMessengerHandle, error) {
		d.messengerCreates = append(d.messengerCreates, info)
		if d.messengerErr != nil {
			return 0, d.messengerErr
		}
		return fakeMessenger, nil
	}
	destroy := func(core.DebugMessengerHandle) {
		d.destroyed = append(d.destroyed, "debug messenger")
	}
	return create, destroy
}

func (d *fakeDriver) NativeInstance(instance core.InstanceHandle) interface{} {
	return instance
}

func (d *fakeDriver) SurfaceFromPointer(ptr uintptr) core.SurfaceHandle {
	return core.SurfaceHandle(ptr)
}

func (d *fakeDriver) DestroySurface(core.InstanceHandle, core.SurfaceHandle) {
	d.destroyed = append(d.destroyed, "surface")
}

func (d *fakeDriver) PhysicalDevices(core.InstanceHandle) ([]core.PhysicalDeviceHandle, error) {
	if d.devicesErr != nil {
		return nil, d.devicesErr
	}
	var handles []core.PhysicalDeviceHandle
	for i := range d.gpus {
		handles = append(handles, core.PhysicalDeviceHandle(i+1))
	}
	return handles, nil
}

func (d *fakeDriver) PhysicalDeviceProperties(h core.PhysicalDeviceHandle) core.PhysicalDeviceProperties {
	return d.gpu(h).props
}

func (d *fakeDriver) PhysicalDeviceFeatures(h core.PhysicalDeviceHandle) core.Features {
	return d.gpu(h).features
}

func (d *fakeDriver) DeviceExtensions(h core.PhysicalDeviceHandle) ([]string, error) {
	g := d.gpu(h)
	return g.extensions, g.extErr
}

func (d *fakeDriver) DeviceLayers(h core.PhysicalDeviceHandle) ([]string, error) {
	return d.gpu(h).layers, nil
}

func (d *fakeDriver) QueueFamilies(h core.PhysicalDeviceHandle) []core.QueueFamilyProperties {
	return d.gpu(h).families
}

func (d *fakeDriver) SurfaceSupport(h core.PhysicalDeviceHandle, family uint32, _ core.SurfaceHandle) (bool, error) {
	g := d.gpu(h)
	if g.presentErr != nil {
		return false, g.presentErr
	}
	return g.present[family], nil
}

func (d *fakeDriver) SurfaceCapabilities(core.PhysicalDeviceHandle, core.SurfaceHandle) (core.SurfaceCapabilities, error) {
	return core.SurfaceCapabilities{MinImageCount: 2, MaxImageCount: 8}, nil
}

func (d *fakeDriver) SurfaceFormats(h core.PhysicalDeviceHandle, _ core.SurfaceHandle) ([]core.SurfaceFormat, error) {
	return d.gpu(h).formats, nil
}

func (d *fakeDriver) SurfacePresentModes(h core.PhysicalDeviceHandle, _ core.SurfaceHandle) ([]core.PresentMode, error) {
	return d.gpu(h).modes, nil
}

func (d *fakeDriver) CreateDevice(_ core.PhysicalDeviceHandle, info core.DeviceCreateInfo) (core.DeviceHandle, error) {
	d.deviceCreates = append(d.deviceCreates, info)
	if d.createDeviceErr != nil {
		return 0, d.createDeviceErr
	}
	return fakeDevice, nil
}

func (d *fakeDriver) DeviceQueue(device core.DeviceHandle, family, index uint32) core.QueueHandle {
	d.queueRequests = append(d.queueRequests, queueRequest{Device: device, Family: family, Index: index})
	return core.QueueHandle(0x100 + family)
}

func (d *fakeDriver) DestroyDevice(core.DeviceHandle) {
	d.destroyed = append(d.destroyed, "logical device")
}

type fakeWindow struct {
	extensions []string
	surface    uintptr
	err        error

	received interface{}
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{
		extensions: []string{"VK_KHR_surface", "VK_KHR_xcb_surface"},
		surface:    fakeSurface,
	}
}

func (w *fakeWindow) RequiredInstanceExtensions() []string {
	return w.extensions
}

func (w *fakeWindow) CreateSurface(nativeInstance interface{}) (uintptr, error) {
	w.received = nativeInstance
	if w.err != nil {
		return 0, w.err
	}
	return w.surface, nil
}

var errDriver = errors.New("VK_ERROR_INITIALIZATION_FAILED")
