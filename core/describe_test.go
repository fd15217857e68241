package core_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/devblok/vkboot/core"
	qt "github.com/frankban/quicktest"
)

func TestDescribePhysicalDevices(t *testing.T) {
	c := qt.New(t)

	dgpu := suitableGPU("dgpu", core.PhysicalDeviceTypeDiscreteGPU, 16384)
	dgpu.props.VendorID = 0x10de
	dgpu.props.DeviceID = 0x2484
	dgpu.props.MemoryHeapSize = 8 << 30
	dgpu.layers = []string{}
	dgpu.features.SamplerAnisotropy = true

	broken := suitableGPU("broken", core.PhysicalDeviceTypeIntegratedGPU, 8192)
	broken.extErr = errDriver
	broken.features = core.Features{}

	driver := newFakeDriver(dgpu, broken)
	infos, err := core.DescribePhysicalDevices(driver, fakeInstance, core.DefaultRequirements())
	c.Assert(err, qt.IsNil)
	c.Assert(infos, qt.HasLen, 2)

	c.Assert(infos[0], qt.DeepEquals, core.PhysicalDeviceInfo{
		ID:                0x2484,
		VendorID:          0x10de,
		Name:              "dgpu",
		Type:              "discrete",
		APIVersion:        "1.2.0",
		Extensions:        []string{core.KhrSwapchainExtension},
		Layers:            []string{},
		Memory:            8 << 30,
		GeometryShader:    true,
		SamplerAnisotropy: true,
		MaxImage2D:        16384,
		Score:             17384,
	})

	c.Assert(infos[1].Invalid, qt.IsTrue)
	c.Assert(infos[1].Extensions, qt.IsNil)
	c.Assert(infos[1].Score, qt.Equals, 0)

	bytes, err := json.Marshal(infos[1])
	c.Assert(err, qt.IsNil)
	c.Assert(string(bytes), qt.Contains, `"invalid":true`)
	c.Assert(string(bytes), qt.Contains, `"type":"integrated"`)
	c.Assert(string(bytes), qt.Contains, `"samplerAnisotropy":false`)
}

func TestDescribePhysicalDevicesEnumerationError(t *testing.T) {
	c := qt.New(t)
	driver := newFakeDriver()
	driver.devicesErr = errDriver

	_, err := core.DescribePhysicalDevices(driver, fakeInstance, core.DefaultRequirements())
	c.Assert(errors.Is(err, errDriver), qt.IsTrue)
}
