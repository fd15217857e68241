package core

import "fmt"

// PhysicalDeviceInfo describes available physical properties of a rendering device
type PhysicalDeviceInfo struct {
	ID                uint32   `json:"id"`
	VendorID          uint32   `json:"vendorId"`
	Name              string   `json:"name"`
	Type              string   `json:"type"`
	DriverVersion     uint32   `json:"driverVersion"`
	APIVersion        string   `json:"apiVersion"`
	Invalid           bool     `json:"invalid"`
	Extensions        []string `json:"extensions"`
	Layers            []string `json:"layers"`
	Memory            uint64   `json:"memory"`
	GeometryShader    bool     `json:"geometryShader"`
	SamplerAnisotropy bool     `json:"samplerAnisotropy"`
	MaxImage2D        uint32   `json:"maxImageDimension2D"`
	Score             int      `json:"score"`
}

// DescribePhysicalDevices reports every device visible to the instance.
// Score ignores surface support since no surface is involved. A device whose
// extensions or layers cannot be listed is marked invalid.
func DescribePhysicalDevices(driver Driver, instance InstanceHandle, req *Requirements) ([]PhysicalDeviceInfo, error) {
	devices, err := driver.PhysicalDevices(instance)
	if err != nil {
		return nil, fmt.Errorf("enumerating physical devices: %w", err)
	}

	pdi := make([]PhysicalDeviceInfo, len(devices))
	for i, device := range devices {
		props := driver.PhysicalDeviceProperties(device)
		features := driver.PhysicalDeviceFeatures(device)

		if extensions, err := driver.DeviceExtensions(device); err != nil {
			pdi[i].Invalid = true
		} else {
			pdi[i].Extensions = extensions
		}
		if layers, err := driver.DeviceLayers(device); err != nil {
			pdi[i].Invalid = true
		} else {
			pdi[i].Layers = layers
		}

		pdi[i].ID = props.DeviceID
		pdi[i].VendorID = props.VendorID
		pdi[i].Name = props.Name
		pdi[i].Type = props.Type.String()
		pdi[i].DriverVersion = props.DriverVersion
		pdi[i].APIVersion = VersionString(props.APIVersion)
		pdi[i].Memory = props.MemoryHeapSize
		pdi[i].GeometryShader = features.GeometryShader
		pdi[i].SamplerAnisotropy = features.SamplerAnisotropy
		pdi[i].MaxImage2D = props.MaxImageDimension2D
		pdi[i].Score = ScoreDevice(props, features, req)
	}
	return pdi, nil
}
