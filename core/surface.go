package core

import "fmt"

// CreateSurface wraps the window into a presentable surface of the instance
func CreateSurface(driver Driver, windowing Windowing, instance InstanceHandle) (SurfaceHandle, error) {
	if windowing == nil {
		return 0, fmt.Errorf("%w: no window to present to", ErrCreationFailed)
	}
	ptr, err := windowing.CreateSurface(driver.NativeInstance(instance))
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrCreationFailed, err)
	}
	if ptr == 0 {
		return 0, fmt.Errorf("%w: window toolkit returned no surface", ErrCreationFailed)
	}
	return driver.SurfaceFromPointer(ptr), nil
}
