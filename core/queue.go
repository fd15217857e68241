package core

import (
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// OptionalIndex is a queue family index that may not be resolved yet
type OptionalIndex struct {
	value uint32
	set   bool
}

// Set resolves the index
func (o *OptionalIndex) Set(v uint32) {
	o.value = v
	o.set = true
}

// Get returns the index and whether it is resolved
func (o OptionalIndex) Get() (uint32, bool) {
	return o.value, o.set
}

// HasValue reports whether the index is resolved
func (o OptionalIndex) HasValue() bool {
	return o.set
}

// QueueFamilyIndices holds the queue families resolved for each role
type QueueFamilyIndices struct {
	Graphics OptionalIndex
	Present  OptionalIndex
}

// IsComplete returns true if every role has been resolved
func (q QueueFamilyIndices) IsComplete() bool {
	return q.Graphics.HasValue() && q.Present.HasValue()
}

// Unique returns the resolved indices without duplicates, graphics first.
// One queue creation request is issued per returned index.
func (q QueueFamilyIndices) Unique() []uint32 {
	var unique []uint32
	for _, idx := range []OptionalIndex{q.Graphics, q.Present} {
		v, ok := idx.Get()
		if !ok {
			continue
		}
		if !slices.Contains(unique, v) {
			unique = append(unique, v)
		}
	}
	return unique
}

// FindQueueFamilies scans the queue families of the device in index order.
// The first family with the graphics bit becomes the graphics family and the
// first family able to present to surface becomes the present family.
// The scan stops as soon as both are resolved.
func FindQueueFamilies(driver Driver, device PhysicalDeviceHandle, surface SurfaceHandle, logger log.FieldLogger) QueueFamilyIndices {
	var indices QueueFamilyIndices

	for i, family := range driver.QueueFamilies(device) {
		idx := uint32(i)
		if !indices.Graphics.HasValue() && family.Flags&QueueGraphicsBit != 0 {
			indices.Graphics.Set(idx)
		}

		supported, err := driver.SurfaceSupport(device, idx, surface)
		if err != nil {
			logger.WithField("family", idx).Warnf("querying surface support: %s", err)
		} else if supported && !indices.Present.HasValue() {
			indices.Present.Set(idx)
		}

		if indices.IsComplete() {
			break
		}
	}
	return indices
}
