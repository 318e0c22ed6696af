package cache

import "time"

// Layered composes caches from fastest to slowest. A hit in a slower
// layer is written back to the faster layers in front of it.
type Layered struct {
	layers []Cache
}

// NewLayered creates a layered cache. Layers are consulted in order.
func NewLayered(layers ...Cache) *Layered {
	return &Layered{layers: layers}
}

// Get returns the first hit across the layers, backfilling faster layers.
func (l *Layered) Get(key string) ([]byte, bool) {
	for i, layer := range l.layers {
		value, found := layer.Get(key)
		if !found {
			continue
		}
		for j := 0; j < i; j++ {
			_ = l.layers[j].Set(key, value, 0)
		}
		return value, true
	}
	return nil, false
}

// Set stores the value in every layer.
func (l *Layered) Set(key string, value []byte, ttl time.Duration) error {
	for _, layer := range l.layers {
		if err := layer.Set(key, value, ttl); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the value from every layer.
func (l *Layered) Delete(key string) error {
	for _, layer := range l.layers {
		if err := layer.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
