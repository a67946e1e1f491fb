package threadsafe

import "sync"

type Value[T any] struct {
	value T
	mux   *sync.RWMutex
}

func NewValue[T any](v T) *Value[T] {
	return &Value[T]{
		value: v,
		mux:   &sync.RWMutex{},
	}
}

func (v *Value[T]) Get() T {
	v.mux.RLock()
	defer v.mux.RUnlock()
	return v.value
}

func (v *Value[T]) Set(value T) {
	v.mux.Lock()
	defer v.mux.Unlock()
	v.value = value
}

// SetIf stores value only when condition holds for the current value and
// reports whether it did.
func (v *Value[T]) SetIf(value T, condition func(current T) bool) bool {
	v.mux.Lock()
	defer v.mux.Unlock()
	if !condition(v.value) {
		return false
	}
	v.value = value
	return true
}
