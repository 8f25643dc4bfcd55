// Package cache provides a generic, thread-safe LRU cache.
//
//	kernels := cache.New[float64, []float32](64)
//	k := kernels.GetOrCreate(sigma, func() []float32 { return build(sigma) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
