// Package cache provides a generic, concurrency-safe LRU cache whose entries
// expire individually.
//
// It backs the in-process tenant cache: registry lookups are stored for a short
// TTL so that hot tenants do not hit the database on every request, while the
// capacity bound keeps memory flat when many distinct slugs are probed.
//
// # Usage
//
//	c := cache.NewLRU[string, *tenant.Tenant](1000)
//	c.Put("acme", t, 5*time.Minute)
//
//	if t, ok := c.Get("acme"); ok {
//		// use t
//	}
//
// Expired entries are removed lazily when read; there is no background
// goroutine to stop.
package cache
