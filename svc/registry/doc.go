// Package registry provides the tenant.Registry backends used by greyhound:
// an in-memory registry seeded from YAML fixtures, PostgreSQL and MongoDB
// registries, and a Redis-backed tenant.Cache.
package registry
