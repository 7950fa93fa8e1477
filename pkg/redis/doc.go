// Package redis opens go-redis v9 clients from REDIS_* configuration with a
// bounded retry loop and exposes a PING based readiness check.
package redis
