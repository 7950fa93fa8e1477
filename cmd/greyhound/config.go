package main

import (
	"fmt"
	"strings"
	"time"
)

// Registry and cache backends selectable through the environment.
const (
	backendMemory   = "memory"
	backendPostgres = "postgres"
	backendMongo    = "mongo"
	backendRedis    = "redis"
	backendNone     = "none"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"greyhound"`

	Exempt      []string `env:"TENANTS_EXEMPT" envDefault:"admin,healthz"`
	AppendSlash bool     `env:"APPEND_SLASH" envDefault:"true"`

	Registry string `env:"TENANT_REGISTRY" envDefault:"memory"`
	Fixtures string `env:"TENANT_FIXTURES" envDefault:"config/tenants.yaml"`

	Cache     string        `env:"TENANT_CACHE" envDefault:"memory"`
	CacheTTL  time.Duration `env:"TENANT_CACHE_TTL" envDefault:"5m"`
	CacheSize int           `env:"TENANT_CACHE_SIZE" envDefault:"1000"`
}

func (c appConfig) validate() error {
	switch strings.ToLower(c.Registry) {
	case backendMemory, backendPostgres, backendMongo:
	default:
		return fmt.Errorf("TENANT_REGISTRY: unsupported backend %q", c.Registry)
	}
	switch strings.ToLower(c.Cache) {
	case backendMemory, backendRedis, backendNone, "":
	default:
		return fmt.Errorf("TENANT_CACHE: unsupported backend %q", c.Cache)
	}
	return nil
}
