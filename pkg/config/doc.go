// Package config loads typed configuration from environment variables.
//
// Structs declare their variables with github.com/caarlos0/env tags; a .env
// file is honoured through github.com/joho/godotenv. Every struct type is
// parsed once and cached, so packages can call Load for their own config
// without coordinating with main:
//
//	var pgCfg pg.Config
//	config.MustLoad(&pgCfg)
//
// Tests that modify the environment call Reset before loading again.
package config
