package config

import (
	"os"
)

type Config struct {
	Addr        string
	CatalogPath string
	GinMode     string
}

func Load() Config {
	return Config{
		Addr:        getenv("ADDR", ":8080"),
		CatalogPath: os.Getenv("CATALOG_PATH"),
		GinMode:     getenv("GIN_MODE", "release"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
