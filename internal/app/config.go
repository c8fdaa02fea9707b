package app

import (
	"time"

	"github.com/yungbote/graphask-backend/internal/platform/envutil"
)

type Config struct {
	Port        string
	Environment string

	GateThreshold    int
	MemoryMaxEntries int
	AllowWrites      bool
	SchemaCacheTTL   time.Duration
}

func LoadConfig() Config {
	return Config{
		Port:             envutil.String("PORT", "8080"),
		Environment:      envutil.String("APP_ENV", "development"),
		GateThreshold:    envutil.Int("QA_GATE_THRESHOLD", 0),
		MemoryMaxEntries: envutil.Int("QA_MEMORY_MAX_ENTRIES", 0),
		AllowWrites:      envutil.Bool("QA_ALLOW_WRITES", false),
		SchemaCacheTTL:   envutil.Seconds("QA_SCHEMA_CACHE_TTL_SECONDS", 5*time.Minute),
	}
}
