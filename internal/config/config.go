package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"relief-allocation-service/internal/services"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Limits struct {
	MaxCities     int `yaml:"max_cities"`
	MaxWarehouses int `yaml:"max_warehouses"`
	MaxRequests   int `yaml:"max_requests"`
	MaxRoutes     int `yaml:"max_routes"`
	MaxResources  int `yaml:"max_resources"`
}

type Allocation struct {
	DistanceWorkers int `yaml:"distance_workers"`
}

type Server struct {
	Port           string `yaml:"port"`
	WarehousesPath string `yaml:"warehouses_csv"`
	ReliefPath     string `yaml:"relief_csv"`
	RoutesPath     string `yaml:"routes_csv"`
}

type DB struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type Config struct {
	Limits     Limits     `yaml:"limits"`
	Allocation Allocation `yaml:"allocation"`
	Server     Server     `yaml:"server"`
	DB         DB         `yaml:"db"`
}

func Default() Config {
	l := services.DefaultLimits()
	return Config{
		Limits: Limits{
			MaxCities:     l.Cities,
			MaxWarehouses: l.Warehouses,
			MaxRequests:   l.Requests,
			MaxRoutes:     l.Routes,
			MaxResources:  l.Resources,
		},
		Allocation: Allocation{DistanceWorkers: 1},
		Server: Server{
			Port:           "5000",
			WarehousesPath: "data/warehouses.csv",
			ReliefPath:     "data/relief.csv",
			RoutesPath:     "data/routes.csv",
		},
		DB: DB{Driver: "sqlite"},
	}
}

// LoadDotEnv loads .env into the process environment when present.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// any), then environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return Config{}, fmt.Errorf("load config: %q does not exist", path)
		case err != nil:
			return Config{}, fmt.Errorf("load config: read %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config: parse %q: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"MAX_CITIES", &cfg.Limits.MaxCities},
		{"MAX_WAREHOUSES", &cfg.Limits.MaxWarehouses},
		{"MAX_REQUESTS", &cfg.Limits.MaxRequests},
		{"MAX_ROUTES", &cfg.Limits.MaxRoutes},
		{"MAX_RESOURCES", &cfg.Limits.MaxResources},
		{"DISTANCE_WORKERS", &cfg.Allocation.DistanceWorkers},
	}
	for _, e := range ints {
		v := strings.TrimSpace(os.Getenv(e.key))
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("env %s=%q: not an integer", e.key, v)
		}
		*e.dst = n
	}

	cfg.Server.Port = Get("PORT", cfg.Server.Port)
	cfg.Server.WarehousesPath = Get("WAREHOUSES_CSV", cfg.Server.WarehousesPath)
	cfg.Server.ReliefPath = Get("RELIEF_CSV", cfg.Server.ReliefPath)
	cfg.Server.RoutesPath = Get("ROUTES_CSV", cfg.Server.RoutesPath)
	// DATABASE_URL names a Postgres server; DB_PATH a SQLite file.
	switch {
	case Get("DATABASE_URL", "") != "":
		cfg.DB.Driver = "pgx"
		cfg.DB.DSN = Get("DATABASE_URL", "")
	case Get("DB_PATH", "") != "":
		cfg.DB.Driver = "sqlite"
		cfg.DB.DSN = Get("DB_PATH", "")
	}
	cfg.DB.Driver = Get("DB_DRIVER", cfg.DB.Driver)
	return nil
}

func (c Config) Validate() error {
	l := c.Limits
	for name, v := range map[string]int{
		"max_cities":     l.MaxCities,
		"max_warehouses": l.MaxWarehouses,
		"max_requests":   l.MaxRequests,
		"max_routes":     l.MaxRoutes,
		"max_resources":  l.MaxResources,
	} {
		if v < 0 {
			return fmt.Errorf("limits.%s must be >= 0 (got %d)", name, v)
		}
	}
	if c.Allocation.DistanceWorkers < 1 {
		return fmt.Errorf("allocation.distance_workers must be >= 1 (got %d)", c.Allocation.DistanceWorkers)
	}
	switch c.DB.Driver {
	case "sqlite", "pgx":
	default:
		return fmt.Errorf("db.driver must be sqlite or pgx (got %q)", c.DB.Driver)
	}
	if c.DB.Driver == "sqlite" && isPostgresURL(c.DB.DSN) {
		return errors.New("db.dsn is a postgres URL but db.driver is sqlite")
	}
	return nil
}

func isPostgresURL(dsn string) bool {
	dsn = strings.ToLower(strings.TrimSpace(dsn))
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// RunLimits converts the configured bounds for an allocation run.
func (c Config) RunLimits() services.Limits {
	return services.Limits{
		Cities:     c.Limits.MaxCities,
		Warehouses: c.Limits.MaxWarehouses,
		Requests:   c.Limits.MaxRequests,
		Routes:     c.Limits.MaxRoutes,
		Resources:  c.Limits.MaxResources,
	}
}

// PlanRequest returns the allocation settings derived from the configuration.
func (c Config) PlanRequest() services.PlanReliefRequest {
	return services.PlanReliefRequest{
		Limits:   c.RunLimits(),
		Strategy: services.NewGreedyAllocator(c.Allocation.DistanceWorkers),
	}
}

// Get returns the environment value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
