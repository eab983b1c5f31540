package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the resolved runtime configuration. Values come from
// config.yaml when present and are overridden by environment variables.
type Config struct {
	Port           string
	AllowedOrigin  string
	VerbatimErrors bool
	SolverMaxDepth int
	SolverDebug    bool
}

type configFile struct {
	Server struct {
		Port           string `yaml:"port"`
		AllowedOrigin  string `yaml:"allowed_origin"`
		VerbatimErrors *bool  `yaml:"verbatim_errors"`
	} `yaml:"server"`
	Solver struct {
		MaxDepth int  `yaml:"max_depth"`
		Debug    bool `yaml:"debug"`
	} `yaml:"solver"`
}

func LoadConfig() *Config {
	cfg := &Config{
		Port:           "8812",
		AllowedOrigin:  "*",
		VerbatimErrors: true,
		SolverMaxDepth: 1000,
	}

	if path := getConfigPath(); path != "" {
		if fileCfg, err := loadFromFile(path); err == nil {
			if fileCfg.Server.Port != "" {
				cfg.Port = fileCfg.Server.Port
			}
			if fileCfg.Server.AllowedOrigin != "" {
				cfg.AllowedOrigin = fileCfg.Server.AllowedOrigin
			}
			if fileCfg.Server.VerbatimErrors != nil {
				cfg.VerbatimErrors = *fileCfg.Server.VerbatimErrors
			}
			if fileCfg.Solver.MaxDepth > 0 {
				cfg.SolverMaxDepth = fileCfg.Solver.MaxDepth
			}
			if fileCfg.Solver.Debug {
				cfg.SolverDebug = true
			}
		}
	}

	cfg.Port = getEnv("API_PORT", cfg.Port)
	cfg.AllowedOrigin = getEnv("ALLOWED_ORIGIN", cfg.AllowedOrigin)
	cfg.VerbatimErrors = getBoolEnv("VERBATIM_ERRORS", cfg.VerbatimErrors)
	cfg.SolverMaxDepth = getIntEnv("SOLVER_MAX_DEPTH", cfg.SolverMaxDepth)
	cfg.SolverDebug = getBoolEnv("SOLVER_DEBUG", cfg.SolverDebug)

	return cfg
}

func getConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}

	wd, err := os.Getwd()
	if err != nil {
		return ""
	}

	paths := []string{
		filepath.Join(wd, "config.yaml"),
		filepath.Join(filepath.Dir(wd), "config.yaml"),
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

func loadFromFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
