package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

const (
	defaultStoreDriver  = "memory"
	defaultMongoURL     = "mongodb://localhost:27017"
	defaultMongoDB      = "atlas2"
	defaultRedisAddr    = "localhost:6379"
	defaultJWTSecret    = "change-me-in-production"
	defaultAppPort      = "8080"
	defaultAppEnv       = "local"
	defaultProductsFeed = "products.csv"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

// Load reads config/app.json and .env once and merges them over the
// built-in defaults. Later sources win. Missing files are not errors.
func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"STORE_DRIVER":   defaultStoreDriver,
		"MONGO_URL":      defaultMongoURL,
		"DB_NAME":        defaultMongoDB,
		"REDIS_ADDR":     defaultRedisAddr,
		"REDIS_PASSWORD": "",
		"JWT_SECRET":     defaultJWTSecret,
		"APP_PORT":       defaultAppPort,
		"APP_ENV":        defaultAppEnv,
		"PRODUCTS_FEED":  defaultProductsFeed,
	}
}

// StoreDriver selects the ledger backend: "memory" or "mongo".
func StoreDriver() string {
	_ = Load()

	driver := strings.ToLower(get("STORE_DRIVER", defaultStoreDriver))
	switch driver {
	case "memory", "mongo":
		return driver
	default:
		return defaultStoreDriver
	}
}

func MongoURL() string {
	_ = Load()
	return get("MONGO_URL", defaultMongoURL)
}

func MongoDatabase() string {
	_ = Load()
	return get("DB_NAME", defaultMongoDB)
}

// ProductsFeed is the catalog source: a local CSV path or an s3://bucket/key URL.
func ProductsFeed() string {
	_ = Load()
	return get("PRODUCTS_FEED", defaultProductsFeed)
}

func RedisAddr() string {
	_ = Load()
	return get("REDIS_ADDR", defaultRedisAddr)
}

func RedisPassword() string {
	_ = Load()
	return get("REDIS_PASSWORD", "")
}

func JWTSecret() string {
	_ = Load()
	return get("JWT_SECRET", defaultJWTSecret)
}

func AppPort() string {
	_ = Load()
	return get("APP_PORT", defaultAppPort)
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// ── S3 feed source ───────────────────────────────────────────────────────────

func S3Region() string   { _ = Load(); return get("S3_REGION", "us-east-1") }
func S3Key() string      { _ = Load(); return get("S3_KEY", "") }
func S3Secret() string   { _ = Load(); return get("S3_SECRET", "") }
func S3Endpoint() string { _ = Load(); return get("S3_ENDPOINT", "") }

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

// Get reads any config key by name with an optional fallback.
// Keys from .env and app.json are available after config.Load().
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}
