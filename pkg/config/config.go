package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Drivers de almacenamiento soportados por STORE_DRIVER.
const (
	StoreMemory   = "memory"
	StoreBolt     = "bolt"
	StoreRedis    = "redis"
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
)

// devJWTSecret solo se usa fuera de production cuando JWT_SECRET no está definido.
const devJWTSecret = "bizpanel-dev-secret"

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	JWT   JWTConfig
	Store StoreConfig
	DB    DBConfig
	Redis RedisConfig
	Mongo MongoConfig
	Seed  SeedConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// StoreConfig selecciona el backend clave-valor donde viven productos, pedidos y usuarios.
type StoreConfig struct {
	Driver   string // memory, bolt, redis, mongo, postgres
	BoltPath string
}

// DBConfig configuración de PostgreSQL (driver "postgres").
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// RedisConfig configuración del driver "redis".
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// MongoConfig configuración del driver "mongo".
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// SeedConfig cantidad de datos de ejemplo que se generan por usuario.
type SeedConfig struct {
	Products int
	Orders   int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, STORE_DRIVER, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env o config.env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "bizpanel"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60*24),
			Issuer:     getString(v, "JWT_ISSUER", "bizpanel"),
		},
		Store: StoreConfig{
			Driver:   strings.ToLower(getString(v, "STORE_DRIVER", StoreBolt)),
			BoltPath: getString(v, "BOLT_PATH", "bizpanel.db"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "bizpanel"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
			Prefix:   getString(v, "REDIS_PREFIX", "bizpanel:"),
		},
		Mongo: MongoConfig{
			URI:        getString(v, "MONGO_URI", "mongodb://localhost:27017"),
			Database:   getString(v, "MONGO_DATABASE", "bizpanel"),
			Collection: getString(v, "MONGO_COLLECTION", "kv"),
		},
		Seed: SeedConfig{
			Products: getInt(v, "SEED_PRODUCTS", 5),
			Orders:   getInt(v, "SEED_ORDERS", 3),
		},
	}

	switch cfg.Store.Driver {
	case StoreMemory, StoreBolt, StoreRedis, StoreMongo, StorePostgres:
	default:
		return nil, fmt.Errorf("config: STORE_DRIVER desconocido %q", cfg.Store.Driver)
	}
	if cfg.JWT.Secret == "" {
		if cfg.App.Env == "production" {
			return nil, fmt.Errorf("config: JWT_SECRET es obligatorio en production")
		}
		cfg.JWT.Secret = devJWTSecret
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
