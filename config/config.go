package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "2MB"
	defaultPageSize           = 9
	defaultMaxImages          = 5
	defaultRecentLimit        = 5
	defaultPointsPerUnit      = 1.0
	defaultActiveWindow       = 30 * 24 * time.Hour
	defaultEnvFile            = ".env"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Storage selects and configures the key-value backend
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// Quotes configuration for recycle request intake and completion
	Quotes *QuotesConfig `json:"quotes" yaml:"quotes"`

	// Inventory configuration for the company inventory view
	Inventory *InventoryConfig `json:"inventory" yaml:"inventory"`

	// Dashboard configuration for admin statistics
	Dashboard *DashboardConfig `json:"dashboard" yaml:"dashboard"`

	// Depot is the collection point pickup distances are measured from
	Depot *DepotConfig `json:"depot" yaml:"depot"`

	// QRCode configuration for order pickup labels
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Seed configuration for demo data
	Seed *SeedConfig `json:"seed" yaml:"seed"`
}

// StorageConfig defines the key-value store backend
type StorageConfig struct {
	// Driver: "memory", "blob", "postgres", "redis" or "mongo"
	Driver string `json:"driver" yaml:"driver"`

	// QuotaBytes bounds the memory driver, 0 means unbounded
	QuotaBytes string `json:"quotaBytes" yaml:"quotaBytes"`

	// DegradeOnError keeps serving from an in-memory overlay when the backend fails
	DegradeOnError bool `json:"degradeOnError" yaml:"degradeOnError"`

	Blob  BlobConfig  `json:"blob" yaml:"blob"`
	Redis RedisConfig `json:"redis" yaml:"redis"`
	Mongo MongoConfig `json:"mongo" yaml:"mongo"`
}

// BlobConfig defines the gocloud blob bucket backend
type BlobConfig struct {
	// BucketURL, e.g. "file:///var/lib/recyclemart" or "mem://"
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	Prefix    string `json:"prefix" yaml:"prefix"`
}

// RedisConfig defines the redis backend
type RedisConfig struct {
	Addr        string        `json:"addr" yaml:"addr"`
	Password    string        `json:"password" yaml:"password"`
	DB          int           `json:"db" yaml:"db"`
	KeyPrefix   string        `json:"keyPrefix" yaml:"keyPrefix"`
	DialTimeout time.Duration `json:"dialTimeout" yaml:"dialTimeout"`
}

// MongoConfig defines the mongo backend
type MongoConfig struct {
	URI            string        `json:"uri" yaml:"uri"`
	Database       string        `json:"database" yaml:"database"`
	Collection     string        `json:"collection" yaml:"collection"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QuotesConfig defines recycle request rules
type QuotesConfig struct {
	// MaxImages caps the images attached to one request
	MaxImages int `json:"maxImages" yaml:"maxImages"`

	// PointsPerCurrencyUnit converts a completed quote into reward points
	PointsPerCurrencyUnit float64 `json:"pointsPerCurrencyUnit" yaml:"pointsPerCurrencyUnit"`

	// RecentLimit is the default size of the recent requests list
	RecentLimit int `json:"recentLimit" yaml:"recentLimit"`
}

// InventoryConfig defines inventory listing configuration
type InventoryConfig struct {
	PageSize int `json:"pageSize" yaml:"pageSize"`
}

// DashboardConfig defines admin dashboard configuration
type DashboardConfig struct {
	// ActiveWindow is how recent a login must be for a user to count as active
	ActiveWindow time.Duration `json:"activeWindow" yaml:"activeWindow"`
}

// DepotConfig defines the collection depot location
type DepotConfig struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "" disables publishing, "local" for local HTTP, "google" for Google Pub/Sub, "amqp" for RabbitMQ
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// AMQP broker URL and exchange (for amqp provider)
	AMQPURL      string `json:"amqpUrl" yaml:"amqpUrl"`
	AMQPExchange string `json:"amqpExchange" yaml:"amqpExchange"`
}

// SeedConfig defines demo data loaded into an empty store
type SeedConfig struct {
	// OnStartup seeds an empty store when the server starts
	OnStartup bool `json:"onStartup" yaml:"onStartup"`

	// AdminEmail and AdminPassword create the first admin account, skipped when empty
	AdminEmail    string `json:"adminEmail" yaml:"adminEmail"`
	AdminPassword string `json:"adminPassword" yaml:"adminPassword"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(defaultEnvFile); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills the sections a minimal config file may leave out.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{Driver: "memory", DegradeOnError: true}
	}
	if strings.TrimSpace(cfg.Storage.Driver) == "" {
		cfg.Storage.Driver = "memory"
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.PasswordStrength == nil {
		cfg.PasswordStrength = &PasswordStrengthConfig{MinLength: 8, RequireLowercase: true, RequireNumbers: true, MaxLength: 128}
	}
	if cfg.Quotes == nil {
		cfg.Quotes = &QuotesConfig{}
	}
	if cfg.Quotes.PointsPerCurrencyUnit <= 0 {
		cfg.Quotes.PointsPerCurrencyUnit = defaultPointsPerUnit
	}
	if cfg.Quotes.MaxImages <= 0 {
		cfg.Quotes.MaxImages = defaultMaxImages
	}
	if cfg.Quotes.RecentLimit <= 0 {
		cfg.Quotes.RecentLimit = defaultRecentLimit
	}
	if cfg.Inventory == nil {
		cfg.Inventory = &InventoryConfig{}
	}
	if cfg.Inventory.PageSize <= 0 {
		cfg.Inventory.PageSize = defaultPageSize
	}
	if cfg.Dashboard == nil {
		cfg.Dashboard = &DashboardConfig{}
	}
	if cfg.Dashboard.ActiveWindow <= 0 {
		cfg.Dashboard.ActiveWindow = defaultActiveWindow
	}
	if cfg.Depot == nil {
		cfg.Depot = &DepotConfig{}
	}
	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.Seed == nil {
		cfg.Seed = &SeedConfig{}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
