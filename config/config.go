package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read from the working directory when no path is given.
const DefaultConfigFile = "config.yaml"

// Dataset names used throughout the dashboard.
const (
	DatasetTweets      = "tweets"
	DatasetWeblinks    = "weblinks"
	DatasetActiveUsers = "active_users"
	DatasetEntities    = "entities"
	DatasetWords       = "words"
)

// Dataset sources.
const (
	SourceCSV = "csv"
	SourceSQL = "sql"
)

// DatasetConfig describes where one dataset is read from.
type DatasetConfig struct {
	Source    string `yaml:"source"`    // csv | sql
	Path      string `yaml:"path"`      // relative paths are resolved against Data.BaseDir
	Delimiter string `yaml:"delimiter"` // single character, csv only
	Table     string `yaml:"table"`     // sql only
}

// Comma returns the delimiter as a rune, defaulting to ','.
func (d DatasetConfig) Comma() rune {
	if d.Delimiter == "" {
		return ','
	}
	if d.Delimiter == `\t` {
		return '\t'
	}
	return []rune(d.Delimiter)[0]
}

type DataConfig struct {
	BaseDir     string        `yaml:"base_dir"`
	Tweets      DatasetConfig `yaml:"tweets"`
	Weblinks    DatasetConfig `yaml:"weblinks"`
	ActiveUsers DatasetConfig `yaml:"active_users"`
	Entities    DatasetConfig `yaml:"entities"`
	Words       DatasetConfig `yaml:"words"`
}

// Lookup returns the dataset configuration by name with its path resolved.
func (d *DataConfig) Lookup(name string) (DatasetConfig, bool) {
	var ds DatasetConfig
	switch name {
	case DatasetTweets:
		ds = d.Tweets
	case DatasetWeblinks:
		ds = d.Weblinks
	case DatasetActiveUsers:
		ds = d.ActiveUsers
	case DatasetEntities:
		ds = d.Entities
	case DatasetWords:
		ds = d.Words
	default:
		return DatasetConfig{}, false
	}
	if ds.Path != "" && !filepath.IsAbs(ds.Path) && d.BaseDir != "" {
		ds.Path = filepath.Join(d.BaseDir, ds.Path)
	}
	return ds, true
}

// UsesSQL reports whether any dataset is read from the database.
func (d *DataConfig) UsesSQL() bool {
	for _, ds := range []DatasetConfig{d.Tweets, d.Weblinks, d.ActiveUsers, d.Entities, d.Words} {
		if ds.Source == SourceSQL {
			return true
		}
	}
	return false
}

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Addr string `yaml:"-"` // computed after loading
	} `yaml:"server"`
	Log struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Output   string `yaml:"output"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`

	DB struct {
		Driver          string `yaml:"driver"` // mysql | sqlite
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		Username        string `yaml:"username"`
		Password        string `yaml:"password"`
		Database        string `yaml:"database"` // database name, or file path for sqlite
		Charset         string `yaml:"charset"`
		ParseTime       bool   `yaml:"parse_time"`
		DSN             string `yaml:"dsn"`
		MaxOpenConns    int    `yaml:"max_open_conns"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // minutes
	} `yaml:"database"`

	Data DataConfig `yaml:"data"`

	Domains struct {
		Registrable bool `yaml:"registrable"` // collapse hostnames to eTLD+1
	} `yaml:"domains"`

	Dashboard struct {
		TopNDefault    int    `yaml:"top_n_default"`
		TopNMax        int    `yaml:"top_n_max"`
		DomainsDefault int    `yaml:"domains_default"`
		DomainsMin     int    `yaml:"domains_min"`
		DomainsMax     int    `yaml:"domains_max"`
		TermsDefault   int    `yaml:"terms_default"`
		TermsMin       int    `yaml:"terms_min"`
		TermsMax       int    `yaml:"terms_max"`
		TimeBucket     string `yaml:"time_bucket"`
	} `yaml:"dashboard"`
}

// Load reads config.yaml from the working directory, falling back to the environment.
func Load() *Config {
	cfg, err := LoadFile(DefaultConfigFile)
	if err != nil {
		log.Printf("Error loading %s: %v, falling back to environment variables", DefaultConfigFile, err)
		return loadFromEnv()
	}
	log.Printf("Loading configuration from %s", DefaultConfigFile)
	return cfg
}

// LoadFile reads the given YAML file, then applies .env and environment overrides and defaults.
func LoadFile(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}

	applyEnvironmentOverrides(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

func loadFromEnv() *Config {
	_ = godotenv.Load()

	var cfg Config
	applyEnvironmentOverrides(&cfg)
	applyDefaults(&cfg)

	log.Println("Configuration loaded from environment, using defaults for the rest")
	return &cfg
}

func applyEnvironmentOverrides(cfg *Config) {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		cfg.Data.BaseDir = dir
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if username := os.Getenv("DATABASE_USERNAME"); username != "" {
		cfg.DB.Username = username
	}
	if password := os.Getenv("DATABASE_PASSWORD"); password != "" {
		cfg.DB.Password = password
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		cfg.DB.DSN = dsn
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8501
	}
	cfg.Server.Addr = fmt.Sprintf(":%d", cfg.Server.Port)

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}

	if cfg.Data.BaseDir == "" {
		cfg.Data.BaseDir = filepath.Join("data", "processed")
	}
	defaultDataset(&cfg.Data.Tweets, "combined_categorization.csv", ";", "combined_categorization")
	defaultDataset(&cfg.Data.Weblinks, "combined_weblinks.csv", ",", "combined_weblinks")
	defaultDataset(&cfg.Data.ActiveUsers, "combined_categorization_most_active_users.csv", ";", "combined_categorization_most_active_users")
	defaultDataset(&cfg.Data.Entities, "entity_frequencies.csv", ";", "entity_frequencies")
	defaultDataset(&cfg.Data.Words, "word_frequencies.csv", ";", "word_frequencies")

	if cfg.Dashboard.TopNDefault <= 0 {
		cfg.Dashboard.TopNDefault = 10
	}
	if cfg.Dashboard.TopNMax <= 0 {
		cfg.Dashboard.TopNMax = 30
	}
	if cfg.Dashboard.DomainsDefault <= 0 {
		cfg.Dashboard.DomainsDefault = 10
	}
	if cfg.Dashboard.DomainsMin <= 0 {
		cfg.Dashboard.DomainsMin = 5
	}
	if cfg.Dashboard.DomainsMax <= 0 {
		cfg.Dashboard.DomainsMax = 30
	}
	if cfg.Dashboard.TermsDefault <= 0 {
		cfg.Dashboard.TermsDefault = 10
	}
	if cfg.Dashboard.TermsMin <= 0 {
		cfg.Dashboard.TermsMin = 5
	}
	if cfg.Dashboard.TermsMax <= 0 {
		cfg.Dashboard.TermsMax = 30
	}
	if cfg.Dashboard.TimeBucket == "" {
		cfg.Dashboard.TimeBucket = "day"
	}

	if cfg.DB.Driver == "" {
		cfg.DB.Driver = "mysql"
	}
	if cfg.DB.DSN == "" {
		cfg.DB.DSN = buildDSN(cfg)
	}
}

func defaultDataset(ds *DatasetConfig, path, delimiter, table string) {
	if ds.Source == "" {
		ds.Source = SourceCSV
	}
	ds.Source = strings.ToLower(ds.Source)
	if ds.Path == "" {
		ds.Path = path
	}
	if ds.Delimiter == "" {
		ds.Delimiter = delimiter
	}
	if ds.Table == "" {
		ds.Table = table
	}
}

func buildDSN(cfg *Config) string {
	switch cfg.DB.Driver {
	case "sqlite":
		return cfg.DB.Database
	case "mysql":
		if cfg.DB.Host == "" {
			return ""
		}
		if cfg.DB.Charset == "" {
			cfg.DB.Charset = "utf8mb4"
		}
		parseTime := ""
		if cfg.DB.ParseTime {
			parseTime = "&parseTime=true"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s%s",
			cfg.DB.Username,
			cfg.DB.Password,
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.Database,
			cfg.DB.Charset,
			parseTime)
	}
	return ""
}
