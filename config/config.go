package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"path/filepath"

	"github.com/vuciv/imessage-wrapped/util"

	"github.com/spf13/viper"
)

//----------------------------------------------------------------------------------------------------
// Run Configuration
//----------------------------------------------------------------------------------------------------

// Config is the struct that will store the configuration values.
// The `mapstructure` tags are used by Viper to map the keys from
// the configuration file to the fields of your struct.
type Config struct {
	Year     int    `mapstructure:"year"`
	Mode     string `mapstructure:"mode"`   // "individual", "group" or "all"
	Target   string `mapstructure:"target"` // Phone/email, contact name, or fuzzy group name
	Name     string `mapstructure:"name"`   // Optional display-name override for the target
	SelfName string `mapstructure:"self-name"`
	Privacy  bool   `mapstructure:"privacy"`
	Timezone string `mapstructure:"timezone"` // IANA name; empty means system local
	Seed     int64  `mapstructure:"seed"`     // Sample-draw seed; 0 means nondeterministic
	Archive  struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"archive"`
	Contacts struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"contacts"`
	Nats struct {
		Server  string `mapstructure:"server"`
		Port    int    `mapstructure:"port"`
		Subject string `mapstructure:"subject"`
		Bucket  string `mapstructure:"bucket"`
	} `mapstructure:"nats"`
	// Dependent variables
	ArchivePath  string
	ContactsPath string
	NatsURL      string // Empty when no NATS handoff is configured
	Location     *time.Location
}

// Configuration reads the configuration file and loads it into the struct.
func Configuration() (*Config, error) {

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	configDirPath := filepath.Join(home, ".imessage-wrapped")

	if err := os.MkdirAll(configDirPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory '%s': %w", configDirPath, err)
	}

	configFilePath := filepath.Join(configDirPath, "config.yaml")

	if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
		log.Println("File 'config.yaml' not found. Creating a sample file.")
		exampleConfig := `year: 2023
mode: "all"
target: ""
name: ""
self-name: "YOU"
privacy: false
timezone: ""   # IANA name, e.g. "America/New_York"; empty uses the system zone
seed: 0
archive:
  path: "~/Library/Messages/chat.db"
contacts:
  path: ""     # optional AddressBook database; empty degrades to raw identifiers
nats:
  server: ""   # e.g. "nats://localhost"; empty disables the report handoff
  port: 4222
  subject: "wrapped.reports"
  bucket: "wrapped_reports_bkt"
`
		if writeErr := os.WriteFile(configFilePath, []byte(exampleConfig), 0644); writeErr != nil {
			return nil, fmt.Errorf("failed to create sample configuration file: %w", writeErr)
		}
	}

	viper.SetConfigName("config")      // File name (without the extension)
	viper.SetConfigType("yaml")        // File format (can be "json", "toml", etc.)
	viper.AddConfigPath(".")           // Working directory takes precedence
	viper.AddConfigPath(configDirPath) // Adds a secondary search path

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("Warning: Configuration file not found. Using defaults and/or flags.")
		} else {
			return nil, fmt.Errorf("error reading the configuration file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not map the configuration to the struct: %w", err)
	}

	// Read and set dependent variables after unmarshalling
	cfg.ArchivePath = util.ExpandHome(cfg.Archive.Path)
	if cfg.ArchivePath == "" {
		cfg.ArchivePath = util.ExpandHome("~/Library/Messages/chat.db")
	}
	cfg.ContactsPath = util.ExpandHome(cfg.Contacts.Path)

	if cfg.Nats.Server != "" {
		cfg.NatsURL = fmt.Sprintf("%s:%d", cfg.Nats.Server, cfg.Nats.Port)
	}

	cfg.Location = time.Local
	if cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("could not load timezone '%s': %w", cfg.Timezone, err)
		}
		cfg.Location = loc
	}

	if cfg.SelfName == "" {
		cfg.SelfName = "YOU"
	}
	if cfg.Mode == "" {
		cfg.Mode = "all"
	}

	return &cfg, nil
}
