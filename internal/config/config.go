package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	World    WorldConfig    `toml:"world"`
	Console  ConsoleConfig  `toml:"console"`
	Database DatabaseConfig `toml:"database"`
	Journal  JournalConfig  `toml:"journal"`
	Logging  LoggingConfig  `toml:"logging"`
}

type ServerConfig struct {
	Name      string `toml:"name"`
	ID        int    `toml:"id"`
	StartTime int64  // set at boot, not from config
}

type WorldConfig struct {
	TickRate   time.Duration `toml:"tick_rate"`
	EntityList string        `toml:"entity_list"`
	SpawnList  string        `toml:"spawn_list"`
	ScriptsDir string        `toml:"scripts_dir"`
	AgentName  string        `toml:"agent_name"`
	Seed       int64         `toml:"seed"` // 0 means time-based
}

type ConsoleConfig struct {
	BindAddress  string        `toml:"bind_address"`
	PasswordHash string        `toml:"password_hash"` // bcrypt hash, empty disables auth
	InQueueSize  int           `toml:"in_queue_size"`
	OutQueueSize int           `toml:"out_queue_size"`
	WriteTimeout time.Duration `toml:"write_timeout"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
}

type DatabaseConfig struct {
	DSN             string        `toml:"dsn"` // empty disables the journal
	MaxOpenConns    int           `toml:"max_open_conns"`
	MaxIdleConns    int           `toml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `toml:"conn_max_lifetime"`
}

type JournalConfig struct {
	BufferSize int `toml:"buffer_size"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Server.StartTime = time.Now().Unix()
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "interactd",
			ID:   1,
		},
		World: WorldConfig{
			TickRate:   200 * time.Millisecond,
			EntityList: "data/yaml/entity_list.yaml",
			SpawnList:  "data/yaml/spawn_list.yaml",
			ScriptsDir: "scripts",
			AgentName:  "agent",
		},
		Console: ConsoleConfig{
			BindAddress:  "127.0.0.1:7101",
			InQueueSize:  128,
			OutQueueSize: 256,
			WriteTimeout: 10 * time.Second,
			ReadTimeout:  10 * time.Minute,
		},
		Database: DatabaseConfig{
			DSN:             "",
			MaxOpenConns:    10,
			MaxIdleConns:    2,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Journal: JournalConfig{
			BufferSize: 256,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
