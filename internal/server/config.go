package server

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete server configuration.
type Config struct {
	Server ServerSettings `hcl:"server,block"`
	Tables []TableConfig  `hcl:"table,block"`
}

// ServerSettings contains server-level configuration.
type ServerSettings struct {
	Address        string `hcl:"address,optional"`
	Port           int    `hcl:"port,optional"`
	LogLevel       string `hcl:"log_level,optional"`
	TurnTimeoutSec int    `hcl:"turn_timeout_seconds,optional"`
}

// TableConfig defines one hosted table.
type TableConfig struct {
	Name       string       `hcl:"name,label"`
	SmallBlind int          `hcl:"small_blind"`
	BigBlind   int          `hcl:"big_blind"`
	Seats      []SeatConfig `hcl:"seat,block"`
}

// SeatConfig is a starting roster entry for a table. In a full deployment
// rosters come from matchmaking; the config variant exists so a standalone
// server has something to deal.
type SeatConfig struct {
	Number int `hcl:"number"`
	Stack  int `hcl:"stack"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerSettings{
			Address:        "localhost",
			Port:           8080,
			LogLevel:       "info",
			TurnTimeoutSec: 30,
		},
		Tables: []TableConfig{
			{
				Name:       "main",
				SmallBlind: 1,
				BigBlind:   2,
				Seats: []SeatConfig{
					{Number: 1, Stack: 200},
					{Number: 2, Stack: 200},
				},
			},
		},
	}
}

// LoadConfig loads configuration from an HCL file, falling back to defaults
// when the file does not exist.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.Server.Address == "" {
		cfg.Server.Address = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
	if cfg.Server.TurnTimeoutSec == 0 {
		cfg.Server.TurnTimeoutSec = 30
	}

	return &cfg, nil
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if len(c.Tables) == 0 {
		return fmt.Errorf("at least one table must be configured")
	}

	names := make(map[string]bool)
	for _, table := range c.Tables {
		if names[table.Name] {
			return fmt.Errorf("duplicate table name %q", table.Name)
		}
		names[table.Name] = true

		if table.SmallBlind <= 0 {
			return fmt.Errorf("table %s: small blind must be positive", table.Name)
		}
		if table.BigBlind <= table.SmallBlind {
			return fmt.Errorf("table %s: big blind must be greater than small blind", table.Name)
		}
		if len(table.Seats) < 2 {
			return fmt.Errorf("table %s: need at least 2 seats", table.Name)
		}
		seats := make(map[int]bool)
		for _, seat := range table.Seats {
			if seat.Number <= 0 {
				return fmt.Errorf("table %s: seat numbers must be positive", table.Name)
			}
			if seats[seat.Number] {
				return fmt.Errorf("table %s: duplicate seat %d", table.Name, seat.Number)
			}
			seats[seat.Number] = true
			if seat.Stack <= 0 {
				return fmt.Errorf("table %s seat %d: stack must be positive", table.Name, seat.Number)
			}
		}
	}

	return nil
}

// ListenAddress returns the host:port the server binds to.
func (c *Config) ListenAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
