// internal/config/profiles.go
package config

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/nhath/sqlterm/internal/db"
)

// Profile represents a database connection profile. Passwords live in the
// keyring, never in the config file.
type Profile struct {
	Name     string `toml:"name"`
	Type     string `toml:"type"` // postgres, mysql, sqlite
	Host     string `toml:"host,omitempty"`
	Port     int    `toml:"port,omitempty"`
	User     string `toml:"user,omitempty"`
	Database string `toml:"database"`
	Password string `toml:"-"`

	// SSH Tunnel Configuration
	SSHHost     string `toml:"ssh_host,omitempty"`
	SSHPort     int    `toml:"ssh_port,omitempty"`
	SSHUser     string `toml:"ssh_user,omitempty"`
	SSHKeyPath  string `toml:"ssh_key_path,omitempty"`
	SSHUseAgent bool   `toml:"ssh_use_agent,omitempty"`
	SSHPassword string `toml:"-"`
}

// Validate checks that the profile has what its driver needs
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	switch db.DriverType(p.Type) {
	case db.SQLite:
		if p.Database == "" {
			return fmt.Errorf("profile %s: sqlite needs a database path", p.Name)
		}
	case db.Postgres, db.MySQL:
		if p.Host == "" {
			return fmt.Errorf("profile %s: host is required", p.Name)
		}
		if p.Port <= 0 || p.Port > 65535 {
			return fmt.Errorf("profile %s: invalid port %d", p.Name, p.Port)
		}
	default:
		return fmt.Errorf("profile %s: unknown type %q", p.Name, p.Type)
	}
	if p.SSHHost != "" && p.SSHUser == "" {
		return fmt.Errorf("profile %s: ssh_user is required with ssh_host", p.Name)
	}
	return nil
}

// ConnectParams converts the profile into driver connection parameters
func (p *Profile) ConnectParams(pageSize int) db.ConnectParams {
	params := db.ConnectParams{
		Host:     p.Host,
		Port:     p.Port,
		User:     p.User,
		Password: p.Password,
		Database: p.Database,
		PageSize: pageSize,
	}
	if p.SSHHost != "" {
		params.SSHConfig = &db.SSHConfig{
			Host:     p.SSHHost,
			Port:     p.SSHPort,
			User:     p.SSHUser,
			Password: p.SSHPassword,
			KeyPath:  p.SSHKeyPath,
			UseAgent: p.SSHUseAgent,
		}
	}
	return params
}

// LoadSecrets fills the in-memory passwords from the keyring. Missing
// entries are not an error; the profile may not need a password.
func (p *Profile) LoadSecrets(k *KeyringStore) {
	if k == nil {
		return
	}
	if p.Password == "" {
		if pw, err := k.GetPassword(p.Name); err == nil {
			p.Password = pw
		}
	}
	if p.SSHHost != "" && p.SSHPassword == "" {
		if pw, err := k.GetSSHPassword(p.Name); err == nil {
			p.SSHPassword = pw
		}
	}
}

// StoreSecrets writes the profile's passwords to the keyring. Empty
// passwords are skipped.
func (p *Profile) StoreSecrets(k *KeyringStore) error {
	if p.Password != "" {
		if err := k.SetPassword(p.Name, p.Password); err != nil {
			return fmt.Errorf("store password for %s: %w", p.Name, err)
		}
	}
	if p.SSHPassword != "" {
		if err := k.SetSSHPassword(p.Name, p.SSHPassword); err != nil {
			return fmt.Errorf("store ssh password for %s: %w", p.Name, err)
		}
	}
	return nil
}

// GetProfile retrieves a profile by name
func (c *Config) GetProfile(name string) (*Profile, error) {
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			return &c.Profiles[i], nil
		}
	}
	return nil, fmt.Errorf("profile not found: %s", name)
}

// AddProfile adds a new profile to the config
func (c *Config) AddProfile(p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	for _, existing := range c.Profiles {
		if existing.Name == p.Name {
			return fmt.Errorf("profile already exists: %s", p.Name)
		}
	}
	c.Profiles = append(c.Profiles, p)
	return c.Save()
}

// DeleteProfile removes a profile from the config
func (c *Config) DeleteProfile(name string) error {
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			c.Profiles = slices.Delete(c.Profiles, i, i+1)
			if c.DefaultProfile == name {
				c.DefaultProfile = ""
			}
			return c.Save()
		}
	}
	return fmt.Errorf("profile not found: %s", name)
}

// ListProfiles returns all profile names
func (c *Config) ListProfiles() []string {
	names := make([]string, len(c.Profiles))
	for i, p := range c.Profiles {
		names[i] = p.Name
	}
	return names
}

// ParseDSN parses a connection string into a Profile
func ParseDSN(name, dsn string) (Profile, error) {
	p := Profile{Name: name}

	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return parseURL(p, dsn, db.Postgres, 5432)
	case strings.HasPrefix(dsn, "mysql://"):
		return parseURL(p, dsn, db.MySQL, 3306)
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"):
		p.Type = string(db.SQLite)
		path := strings.TrimPrefix(dsn, "sqlite://")
		p.Database = strings.TrimPrefix(path, "file:")
	default:
		// Assume SQLite file path if no scheme match
		p.Type = string(db.SQLite)
		p.Database = dsn
	}
	return p, nil
}

func parseURL(p Profile, dsn string, typ db.DriverType, defaultPort int) (Profile, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return p, fmt.Errorf("invalid dsn: %w", err)
	}
	p.Type = string(typ)
	p.Host = u.Hostname()
	p.Port = defaultPort
	if port := u.Port(); port != "" {
		if p.Port, err = strconv.Atoi(port); err != nil {
			return p, fmt.Errorf("invalid port %q", port)
		}
	}
	if u.User != nil {
		p.User = u.User.Username()
		p.Password, _ = u.User.Password()
	}
	p.Database = strings.TrimPrefix(u.Path, "/")

	// ssh_* query parameters describe a tunnel
	q := u.Query()
	if host := q.Get("ssh_host"); host != "" {
		p.SSHHost = host
		p.SSHUser = q.Get("ssh_user")
		p.SSHKeyPath = q.Get("ssh_key")
		p.SSHPassword = q.Get("ssh_password")
		p.SSHUseAgent = q.Get("ssh_agent") == "true"
		if port := q.Get("ssh_port"); port != "" {
			if p.SSHPort, err = strconv.Atoi(port); err != nil {
				return p, fmt.Errorf("invalid ssh_port %q", port)
			}
		}
	}
	return p, nil
}
