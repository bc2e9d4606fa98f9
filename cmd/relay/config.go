package main

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/goccy/go-yaml"
)

// Conf is the two-role relay's on-disk configuration: one process is
// either the ingress (accepts UDP, forwards as UoT frames over TCP) or the
// egress (accepts UoT frames over TCP, forwards as UDP to a fixed peer).
type Conf struct {
	Role        string `yaml:"role"`
	Listen      string `yaml:"listen"`
	Upstream    string `yaml:"upstream"`
	IdleTimeout string `yaml:"idle_timeout"`
}

var validRoles = []string{"ingress", "egress"}

// LoadFromFile reads and validates a relay configuration from path.
func LoadFromFile(path string) (*Conf, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var conf Conf
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	conf.setDefaults()
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c *Conf) setDefaults() {
	if c.IdleTimeout == "" {
		c.IdleTimeout = "20s"
	}
}

func (c *Conf) validate() error {
	if !slices.Contains(validRoles, c.Role) {
		return fmt.Errorf("role must be one of %v", validRoles)
	}
	if c.Listen == "" {
		return fmt.Errorf("listen address must be set")
	}
	if c.Upstream == "" {
		return fmt.Errorf("upstream address must be set")
	}
	if _, err := time.ParseDuration(c.IdleTimeout); err != nil {
		return fmt.Errorf("idle_timeout: %w", err)
	}
	return nil
}

// Timeout parses the configured idle timeout. validate already verified it
// parses, so this never errors on a loaded Conf.
func (c *Conf) Timeout() time.Duration {
	d, _ := time.ParseDuration(c.IdleTimeout)
	return d
}
