package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"reflect"

	"code.cloudfoundry.org/lager"
	yaml "gopkg.in/yaml.v2"

	"github.com/pivotal-cf/pwdkek/estimator"
)

const (
	IndexSorted = "sorted"
	IndexTrie   = "trie"

	ScaleDefault  = "default"
	ScaleExtended = "extended"
)

func LoadServeConfig(bs []byte) (*ServeConfig, error) {
	c := &ServeConfig{}
	err := yaml.Unmarshal(bs, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func LoadServeConfigFile(path string) (*ServeConfig, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return LoadServeConfig(bs)
}

// ServeConfig carries no flag defaults so that values from a config file are
// only overridden by flags that were given; SetDefaults fills the rest.
type ServeConfig struct {
	BindIP   string `long:"bind-ip" description:"IP address to listen on (default: 127.0.0.1)" value-name:"IP" yaml:"bind_ip"`
	BindPort uint16 `long:"bind-port" description:"port to listen on (default: 8080)" value-name:"PORT" yaml:"bind_port"`
	LogLevel string `long:"log-level" description:"debug, info, error or fatal (default: info)" value-name:"LEVEL" yaml:"log_level"`

	Dataset struct {
		Path  string `long:"dataset" description:"path to a prepared dataset" env:"PWDKEK_DATASET" value-name:"PATH" yaml:"path"`
		Index string `long:"index" description:"sorted or trie (default: sorted)" value-name:"INDEX" yaml:"index"`
	} `group:"Dataset Options" yaml:"dataset"`

	Scale string `long:"scale" description:"default or extended (default: default)" value-name:"SCALE" yaml:"scale"`

	Metrics struct {
		Disabled bool `long:"disable-metrics" description:"do not serve /metrics" yaml:"disabled"`
	} `group:"Metrics Options" yaml:"metrics"`
}

func (c *ServeConfig) SetDefaults() {
	if c.BindIP == "" {
		c.BindIP = "127.0.0.1"
	}
	if c.BindPort == 0 {
		c.BindPort = 8080
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Dataset.Index == "" {
		c.Dataset.Index = IndexSorted
	}
	if c.Scale == "" {
		c.Scale = ScaleDefault
	}
}

func (c *ServeConfig) Validate() []error {
	var errs []error

	if c.Dataset.Path == "" {
		errs = append(errs, errors.New("no dataset specified"))
	}

	if net.ParseIP(c.BindIP) == nil {
		errs = append(errs, fmt.Errorf("invalid bind ip %q", c.BindIP))
	}

	if c.BindPort == 0 {
		errs = append(errs, errors.New("no bind port specified"))
	}

	if !oneOf(c.LogLevel, "debug", "info", "error", "fatal") {
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}

	if !oneOf(c.Dataset.Index, IndexSorted, IndexTrie) {
		errs = append(errs, fmt.Errorf("unknown index %q", c.Dataset.Index))
	}

	if !oneOf(c.Scale, ScaleDefault, ScaleExtended) {
		errs = append(errs, fmt.Errorf("unknown scale %q", c.Scale))
	}

	return errs
}

// Merge overrides c with every value set in other.
func (c *ServeConfig) Merge(other *ServeConfig) {
	src := reflect.ValueOf(other).Elem()
	dst := reflect.ValueOf(c).Elem()

	merge(dst, src)
}

func (c *ServeConfig) Address() string {
	return net.JoinHostPort(c.BindIP, fmt.Sprintf("%d", c.BindPort))
}

func (c *ServeConfig) Level() lager.LogLevel {
	switch c.LogLevel {
	case "debug":
		return lager.DEBUG
	case "error":
		return lager.ERROR
	case "fatal":
		return lager.FATAL
	default:
		return lager.INFO
	}
}

func (c *ServeConfig) EstimatorScale() estimator.Scale {
	return ScaleNamed(c.Scale)
}

// ScaleNamed maps "extended" to the six-tier scale and anything else to the
// default one.
func ScaleNamed(name string) estimator.Scale {
	if name == ScaleExtended {
		return estimator.ExtendedScale
	}

	return estimator.DefaultScale
}
