package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the daemon's top-level configuration, loaded from a single
// YAML file at startup.
type Config struct {
	APIVersion string     `yaml:"apiVersion"`
	Kind       string     `yaml:"kind"`
	Spec       ConfigSpec `yaml:"spec"`
}

// ConfigSpec holds the actual settings; Config wraps it in an
// apiVersion/kind envelope so the file is self-describing and, if this
// daemon ever grows other resource kinds, distinguishable from them.
type ConfigSpec struct {
	DataDir string `yaml:"dataDir"`

	Logging LoggingSpec `yaml:"logging"`
	HTTP    HTTPSpec    `yaml:"http"`
	RPC     RPCSpec     `yaml:"rpc"`
	Forward ForwardSpec `yaml:"forwarding"`
	Gossip  GossipSpec  `yaml:"gossip"`
}

type LoggingSpec struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

type HTTPSpec struct {
	Addr string `yaml:"addr"`
}

type RPCSpec struct {
	Endpoint string `yaml:"endpoint"`
}

type ForwardSpec struct {
	BatchSize               int      `yaml:"batchSize"`
	BatchSendRate           Duration `yaml:"batchSendRate"`
	ProcessTransactionsRate Duration `yaml:"processTransactionsRate"`
	RefreshInterval         Duration `yaml:"refreshInterval"`
	PendingPoolSize         int      `yaml:"pendingPoolSize"`
	LeadersToForward        int      `yaml:"leadersToForward"`
	InboundBuffer           int      `yaml:"inboundBuffer"`
}

type GossipSpec struct {
	ContactMaxAge Duration `yaml:"contactMaxAge"`
	PruneInterval Duration `yaml:"pruneInterval"`
}

// Duration wraps time.Duration with YAML (de)serialization to and from
// strings like "60s" or "2m", since yaml.v3 has no built-in support for
// time.Duration.
type Duration time.Duration

// UnmarshalYAML accepts either a duration string ("60s") or a bare
// integer number of nanoseconds.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var n int64
	if err := value.Decode(&n); err == nil {
		*d = Duration(n)
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("config: duration must be a string or integer nanoseconds")
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders the duration in Go's canonical string form.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Dur returns the underlying time.Duration.
func (d Duration) Dur() time.Duration {
	return time.Duration(d)
}

// Default returns the baseline configuration. The forwarding values equal
// pkg/forwarding's constants; of them only InboundBuffer is passed to
// forwarding.Config, and the service uses its constants for the rest.
func Default() Config {
	return Config{
		APIVersion: "ledgerd/v1",
		Kind:       "DaemonConfig",
		Spec: ConfigSpec{
			DataDir: "./data",
			Logging: LoggingSpec{Level: "info", JSON: true},
			HTTP:    HTTPSpec{Addr: ":9090"},
			RPC:     RPCSpec{Endpoint: "http://127.0.0.1:8899"},
			Forward: ForwardSpec{
				BatchSize:               1,
				BatchSendRate:           Duration(time.Millisecond),
				ProcessTransactionsRate: Duration(2 * time.Second),
				RefreshInterval:         Duration(60 * time.Second),
				PendingPoolSize:         10000,
				LeadersToForward:        2,
				InboundBuffer:           1024,
			},
			Gossip: GossipSpec{
				ContactMaxAge: Duration(2 * time.Minute),
				PruneInterval: Duration(30 * time.Second),
			},
		},
	}
}

// Load reads and parses the YAML file at path, applying Default() for
// any field the file leaves unset, then validating the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks invariants Load and hand-built Configs must both
// satisfy before the daemon starts.
func (c Config) Validate() error {
	if c.Spec.DataDir == "" {
		return fmt.Errorf("config: dataDir must not be empty")
	}
	if c.Spec.RPC.Endpoint == "" {
		return fmt.Errorf("config: rpc.endpoint must not be empty")
	}
	if c.Spec.Forward.BatchSize <= 0 {
		return fmt.Errorf("config: forwarding.batchSize must be positive")
	}
	if c.Spec.Forward.PendingPoolSize <= 0 {
		return fmt.Errorf("config: forwarding.pendingPoolSize must be positive")
	}
	if c.Spec.Forward.LeadersToForward <= 0 {
		return fmt.Errorf("config: forwarding.leadersToForward must be positive")
	}
	return nil
}
