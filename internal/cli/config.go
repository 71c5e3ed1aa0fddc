// Config loading for the stockroom CLI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "STOCKROOM"
)

// Config keys.
const (
	cfgKeyBackend      = "backend"
	cfgKeyDataDir      = "data_dir"
	cfgKeyStrategy     = "strategy"
	cfgKeySpaceRows    = "space.rows"
	cfgKeySpaceShelves = "space.shelves"
	cfgKeySpaceZones   = "space.zones"
	cfgKeyEntryRow     = "entry.row"
	cfgKeyEntryShelf   = "entry.shelf"
	cfgKeyEntryZone    = "entry.zone"
	cfgKeyMetric       = "metric"
	cfgKeyLogLevel     = "log_level"
	cfgKeyLogFormat    = "log_format"
)

// settings is the decoded content of config.yaml plus environment overrides.
type settings struct {
	Backend   string         `mapstructure:"backend"`
	DataDir   string         `mapstructure:"data_dir"`
	Strategy  string         `mapstructure:"strategy"`
	Space     types.Space    `mapstructure:"space"`
	Entry     types.Position `mapstructure:"entry"`
	Metric    string         `mapstructure:"metric"`
	LogLevel  string         `mapstructure:"log_level"`
	LogFormat string         `mapstructure:"log_format"`
}

func (s settings) strategyConfig() types.StrategyConfig {
	return types.StrategyConfig{
		Name:   s.Strategy,
		Entry:  s.Entry,
		Metric: s.Metric,
	}
}

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend   string         `yaml:"backend"`
	DataDir   string         `yaml:"data_dir,omitempty"`
	Strategy  string         `yaml:"strategy"`
	Space     types.Space    `yaml:"space"`
	Entry     types.Position `yaml:"entry"`
	Metric    string         `yaml:"metric"`
	LogLevel  string         `yaml:"log_level"`
	LogFormat string         `yaml:"log_format"`
}

func defaultConfigFile() configFile {
	return configFile{
		Backend:   types.BackendSQLite,
		Strategy:  types.StrategyRoundRobin,
		Space:     types.DefaultSpace(),
		Metric:    types.MetricManhattan,
		LogLevel:  "warn",
		LogFormat: "console",
	}
}

// loadSettings reads config.yaml from configDir using Viper. A missing
// config.yaml is not an error; the defaults apply. Every key except data_dir
// can be overridden by a STOCKROOM_ environment variable.
func loadSettings(configDir string) (settings, error) {
	v := viper.New()
	def := defaultConfigFile()
	v.SetDefault(cfgKeyBackend, def.Backend)
	v.SetDefault(cfgKeyDataDir, "")
	v.SetDefault(cfgKeyStrategy, def.Strategy)
	v.SetDefault(cfgKeySpaceRows, def.Space.Rows)
	v.SetDefault(cfgKeySpaceShelves, def.Space.Shelves)
	v.SetDefault(cfgKeySpaceZones, def.Space.Zones)
	v.SetDefault(cfgKeyEntryRow, 0)
	v.SetDefault(cfgKeyEntryShelf, 0)
	v.SetDefault(cfgKeyEntryZone, 0)
	v.SetDefault(cfgKeyMetric, def.Metric)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetDefault(cfgKeyLogFormat, def.LogFormat)

	// data_dir is left to paths.ResolveDataDir so config.yaml wins over
	// STOCKROOM_DATA_DIR.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range []string{
		cfgKeyBackend, cfgKeyStrategy,
		cfgKeySpaceRows, cfgKeySpaceShelves, cfgKeySpaceZones,
		cfgKeyEntryRow, cfgKeyEntryShelf, cfgKeyEntryZone,
		cfgKeyMetric, cfgKeyLogLevel, cfgKeyLogFormat,
	} {
		if err := v.BindEnv(key); err != nil {
			return settings{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return settings{}, fmt.Errorf("decode config: %w", err)
	}
	return s, nil
}

// ensureDefaultConfigFile creates configDir and writes a default config.yaml
// if the file does not exist. An existing file is left untouched.
func ensureDefaultConfigFile(configDir, dataDir string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	path := filepath.Join(configDir, configFileExt)
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	cfg := defaultConfigFile()
	cfg.DataDir = dataDir
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	header := "# Stockroom CLI configuration\n"
	return os.WriteFile(path, append([]byte(header), data...), 0o644)
}
