// Package config holds the settings shared by every seqviz command. Values
// come from defaults, an optional YAML file, SEQVIZ_* environment variables
// and command-line flags, in increasing precedence (see internal/cli).
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"seqviz/internal/annotate"
	"seqviz/internal/enzyme"
	"seqviz/internal/output"
	"seqviz/internal/runutil"
	"seqviz/internal/search"
	"seqviz/internal/viewer"
)

// EnvPrefix prefixes environment overrides: SEQVIZ_VIEWER_ZOOM=80.
const EnvPrefix = "SEQVIZ"

// DefaultFile is read from the working directory when --config is unset.
const DefaultFile = "seqviz.yaml"

// Records configures where records come from and how they are cached.
type Records struct {
	// directory of <accession>.gb / .gff3 files
	Dir string `mapstructure:"dir" yaml:"dir"`

	// bolt database file; empty disables the persistent cache
	Cache string `mapstructure:"cache" yaml:"cache"`

	// contact identity sent with fetches and part of the cache key
	Contact string `mapstructure:"contact" yaml:"contact"`

	MemoSize int `mapstructure:"memo-size" yaml:"memo-size"`
}

// Viewer holds the widget display defaults.
type Viewer struct {
	Topology       string   `mapstructure:"topology" yaml:"topology"`
	Zoom           int      `mapstructure:"zoom" yaml:"zoom"`
	ShowComplement bool     `mapstructure:"show-complement" yaml:"show-complement"`
	ShowIndex      bool     `mapstructure:"show-index" yaml:"show-index"`
	Enzymes        []string `mapstructure:"enzymes" yaml:"enzymes"`
	SearchMismatch int      `mapstructure:"search-mismatch" yaml:"search-mismatch"`
}

// Config is the root-level settings struct.
type Config struct {
	AcceptedKinds []string `mapstructure:"accepted-kinds" yaml:"accepted-kinds"`
	NameKeys      []string `mapstructure:"name-keys" yaml:"name-keys"`
	ErrorPolicy   string   `mapstructure:"error-policy" yaml:"error-policy"`
	Threads       int      `mapstructure:"threads" yaml:"threads"`
	Quiet         bool     `mapstructure:"quiet" yaml:"quiet"`
	Output        string   `mapstructure:"output" yaml:"output"`

	Records Records `mapstructure:"records" yaml:"records"`
	Viewer  Viewer  `mapstructure:"viewer" yaml:"viewer"`
}

// Default is the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		AcceptedKinds: []string{annotate.DefaultKind},
		NameKeys:      append([]string(nil), annotate.DefaultNameKeys...),
		ErrorPolicy:   annotate.AbortOnError.String(),
		Threads:       0,
		Output:        output.FormatText,
		Records: Records{
			Dir:      ".",
			Contact:  "example@domain.com",
			MemoSize: 64,
		},
		Viewer: Viewer{
			Topology:       string(viewer.Both),
			Zoom:           50,
			ShowComplement: true,
			ShowIndex:      true,
			Enzymes:        append([]string(nil), enzyme.DefaultNames...),
		},
	}
}

// SetDefaults registers every key on v so that environment variables and
// Unmarshal see the full key set.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("accepted-kinds", d.AcceptedKinds)
	v.SetDefault("name-keys", d.NameKeys)
	v.SetDefault("error-policy", d.ErrorPolicy)
	v.SetDefault("threads", d.Threads)
	v.SetDefault("quiet", d.Quiet)
	v.SetDefault("output", d.Output)
	v.SetDefault("records.dir", d.Records.Dir)
	v.SetDefault("records.cache", d.Records.Cache)
	v.SetDefault("records.contact", d.Records.Contact)
	v.SetDefault("records.memo-size", d.Records.MemoSize)
	v.SetDefault("viewer.topology", d.Viewer.Topology)
	v.SetDefault("viewer.zoom", d.Viewer.Zoom)
	v.SetDefault("viewer.show-complement", d.Viewer.ShowComplement)
	v.SetDefault("viewer.show-index", d.Viewer.ShowIndex)
	v.SetDefault("viewer.enzymes", d.Viewer.Enzymes)
	v.SetDefault("viewer.search-mismatch", d.Viewer.SearchMismatch)
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file (path, or ./seqviz.yaml when present) into v
// and decodes the result. A missing default file is not an error; a missing
// explicit path is.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultFile, ".yaml"))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return Config{}, fmt.Errorf("config: %w", err)
			}
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c.AcceptedKinds = runutil.CleanList(c.AcceptedKinds)
	c.NameKeys = runutil.CleanList(c.NameKeys)
	c.Viewer.Enzymes = runutil.CleanList(c.Viewer.Enzymes)
	return c, c.Validate()
}

// Validate checks values that the commands would otherwise reject late.
func (c Config) Validate() error {
	if _, err := annotate.ParsePolicy(c.ErrorPolicy); err != nil {
		return err
	}
	if err := output.CheckFormat(c.Output); err != nil {
		return err
	}
	if c.Threads < 0 {
		return fmt.Errorf("threads must be >= 0, got %d", c.Threads)
	}
	if _, err := viewer.ParseTopology(c.Viewer.Topology); err != nil {
		return err
	}
	if c.Viewer.Zoom < 0 || c.Viewer.Zoom > 100 {
		return fmt.Errorf("viewer.zoom must be within 0..100, got %d", c.Viewer.Zoom)
	}
	if c.Viewer.SearchMismatch < 0 {
		return fmt.Errorf("viewer.search-mismatch must be >= 0, got %d", c.Viewer.SearchMismatch)
	}
	if _, err := enzyme.Lookup(c.Viewer.Enzymes); err != nil {
		return err
	}
	return nil
}

// ProjectOptions maps the settings onto the projector's options.
func (c Config) ProjectOptions() annotate.Options {
	pol, _ := annotate.ParsePolicy(c.ErrorPolicy)
	o := annotate.Options{
		AcceptedKinds: c.AcceptedKinds,
		Policy:        pol,
	}
	if len(c.NameKeys) > 0 {
		o.Resolver = annotate.NameResolver{Keys: c.NameKeys}
	}
	return o
}

// ViewerSettings maps the settings onto viewer.Settings.
func (c Config) ViewerSettings(query string) viewer.Settings {
	return viewer.Settings{
		Topology:       viewer.Topology(c.Viewer.Topology),
		Zoom:           c.Viewer.Zoom,
		Search:         search.Query{Text: query, Mismatch: c.Viewer.SearchMismatch},
		ShowComplement: c.Viewer.ShowComplement,
		ShowIndex:      c.Viewer.ShowIndex,
		Enzymes:        c.Viewer.Enzymes,
	}
}

// WriteYAML writes c in the config file format.
func WriteYAML(w io.Writer, c Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
