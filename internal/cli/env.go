// internal/cli/env.go
package cli

import (
	"io"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"seqviz/internal/config"
)

// Env is what every command shares for one invocation.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer

	v       *viper.Viper
	cfgPath string
}

func NewEnv(stdout, stderr io.Writer) *Env {
	return &Env{Stdout: stdout, Stderr: stderr, v: config.New()}
}

// global flags bound on every command (viper key → flag name)
var globalBinds = map[string]string{
	"quiet":   "quiet",
	"output":  "output",
	"threads": "threads",
}

// recordBinds are shared by the commands that resolve accessions.
var recordBinds = map[string]string{
	"records.dir":     "dir",
	"records.cache":   "cache",
	"records.contact": "contact",
}

// load binds the running command's flags and resolves the configuration.
// Binding happens here, not at construction, because several commands
// expose flags for the same key.
func (e *Env) load(fs *pflag.FlagSet, binds ...map[string]string) (config.Config, error) {
	for _, m := range append([]map[string]string{globalBinds}, binds...) {
		for key, name := range m {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := e.v.BindPFlag(key, f); err != nil {
				return config.Config{}, exitErr(ExitUsage, err)
			}
		}
	}
	cfg, err := config.Load(e.v, e.cfgPath)
	if err != nil {
		return cfg, exitErr(ExitUsage, err)
	}
	return cfg, nil
}

func addRecordFlags(fs *pflag.FlagSet) {
	d := config.Default().Records
	fs.String("dir", d.Dir, "directory of <accession>.gb / .gff3 records")
	fs.String("cache", d.Cache, "bolt cache file for fetched records (empty = off)")
	fs.String("contact", d.Contact, "contact identity used for fetches (part of the cache key)")
}
