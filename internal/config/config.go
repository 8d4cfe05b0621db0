// Package config reads the optional TOML defaults file. Every key is
// optional; a flag given on the command line always wins over the file.
//
//	mode      = "distance"
//	output    = "jsonl"
//	threads   = 4
//	reference = ["ref/chr1.fa", "ref/chr2.fa.gz"]
package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// EnvVar names the environment variable consulted when --config is absent.
const EnvVar = "ALNEDIT_CONFIG"

// File mirrors the keys accepted in the defaults file. Nil means unset.
type File struct {
	Mode      *string  `toml:"mode"`
	Output    *string  `toml:"output"`
	Threads   *int     `toml:"threads"`
	Pretty    *bool    `toml:"pretty"`
	Color     *string  `toml:"color"`
	Header    *bool    `toml:"header"`
	Cigar     *bool    `toml:"cigar"`
	FailFast  *bool    `toml:"fail_fast"`
	Quiet     *bool    `toml:"quiet"`
	Reference []string `toml:"reference"`
}

// Path returns the file to load: explicit if non-empty, else $ALNEDIT_CONFIG.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return os.Getenv(EnvVar)
}

// Load decodes path. Unknown keys are an error so that typos surface.
func Load(path string) (File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return File{}, errors.Wrapf(err, "config %s", path)
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, 0, len(und))
		for _, k := range und {
			keys = append(keys, k.String())
		}
		return File{}, errors.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return f, nil
}
