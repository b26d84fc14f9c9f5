// internal/config/config.go
package config

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// File holds run defaults read from a TOML file. Nil fields were not set and
// leave the CLI defaults alone.
//
//	num_chars          = 4
//	seq_type           = "rna"
//	format             = "text"
//	threads            = 0
//	matched_only       = false
//	no_match_exit_code = 1
type File struct {
	NumChars        *int    `toml:"num_chars"`
	SeqType         *string `toml:"seq_type"`
	Format          *string `toml:"format"`
	Threads         *int    `toml:"threads"`
	MatchedOnly     *bool   `toml:"matched_only"`
	NoMatchExitCode *int    `toml:"no_match_exit_code"`
}

// Decode parses TOML from r. Unknown keys are an error so typos surface.
func Decode(r io.Reader) (File, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return File{}, err
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return File{}, fmt.Errorf("unknown config key(s): %s", strings.Join(keys, ", "))
	}
	return f, nil
}

// Load reads and decodes the file at path.
func Load(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, err
	}
	defer fh.Close()

	f, err := Decode(fh)
	if err != nil {
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}
