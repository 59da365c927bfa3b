package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"github.com/sirupsen/logrus"
	"github.com/titanous/json5"
)

const (
	DefaultIndexURL   = "https://www.warcraftlogs.com/scripting-api-docs/warcraft/index.html"
	DefaultOutputPath = "out/RpgLogs.d.ts"
	DefaultFile       = "typegen.json5"
)

type Config struct {
	IndexURL   string
	OutputPath string
	// Browser renders pages with headless Chrome instead of plain HTTP.
	Browser  bool
	Headless bool
	// RawDir archives every fetched documentation page when set.
	RawDir string
	// Timeout of a single fetch, zero waits forever.
	Timeout time.Duration
}

func Default() Config {
	return Config{
		IndexURL:   DefaultIndexURL,
		OutputPath: DefaultOutputPath,
		Headless:   true,
	}
}

// layer is one config source. A nil field is unset, so an explicit false or
// empty string in a file still counts.
type layer struct {
	IndexURL   *string        `json:"index_url"`
	OutputPath *string        `json:"output_path"`
	Browser    *bool          `json:"browser"`
	Headless   *bool          `json:"headless"`
	RawDir     *string        `json:"raw_dir"`
	Timeout    *time.Duration `json:"timeout"`
}

func layerOf(c Config) layer {
	return layer{
		IndexURL:   &c.IndexURL,
		OutputPath: &c.OutputPath,
		Browser:    &c.Browser,
		Headless:   &c.Headless,
		RawDir:     &c.RawDir,
		Timeout:    &c.Timeout,
	}
}

// resolve expects every field to be set, see Load.
func (l layer) resolve() Config {
	return Config{
		IndexURL:   *l.IndexURL,
		OutputPath: *l.OutputPath,
		Browser:    *l.Browser,
		Headless:   *l.Headless,
		RawDir:     *l.RawDir,
		Timeout:    *l.Timeout,
	}
}

func splitExt(f string) (string, string) {
	for i := len(f) - 1; i >= 0; i-- {
		if f[i] == '.' {
			return f[0:i], f[i+1:]
		}
	}
	return f, ""
}

func readFile(path string, into *layer) (bool, error) {
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if len(contents) == 0 {
		return false, nil
	}
	if err := json5.Unmarshal(contents, into); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return true, nil
}

// Load merges <name>.local.<ext>, <name>.<ext> and the defaults, earlier
// sources taking priority. Missing files are not an error.
func Load(name string) (Config, error) {
	prefixname, ext := splitExt(filepath.Base(name))
	localPath := filepath.Join(
		filepath.Dir(name),
		fmt.Sprintf("%s.local.%s", prefixname, ext),
	)

	// mergo without WithOverride only fills fields that are still nil
	var merged layer
	for _, path := range []string{localPath, name} {
		var source layer
		found, err := readFile(path, &source)
		if err != nil {
			return Default(), err
		}
		if !found {
			continue
		}
		if err := mergo.Merge(&merged, source); err != nil {
			return Default(), err
		}
		logrus.WithField("path", path).Debug("merged config file")
	}
	if err := mergo.Merge(&merged, layerOf(Default())); err != nil {
		return Default(), err
	}

	return merged.resolve(), nil
}
