// Package config loads configuration files into CUE values.
//
// CUE files and directories are loaded as CUE packages, YAML and JSON are
// parsed by CUE's encoders and TOML is decoded with BurntSushi/toml. Every
// format ends up as a cue.Value, so callers can look up paths or decode into
// Go structs without caring where the data came from.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/encoding/yaml"
	"github.com/BurntSushi/toml"
)

// Format identifies a configuration file format.
type Format string

const (
	FormatCUE  Format = "cue"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatOf returns the format implied by the extension of path. Unknown
// extensions are treated as YAML, which also accepts JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cue":
		return FormatCUE
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// LoadValueFromReader parses configuration data in the given format. CUE
// data is compiled as a single file, without imports.
func LoadValueFromReader(r io.Reader, format Format) (cue.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to read config: %w", err)
	}
	return buildValue(cuecontext.New(), data, format)
}

// LoadValue loads a file or a directory of .cue files.
//
// Directories and .cue files go through load.Instances so that packages with
// imports work. Everything else is read and parsed by its extension.
func LoadValue(path string) (cue.Value, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to stat path: %w", err)
	}

	ctx := cuecontext.New()

	if !fileInfo.IsDir() && FormatOf(path) != FormatCUE {
		data, err := os.ReadFile(path)
		if err != nil {
			return cue.Value{}, fmt.Errorf("failed to read file: %w", err)
		}
		return buildValue(ctx, data, FormatOf(path))
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to resolve path: %w", err)
	}

	cfg := &load.Config{
		Dir:       filepath.Dir(absPath),
		DataFiles: true,
	}
	args := []string{absPath}
	if fileInfo.IsDir() {
		cfg.Dir = absPath
		args = []string{"."}
	}

	instances := load.Instances(args, cfg)
	if len(instances) == 0 {
		return cue.Value{}, fmt.Errorf("no instances loaded from %s", path)
	}
	if inst := instances[0]; inst.Err != nil {
		return cue.Value{}, fmt.Errorf("failed to load config: %w", inst.Err)
	}

	val := ctx.BuildInstance(instances[0])
	if err := val.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("failed to build CUE value: %w", err)
	}
	return val, nil
}

func buildValue(ctx *cue.Context, data []byte, format Format) (cue.Value, error) {
	var val cue.Value

	switch format {
	case FormatTOML:
		var raw map[string]any
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&raw); err != nil {
			return cue.Value{}, fmt.Errorf("failed to parse TOML: %w", err)
		}
		val = ctx.Encode(raw)
	case FormatJSON, FormatCUE:
		val = ctx.CompileBytes(data)
	default:
		// YAML is a superset of JSON
		file, err := yaml.Extract("", data)
		if err != nil {
			return cue.Value{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
		val = ctx.BuildFile(file)
	}

	if err := val.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("failed to build CUE value: %w", err)
	}
	return val, nil
}

// Decode decodes val into a new T. An empty value decodes to the zero T.
func Decode[T any](val cue.Value) (*T, error) {
	var out T
	if !val.Exists() {
		return &out, nil
	}
	if err := val.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &out, nil
}

// LoadFromFile loads a file or directory and decodes it into T.
//
//	cfg, err := config.LoadFromFile[Settings]("ircmsg.toml")
func LoadFromFile[T any](path string) (*T, error) {
	val, err := LoadValue(path)
	if err != nil {
		return nil, err
	}
	return Decode[T](val)
}
