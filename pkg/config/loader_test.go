package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cuelang.org/go/cue"
	"github.com/epithet-ssh/ircmsg/pkg/config"
	"gotest.tools/assert"
)

type settings struct {
	Source struct {
		Nick string `json:"nick"`
		Host string `json:"host"`
	} `json:"source"`
	Sign struct {
		Vendor    string `json:"vendor"`
		Algorithm string `json:"algorithm"`
	} `json:"sign"`
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0644)
	assert.NilError(t, err)
	return path
}

func checkSettings(t *testing.T, cfg *settings) {
	t.Helper()
	assert.Equal(t, cfg.Source.Nick, "coyote")
	assert.Equal(t, cfg.Source.Host, "acme.com")
	assert.Equal(t, cfg.Sign.Vendor, "acme.org")
	assert.Equal(t, cfg.Sign.Algorithm, "blake2b-256")
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := writeFile(t, "ircmsg.yaml", `
source:
  nick: coyote
  host: acme.com
sign:
  vendor: acme.org
  algorithm: blake2b-256
`)
	cfg, err := config.LoadFromFile[settings](path)
	assert.NilError(t, err)
	checkSettings(t, cfg)
}

func TestLoadFromFile_JSON(t *testing.T) {
	path := writeFile(t, "ircmsg.json", `{
  "source": {"nick": "coyote", "host": "acme.com"},
  "sign": {"vendor": "acme.org", "algorithm": "blake2b-256"}
}`)
	cfg, err := config.LoadFromFile[settings](path)
	assert.NilError(t, err)
	checkSettings(t, cfg)
}

func TestLoadFromFile_TOML(t *testing.T) {
	path := writeFile(t, "ircmsg.toml", `
[source]
nick = "coyote"
host = "acme.com"

[sign]
vendor = "acme.org"
algorithm = "blake2b-256"
`)
	cfg, err := config.LoadFromFile[settings](path)
	assert.NilError(t, err)
	checkSettings(t, cfg)
}

func TestLoadFromFile_CUE(t *testing.T) {
	path := writeFile(t, "ircmsg.cue", `
_vendor: "acme.org"
source: {
	nick: "coyote"
	host: "acme.com"
}
sign: {
	vendor:    _vendor
	algorithm: "blake2b-256"
}
`)
	cfg, err := config.LoadFromFile[settings](path)
	assert.NilError(t, err)
	checkSettings(t, cfg)
}

func TestLoadValue_LookupPath(t *testing.T) {
	path := writeFile(t, "ircmsg.toml", "[verify]\ntemplate = \"{{nick}}\"\n")
	val, err := config.LoadValue(path)
	assert.NilError(t, err)

	var tmpl string
	err = val.LookupPath(cue.ParsePath("verify.template")).Decode(&tmpl)
	assert.NilError(t, err)
	assert.Equal(t, tmpl, "{{nick}}")
}

func TestLoadValueFromReader(t *testing.T) {
	val, err := config.LoadValueFromReader(strings.NewReader(`{"sign": {"vendor": "acme.org"}}`), config.FormatJSON)
	assert.NilError(t, err)

	cfg, err := config.Decode[settings](val)
	assert.NilError(t, err)
	assert.Equal(t, cfg.Sign.Vendor, "acme.org")
}

func TestLoadValue_Errors(t *testing.T) {
	_, err := config.LoadValue(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to stat path")

	path := writeFile(t, "bad.toml", "[source\nnick = ")
	_, err = config.LoadValue(path)
	assert.ErrorContains(t, err, "failed to parse TOML")
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, config.FormatOf("a.CUE"), config.FormatCUE)
	assert.Equal(t, config.FormatOf("a.yml"), config.FormatYAML)
	assert.Equal(t, config.FormatOf("a.json"), config.FormatJSON)
	assert.Equal(t, config.FormatOf("a.toml"), config.FormatTOML)
	assert.Equal(t, config.FormatOf("a"), config.FormatYAML)
}
