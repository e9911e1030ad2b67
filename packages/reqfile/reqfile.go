// Package reqfile loads declarative request definitions from YAML files and
// turns them into request builders. A definition file mirrors the builder
// surface:
//
//	method: POST
//	url: https://api.example.com/login
//	params:
//	  - name: source
//	    value: cli
//	headers:
//	  - name: Accept
//	    value: application/json
//	body: '{"user":"alice"}'
//	connect_timeout_ms: 5000
//	read_timeout_ms: 15000
//	proxy: http://127.0.0.1:7890/
//	gzip: true
//	insecure: false
package reqfile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abdul-hamid-achik/requests/packages/requests"
	"gopkg.in/yaml.v3"
)

// Pair is an ordered name/value entry in a definition file. Order in the
// file is the order the builder sees.
type Pair struct {
	Name  string `yaml:"name"`
	Value any    `yaml:"value"`
}

// Definition is the YAML shape of a request definition.
type Definition struct {
	Method  string `yaml:"method"`
	URL     string `yaml:"url"`
	Params  []Pair `yaml:"params"`
	Headers []Pair `yaml:"headers"`

	Body     string `yaml:"body"`
	BodyFile string `yaml:"body_file"`

	ConnectTimeoutMS int    `yaml:"connect_timeout_ms"`
	ReadTimeoutMS    int    `yaml:"read_timeout_ms"`
	Proxy            string `yaml:"proxy"`
	Gzip             bool   `yaml:"gzip"`
	Insecure         bool   `yaml:"insecure"`

	// baseDir resolves a relative body_file against the definition's own
	// location rather than the process working directory.
	baseDir string
}

// Load reads and validates a definition file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file: %w", err)
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse request file %s: %w", path, err)
	}
	def.baseDir = filepath.Dir(path)

	if err := def.validate(); err != nil {
		return nil, fmt.Errorf("invalid request file %s: %w", path, err)
	}
	return &def, nil
}

// Parse decodes a definition from raw YAML. Relative body_file paths
// resolve against the working directory.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse request definition: %w", err)
	}
	if err := def.validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

func (d *Definition) validate() error {
	if d.URL == "" {
		return fmt.Errorf("url is required")
	}
	if d.Method == "" {
		return fmt.Errorf("method is required")
	}
	if d.Body != "" && d.BodyFile != "" {
		return fmt.Errorf("body and body_file are mutually exclusive")
	}
	if d.ConnectTimeoutMS < 0 || d.ReadTimeoutMS < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	return nil
}

// Builder converts the definition into a request builder. Method and URL
// validity are left to Build so configuration errors surface uniformly.
func (d *Definition) Builder() (*requests.Builder, error) {
	b := requests.New().
		URL(d.URL).
		Method(requests.ParseMethod(d.Method))

	for _, p := range d.Params {
		b.Param(p.Name, p.Value)
	}
	for _, h := range d.Headers {
		b.Header(h.Name, h.Value)
	}

	switch {
	case d.Body != "":
		b.BodyString(d.Body)
	case d.BodyFile != "":
		path := d.BodyFile
		if !filepath.IsAbs(path) && d.baseDir != "" {
			path = filepath.Join(d.baseDir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read body file: %w", err)
		}
		b.Body(data)
	}

	if d.ConnectTimeoutMS > 0 {
		b.ConnectTimeout(time.Duration(d.ConnectTimeoutMS) * time.Millisecond)
	}
	if d.ReadTimeoutMS > 0 {
		b.ReadTimeout(time.Duration(d.ReadTimeoutMS) * time.Millisecond)
	}
	if d.Proxy != "" {
		b.Proxy(d.Proxy)
	}
	if d.Gzip {
		b.EnableGzip()
	}
	if d.Insecure {
		b.DisableTLSVerify()
	}

	return b, nil
}
