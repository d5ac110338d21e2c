// Package docs registers the OpenAPI document with swag so echo-swagger can
// serve it under /swagger/doc.json.
package docs

import (
	_ "embed"
	"sync"

	"github.com/ghodss/yaml"
	"github.com/swaggo/swag"
)

//go:embed swagger.yaml
var swaggerYAML []byte

type document struct {
	once sync.Once
	json string
	err  error
}

// ReadDoc converts the embedded YAML once and returns it as JSON.
func (d *document) ReadDoc() string {
	d.once.Do(func() {
		out, err := yaml.YAMLToJSON(swaggerYAML)
		d.json, d.err = string(out), err
	})
	if d.err != nil {
		return "{}"
	}
	return d.json
}

var doc = &document{}

// JSON returns the converted document, or the conversion error.
func JSON() ([]byte, error) {
	s := doc.ReadDoc()
	if doc.err != nil {
		return nil, doc.err
	}
	return []byte(s), nil
}

func init() {
	swag.Register(swag.Name, doc)
}
