// Copyright 2017-2026, Square, Inc.

// Package document reads saved graph documents. Documents written by older
// versions are decoded into their historical shape and upgraded to Document,
// the current shape, which Build turns into a graph.
package document

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/square/shadergraph/graph"
	"github.com/square/shadergraph/property"
	"github.com/square/shadergraph/upgrade"
	"github.com/square/shadergraph/value"
)

// CurrentVersion is the schema version of Document.
const CurrentVersion = 2

// Document is the current shape of a saved graph.
type Document struct {
	SchemaVersion int    `yaml:"version"`
	Name          string `yaml:"name"`

	// Precision is "float" or "half". It overrides the compiler default.
	Precision string `yaml:"precision,omitempty"`

	Properties []property.Property `yaml:"properties"` // in registration order
	Nodes      []Node              `yaml:"nodes"`
	Edges      []graph.Edge        `yaml:"edges"`
}

// Node is one graph node. Which fields are used depends on Type.
type Node struct {
	Id       int          `yaml:"id"`                 // unique in the document
	Type     string       `yaml:"type"`               // node type name, see node.TypeValue
	Property string       `yaml:"property,omitempty"` // property id (property nodes)
	Texture  string       `yaml:"texture,omitempty"`  // asset reference (texture asset nodes)
	Kind     string       `yaml:"kind,omitempty"`     // value kind (constant nodes)
	Value    *value.Value `yaml:"value,omitempty"`    // literal (constant nodes)
	Op       string       `yaml:"op,omitempty"`       // operator (math nodes)
}

func (d *Document) DocumentId() string { return d.Name }
func (d *Document) Version() int       { return d.SchemaVersion }

// --------------------------------------------------------------------------

// unknownVersion is a document whose version has no known shape. The upgrade
// resolver reports it as having no upgrade path.
type unknownVersion struct {
	name    string
	version int
}

func (d unknownVersion) DocumentId() string { return d.name }
func (d unknownVersion) Version() int       { return d.version }

// Parse decodes a document of any known version. Unknown or duplicate fields
// are reported to logFunc as a warning and ignored; malformed YAML is an
// error. The returned document is in the shape of its own version; use
// Upgrade to bring it to the current shape. If the document has no name,
// name is used.
func Parse(data []byte, name string, logFunc func(string, ...interface{})) (upgrade.Document, error) {
	var header struct {
		Version int    `yaml:"version"`
		Name    string `yaml:"name"`
	}
	if err := yaml.Unmarshal(data, &header); err != nil {
		return nil, err
	}
	if header.Name != "" {
		name = header.Name
	}

	var doc upgrade.Document
	switch header.Version {
	case 0:
		d := &DocumentV0{}
		if err := decode(data, d, logFunc); err != nil {
			return nil, err
		}
		d.Name = name
		doc = d
	case 1:
		d := &DocumentV1{}
		if err := decode(data, d, logFunc); err != nil {
			return nil, err
		}
		d.Name = name
		doc = d
	case CurrentVersion:
		d := &Document{}
		if err := decode(data, d, logFunc); err != nil {
			return nil, err
		}
		d.Name = name
		doc = d
	default:
		doc = unknownVersion{name: name, version: header.Version}
	}
	return doc, nil
}

func decode(data []byte, v interface{}, logFunc func(string, ...interface{})) error {
	/* Emit warning if unexpected or duplicate fields are present. */
	/* Error if the document is malformed or fields are of incorrect type. */
	err := yaml.UnmarshalStrict(data, v)
	if err != nil {
		logFunc("Warning: %s\n", err)
		err = yaml.Unmarshal(data, v)
		if err != nil {
			return err
		}
	}
	return nil
}

// ParseFile reads and parses one document file. The file name without its
// extension is the default document name.
func ParseFile(file string, logFunc func(string, ...interface{})) (upgrade.Document, error) {
	data, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	return Parse(data, name, logFunc)
}

// ParseDir parses every .yaml file in dir and its subdirectories, keyed by
// path relative to dir.
func ParseDir(dir string, logFunc func(string, ...interface{})) (map[string]upgrade.Document, error) {
	docs := map[string]upgrade.Document{}
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(info.Name(), ".yaml") {
			return nil
		}
		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			logFunc("Warning: failed to get relative path for file %s: %s", path, err)
			relPath = path
		}

		doc, err := ParseFile(path, logFunc) // logs warnings but not errors
		if err != nil {
			return fmt.Errorf("error reading document %s: %s", relPath, err)
		}
		docs[relPath] = doc
		return nil
	})
	if err != nil {
		return docs, fmt.Errorf("error reading documents: %s", err)
	}
	return docs, nil
}

// Marshal encodes a current document as YAML.
func Marshal(d *Document) ([]byte, error) {
	return yaml.Marshal(d)
}
