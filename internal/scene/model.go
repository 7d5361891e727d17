package scene

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"sync/atomic"

	"github.com/qmuntal/gltf"

	"arviewer/internal/crypto"
	"arviewer/internal/domain"
)

// ErrEmptyScene is returned for a document with neither scenes nor nodes.
var ErrEmptyScene = errors.New("asset has no scenes or nodes")

var instances atomic.Uint64

// Model is a decoded asset. The zero instance number marks the original
// handle held by the loader; clones get increasing numbers.
type Model struct {
	source   string
	name     string
	digest   string
	doc      *gltf.Document
	instance uint64
}

// Name returns the scene name, the first node name, or the asset file name.
func (m *Model) Name() string { return m.name }

// Source is the URL the asset was fetched from.
func (m *Model) Source() string { return m.source }

// Digest fingerprints the asset bytes.
func (m *Model) Digest() string { return m.digest }

// Instance is zero for the loaded handle and unique for every clone.
func (m *Model) Instance() uint64 { return m.instance }

// Nodes is the node count of the decoded document.
func (m *Model) Nodes() int { return len(m.doc.Nodes) }

// Meshes is the mesh count of the decoded document.
func (m *Model) Meshes() int { return len(m.doc.Meshes) }

// Clone returns a new instance sharing the decoded document.
func (m *Model) Clone() domain.SceneGraph {
	c := *m
	c.instance = instances.Add(1)
	return &c
}

// Decoder implements domain.ModelDecoder for glTF assets.
type Decoder struct{}

// Decode parses data fetched from source.
func (Decoder) Decode(source string, data []byte) (domain.SceneGraph, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(bytes.NewReader(data)).Decode(doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}
	if len(doc.Scenes) == 0 && len(doc.Nodes) == 0 {
		return nil, fmt.Errorf("decode %s: %w", source, ErrEmptyScene)
	}
	return &Model{
		source: source,
		name:   modelName(source, doc),
		digest: crypto.Fingerprint(data),
		doc:    doc,
	}, nil
}

func modelName(source string, doc *gltf.Document) string {
	if doc.Scene != nil && int(*doc.Scene) < len(doc.Scenes) {
		if n := doc.Scenes[*doc.Scene].Name; n != "" {
			return n
		}
	}
	for _, s := range doc.Scenes {
		if s.Name != "" {
			return s.Name
		}
	}
	for _, n := range doc.Nodes {
		if n.Name != "" {
			return n.Name
		}
	}
	return path.Base(source)
}

var _ domain.ModelDecoder = Decoder{}
