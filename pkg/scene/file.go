package scene

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/portwire/pkg/errors"
)

// File is the decoded form of a scene document.
type File struct {
	Nodes       []NodeSpec       `toml:"node"`
	Connections []ConnectionSpec `toml:"connection"`
	Drafts      []DraftSpec      `toml:"draft"`
}

// NodeSpec places one model instance.
type NodeSpec struct {
	ID    string  `toml:"id"`
	Model string  `toml:"model"`
	X     float64 `toml:"x"`
	Y     float64 `toml:"y"`
}

// ConnectionSpec joins an output port to an input port.
type ConnectionSpec struct {
	From     string `toml:"from"`
	To       string `toml:"to"`
	Selected bool   `toml:"selected"`
	Hovered  bool   `toml:"hovered"`
}

// DraftSpec is a connection still being dragged. Exactly one of From and To
// is set; End is where the free end currently is.
type DraftSpec struct {
	From    string     `toml:"from"`
	To      string     `toml:"to"`
	End     [2]float64 `toml:"end"`
	Hovered bool       `toml:"hovered"`
}

// Decode reads a scene document.
func Decode(r io.Reader) (*File, error) {
	var f File
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode scene")
	}
	return &f, nil
}

// Load reads a scene file from disk.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "open scene %s", path)
	}
	defer fh.Close()
	return Decode(fh)
}

// PortRef is a parsed "node:index" reference.
type PortRef struct {
	Node  string
	Index int
}

func (r PortRef) String() string { return r.Node + ":" + strconv.Itoa(r.Index) }

// ParsePortRef parses "node:index". A bare node id refers to port 0.
func ParsePortRef(s string) (PortRef, error) {
	node, idx, found := strings.Cut(s, ":")
	if node == "" {
		return PortRef{}, errors.New(errors.ErrCodeInvalidScene, "port reference %q has no node", s)
	}
	if !found {
		return PortRef{Node: node}, nil
	}
	n, err := strconv.Atoi(idx)
	if err != nil || n < 0 {
		return PortRef{}, errors.New(errors.ErrCodeInvalidScene, "port reference %q has a bad index", s)
	}
	return PortRef{Node: node, Index: n}, nil
}
