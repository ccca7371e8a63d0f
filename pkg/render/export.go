package render

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/golang/snappy"
)

// NodeExport is the serialized form of a visible node.
type NodeExport struct {
	ID      string            `json:"id"`
	Label   string            `json:"label"`
	Tier    string            `json:"tier"`
	X       float64           `json:"x"`
	Y       float64           `json:"y"`
	Cluster int               `json:"cluster"`
	Local   bool              `json:"local,omitempty"`
	Tags    []string          `json:"tags,omitempty"`
	Attrs   map[string]string `json:"attrs,omitempty"`
}

// EdgeExport is the serialized form of a visible edge.
type EdgeExport struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Kind   string  `json:"kind"`
	Weight float64 `json:"weight"`
	Local  bool    `json:"local,omitempty"`
}

// Document is the export envelope for a rendered view.
type Document struct {
	ExportedAt time.Time    `json:"exported_at"`
	Nodes      []NodeExport `json:"nodes"`
	Edges      []EdgeExport `json:"edges"`
}

// BuildDocument captures the visible portion of the frame, positions
// included, so an export can be reloaded or inspected offline.
func BuildDocument(f *Frame) *Document {
	doc := &Document{
		ExportedAt: time.Now().UTC(),
		Nodes:      make([]NodeExport, 0, len(f.Visible.Nodes)),
		Edges:      make([]EdgeExport, 0, len(f.Visible.Edges)),
	}

	for _, n := range f.Visible.Nodes {
		// Snapshot the node so the document does not alias tag slices
		// or attribute maps still owned by the live graph.
		c := n.Clone()
		doc.Nodes = append(doc.Nodes, NodeExport{
			ID:      c.ID,
			Label:   c.Label,
			Tier:    c.Tier.String(),
			X:       c.X,
			Y:       c.Y,
			Cluster: c.Cluster,
			Local:   c.Local,
			Tags:    c.Tags,
			Attrs:   c.Attrs,
		})
	}

	for _, e := range f.Visible.Edges {
		doc.Edges = append(doc.Edges, EdgeExport{
			Source: e.Source,
			Target: e.Target,
			Kind:   e.Kind.String(),
			Weight: e.Weight,
			Local:  e.Local,
		})
	}

	return doc
}

// WriteJSON writes the document as indented JSON.
func WriteJSON(doc *Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}

// WriteSnappy writes the document as snappy-compressed JSON, for large
// graphs where the plain export gets unwieldy.
func WriteSnappy(doc *Document, w io.Writer) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	if _, err := w.Write(snappy.Encode(nil, data)); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// ReadSnappy decompresses and decodes a snappy export.
func ReadSnappy(r io.Reader) (*Document, error) {
	compressed, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}
	data, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("decompress export: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}
	return &doc, nil
}
