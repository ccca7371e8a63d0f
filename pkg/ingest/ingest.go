// Package ingest converts generic records from the record-fetching layer
// into graph model nodes and edges. Records are validated before
// conversion; relation records with unknown endpoints are kept, since
// the model resolves edges lazily and upstream data can be momentarily
// inconsistent during incremental loads.
package ingest

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dd0wney/cluso-lens/pkg/model"
)

var validate = validator.New()

// Record is a generic node record supplied by the collaborator layer.
type Record struct {
	ID        string             `json:"id" validate:"required"`
	Title     string             `json:"title" validate:"required"`
	Tier      string             `json:"tier" validate:"required"`
	Tags      []string           `json:"tags" validate:"omitempty,max=32,dive,max=64"`
	Data      map[string]string  `json:"data" validate:"omitempty,max=128"`
	Numbers   map[string]float64 `json:"numbers" validate:"omitempty,max=128"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// RelationRecord is a generic edge record supplied by the collaborator
// layer.
type RelationRecord struct {
	Source string  `json:"source" validate:"required"`
	Target string  `json:"target" validate:"required"`
	Kind   string  `json:"kind" validate:"required"`
	Weight float64 `json:"weight" validate:"gte=0"`
}

// Node converts a record into a graph node.
func (r *Record) Node() (*model.Node, error) {
	if r == nil {
		return nil, errors.New("record cannot be nil")
	}
	if err := validate.Struct(r); err != nil {
		return nil, formatValidationError("record", err)
	}

	tier, err := model.ParseTier(r.Tier)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", r.ID, err)
	}

	n := &model.Node{
		ID:        r.ID,
		Label:     r.Title,
		Tier:      tier,
		CreatedAt: r.CreatedAt,
	}
	if len(r.Tags) > 0 {
		n.Tags = append([]string(nil), r.Tags...)
	}
	if len(r.Data) > 0 {
		n.Attrs = make(map[string]string, len(r.Data))
		for k, v := range r.Data {
			n.Attrs[k] = v
		}
	}
	if len(r.Numbers) > 0 {
		n.NumAttrs = make(map[string]float64, len(r.Numbers))
		for k, v := range r.Numbers {
			n.NumAttrs[k] = v
		}
	}
	return n, nil
}

// Edge converts a relation record into a graph edge.
func (r *RelationRecord) Edge() (*model.Edge, error) {
	if r == nil {
		return nil, errors.New("relation record cannot be nil")
	}
	if err := validate.Struct(r); err != nil {
		return nil, formatValidationError("relation", err)
	}

	kind, err := model.ParseKind(r.Kind)
	if err != nil {
		return nil, fmt.Errorf("relation %s->%s: %w", r.Source, r.Target, err)
	}

	return &model.Edge{
		Source: r.Source,
		Target: r.Target,
		Weight: r.Weight,
		Kind:   kind,
	}, nil
}

// Build converts a full record set into a graph. Conversion stops at
// the first invalid record; partial datasets from the collaborator are
// a caller bug, not an inconsistency the engine should paper over.
func Build(records []Record, relations []RelationRecord) (*model.Graph, error) {
	nodes := make([]*model.Node, 0, len(records))
	for i := range records {
		n, err := records[i].Node()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}

	edges := make([]*model.Edge, 0, len(relations))
	for i := range relations {
		e, err := relations[i].Edge()
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}

	return model.NewGraph(nodes, edges)
}

func formatValidationError(entity string, err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		return fmt.Errorf("%s: field %s failed %s validation", entity, e.Field(), e.Tag())
	}
	return fmt.Errorf("%s: %w", entity, err)
}
