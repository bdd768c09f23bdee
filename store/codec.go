package store

import (
	"encoding/json"
	"io"
	"iter"

	"github.com/ontx/ontx/errors"
	"github.com/ontx/ontx/onto"
)

// Lister is the enumeration surface the codec needs; both MemStore and
// SQLStore provide it.
type Lister interface {
	AllStatements() iter.Seq[*onto.Statement]
}

type snapshot struct {
	Statements []*onto.Statement `json:"statements"`
}

// EncodeSnapshot writes every statement of the container as one JSON
// document.
func EncodeSnapshot(w io.Writer, c Lister) error {
	var snap snapshot
	for s := range c.AllStatements() {
		snap.Statements = append(snap.Statements, s)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&snap); err != nil {
		return errors.Wrap(err, "failed to encode snapshot")
	}
	return nil
}

// DecodeSnapshot reads a JSON snapshot into a fresh MemStore.
func DecodeSnapshot(r io.Reader) (*MemStore, error) {
	var snap snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, errors.Wrap(err, "failed to decode snapshot")
	}
	m := NewMemStore()
	for _, s := range snap.Statements {
		if s == nil {
			return nil, errors.Wrap(errors.ErrInvalidArgument, "snapshot contains a null statement")
		}
		if err := m.AddStatement(s); err != nil {
			return nil, err
		}
	}
	return m, nil
}
