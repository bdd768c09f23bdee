package ontx

import (
	"github.com/ontx/ontx/errors"
	"github.com/ontx/ontx/onto"
)

// ChangeOp tags a Change.
type ChangeOp int

const (
	// OpAdd inserts a statement into a container.
	OpAdd ChangeOp = iota
	// OpRemove deletes a statement from a container.
	OpRemove
)

func (op ChangeOp) String() string {
	if op == OpAdd {
		return "add"
	}
	return "remove"
}

// Change is one planned edit against one container. An ordered []Change is
// a single atomic edit script; it is computed once against a fixed snapshot
// and never re-validated before application.
type Change struct {
	Op        ChangeOp
	Container Container
	Statement *onto.Statement
}

// Apply executes a change script in order. Every target container must
// implement MutableContainer. Removing an already-absent statement is a
// no-op by the MutableContainer contract, so scripts planned against a
// snapshot apply cleanly even when removals overlap.
func Apply(changes []Change) error {
	for i, c := range changes {
		m, ok := c.Container.(MutableContainer)
		if !ok {
			return errors.Wrapf(errors.ErrNotMutable, "change %d (%s %s)", i, c.Op, c.Statement.Kind)
		}
		var err error
		switch c.Op {
		case OpAdd:
			err = m.AddStatement(c.Statement)
		case OpRemove:
			err = m.RemoveStatement(c.Statement)
		}
		if err != nil {
			return errors.Wrapf(err, "failed to apply change %d (%s %s)", i, c.Op, c.Statement.Kind)
		}
	}
	return nil
}
