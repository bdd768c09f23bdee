package punning

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ontx/ontx"
	"github.com/ontx/ontx/errors"
	"github.com/ontx/ontx/onto"
)

type plannerState int

const (
	stateIdle plannerState = iota
	stateScan
	statePlanned
)

// Planner converts the data property assertions of punned individuals into
// annotation assertions and erases the individual facet, producing one
// ordered change script.
//
// The whole scan-and-plan phase runs synchronously at construction, against
// one consistent snapshot of the containers; the script references only
// statements observed at plan time and is never re-validated afterwards. A
// planner is terminal: re-planning after a mutation requires a fresh
// instance.
//
// Known, intentional limitation: every statement referencing a punned data
// property is removed, even when other, non-punned individuals still use
// the property.
type Planner struct {
	id         string
	factory    ontx.StatementFactory
	containers []ontx.Container
	changes    []ontx.Change
	state      plannerState
	logger     *zap.SugaredLogger

	// planned removal keys per container, so overlapping removal sweeps
	// plan each statement once
	removed map[ontx.Container]map[string]bool
}

// PlannerOptions provides optional configuration for Planner.
type PlannerOptions struct {
	Logger *zap.SugaredLogger // Optional logger for debug output (default: nil, no logging)
}

// NewPlanner scans the containers and plans the punning-repair script.
func NewPlanner(factory ontx.StatementFactory, containers []ontx.Container) (*Planner, error) {
	return NewPlannerWithOptions(factory, containers, PlannerOptions{})
}

// NewPlannerWithOptions creates a planner with custom options.
func NewPlannerWithOptions(factory ontx.StatementFactory, containers []ontx.Container, opts PlannerOptions) (*Planner, error) {
	if factory == nil {
		return nil, errors.Wrap(errors.ErrInvalidArgument, "factory must not be nil")
	}
	if err := checkContainers(containers); err != nil {
		return nil, err
	}
	p := &Planner{
		id:         uuid.NewString(),
		factory:    factory,
		containers: containers,
		state:      stateIdle,
		logger:     opts.Logger,
		removed:    make(map[ontx.Container]map[string]bool),
	}
	if err := p.plan(); err != nil {
		return nil, err
	}
	return p, nil
}

// ID returns the plan's unique identifier.
func (p *Planner) ID() string { return p.id }

// Planned reports whether the planner reached its terminal state.
func (p *Planner) Planned() bool { return p.state == statePlanned }

// Changes returns the ordered change script. The script is one atomic unit;
// apply it strictly in order.
func (p *Planner) Changes() []ontx.Change {
	out := make([]ontx.Change, len(p.changes))
	copy(out, p.changes)
	return out
}

func (p *Planner) plan() error {
	if p.state != stateIdle {
		return errors.Wrapf(errors.ErrPlannerConsumed, "plan %s", p.id)
	}
	p.state = stateScan
	punned, err := PunnedIndividuals(p.containers...)
	if err != nil {
		return err
	}
	if p.logger != nil {
		p.logger.Debugw("planning punning repair",
			"plan_id", p.id,
			"punned_count", len(punned),
			"containers", len(p.containers),
		)
	}
	for _, ind := range punned {
		p.convertToAnnotations(ind)
	}
	p.state = statePlanned
	if p.logger != nil {
		p.logger.Debugw("punning repair planned", "plan_id", p.id, "changes", len(p.changes))
	}
	return nil
}

func (p *Planner) planAdd(ont ontx.Container, s *onto.Statement) {
	p.changes = append(p.changes, ontx.Change{Op: ontx.OpAdd, Container: ont, Statement: s})
}

func (p *Planner) planRemove(ont ontx.Container, s *onto.Statement) {
	keys := p.removed[ont]
	if keys == nil {
		keys = make(map[string]bool)
		p.removed[ont] = keys
	}
	key := s.Key(onto.MatchExact)
	if keys[key] {
		return
	}
	keys[key] = true
	p.changes = append(p.changes, ontx.Change{Op: ontx.OpRemove, Container: ont, Statement: s})
}

// convertToAnnotations rewrites every qualifying data property assertion on
// the punned individual, then erases the individual facet.
func (p *Planner) convertToAnnotations(ind onto.Entity) {
	for _, ont := range p.containers {
		var assertions []*onto.Statement
		for s := range ont.StatementsOf(onto.DataPropertyAssertion, ind) {
			if s.Subject == ind && !s.Property.IsAnonymous() {
				assertions = append(assertions, s)
			}
		}
		for _, s := range assertions {
			p.planRemove(ont, s)
			p.planAdd(ont, p.factory.AnnotationAssertion(ind.IRI, s.Property.IRI, s.Value))
			p.removeProperty(s.Property)
		}
	}
	p.removeIndividual(ind)
}

// removeProperty plans the removal of every declaration of the property and
// every other statement referencing it, across all containers. This happens
// unconditionally, even when non-punned individuals still use the property.
func (p *Planner) removeProperty(prop onto.Entity) {
	for _, ont := range p.containers {
		for s := range ont.StatementsOf(onto.Declaration, prop) {
			if s.Subject == prop {
				p.planRemove(ont, s)
			}
		}
		for s := range ont.ReferencingStatements(prop, onto.ImportsExcluded) {
			p.planRemove(ont, s)
		}
	}
}

// removeIndividual plans the removal of the individual's declarations and
// of every class assertion naming it; only the class identity remains.
func (p *Planner) removeIndividual(ind onto.Entity) {
	for _, ont := range p.containers {
		for s := range ont.StatementsOf(onto.Declaration, ind) {
			if s.Subject == ind {
				p.planRemove(ont, s)
			}
		}
		for s := range ont.StatementsOf(onto.ClassAssertion, ind) {
			if s.Subject == ind {
				p.planRemove(ont, s)
			}
		}
	}
}
