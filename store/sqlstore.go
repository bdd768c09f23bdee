package store

import (
	"database/sql"
	"encoding/json"
	"iter"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/ontx/ontx"
	"github.com/ontx/ontx/errors"
	"github.com/ontx/ontx/onto"
)

const sqlSchema = `
CREATE TABLE IF NOT EXISTS statements (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	key       TEXT NOT NULL UNIQUE,
	loose_key TEXT NOT NULL,
	kind      TEXT NOT NULL,
	body      TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_statements_loose ON statements(loose_key);
CREATE INDEX IF NOT EXISTS idx_statements_kind ON statements(kind);

CREATE TABLE IF NOT EXISTS signature (
	statement_id INTEGER NOT NULL,
	entity_kind  TEXT NOT NULL,
	iri          TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_signature_iri ON signature(iri);
CREATE INDEX IF NOT EXISTS idx_signature_statement ON signature(statement_id);
`

// SQLStore is a statement container backed by SQLite. Statements are stored
// as JSON rows keyed by their canonical form and joined against a signature
// table for per-kind, per-anchor lookups. Insertion order is preserved
// through the rowid.
type SQLStore struct {
	db      *sql.DB
	imports []ontx.Container
	logger  *zap.SugaredLogger
}

// NewSQLStore wraps an open database, creating the schema if needed. The
// logger is optional; row-scan failures inside lazy sequences are reported
// through it.
func NewSQLStore(db *sql.DB, logger *zap.SugaredLogger) (*SQLStore, error) {
	if db == nil {
		return nil, errors.Wrap(errors.ErrInvalidArgument, "db must not be nil")
	}
	if _, err := db.Exec(sqlSchema); err != nil {
		return nil, errors.Wrap(err, "failed to create statement schema")
	}
	return &SQLStore{db: db, logger: logger}, nil
}

// OpenSQLStore opens (or creates) a SQLite database at path and wraps it.
func OpenSQLStore(path string, logger *zap.SugaredLogger) (*SQLStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database %s", path)
	}
	s, err := NewSQLStore(db, logger)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *SQLStore) Close() error { return s.db.Close() }

// SetImports sets the container's imports closure. The caller supplies the
// full traversal set; the store does not walk it transitively.
func (s *SQLStore) SetImports(imports ...ontx.Container) {
	s.imports = imports
}

func (s *SQLStore) warnf(err error, msg string) {
	if s.logger != nil {
		s.logger.Warnw(msg, "error", err)
	}
}

// AddStatement inserts st. Statements structurally equal to a stored one
// (annotations considered) are ignored.
func (s *SQLStore) AddStatement(st *onto.Statement) error {
	if st == nil {
		return errors.Wrap(errors.ErrInvalidArgument, "statement must not be nil")
	}
	body, err := json.Marshal(st)
	if err != nil {
		return errors.Wrap(err, "failed to encode statement")
	}
	res, err := s.db.Exec(
		`INSERT OR IGNORE INTO statements (key, loose_key, kind, body) VALUES (?, ?, ?, ?)`,
		st.Key(onto.MatchExact), st.Key(onto.MatchIgnoreAnnotations), st.Kind.String(), string(body),
	)
	if err != nil {
		return errors.Wrap(err, "failed to insert statement")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read insert result")
	}
	if n == 0 {
		return nil
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "failed to read statement id")
	}
	for _, e := range st.Signature() {
		if _, err := s.db.Exec(
			`INSERT INTO signature (statement_id, entity_kind, iri) VALUES (?, ?, ?)`,
			id, e.Kind.String(), string(e.IRI),
		); err != nil {
			return errors.Wrap(err, "failed to index statement signature")
		}
	}
	if !st.About.IsEmpty() {
		if _, err := s.db.Exec(
			`INSERT INTO signature (statement_id, entity_kind, iri) VALUES (?, ?, ?)`,
			id, "about", string(st.About),
		); err != nil {
			return errors.Wrap(err, "failed to index statement subject identifier")
		}
	}
	return nil
}

// RemoveStatement deletes the statement structurally equal to st with
// annotations considered. Removing an absent statement is a no-op.
func (s *SQLStore) RemoveStatement(st *onto.Statement) error {
	if st == nil {
		return errors.Wrap(errors.ErrInvalidArgument, "statement must not be nil")
	}
	row := s.db.QueryRow(`SELECT id FROM statements WHERE key = ?`, st.Key(onto.MatchExact))
	var id int64
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return errors.Wrap(err, "failed to look up statement")
	}
	if _, err := s.db.Exec(`DELETE FROM signature WHERE statement_id = ?`, id); err != nil {
		return errors.Wrap(err, "failed to delete statement signature")
	}
	if _, err := s.db.Exec(`DELETE FROM statements WHERE id = ?`, id); err != nil {
		return errors.Wrap(err, "failed to delete statement")
	}
	return nil
}

// Len returns the number of stored statements.
func (s *SQLStore) Len() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM statements`).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "failed to count statements")
	}
	return n, nil
}

// rowSeq runs a statement-returning query lazily. Query errors end the
// sequence; they are logged, not returned, because the Container contract
// exposes plain sequences.
func (s *SQLStore) rowSeq(query string, args ...any) iter.Seq[*onto.Statement] {
	return func(yield func(*onto.Statement) bool) {
		rows, err := s.db.Query(query, args...)
		if err != nil {
			s.warnf(err, "statement query failed")
			return
		}
		defer rows.Close()
		for rows.Next() {
			var body string
			if err := rows.Scan(&body); err != nil {
				s.warnf(err, "statement row scan failed")
				return
			}
			var st onto.Statement
			if err := json.Unmarshal([]byte(body), &st); err != nil {
				s.warnf(err, "statement row decode failed")
				return
			}
			if !yield(&st) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			s.warnf(err, "statement row iteration failed")
		}
	}
}

// AllStatements returns every stored statement in insertion order.
func (s *SQLStore) AllStatements() iter.Seq[*onto.Statement] {
	return s.rowSeq(`SELECT body FROM statements ORDER BY id`)
}

// StatementsOf returns the statements of the given kind indexed under the
// anchor's identifier.
func (s *SQLStore) StatementsOf(kind onto.Kind, anchor onto.Entity) iter.Seq[*onto.Statement] {
	return s.rowSeq(
		`SELECT DISTINCT s.body FROM statements s
		 JOIN signature g ON g.statement_id = s.id
		 WHERE s.kind = ? AND g.iri = ?
		 ORDER BY s.id`,
		kind.String(), string(anchor.IRI),
	)
}

// SignatureIndividuals returns the identifiers of referenced individuals in
// first-reference order.
func (s *SQLStore) SignatureIndividuals() iter.Seq[onto.IRI] {
	return func(yield func(onto.IRI) bool) {
		rows, err := s.db.Query(
			`SELECT iri FROM signature WHERE entity_kind = ?
			 GROUP BY iri ORDER BY MIN(rowid)`,
			onto.KindIndividual.String(),
		)
		if err != nil {
			s.warnf(err, "individual signature query failed")
			return
		}
		defer rows.Close()
		for rows.Next() {
			var iri string
			if err := rows.Scan(&iri); err != nil {
				s.warnf(err, "individual signature scan failed")
				return
			}
			if !yield(onto.IRI(iri)) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			s.warnf(err, "individual signature iteration failed")
		}
	}
}

// ContainsClass reports whether the signature contains a class with the
// given identifier.
func (s *SQLStore) ContainsClass(iri onto.IRI) bool {
	row := s.db.QueryRow(
		`SELECT 1 FROM signature WHERE entity_kind = ? AND iri = ? LIMIT 1`,
		onto.KindClass.String(), string(iri),
	)
	var one int
	if err := row.Scan(&one); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.warnf(err, "class signature lookup failed")
		}
		return false
	}
	return true
}

// ReferencingStatements returns every statement whose signature contains e,
// walking the imports closure when requested.
func (s *SQLStore) ReferencingStatements(e onto.Entity, imports onto.ImportsMode) iter.Seq[*onto.Statement] {
	local := s.rowSeq(
		`SELECT DISTINCT s.body FROM statements s
		 JOIN signature g ON g.statement_id = s.id
		 WHERE g.entity_kind = ? AND g.iri = ?
		 ORDER BY s.id`,
		e.Kind.String(), string(e.IRI),
	)
	return func(yield func(*onto.Statement) bool) {
		for st := range local {
			if !yield(st) {
				return
			}
		}
		if imports != onto.ImportsIncluded {
			return
		}
		for _, imp := range s.imports {
			for st := range imp.ReferencingStatements(e, onto.ImportsExcluded) {
				if !yield(st) {
					return
				}
			}
		}
	}
}

// ContainsStatement reports whether a structurally equal statement is
// present under the given modes.
func (s *SQLStore) ContainsStatement(st *onto.Statement, imports onto.ImportsMode, mode onto.MatchMode) bool {
	column := "key"
	key := st.Key(onto.MatchExact)
	if mode == onto.MatchIgnoreAnnotations {
		column = "loose_key"
		key = st.Key(onto.MatchIgnoreAnnotations)
	}
	row := s.db.QueryRow(`SELECT 1 FROM statements WHERE `+column+` = ? LIMIT 1`, key)
	var one int
	if err := row.Scan(&one); err == nil {
		return true
	} else if !errors.Is(err, sql.ErrNoRows) {
		s.warnf(err, "statement containment lookup failed")
	}
	if imports != onto.ImportsIncluded {
		return false
	}
	for _, imp := range s.imports {
		if imp.ContainsStatement(st, onto.ImportsExcluded, mode) {
			return true
		}
	}
	return false
}

// MatchingStatements returns the stored statements structurally equal to st
// ignoring annotations.
func (s *SQLStore) MatchingStatements(st *onto.Statement, imports onto.ImportsMode) iter.Seq[*onto.Statement] {
	local := s.rowSeq(
		`SELECT body FROM statements WHERE loose_key = ? ORDER BY id`,
		st.Key(onto.MatchIgnoreAnnotations),
	)
	return func(yield func(*onto.Statement) bool) {
		for match := range local {
			if !yield(match) {
				return
			}
		}
		if imports != onto.ImportsIncluded {
			return
		}
		for _, imp := range s.imports {
			for match := range imp.MatchingStatements(st, onto.ImportsExcluded) {
				if !yield(match) {
					return
				}
			}
		}
	}
}
