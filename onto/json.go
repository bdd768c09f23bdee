package onto

import (
	"encoding/json"

	"github.com/ontx/ontx/errors"
)

// Kinds and entity kinds marshal as their canonical names so snapshots and
// stored rows stay readable and stable across releases.

func (k Kind) MarshalJSON() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, errors.Newf("cannot marshal invalid statement kind %d", int(k))
	}
	return json.Marshal(k.String())
}

func (k *Kind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return errors.Wrap(err, "statement kind")
	}
	kind, ok := kindsByName[name]
	if !ok {
		return errors.Newf("unknown statement kind %q", name)
	}
	*k = kind
	return nil
}

var entityKindsByName = func() map[string]EntityKind {
	m := make(map[string]EntityKind, len(entityKindNames))
	for k, name := range entityKindNames {
		m[name] = k
	}
	return m
}()

func (k EntityKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *EntityKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return errors.Wrap(err, "entity kind")
	}
	kind, ok := entityKindsByName[name]
	if !ok {
		return errors.Newf("unknown entity kind %q", name)
	}
	*k = kind
	return nil
}
