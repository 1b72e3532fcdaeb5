package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dtnitsch/cooccur-network/pkg/tokenize"
)

var ErrUnknownKind = errors.New("unknown entity kind")

// EntityKind selects which catalog column is ranked and linked.
type EntityKind int

const (
	KindActor EntityKind = iota
	KindDirector
)

// ParseEntityKind accepts "actor"/"cast" and "director".
func ParseEntityKind(s string) (EntityKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "actor", "actors", "cast":
		return KindActor, nil
	case "director", "directors":
		return KindDirector, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k EntityKind) String() string {
	if k == KindDirector {
		return "director"
	}
	return "actor"
}

// Column is the default source column for this kind.
func (k EntityKind) Column() string {
	if k == KindDirector {
		return "director"
	}
	return "cast"
}

// PointsLabel is the first header cell of points.csv.
func (k EntityKind) PointsLabel() string {
	if k == KindDirector {
		return "Director"
	}
	return "Actor"
}

// EntityPolicy is how name cells of this kind are split.
// Cast lists are split on ", " verbatim; director lists are split on "," and trimmed.
func (k EntityKind) EntityPolicy() tokenize.Policy {
	if k == KindDirector {
		return tokenize.Policy{Delimiter: ",", Trim: true, DropEmpty: true}
	}
	return tokenize.Policy{Delimiter: ", "}
}

// AttributePolicy is how country cells are split for this kind.
func (k EntityKind) AttributePolicy() tokenize.Policy {
	return k.EntityPolicy()
}

// UnmarshalYAML lets config files spell kinds by name.
func (k *EntityKind) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseEntityKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalYAML writes the kind by name.
func (k EntityKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}
