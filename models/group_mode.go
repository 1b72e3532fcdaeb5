package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownGroupMode = errors.New("unknown group mode")

// GroupMode controls the Group column of points.csv.
type GroupMode int

const (
	// GroupModeClassified labels each entity by the countries of its titles.
	GroupModeClassified GroupMode = iota
	GroupModeConstant // Same placeholder label for every entity
)

// ParseGroupMode accepts "classified"/"country" and "constant"/"none".
// An empty string resolves to the classified mode.
func ParseGroupMode(s string) (GroupMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "classified", "country":
		return GroupModeClassified, nil
	case "constant", "none", "flat":
		return GroupModeConstant, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGroupMode, s)
}

func (m GroupMode) String() string {
	if m == GroupModeConstant {
		return "constant"
	}
	return "classified"
}

func (m *GroupMode) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseGroupMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m GroupMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}
