package models

import (
	"errors"
	"fmt"

	"github.com/dtnitsch/cooccur-network/pkg/tokenize"
)

var ErrUnknownQuestion = errors.New("unknown question")

// DefaultAttributeColumn is the country column of the catalog.
const DefaultAttributeColumn = "country"

// Question is a named network pipeline. Its ID namespaces the results directory.
type Question struct {
	ID              string           `yaml:"id"`
	Kind            EntityKind       `yaml:"kind"`
	GroupMode       GroupMode        `yaml:"group_mode"`
	EntityColumn    string           `yaml:"entity_column,omitempty"`
	AttributeColumn string           `yaml:"attribute_column,omitempty"`
	EntityPolicy    *tokenize.Policy `yaml:"entity_policy,omitempty"`
	AttributePolicy *tokenize.Policy `yaml:"attribute_policy,omitempty"`
}

// DefaultQuestions are the actor (q1) and director (q2) networks.
func DefaultQuestions() []Question {
	return []Question{
		{ID: "q1", Kind: KindActor, GroupMode: GroupModeClassified},
		{ID: "q2", Kind: KindDirector, GroupMode: GroupModeClassified},
	}
}

// Resolved fills unset columns and policies from the kind's defaults.
func (q Question) Resolved() Question {
	if q.EntityColumn == "" {
		q.EntityColumn = q.Kind.Column()
	}
	if q.AttributeColumn == "" {
		q.AttributeColumn = DefaultAttributeColumn
	}
	if q.EntityPolicy == nil {
		p := q.Kind.EntityPolicy()
		q.EntityPolicy = &p
	}
	if q.AttributePolicy == nil {
		p := q.Kind.AttributePolicy()
		q.AttributePolicy = &p
	}
	return q
}

// FindQuestion looks up a question by ID.
func FindQuestion(questions []Question, id string) (Question, error) {
	for _, q := range questions {
		if q.ID == id {
			return q, nil
		}
	}
	return Question{}, fmt.Errorf("%w: %q", ErrUnknownQuestion, id)
}

// QuestionForKind returns the first question building the given kind.
func QuestionForKind(questions []Question, kind EntityKind) (Question, error) {
	for _, q := range questions {
		if q.Kind == kind {
			return q, nil
		}
	}
	return Question{}, fmt.Errorf("%w: no question for kind %s", ErrUnknownQuestion, kind)
}
