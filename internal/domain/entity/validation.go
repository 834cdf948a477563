package entity

import (
	"fmt"

	"publishing-graph/internal/utils/text"
)

// Entity kinds, used as the Entity of a ValidationError and as a metric label.
const (
	KindAuthor   = "author"
	KindMagazine = "magazine"
	KindArticle  = "article"
)

// Length limits, in characters, inclusive.
const (
	MagazineNameMin = 2
	MagazineNameMax = 16
	ArticleTitleMin = 5
	ArticleTitleMax = 50
)

// Policy decides what a field does with a value its Rule rejects.
type Policy int

const (
	// PolicyFailFast returns the rejection to the caller; the field is unchanged.
	PolicyFailFast Policy = iota
	// PolicySilentIgnore drops the value and keeps the previous one. No error surfaces.
	PolicySilentIgnore
)

// String returns the policy name used in logs and metric labels.
func (p Policy) String() string {
	switch p {
	case PolicyFailFast:
		return "fail_fast"
	case PolicySilentIgnore:
		return "silent_ignore"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Rule validates a candidate value. It returns nil to accept the value.
type Rule func(value string) error

// RuneLength accepts strings with between lo and hi characters, inclusive.
func RuneLength(entity, field string, lo, hi int) Rule {
	return func(v string) error {
		if !text.RuneLengthBetween(v, lo, hi) {
			return newValidationError(entity, field,
				fmt.Sprintf("must be between %d and %d characters", lo, hi))
		}
		return nil
	}
}

// NonEmpty accepts any string except "".
func NonEmpty(entity, field string) Rule {
	return func(v string) error {
		if v == "" {
			return newValidationError(entity, field, "must be a non-empty string")
		}
		return nil
	}
}

// Frozen rejects every value. Paired with PolicySilentIgnore it makes a field write-once.
func Frozen(entity, field string) Rule {
	return func(string) error {
		return newValidationError(entity, field, "is read-only once set")
	}
}

// RejectionObserver is told about every rejected write on an entity field,
// whichever policy handled it.
type RejectionObserver func(entity, field string, policy Policy)

// Option configures an entity at construction.
type Option func(*options)

type options struct {
	observer RejectionObserver
}

// WithRejectionObserver installs fn as the entity's rejection observer.
func WithRejectionObserver(fn RejectionObserver) Option {
	return func(o *options) {
		o.observer = fn
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) reject(entity, field string, policy Policy) {
	if o.observer != nil {
		o.observer(entity, field, policy)
	}
}

// StringField is a string attribute guarded by a Rule and a Policy.
// A zero StringField has no rule and accepts every value.
type StringField struct {
	entity string
	name   string
	value  string
	rule   Rule
	policy Policy
}

// NewStringField returns an empty field. Use Set to give it a value.
func NewStringField(entity, name string, rule Rule, policy Policy) StringField {
	return StringField{entity: entity, name: name, rule: rule, policy: policy}
}

// Get returns the current value.
func (f *StringField) Get() string {
	return f.value
}

// Set runs v through the field's rule. Accepted values replace the current one.
// On rejection the field is left untouched: under PolicyFailFast the rule's error
// is returned, under PolicySilentIgnore Set reports (false, nil).
func (f *StringField) Set(v string) (applied bool, err error) {
	if f.rule == nil {
		f.value = v
		return true, nil
	}
	if rerr := f.rule(v); rerr != nil {
		if f.policy == PolicySilentIgnore {
			return false, nil
		}
		return false, rerr
	}
	f.value = v
	return true, nil
}

// freeze swaps the rule for Frozen under PolicySilentIgnore.
func (f *StringField) freeze() {
	f.rule = Frozen(f.entity, f.name)
	f.policy = PolicySilentIgnore
}

// setRef assigns v to *dst unless v is nil, in which case it fails fast.
func setRef[T any](dst **T, v *T, entity, field string) error {
	if v == nil {
		return newValidationError(entity, field, "must not be nil")
	}
	*dst = v
	return nil
}
