// Package schema declares the per-step field constraints of the registration
// wizard and validates step payloads against them.
//
// Each step has a fixed rule table. A rule is one of: required, optional,
// email, enum, or accept (a boolean that must be strictly true). A rule may
// additionally carry a condition: the field becomes required only when a
// sibling field holds a specific value (e.g. divorceCount is required only
// when isDivorced is "Yes").
package schema

import (
	"net/mail"
	"strings"
)

// Kind selects the base constraint of a field rule.
type Kind int

const (
	// Optional fields always pass; enum membership is still checked when a
	// value is present and the rule carries an Enum set.
	Optional Kind = iota
	// Required fields must hold a non-blank value.
	Required
	// Email fields must hold a parseable address.
	Email
	// Enum fields must hold one of the listed literals.
	Enum
	// Accept fields must hold the literal "true".
	Accept
)

// Condition makes a rule apply only when the named sibling field holds
// exactly the given value.
type Condition struct {
	Field string
	Value string
}

// Rule is a single field constraint.
type Rule struct {
	Field string
	Kind  Kind
	// Enum lists the accepted literals for Kind == Enum (and is also
	// enforced on non-blank optional values).
	Enum []string
	// Message is reported when the field is missing or not a member of Enum.
	Message string
	// FormatMessage is reported when an email field holds a non-blank but
	// unparseable value. Falls back to Message when empty.
	FormatMessage string
	// When, if set, gates the rule: the constraint applies only while the
	// condition holds. Outside the condition the field is treated as optional.
	When *Condition
}

var yesNo = []string{"Yes", "No"}

// Validate checks values against rules and returns one message per failing
// field, keyed by field name. An empty map means the payload passes.
func Validate(rules []Rule, values map[string]string) map[string]string {
	errs := make(map[string]string)

	for _, r := range rules {
		value := strings.TrimSpace(values[r.Field])

		active := r.When == nil || strings.TrimSpace(values[r.When.Field]) == r.When.Value
		if !active {
			// Outside its condition a field may still not hold a value
			// foreign to its enum.
			if value != "" && len(r.Enum) > 0 && !member(r.Enum, value) {
				errs[r.Field] = r.Message
			}
			continue
		}

		switch r.Kind {
		case Optional:
			if value != "" && len(r.Enum) > 0 && !member(r.Enum, value) {
				errs[r.Field] = r.Message
			}
		case Required:
			if value == "" {
				errs[r.Field] = r.Message
			}
		case Email:
			if value == "" {
				errs[r.Field] = r.Message
			} else if _, err := mail.ParseAddress(value); err != nil {
				msg := r.FormatMessage
				if msg == "" {
					msg = r.Message
				}
				errs[r.Field] = msg
			}
		case Enum:
			if !member(r.Enum, value) {
				errs[r.Field] = r.Message
			}
		case Accept:
			if value != "true" {
				errs[r.Field] = r.Message
			}
		}
	}

	return errs
}

func member(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
