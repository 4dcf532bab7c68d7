package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bloggers/bloggers-api/internal/model"
)

// Rule is the ordered check chain for one payload field.
type Rule struct {
	Field     string
	TrimSpace bool
	Checks    []Check
}

// Field starts a rule for name.
func Field(name string) Rule {
	return Rule{Field: name}
}

// Trim makes the rule trim surrounding whitespace before any check runs.
func (r Rule) Trim() Rule {
	r.TrimSpace = true
	return r
}

// Must appends a check. Rules are values; Must never mutates the receiver's
// backing array.
func (r Rule) Must(p Predicate, message string) Rule {
	r.Checks = append(slices.Clip(r.Checks), Check{Predicate: p, Message: message})
	return r
}

func (r Rule) NotEmpty(message string) Rule {
	return r.Must(IsNotEmpty, message)
}

func (r Rule) MaxLength(max int, message string) Rule {
	return r.Must(LengthBetween(-1, max), message)
}

func (r Rule) Length(min, max int, message string) Rule {
	return r.Must(LengthBetween(min, max), message)
}

func (r Rule) Email(message string) Rule {
	return r.Must(IsEmail, message)
}

func (r Rule) URL(message string) Rule {
	return r.Must(IsURL, message)
}

func (r Rule) ResourceID(message string) Rule {
	return r.Must(IsResourceID, message)
}

// check returns the message of the first failing check, if any.
func (r Rule) check(value string) (string, bool) {
	for _, c := range r.Checks {
		if !c.Predicate(value) {
			return c.Message, false
		}
	}
	return "", true
}

// RuleSet is the declared rule list for one resource payload.
type RuleSet struct {
	Resource string
	Rules    []Rule
}

// NewRuleSet declares a rule set; rules are evaluated in the given order.
func NewRuleSet(resource string, rules ...Rule) RuleSet {
	return RuleSet{Resource: resource, Rules: rules}
}

// Validate checks payload and returns one error per failing field, in
// declaration order. It returns nil when the payload is valid.
func (rs RuleSet) Validate(payload map[string]any) []model.FieldError {
	_, errs := rs.Apply(payload)
	return errs
}

// Apply validates payload and returns a copy with declared string fields
// normalised (trimmed where declared). Fields without rules pass through.
func (rs RuleSet) Apply(payload map[string]any) (map[string]any, []model.FieldError) {
	normalized := make(map[string]any, len(payload))
	for k, v := range payload {
		normalized[k] = v
	}

	var errs []model.FieldError
	for _, rule := range rs.Rules {
		raw, present := payload[rule.Field]
		value, scalar := stringValue(raw)
		if rule.TrimSpace {
			value = strings.TrimSpace(value)
		}
		if present && scalar {
			normalized[rule.Field] = value
		}

		if msg, ok := rule.check(value); !ok {
			errs = append(errs, model.FieldError{Message: msg, Field: rule.Field})
		}
	}

	return normalized, errs
}

// stringValue converts a decoded JSON scalar to its string form. Missing,
// null, array and object values read as empty.
func stringValue(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64, bool:
		return fmt.Sprint(t), true
	default:
		return "", false
	}
}
