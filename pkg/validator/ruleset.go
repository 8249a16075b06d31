package validator

// Predicate reports whether a field value passes a rule.
type Predicate func(value string) bool

type fieldRule struct {
	check   Predicate
	message string
}

// RuleSet associates named fields with ordered lists of predicate rules.
// Configure it once at startup with AddRule, then call Validate per record.
//
// A RuleSet is not safe for concurrent mutation; the intended use is
// configure-then-read from a single goroutine, matching an event-loop host.
type RuleSet struct {
	order  []string
	rules  map[string][]fieldRule
	errors ValidationErrors
}

// NewRuleSet creates an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{
		rules: make(map[string][]fieldRule),
	}
}

// AddRule appends a rule to the field's list. Rules are evaluated in
// insertion order; the first failing rule's message becomes the field error.
// Nil predicates are ignored.
func (rs *RuleSet) AddRule(field string, check Predicate, message string) {
	if field == "" || check == nil {
		return
	}
	if _, ok := rs.rules[field]; !ok {
		rs.order = append(rs.order, field)
	}
	rs.rules[field] = append(rs.rules[field], fieldRule{check: check, message: message})
}

// Validate clears prior error state and runs each rule list against the
// fields present in the record, stopping per field at the first failure.
// Returns true iff no field produced an error.
//
// Fields in the record with no rules are ignored. Fields with rules that are
// absent from the record are not validated; callers that want the stricter
// behavior can diff the record against Fields() first.
func (rs *RuleSet) Validate(record map[string]string) bool {
	rs.errors = nil

	for _, field := range rs.order {
		value, present := record[field]
		if !present {
			continue
		}
		for _, rule := range rs.rules[field] {
			if !rule.check(value) {
				rs.errors = append(rs.errors, ValidationError{Field: field, Message: rule.message})
				break
			}
		}
	}

	return rs.errors.IsEmpty()
}

// FieldError returns the recorded message for the field from the last
// Validate call, or the empty string.
func (rs *RuleSet) FieldError(field string) string {
	return rs.errors.Get(field)
}

// Errors returns the errors recorded by the last Validate call.
func (rs *RuleSet) Errors() ValidationErrors {
	return rs.errors
}

// Fields returns the configured field names in registration order.
func (rs *RuleSet) Fields() []string {
	out := make([]string, len(rs.order))
	copy(out, rs.order)
	return out
}
