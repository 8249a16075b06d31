// Package validator provides record-driven form validation: named fields
// carry ordered lists of predicate rules, and validating a record reports
// the first failing rule's message per field.
//
//	rules := validator.NewRuleSet()
//	rules.AddRule("email", validator.NotEmpty(), "email is required")
//	rules.AddRule("email", validator.Email(), "enter a valid email address")
//	rules.AddRule("message", validator.MinLen(10), "message is too short")
//
//	if !rules.Validate(form) {
//	    msg := rules.FieldError("email")
//	    // surface msg inline next to the field
//	}
//
// Only fields present in the record are validated. Fields that carry rules
// but are missing from the record pass silently; see RuleSet.Validate for
// how to get stricter behavior.
package validator
