// Package sanitizer provides best-effort cleaning and screening of free-text
// user input before it reaches validation, storage or display.
//
// Two distinct operations are exposed:
//
//   - SanitizeText strips a small denylist of dangerous constructs (angle
//     brackets, javascript: scheme, inline event-handler patterns), trims
//     surrounding whitespace and caps the length.
//
//   - DetectSuspiciousInput matches the same family of constructs but is
//     used as a hard rejection gate: when it fires, the whole submission is
//     refused rather than cleaned.
//
// # Limitations
//
// The package is a pattern-matching denylist. It does not parse HTML and
// therefore cannot guarantee the absence of every injection vector; contexts
// that render user input must still escape for their output format.
//
// All functions are stateless and safe for concurrent use.
//
// # Usage
//
//	clean := sanitizer.SanitizeText(form["message"])
//	if sanitizer.DetectSuspiciousInput(form["message"]) {
//	    // reject the submission with a generic error
//	}
package sanitizer
