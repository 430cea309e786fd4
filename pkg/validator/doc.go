// Package validator provides rule-based input validation. Rules are
// composed per call site and executed with Apply, which returns a
// ValidationErrors value listing every failed field so forms can be
// corrected in one resubmission.
package validator
