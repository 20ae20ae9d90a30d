// Package soap turns free-form generated text into structured SOAP notes
// and provides the deterministic fallback content (static notes, the case
// bank, and expert answers) used when no provider output is available.
// Everything in this package is pure and never errors: malformed input
// degrades to placeholder text instead.
package soap
