// Package catalog holds the immutable reference data served by the read-only
// API endpoints: SOAP note templates, assessment templates and sample
// questions, the evidence base with its grading vocabulary, the resource
// library, and the difficulty/specialty pick lists.
//
// Accessors return fresh copies so callers can mutate results without
// affecting the catalog.
package catalog
