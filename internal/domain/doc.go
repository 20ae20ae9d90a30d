// Package domain defines the core business entities and errors for the
// clinical education service: generation requests and results, the
// append-only generation record, SOAP notes, clinical cases, evidence
// sources, assessments, and library catalog entries.
package domain
