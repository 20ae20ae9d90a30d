// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects, the completion
// provider, and the append-only store to fulfill application features.
//
// Services receive dependencies through constructor injection and depend on
// interfaces (generation.Generator, store.GenerationRecordStore) rather than
// concrete infrastructure, so the HTTP layer and tests can wire them freely.
// Errors are translated into service-level types the API layer maps to HTTP
// status codes.
package service
