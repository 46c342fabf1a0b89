// Package docsearch crawls API documentation sites, converts pages to
// Markdown artifacts, and manages their lifecycle in a managed semantic
// retrieval service (Gemini File Search): upload, versioned store registry,
// age-based cleanup, and grounded code generation against the active store.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, jsonfile/).
package docsearch
