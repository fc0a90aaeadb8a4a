// Package artmark turns a web article URL into a translation-ready document
// pair: a normalized Markdown capture of the source content plus a generated
// prompt for translating it into a target language. Captures are persisted as
// plain files in a per-slug directory so they stay inspectable and diffable.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, readability/, htmltomarkdown/).
package artmark
