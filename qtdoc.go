// Package qtdoc serves a locally stored copy of the Qt 4.8 HTML
// documentation to calling agents. It resolves canonical doc.qt.io URLs to
// on-disk files, converts pages to Markdown through a two-tier cache, and
// provides ranked full-text search over a SQLite FTS5 index of the corpus.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, lru/).
package qtdoc

// Attribution is the license notice attached to every served page.
const Attribution = "Content © The Qt Company Ltd./Digia — GNU Free Documentation License 1.3"

// AttributionBlock is the Markdown trailer appended to converted pages.
const AttributionBlock = "\n\n---\n" + Attribution
