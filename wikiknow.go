// Package wikiknow extracts structured and semi-structured knowledge from
// archived Wikipedia article HTML: infobox key-value tables, navbox entity
// relations, and body paragraphs segmented by heading with the entities
// mentioned in their links.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, bloom/).
package wikiknow
