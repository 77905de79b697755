// Package theme owns the fragment dictionaries the name engine draws from.
//
// A theme is a named collection of fragments grouped by Role (prefix,
// bridge, middle, suffix). Every fragment carries aesthetic attributes
// (see the vibe package); prefix fragments additionally record whether
// they start with a vowel so the engine can honor a vowel-first
// preference.
//
// Themes load into an immutable Catalog snapshot. Switching themes means
// loading a new Catalog and swapping the reference; a Catalog in use by
// an in-flight generation is never mutated.
//
// Built-in themes ship embedded in the binary; WithDir points the loader
// at an on-disk directory whose files take precedence. Resolution per role
// file falls back in order: requested theme on disk, default theme on
// disk, requested embedded theme, default embedded theme. A theme that is
// missing a role simply yields an empty fragment set for that role.
package theme
