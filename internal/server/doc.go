// Package server exposes the name generation engine over HTTP: a form
// endpoint for generation requests, read-only preset listings, and a
// health probe. Responses use a uniform JSON envelope with a success flag.
package server
