// Package lifecycle derives everything a display surface needs from a
// session's status: its coarse group, its label and badge category, the
// primary call to action with its route, the partner to show and the date to
// display.
//
// Every function is pure. Callers pass in a model.Session value and get back
// derived values. Nothing is cached, logged or mutated, so the functions are
// safe for concurrent use and must simply be called again when the session
// changes. Each derivation switches over the full status taxonomy exactly
// once. A status outside the taxonomy is reported as a
// *model.UnknownStatusError and never mapped to a default.
package lifecycle
