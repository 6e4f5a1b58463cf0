// Package analysis answers the textual "analysis" questions of the content
// API by dispatching on the literal subset string, the way the teaching
// material presents them. It does not consult the finite evaluator in
// internal/topology; only a handful of real-line literals get specific
// answers and everything else falls back to a template sentence.
package analysis
