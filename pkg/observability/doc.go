/*
Package observability provides Prometheus instrumentation for the cellview parser and
renderer.

Metrics are fed through domain.Hooks, so the core packages never import Prometheus.
*/
package observability
