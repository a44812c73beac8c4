/*
Package observability provides Prometheus instrumentation for the automata engine.

Metrics are fed by the dispatcher's lifecycle hooks (evaluations and rejected requests) and by
the HTTP adapter's middleware (request counts and latencies). Collectors live on a private
registry so several engines can coexist in one process, e.g. in tests.
*/
package observability
