// Package metrics exports the progress of a fetch run as Prometheus metrics.
// The Collector observes a run as both an orchestration.Presenter and a
// fetch.Notifier and can dump its registry in the node_exporter textfile
// format.
package metrics
