// Package orchestration launches one simulated fetch per endpoint, collects
// every outcome exactly once and aggregates them into a Report. It decouples
// the run from presentation via the Presenter and fetch.Notifier interfaces.
package orchestration
