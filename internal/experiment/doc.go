// Package experiment defines named simulation runs: which machines exist,
// their tick rates and ports, how long to run, and how many trials to
// repeat. Definitions are YAML files consumed by the supervisor.
package experiment
