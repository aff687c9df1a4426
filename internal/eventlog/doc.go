// Package eventlog implements the append-only per-machine event log: the
// entry type, its pipe-delimited wire format, a truncating single-writer
// appender, and a tolerant reader for offline analysis. The wire format is
// the compatibility surface every downstream consumer depends on.
package eventlog
