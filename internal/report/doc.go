// Package report derives clock-drift, jump, rate, and queueing statistics
// from collected event logs. It only ever reads log files, never writes
// them, and tolerates logs that a machine is still appending to.
package report
