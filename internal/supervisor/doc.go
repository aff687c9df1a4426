// Package supervisor runs experiments: it spawns one OS process per
// machine, passes each its topology as flags, tails log files for status,
// and delivers SIGTERM for cooperative shutdown. Machines are fully
// isolated processes; the supervisor never touches their state beyond
// reading log files.
package supervisor
