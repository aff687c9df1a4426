// Package inbox holds a machine's pending inbound messages. The RPC
// handler inserts, the tick loop drains one message per tick; insertion
// order is preserved regardless of the logical times carried.
package inbox
