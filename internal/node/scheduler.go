package node

import (
	"context"
	"log"
	"strings"

	"clocksim/internal/eventlog"
)

// action is the outcome of an idle tick's uniform roll.
type action int

const (
	actionSendNext action = iota + 1
	actionSendAfterNext
	actionBroadcast
	actionInternal
)

// selectAction maps a roll drawn uniformly from [1, 3+weight] to an
// action: 1 sends to the next machine, 2 to the machine after next,
// 3 broadcasts, anything higher is an internal event.
func selectAction(roll int) action {
	switch roll {
	case 1:
		return actionSendNext
	case 2:
		return actionSendAfterNext
	case 3:
		return actionBroadcast
	default:
		return actionInternal
	}
}

// loop drives one tick per interval until ctx is cancelled. Each tick's
// wall-clock cost is measured and only the remaining slack is slept, so
// throughput tracks the configured tick rate under variable work cost.
// Cancellation is observed between ticks, never mid-tick.
func (n *Node) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		start := n.now()
		n.tick(ctx)
		if slack := n.interval - n.now().Sub(start); slack > 0 {
			n.sleep(ctx, slack)
		}
	}
}

// tick performs exactly one action. A pending inbound message always wins
// over originating new traffic: the queue drains one message per tick
// before any random action is considered.
func (n *Node) tick(ctx context.Context) {
	if msg, ok := n.queue.TryPop(); ok {
		c := n.clock.Witness(msg.LogicalTime)
		n.append(eventlog.EventRecv, c, msg.SenderID)
		return
	}

	roll := n.roll(3 + n.cfg.InternalEventWeight)
	c := n.clock.Tick()

	switch selectAction(roll) {
	case actionSendNext:
		n.sendTo(ctx, n.topo.Next(), c)
	case actionSendAfterNext:
		n.sendTo(ctx, n.topo.AfterNext(), c)
	case actionBroadcast:
		n.broadcast(ctx, c)
	default:
		n.append(eventlog.EventInternal, c, "")
	}
}

// sendTo delivers the current clock value to one peer. The SEND entry is
// recorded only after a successful delivery; an unreachable target costs
// the tick its clock increment but leaves no log line.
func (n *Node) sendTo(ctx context.Context, target string, c int64) {
	if n.peers.Send(ctx, target, c) {
		n.append(eventlog.EventSend, c, target)
	}
}

// broadcast delivers the current clock value to every connected peer. The
// entry records the connected set fixed before any send is attempted; the
// clock increment for the whole action happened exactly once in tick.
func (n *Node) broadcast(ctx context.Context, c int64) {
	targets := n.peers.Connected()
	n.append(eventlog.EventBroadcast, c, strings.Join(targets, ","))
	for _, target := range targets {
		n.peers.Send(ctx, target, c)
	}
}

// append writes one log entry with the queue size sampled at this instant.
func (n *Node) append(typ eventlog.EventType, c int64, target string) {
	e := eventlog.Entry{
		Timestamp: float64(n.now().UnixNano()) / 1e9,
		Clock:     c,
		Type:      typ,
		QueueSize: n.queue.Len(),
		Target:    target,
	}
	if err := n.logw.Append(e); err != nil {
		log.Printf("[%s] failed to append %s entry: %v", n.cfg.ID, typ, err)
	}
}
