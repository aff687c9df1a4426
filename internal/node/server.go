package node

import (
	"context"

	clocksimpb "clocksim/internal/gen/api"
	"clocksim/internal/inbox"
)

// Server implements the MachineService gRPC service: the inbound side of
// the peer protocol. It only enqueues; the clock and the log are touched
// exclusively by the tick loop, so the handler is safe to run concurrently
// with a tick in progress.
type Server struct {
	clocksimpb.UnimplementedMachineServiceServer
	machineID string
	queue     *inbox.Inbox
}

// NewServer creates the inbound handler for a machine's queue.
func NewServer(machineID string, queue *inbox.Inbox) *Server {
	return &Server{
		machineID: machineID,
		queue:     queue,
	}
}

// SendMessage enqueues the message and acks immediately. Arrival order
// determines queue order; the carried logical time is not used to reorder.
func (s *Server) SendMessage(ctx context.Context, req *clocksimpb.ClockMessage) (*clocksimpb.Ack, error) {
	s.queue.Put(inbox.Message{
		SenderID:    req.SenderId,
		LogicalTime: req.LogicalTime,
	})
	return &clocksimpb.Ack{}, nil
}
