package it

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"syscall"
	"time"

	"clocksim/internal/eventlog"
)

// Cluster is a test harness running real clocknode binaries as separate
// processes, the way the supervisor does in production.
type Cluster struct {
	machines   []*Machine
	logDir     string
	binaryPath string
	mu         sync.Mutex
}

// Machine is a single spawned machine process.
type Machine struct {
	ID      string
	Port    int
	LogPath string
	cmd     *exec.Cmd
}

// NewCluster creates a new test cluster harness.
func NewCluster(binaryPath string) (*Cluster, error) {
	logDir := filepath.Join(".local", "it-logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &Cluster{
		logDir:     logDir,
		binaryPath: binaryPath,
	}, nil
}

// StartAll starts one machine per entry in ticks, with the full topology
// wired into every process. ports are assigned sequentially from basePort.
func (c *Cluster) StartAll(ticks map[string]int, basePort int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]string, 0, len(ticks))
	for id := range ticks {
		ids = append(ids, id)
	}
	// Deterministic port assignment.
	sort.Strings(ids)

	ports := make(map[string]int, len(ids))
	for i, id := range ids {
		ports[id] = basePort + i
	}

	for _, id := range ids {
		peerStr := ""
		for _, other := range ids {
			if other == id {
				continue
			}
			if peerStr != "" {
				peerStr += ","
			}
			peerStr += fmt.Sprintf("%s=127.0.0.1:%d", other, ports[other])
		}

		logPath := filepath.Join(c.logDir, fmt.Sprintf("%s.log", id))
		cmd := exec.Command(c.binaryPath,
			"--id", id,
			"--listen", fmt.Sprintf("127.0.0.1:%d", ports[id]),
			"--ticks", strconv.Itoa(ticks[id]),
			"--log", logPath,
			"--peers", peerStr,
		)
		cmd.Stdout = os.Stderr
		cmd.Stderr = os.Stderr

		if err := cmd.Start(); err != nil {
			return fmt.Errorf("failed to start machine %s: %w", id, err)
		}
		c.machines = append(c.machines, &Machine{
			ID:      id,
			Port:    ports[id],
			LogPath: logPath,
			cmd:     cmd,
		})
	}
	return nil
}

// StartOne starts a single machine whose peer list may point at endpoints
// nobody is listening on.
func (c *Cluster) StartOne(id string, port, ticks int, peerStr string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	logPath := filepath.Join(c.logDir, fmt.Sprintf("%s.log", id))
	cmd := exec.Command(c.binaryPath,
		"--id", id,
		"--listen", fmt.Sprintf("127.0.0.1:%d", port),
		"--ticks", strconv.Itoa(ticks),
		"--log", logPath,
		"--peers", peerStr,
	)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start machine %s: %w", id, err)
	}
	c.machines = append(c.machines, &Machine{ID: id, Port: port, LogPath: logPath, cmd: cmd})
	return nil
}

// Get returns a machine by id.
func (c *Cluster) Get(id string) *Machine {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range c.machines {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// Machines returns all spawned machines.
func (c *Cluster) Machines() []*Machine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Machine, len(c.machines))
	copy(out, c.machines)
	return out
}

// WaitForEvents polls a machine's log until it holds at least n entries
// or the timeout expires.
func (c *Cluster) WaitForEvents(id string, n int, timeout time.Duration) ([]eventlog.Entry, error) {
	m := c.Get(id)
	if m == nil {
		return nil, fmt.Errorf("machine %s not found", id)
	}

	deadline := time.Now().Add(timeout)
	for {
		entries, err := eventlog.ReadFile(m.LogPath)
		if err == nil && len(entries) >= n {
			return entries, nil
		}
		if time.Now().After(deadline) {
			got := 0
			if entries != nil {
				got = len(entries)
			}
			return entries, fmt.Errorf("timeout waiting for %d events from %s, got %d", n, id, got)
		}
		time.Sleep(100 * time.Millisecond)
	}
}

// Stop delivers SIGTERM to every machine and waits for each to exit,
// killing any that ignore the signal.
func (c *Cluster) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, m := range c.machines {
		m.signal()
	}
	for _, m := range c.machines {
		m.wait()
	}
	c.machines = nil
}

func (m *Machine) signal() {
	if m.cmd != nil && m.cmd.Process != nil {
		m.cmd.Process.Signal(syscall.SIGTERM)
	}
}

func (m *Machine) wait() {
	if m.cmd == nil || m.cmd.Process == nil {
		return
	}
	done := make(chan struct{})
	go func() {
		m.cmd.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		m.cmd.Process.Kill()
		<-done
	}
}
