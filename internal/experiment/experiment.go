package experiment

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"clocksim/internal/config"
)

// Duration wraps time.Duration so YAML values like "60s" parse.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	td, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(td)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Machine is the per-machine configuration inside an experiment.
type Machine struct {
	Ticks int `yaml:"ticks"`
	Port  int `yaml:"port"`
	// InternalEventWeight is optional; nil means the default of 7.
	InternalEventWeight *int `yaml:"internal_event_weight"`
}

// Weight returns the effective internal event weight.
func (m Machine) Weight() int {
	if m.InternalEventWeight == nil {
		return config.DefaultInternalEventWeight
	}
	return *m.InternalEventWeight
}

// Addr returns the loopback dial address for the machine.
func (m Machine) Addr() string {
	return fmt.Sprintf("127.0.0.1:%d", m.Port)
}

// Experiment is one named simulation run: a set of machines with tick
// rates, a duration, and a trial count.
type Experiment struct {
	Name        string             `yaml:"name"`
	Description string             `yaml:"description"`
	Duration    Duration           `yaml:"duration"`
	Trials      int                `yaml:"trials"`
	LogDir      string             `yaml:"log_dir"`
	Machines    map[string]Machine `yaml:"machines"`
}

// Load reads an experiment definition from a YAML file, applies defaults,
// and validates it.
func Load(path string) (Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Experiment{}, fmt.Errorf("failed to read experiment file: %w", err)
	}
	return Parse(data)
}

// Parse decodes an experiment definition, applies defaults, and validates.
func Parse(data []byte) (Experiment, error) {
	var e Experiment
	if err := yaml.Unmarshal(data, &e); err != nil {
		return Experiment{}, fmt.Errorf("failed to parse experiment: %w", err)
	}

	if e.Trials == 0 {
		e.Trials = 1
	}
	if e.Duration == 0 {
		e.Duration = Duration(60 * time.Second)
	}
	if e.LogDir == "" {
		e.LogDir = "logs"
	}

	if err := e.Validate(); err != nil {
		return Experiment{}, err
	}
	return e, nil
}

// Validate reports the first problem with the definition.
func (e Experiment) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("experiment name cannot be empty")
	}
	if len(e.Machines) == 0 {
		return fmt.Errorf("experiment %s defines no machines", e.Name)
	}
	if e.Trials < 1 {
		return fmt.Errorf("experiment %s: trials must be at least 1, got %d", e.Name, e.Trials)
	}
	if e.Duration <= 0 {
		return fmt.Errorf("experiment %s: duration must be positive", e.Name)
	}

	ports := make(map[int]string, len(e.Machines))
	for id, m := range e.Machines {
		if m.Ticks <= 0 {
			return fmt.Errorf("machine %s: ticks must be positive, got %d", id, m.Ticks)
		}
		if m.Port <= 0 {
			return fmt.Errorf("machine %s: port must be positive, got %d", id, m.Port)
		}
		if m.InternalEventWeight != nil && *m.InternalEventWeight < 0 {
			return fmt.Errorf("machine %s: internal event weight cannot be negative", id)
		}
		if other, dup := ports[m.Port]; dup {
			return fmt.Errorf("machines %s and %s share port %d", other, id, m.Port)
		}
		ports[m.Port] = id
	}
	return nil
}

// MachineIDs returns the machine ids in sorted order.
func (e Experiment) MachineIDs() []string {
	ids := make([]string, 0, len(e.Machines))
	for id := range e.Machines {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LogPath returns the log file path for a machine in a given trial,
// relative to the run directory.
func (e Experiment) LogPath(runDir, machineID string, trial int) string {
	return filepath.Join(runDir, fmt.Sprintf("%s.%s.trial_%d.log", machineID, e.Name, trial))
}

// PeersOf returns the peer list for one machine: every other machine with
// its dial address.
func (e Experiment) PeersOf(machineID string) []config.Peer {
	peers := make([]config.Peer, 0, len(e.Machines)-1)
	for _, id := range e.MachineIDs() {
		if id == machineID {
			continue
		}
		peers = append(peers, config.Peer{ID: id, Addr: e.Machines[id].Addr()})
	}
	return peers
}
