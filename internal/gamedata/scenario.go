package gamedata

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultScenarioName is the embedded scenario used when no file is given.
const DefaultScenarioName = "goblin_cave"

// Scenario describes a hand-built campaign: its rooms, how they link up,
// the party that explores them and the monsters waiting inside.
type Scenario struct {
	Name  string     `yaml:"name"`
	Start string     `yaml:"start"` // Room the party starts in
	Party PartySpec  `yaml:"party"`
	Rooms []RoomSpec `yaml:"rooms"`
	Links []LinkSpec `yaml:"links"`
}

// PartySpec describes the exploring party.
type PartySpec struct {
	Name    string       `yaml:"name"`
	Speed   int          `yaml:"speed"` // Ticks between moves; 0 means use the config value
	Members []MemberSpec `yaml:"members"`
}

// MemberSpec describes one party member. Health and Damage override the
// class values when non-zero.
type MemberSpec struct {
	Name   string `yaml:"name"`
	Class  string `yaml:"class"`
	Health int    `yaml:"health,omitempty"`
	Damage int    `yaml:"damage,omitempty"`
}

// RoomSpec describes a room and the monster IDs that fight whoever enters.
type RoomSpec struct {
	Name      string   `yaml:"name"`
	Encounter []string `yaml:"encounter,omitempty"`
}

// LinkSpec describes a door. Without To the door is a dead end.
// Links are two-way unless OneWay is set.
type LinkSpec struct {
	From   string `yaml:"from"`
	To     string `yaml:"to,omitempty"`
	Door   string `yaml:"door,omitempty"`
	OneWay bool   `yaml:"oneWay,omitempty"`
}

// ParseScenario decodes and validates a YAML scenario.
func ParseScenario(content []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(content, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadScenario reads a scenario from a YAML file on disk.
func LoadScenario(path string) (*Scenario, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	return ParseScenario(content)
}

// LoadEmbeddedScenario reads one of the scenarios bundled with the binary.
func LoadEmbeddedScenario(name string) (*Scenario, error) {
	s, err := Load[Scenario]("scenarios/" + name + ".yaml")
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", name, err)
	}
	return &s, nil
}

// Validate checks that room names are unique and that the start room and
// every link refer to rooms that exist.
func (s *Scenario) Validate() error {
	if len(s.Rooms) == 0 {
		return errors.New("scenario has no rooms")
	}

	rooms := make(map[string]bool, len(s.Rooms))
	for _, r := range s.Rooms {
		if r.Name == "" {
			return errors.New("scenario room with empty name")
		}
		if rooms[r.Name] {
			return fmt.Errorf("duplicate room %q", r.Name)
		}
		rooms[r.Name] = true
	}

	if s.Start == "" {
		s.Start = s.Rooms[0].Name
	}
	if !rooms[s.Start] {
		return fmt.Errorf("start room %q does not exist", s.Start)
	}

	for i, l := range s.Links {
		if !rooms[l.From] {
			return fmt.Errorf("link %d: unknown room %q", i, l.From)
		}
		if l.To != "" && !rooms[l.To] {
			return fmt.Errorf("link %d: unknown room %q", i, l.To)
		}
	}

	if len(s.Party.Members) == 0 {
		return errors.New("scenario party has no members")
	}
	for i, m := range s.Party.Members {
		if m.Name == "" {
			return fmt.Errorf("party member %d has no name", i)
		}
		if m.Class == "" && (m.Health <= 0 || m.Damage <= 0) {
			return fmt.Errorf("party member %q needs a class or explicit stats", m.Name)
		}
	}
	return nil
}

// Room returns the RoomSpec with the given name, or nil.
func (s *Scenario) Room(name string) *RoomSpec {
	for i := range s.Rooms {
		if s.Rooms[i].Name == name {
			return &s.Rooms[i]
		}
	}
	return nil
}
