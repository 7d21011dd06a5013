package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomwalk/internal/campaign"
	"github.com/samdwyer/roomwalk/internal/entity"
	"github.com/samdwyer/roomwalk/internal/gamedata"
	"github.com/samdwyer/roomwalk/internal/telemetry"
	"github.com/samdwyer/roomwalk/internal/world"
)

// ErrGameOver is returned by Step once the game has reached a final state.
var ErrGameOver = errors.New("game is over")

// logLimit is how many messages the game keeps for display.
const logLimit = 200

// Game holds the whole simulation: the campaign, the party walking it and
// the monsters waiting in its rooms.
type Game struct {
	cfg        Config
	rng        *rand.Rand
	monsters   *gamedata.MonsterRegistry
	classes    *gamedata.ClassRegistry
	campaign   *campaign.Campaign
	layout     *world.Layout // nil for hand-built scenarios
	party      *entity.Party
	groups     map[*campaign.Room]*entity.Group
	encounters []*EncounterResult
	state      State
	log        *Log

	// ctx is the context of the Step in progress. Room handlers run inside
	// campaign.Tick, which gives them no context of their own.
	ctx context.Context
}

// Result summarizes a finished or interrupted simulation.
type Result struct {
	State        State
	Ticks        int
	RoomsVisited int
	Rooms        int
	Encounters   []*EncounterResult
	Survivors    []string
}

// New creates a game from the configured scenario or a generated map.
func New(ctx context.Context, cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	monsters, err := gamedata.LoadMonsterRegistry()
	if err != nil {
		return nil, err
	}
	classes, err := gamedata.LoadClassRegistry()
	if err != nil {
		return nil, err
	}

	g := newGame(cfg, monsters, classes)

	if cfg.Generate {
		if err := g.buildGenerated(ctx); err != nil {
			return nil, err
		}
		return g, nil
	}

	var scenario *gamedata.Scenario
	switch {
	case cfg.ScenarioPath == "":
		scenario, err = gamedata.LoadEmbeddedScenario(gamedata.DefaultScenarioName)
	case slices.Contains(gamedata.ScenarioNames(), cfg.ScenarioPath):
		scenario, err = gamedata.LoadEmbeddedScenario(cfg.ScenarioPath)
	default:
		scenario, err = gamedata.LoadScenario(cfg.ScenarioPath)
	}
	if err != nil {
		return nil, err
	}
	if err := g.buildScenario(scenario); err != nil {
		return nil, err
	}
	return g, nil
}

// NewFromScenario creates a game from an already loaded scenario.
func NewFromScenario(cfg Config, scenario *gamedata.Scenario) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	g := newGame(cfg, gamedata.MustLoadMonsterRegistry(), gamedata.MustLoadClassRegistry())
	if err := g.buildScenario(scenario); err != nil {
		return nil, err
	}
	return g, nil
}

func newGame(cfg Config, monsters *gamedata.MonsterRegistry, classes *gamedata.ClassRegistry) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Game{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		monsters: monsters,
		classes:  classes,
		campaign: campaign.New(),
		groups:   make(map[*campaign.Room]*entity.Group),
		state:    StateExplore,
		log:      NewLog(logLimit),
	}
}

// buildScenario creates rooms, doors, monsters and the party from a scenario.
func (g *Game) buildScenario(s *gamedata.Scenario) error {
	rooms := make(map[string]*campaign.Room, len(s.Rooms))
	for _, spec := range s.Rooms {
		room := campaign.NewRoom(spec.Name)
		rooms[spec.Name] = room
		g.campaign.AddRoom(room, nil)

		if len(spec.Encounter) > 0 {
			group, err := entity.NewGroup(spec.Name, spec.Encounter, g.monsters)
			if err != nil {
				return err
			}
			g.addGroup(room, group)
		}
	}

	for _, link := range s.Links {
		from := rooms[link.From]
		switch {
		case link.To == "":
			from.AddDoor(campaign.NewDoor(doorName(link.Door, "Dead end"), nil))
		case link.OneWay:
			to := rooms[link.To]
			from.AddDoor(campaign.NewDoor(doorName(link.Door, from.Name()+" to "+to.Name()), to))
		default:
			from.ConnectTo(rooms[link.To], link.Door)
		}
	}

	members := make([]*entity.Member, 0, len(s.Party.Members))
	for _, spec := range s.Party.Members {
		var class *gamedata.ClassDef
		if spec.Class != "" {
			class = g.classes.GetByID(spec.Class)
		}
		m, err := entity.NewMember(spec, class)
		if err != nil {
			return err
		}
		members = append(members, m)
	}

	name := s.Party.Name
	if name == "" {
		name = "Party"
	}
	speed := s.Party.Speed
	if speed == 0 {
		speed = g.cfg.WalkerSpeed
	}
	g.addParty(name, members, rooms[s.Start], speed)
	g.log.Addf("%s sets out from %s.", name, s.Start)
	return nil
}

// buildGenerated lays out a random map, fills some rooms with monsters and
// starts a party of one member per class in the first room.
func (g *Game) buildGenerated(ctx context.Context) error {
	g.layout = world.NewLayout(world.DefaultWidth, world.DefaultHeight, g.rng)
	g.layout.Generate(ctx)
	rooms := g.layout.Build(g.campaign)
	if len(rooms) == 0 {
		return errors.New("generated map has no rooms")
	}

	for _, room := range rooms[1:] {
		if g.cfg.EncounterSize == 0 || g.rng.Intn(2) == 0 {
			continue
		}
		size := 1 + g.rng.Intn(g.cfg.EncounterSize)
		group, err := entity.RandomGroup(room.Name(), size, g.monsters, g.rng)
		if err != nil {
			return err
		}
		g.addGroup(room, group)
	}

	members := make([]*entity.Member, 0, g.classes.Count())
	for _, class := range g.classes.All() {
		m, err := entity.NewMember(gamedata.MemberSpec{Name: class.Name, Class: class.ID}, g.classes.GetByID(class.ID))
		if err != nil {
			return err
		}
		members = append(members, m)
	}

	g.addParty("Party", members, rooms[0], g.cfg.WalkerSpeed)
	g.log.Addf("The party enters a maze of %d rooms.", len(rooms))
	return nil
}

func (g *Game) addGroup(room *campaign.Room, group *entity.Group) {
	g.groups[room] = group
	room.OnFunc(campaign.EventEnter, g.onRoomEnter)
}

// addParty creates the party and only then places it in the start room, so
// a start room with monsters sees the party walk in.
func (g *Game) addParty(name string, members []*entity.Member, start *campaign.Room, speed int) {
	g.party = entity.NewParty(name, members, nil,
		campaign.WithSpeed(speed),
		campaign.WithDoorSelector(g.selector()),
	)
	g.campaign.AddAsset(g.party.Walker)
	g.party.Walker.Place(start)
}

func (g *Game) selector() campaign.DoorSelector {
	switch g.cfg.Explore {
	case ExploreUnvisited:
		return campaign.SelectUnvisited
	case ExploreRandom:
		return campaign.SelectRandom(g.rng)
	default:
		return campaign.SelectNearestUnvisited
	}
}

// Step advances the campaign by one tick and updates the game state.
func (g *Game) Step(ctx context.Context) error {
	if g.state.IsOver() {
		return ErrGameOver
	}

	g.ctx = ctx
	defer func() { g.ctx = nil }()

	g.campaign.Tick(ctx)
	g.updateState()
	return nil
}

// updateState checks for the end of the game after a tick.
func (g *Game) updateState() {
	switch {
	case g.party.IsDefeated():
		if g.state != StateDefeat {
			g.log.Addf("%s has been defeated!", g.party.Name)
		}
		g.state = StateDefeat
	case g.remainingGroups() == 0:
		g.state = StateVictory
		g.log.Addf("Victory! Every room is clear.")
	case g.party.Walker.Stalled():
		g.state = StateStalled
		g.log.Addf("%s has nowhere left to go.", g.party.Name)
	default:
		g.state = StateExplore
	}
}

// Simulate runs the game without a screen until it ends or MaxTicks is reached.
func (g *Game) Simulate(ctx context.Context) Result {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.simulate")
	defer span.End()

	for g.campaign.Ticks() < g.cfg.MaxTicks {
		if err := g.Step(ctx); err != nil {
			break
		}
		if g.state.IsOver() {
			break
		}
	}

	result := g.Result()
	span.SetAttributes(
		attribute.String("state", result.State.String()),
		attribute.Int("ticks", result.Ticks),
		attribute.Int("encounters", len(result.Encounters)),
		attribute.Int("rooms_visited", result.RoomsVisited),
	)
	return result
}

// Result returns a summary of the game so far.
func (g *Game) Result() Result {
	survivors := make([]string, 0, len(g.party.Members))
	for _, b := range g.party.Battlers() {
		survivors = append(survivors, b.Name)
	}
	return Result{
		State:        g.state,
		Ticks:        g.campaign.Ticks(),
		RoomsVisited: g.campaign.VisitedCount(),
		Rooms:        len(g.campaign.Rooms()),
		Encounters:   append([]*EncounterResult(nil), g.encounters...),
		Survivors:    survivors,
	}
}

// State returns the current game state.
func (g *Game) State() State { return g.state }

// Campaign returns the campaign being simulated.
func (g *Game) Campaign() *campaign.Campaign { return g.campaign }

// Party returns the exploring party.
func (g *Game) Party() *entity.Party { return g.party }

// Layout returns the generated map, or nil for scenario games.
func (g *Game) Layout() *world.Layout { return g.layout }

// Log returns the message log.
func (g *Game) Log() *Log { return g.log }

// Group returns the monsters placed in room, or nil.
func (g *Game) Group(room *campaign.Room) *entity.Group { return g.groups[room] }

func (g *Game) remainingGroups() int {
	count := 0
	for _, group := range g.groups {
		if !group.IsDefeated() {
			count++
		}
	}
	return count
}

func (g *Game) tickCtx() context.Context {
	if g.ctx == nil {
		return context.Background()
	}
	return g.ctx
}

func doorName(name, fallback string) string {
	if name != "" {
		return name
	}
	return fallback
}
