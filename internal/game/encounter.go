package game

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomwalk/internal/campaign"
	"github.com/samdwyer/roomwalk/internal/combat"
	"github.com/samdwyer/roomwalk/internal/entity"
	"github.com/samdwyer/roomwalk/internal/telemetry"
)

// Outcome is how an encounter ended for the party.
type Outcome string

const (
	OutcomeVictory Outcome = "victory"
	OutcomeDefeat  Outcome = "defeat"
	OutcomeDraw    Outcome = "draw"
)

// EncounterResult summarizes one resolved battle.
type EncounterResult struct {
	Room     string
	Outcome  Outcome
	Turns    int
	Events   []*combat.BattleEvent
	Defeated []*combat.Battler
}

// onRoomEnter starts a battle when the party walks into a room that still
// has monsters. The battle runs to the end before the enter event returns,
// so it finishes inside the campaign tick that moved the party.
func (g *Game) onRoomEnter(caller campaign.Asset, data any) {
	walker, ok := data.(*campaign.Walker)
	if !ok || g.party == nil || walker != g.party.Walker {
		return
	}
	room, ok := caller.(*campaign.Room)
	if !ok {
		return
	}
	group := g.groups[room]
	if group == nil || group.IsDefeated() {
		return
	}

	result, err := g.runEncounter(g.tickCtx(), room, group)
	if err != nil {
		g.log.Addf("The fight in %s broke off: %v", room.Name(), err)
		return
	}
	g.encounters = append(g.encounters, result)
}

// runEncounter resolves a full battle between the party and a monster group.
func (g *Game) runEncounter(ctx context.Context, room *campaign.Room, group *entity.Group) (*EncounterResult, error) {
	tracer := telemetry.Tracer("encounter")
	ctx, span := tracer.Start(ctx, "encounter.start")
	defer span.End()

	party := g.party.Battlers()
	monsters := group.Battlers()
	span.SetAttributes(
		attribute.String("room", room.Name()),
		attribute.Int("party_size", len(party)),
		attribute.Int("monster_count", len(monsters)),
	)

	prev := g.state
	g.state = StateCombat
	g.log.Addf("%s is ambushed in %s!", g.party.Name, room.Name())

	battle := combat.NewBattle(party, monsters)
	result := &EncounterResult{Room: room.Name()}

	for !battle.IsDone() {
		turn, event, err := battle.Next()
		if err != nil {
			if errors.Is(err, combat.ErrNoEnemies) {
				break
			}
			g.state = prev
			return nil, err
		}
		g.recordTurn(ctx, turn, event)
		result.Events = append(result.Events, event)
		if event.Defeated() {
			result.Defeated = append(result.Defeated, event.Target)
		}
	}
	result.Turns = battle.CurrentTurn()

	switch winner, ok := battle.Winner(); {
	case ok && winner == combat.TeamOne:
		result.Outcome = OutcomeVictory
		g.log.Addf("%s cleared %s.", g.party.Name, room.Name())
		g.state = StateExplore
	case ok:
		result.Outcome = OutcomeDefeat
		g.log.Addf("%s fell in %s.", g.party.Name, room.Name())
		g.state = StateDefeat
	default:
		result.Outcome = OutcomeDraw
		g.state = StateDefeat
	}

	_, endSpan := tracer.Start(ctx, "encounter.end")
	endSpan.SetAttributes(
		attribute.String("outcome", string(result.Outcome)),
		attribute.Int("turns_taken", result.Turns),
		attribute.Int("party_hp_remaining", g.party.TotalHealth()),
	)
	endSpan.End()

	return result, nil
}

// recordTurn logs and traces a single battle event.
func (g *Game) recordTurn(ctx context.Context, turn int, event *combat.BattleEvent) {
	tracer := telemetry.Tracer("encounter")
	_, span := tracer.Start(ctx, "encounter.turn")
	defer span.End()

	dealt := event.Delta().Health
	span.SetAttributes(
		attribute.Int("turn", turn),
		attribute.String("actor", event.Battler.Name),
		attribute.String("action", event.Action.ID()),
		attribute.String("target", event.Target.Name),
		attribute.Int("damage", dealt),
		attribute.Bool("defeated", event.Defeated()),
	)

	g.log.Addf("%d: %s uses %s on %s for %d.", turn, event.Battler.Name, event.Action.Name(), event.Target.Name, dealt)
	if event.Defeated() {
		g.log.Addf("%s is defeated.", event.Target.Name)
	}
}
