package entity

import (
	"github.com/samdwyer/roomwalk/internal/campaign"
	"github.com/samdwyer/roomwalk/internal/combat"
)

// Party is the group of members that explores the campaign.
// In the campaign it is a single walker; in battle each member fights alone.
type Party struct {
	Name    string
	Members []*Member
	Walker  *campaign.Walker
}

// NewParty creates a party and the walker that carries it through the campaign.
func NewParty(name string, members []*Member, start *campaign.Room, opts ...campaign.WalkerOption) *Party {
	return &Party{
		Name:    name,
		Members: members,
		Walker:  campaign.NewWalker(name, start, opts...),
	}
}

// Battlers returns the living members as battlers, in roster order.
func (p *Party) Battlers() []*combat.Battler {
	battlers := make([]*combat.Battler, 0, len(p.Members))
	for _, m := range p.Members {
		if m.IsAlive() {
			battlers = append(battlers, m.Battler)
		}
	}
	return battlers
}

// AliveMemberCount returns the number of members still standing.
func (p *Party) AliveMemberCount() int {
	return len(p.Battlers())
}

// IsDefeated returns true once every member is down.
func (p *Party) IsDefeated() bool {
	return p.AliveMemberCount() == 0
}

// TotalHealth returns the summed health of living members.
func (p *Party) TotalHealth() int {
	total := 0
	for _, m := range p.Members {
		if m.IsAlive() {
			total += m.Stats.Health
		}
	}
	return total
}

// Room returns the room the party is in.
func (p *Party) Room() *campaign.Room {
	return p.Walker.Room()
}
