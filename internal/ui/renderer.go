package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomwalk/internal/campaign"
	"github.com/samdwyer/roomwalk/internal/entity"
	"github.com/samdwyer/roomwalk/internal/world"
)

// Frame is everything drawn in one refresh.
type Frame struct {
	// Layout is the generated map, or nil for a scenario. When set,
	// Rooms[i] is the room built from Layout.Areas[i].
	Layout   *world.Layout
	Rooms    []*campaign.Room
	Party    *entity.Party
	Monsters func(*campaign.Room) *entity.Group
	Status   string
	Log      []string
}

// Renderer draws frames to a screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

var (
	styleWall      = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleUnvisited = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleVisited   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleParty     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHeading   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleDown      = tcell.StyleDefault.Foreground(tcell.ColorMaroon)
	styleText      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Render draws the map or room list, the party panel and the message log.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	var bottom int
	if f.Layout != nil {
		bottom = r.drawLayout(f)
	} else {
		bottom = r.drawRoomList(f)
	}
	bottom = r.drawParty(f, bottom+1)
	r.drawLog(f, bottom+1)

	r.screen.Show()
}

// drawLayout draws the tile grid with monsters and the party on top.
// It returns the last row used.
func (r *Renderer) drawLayout(f Frame) int {
	l := f.Layout
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			tile := l.Tile(x, y)
			r.screen.SetContent(x, y, tile.Rune(), r.tileStyle(f, tile, x, y))
		}
	}

	for i, area := range l.Areas {
		if i >= len(f.Rooms) {
			break
		}
		room := f.Rooms[i]
		cx, cy := area.Center()
		if group := r.group(f, room); group != nil {
			x := area.X
			for _, m := range group.Monsters {
				if !m.IsAlive() || x >= area.X+area.Width {
					continue
				}
				r.screen.SetContent(x, area.Y, m.Glyph(), tcell.StyleDefault.Foreground(m.Color()))
				x++
			}
		}
		if f.Party != nil && f.Party.Room() == room {
			r.screen.SetContent(cx, cy, r.partySymbol(f.Party), styleParty)
		}
	}
	return l.Height - 1
}

func (r *Renderer) tileStyle(f Frame, tile world.Tile, x, y int) tcell.Style {
	if tile == world.TileWall {
		return styleWall
	}
	if i := f.Layout.AreaAt(x, y); i >= 0 && i < len(f.Rooms) && f.Rooms[i].Visited() {
		return styleVisited
	}
	return styleUnvisited
}

// drawRoomList draws one line per room for maps without a layout.
func (r *Renderer) drawRoomList(f Frame) int {
	y := 0
	r.screen.DrawText(0, y, "Rooms", styleHeading)
	for _, room := range f.Rooms {
		y++
		marker := "   "
		style := styleUnvisited
		if room.Visited() {
			marker = " * "
			style = styleVisited
		}
		if f.Party != nil && f.Party.Room() == room {
			marker = " " + string(r.partySymbol(f.Party)) + " "
			style = styleParty
		}
		x := r.screen.DrawText(0, y, marker+room.Name(), style)

		if group := r.group(f, room); group != nil {
			for _, m := range group.Monsters {
				if m.IsAlive() {
					x = r.screen.DrawText(x+1, y, string(m.Glyph()), tcell.StyleDefault.Foreground(m.Color()))
				}
			}
		}
	}
	return y
}

// drawParty lists the members with their health. It returns the last row used.
func (r *Renderer) drawParty(f Frame, y int) int {
	if f.Party == nil {
		return y
	}
	title := f.Party.Name
	if f.Status != "" {
		title = fmt.Sprintf("%s [%s]", title, f.Status)
	}
	if room := f.Party.Room(); room != nil {
		title += " in " + room.Name()
	}
	r.screen.DrawText(0, y, title, styleHeading)

	for _, m := range f.Party.Members {
		y++
		style := styleText
		if !m.IsAlive() {
			style = styleDown
		}
		r.screen.DrawText(2, y, fmt.Sprintf("%c %-10s %-8s hp %3d  dmg %d",
			m.Symbol, m.Name, m.ClassName(), m.Stats.Health, m.Stats.Damage), style)
	}
	return y
}

// drawLog shows as many of the newest messages as fit below row y.
func (r *Renderer) drawLog(f Frame, y int) {
	_, height := r.screen.Size()
	rows := height - y
	if rows <= 0 {
		return
	}
	lines := f.Log
	if len(lines) > rows {
		lines = lines[len(lines)-rows:]
	}
	for i, line := range lines {
		r.screen.DrawText(0, y+i, line, styleText)
	}
}

func (r *Renderer) group(f Frame, room *campaign.Room) *entity.Group {
	if f.Monsters == nil {
		return nil
	}
	group := f.Monsters(room)
	if group == nil || group.IsDefeated() {
		return nil
	}
	return group
}

func (r *Renderer) partySymbol(p *entity.Party) rune {
	for _, m := range p.Members {
		if m.IsAlive() {
			return m.Symbol
		}
	}
	return '@'
}
