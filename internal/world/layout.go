package world

import (
	"context"
	"fmt"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomwalk/internal/campaign"
	"github.com/samdwyer/roomwalk/internal/telemetry"
)

const (
	DefaultWidth  = 64
	DefaultHeight = 20

	minAreaSize = 4
	maxAreaSize = 10
	minLeafSize = 7
)

// Link joins two areas by index.
type Link struct {
	From, To int
}

// Layout is a grid carved into areas joined by corridors.
// Generation uses binary space partitioning, so the links form a tree and
// every area can reach every other one.
type Layout struct {
	Width  int
	Height int
	Tiles  [][]Tile
	Areas  []Area
	Links  []Link
	rng    *rand.Rand
}

// NewLayout creates a solid layout. rng drives every random choice, so the
// same seed gives the same map.
func NewLayout(width, height int, rng *rand.Rand) *Layout {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = TileWall
		}
	}

	return &Layout{
		Width:  width,
		Height: height,
		Tiles:  tiles,
		rng:    rng,
	}
}

// Generate carves areas and corridors into the layout.
func (l *Layout) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	root := &bspNode{x: 1, y: 1, width: l.Width - 2, height: l.Height - 2, area: -1}
	l.split(root)
	l.carveAreas(root)
	l.join(root)

	span.SetAttributes(
		attribute.Int("world.width", l.Width),
		attribute.Int("world.height", l.Height),
		attribute.Int("world.areas", len(l.Areas)),
		attribute.Int("world.links", len(l.Links)),
	)
}

// Tile returns the tile at the given position; outside the grid is wall.
func (l *Layout) Tile(x, y int) Tile {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return TileWall
	}
	return l.Tiles[y][x]
}

// AreaAt returns the index of the area containing the position, or -1.
func (l *Layout) AreaAt(x, y int) int {
	for i, a := range l.Areas {
		if a.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Build adds one room per area to c and connects them along the layout's
// links. Rooms are named "Room 1", "Room 2", ... in area order.
func (l *Layout) Build(c *campaign.Campaign) []*campaign.Room {
	rooms := make([]*campaign.Room, len(l.Areas))
	for i := range l.Areas {
		rooms[i] = campaign.NewRoom(fmt.Sprintf("Room %d", i+1))
		c.AddRoom(rooms[i], nil)
	}
	for _, link := range l.Links {
		rooms[link.From].ConnectTo(rooms[link.To], "")
	}
	return rooms
}

type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
	area          int // Index into Layout.Areas, -1 if none
}

func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func (l *Layout) split(node *bspNode) {
	canSplitX := node.width >= minLeafSize*2
	canSplitY := node.height >= minLeafSize*2

	var horizontal bool
	switch {
	case canSplitX && (node.width > node.height || !canSplitY):
		horizontal = false
	case canSplitY:
		horizontal = true
	default:
		return
	}

	size := node.width
	if horizontal {
		size = node.height
	}
	at := minLeafSize + l.rng.Intn(size-2*minLeafSize+1)

	if horizontal {
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: at, area: -1}
		node.right = &bspNode{x: node.x, y: node.y + at, width: node.width, height: node.height - at, area: -1}
	} else {
		node.left = &bspNode{x: node.x, y: node.y, width: at, height: node.height, area: -1}
		node.right = &bspNode{x: node.x + at, y: node.y, width: node.width - at, height: node.height, area: -1}
	}

	l.split(node.left)
	l.split(node.right)
}

func (l *Layout) carveAreas(node *bspNode) {
	if node == nil {
		return
	}
	if !node.isLeaf() {
		l.carveAreas(node.left)
		l.carveAreas(node.right)
		return
	}

	maxW := min(maxAreaSize, node.width-2)
	maxH := min(maxAreaSize, node.height-2)
	if maxW < minAreaSize || maxH < minAreaSize {
		return
	}
	w := minAreaSize + l.rng.Intn(maxW-minAreaSize+1)
	h := minAreaSize + l.rng.Intn(maxH-minAreaSize+1)

	area := Area{
		X:      node.x + 1 + l.rng.Intn(node.width-w-1),
		Y:      node.y + 1 + l.rng.Intn(node.height-h-1),
		Width:  w,
		Height: h,
	}
	node.area = len(l.Areas)
	l.Areas = append(l.Areas, area)

	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			l.set(x, y, TileFloor)
		}
	}
}

func (l *Layout) join(node *bspNode) {
	if node == nil || node.isLeaf() {
		return
	}
	l.join(node.left)
	l.join(node.right)

	from, to := firstArea(node.left), firstArea(node.right)
	if from < 0 || to < 0 {
		return
	}
	l.Links = append(l.Links, Link{From: from, To: to})
	l.carveCorridor(l.Areas[from], l.Areas[to])
}

// firstArea returns any area in the subtree, preferring the left side.
func firstArea(node *bspNode) int {
	if node == nil {
		return -1
	}
	if node.area >= 0 {
		return node.area
	}
	if a := firstArea(node.left); a >= 0 {
		return a
	}
	return firstArea(node.right)
}

func (l *Layout) carveCorridor(a, b Area) {
	x1, y1 := a.Center()
	x2, y2 := b.Center()

	if l.rng.Intn(2) == 0 {
		l.carveLine(x1, y1, x2, y1)
		l.carveLine(x2, y1, x2, y2)
	} else {
		l.carveLine(x1, y1, x1, y2)
		l.carveLine(x1, y2, x2, y2)
	}
}

// carveLine carves a horizontal or vertical corridor, leaving room floor alone.
func (l *Layout) carveLine(x1, y1, x2, y2 int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			if l.Tile(x, y) == TileWall {
				l.set(x, y, TileCorridor)
			}
		}
	}
}

func (l *Layout) set(x, y int, t Tile) {
	if x > 0 && x < l.Width-1 && y > 0 && y < l.Height-1 {
		l.Tiles[y][x] = t
	}
}
