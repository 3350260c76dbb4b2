package render

import (
	"image/color"
)

// GroupKind names a command group.
type GroupKind string

const (
	GroupXAxis      GroupKind = "x-axis"
	GroupYAxis      GroupKind = "y-axis"
	GroupXGridlines GroupKind = "x-gridlines"
	GroupXLabels    GroupKind = "x-labels"
	GroupYGridlines GroupKind = "y-gridlines"
	GroupYLabels    GroupKind = "y-labels"
	GroupYMinLabel  GroupKind = "y-min-label"
	GroupPolyline   GroupKind = "polyline"
	GroupMarkers    GroupKind = "markers"
)

// Group is a run of commands drawing one chart element.
type Group struct {
	Kind     GroupKind
	Commands []Command
}

// Plan is the ordered output of one layout pass.
type Plan struct {
	Width, Height float64
	Background    color.RGBA
	Groups        []Group
}

// Commands flattens the groups into one ordered stream.
func (p Plan) Commands() []Command {
	var out []Command
	for _, g := range p.Groups {
		out = append(out, g.Commands...)
	}
	return out
}

// Group returns the group of the given kind.
func (p Plan) Group(kind GroupKind) (Group, bool) {
	for _, g := range p.Groups {
		if g.Kind == kind {
			return g, true
		}
	}
	return Group{}, false
}

// Count returns how many commands of op the plan holds.
func (p Plan) Count(op Op) int {
	n := 0
	for _, g := range p.Groups {
		for _, c := range g.Commands {
			if c.Op() == op {
				n++
			}
		}
	}
	return n
}

// Len is the total number of commands.
func (p Plan) Len() int {
	n := 0
	for _, g := range p.Groups {
		n += len(g.Commands)
	}
	return n
}

// builder appends commands to named groups, dropping empty ones.
type builder struct {
	plan Plan
	cur  *Group
}

func (b *builder) begin(kind GroupKind) {
	b.end()
	b.cur = &Group{Kind: kind}
}

func (b *builder) end() {
	if b.cur != nil && len(b.cur.Commands) > 0 {
		b.plan.Groups = append(b.plan.Groups, *b.cur)
	}
	b.cur = nil
}

func (b *builder) add(c ...Command) {
	b.cur.Commands = append(b.cur.Commands, c...)
}

func (b *builder) line(from, to Point) {
	b.add(MoveTo{from}, LineTo{to})
}
