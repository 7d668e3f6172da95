package history

import "strings"

// Packet is a series of changes applied, undone and redone as one unit.
type Packet struct {
	Changes []Change
}

// NewPacket creates a packet holding changes in order.
func NewPacket(changes ...Change) *Packet {
	return &Packet{Changes: changes}
}

// Add appends a change to the packet.
func (p *Packet) Add(c Change) {
	p.Changes = append(p.Changes, c)
}

// Len returns the number of changes in the packet.
func (p *Packet) Len() int {
	return len(p.Changes)
}

// TouchesText returns true if any change in the packet modifies text.
func (p *Packet) TouchesText() bool {
	for _, c := range p.Changes {
		if TouchesText(c) {
			return true
		}
	}
	return false
}

// Revert applies the packet's changes to t in reverse order and returns a
// packet holding the inverses in the order they were produced. Reverting
// the result restores the state Revert started from.
func (p *Packet) Revert(t Target) *Packet {
	result := &Packet{Changes: make([]Change, 0, len(p.Changes))}
	for i := len(p.Changes) - 1; i >= 0; i-- {
		result.Changes = append(result.Changes, Apply(p.Changes[i], t))
	}
	return result
}

// String returns the changes separated by "; ".
func (p *Packet) String() string {
	parts := make([]string, len(p.Changes))
	for i, c := range p.Changes {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, "; ") + "]"
}
