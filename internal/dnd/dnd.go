// Package dnd tracks drag gestures over rectangular screen regions.
//
// Drag sources and drop targets are registered from the current layout
// before each pointer event. A Manager turns a press/motion/release sequence
// (or an explicit keyboard pickup) into at most one Drop.
package dnd

// Type names the kind of payload a source produces and a target accepts.
type Type string

const Card Type = "card"

type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Payload travels from the drag source to the drop target.
type Payload struct {
	Type   Type
	ItemID int
	Origin string
}

// Drop is reported once when an active drag is released over a target that
// accepts its payload.
type Drop struct {
	Payload Payload
	Target  string
}

type source struct {
	rect    Rect
	payload Payload
}

type target struct {
	id     string
	rect   Rect
	accept Type
}

type state int

const (
	idle state = iota
	pending
	dragging
)

type Manager struct {
	sources []source
	targets []target

	state   state
	payload Payload
	over    string
	pressX  int
	pressY  int
}

func NewManager() *Manager {
	return &Manager{}
}

// ClearRegions forgets every registered source and target. An ongoing drag
// is kept.
func (m *Manager) ClearRegions() {
	m.sources = m.sources[:0]
	m.targets = m.targets[:0]
}

func (m *Manager) RegisterSource(r Rect, p Payload) {
	m.sources = append(m.sources, source{rect: r, payload: p})
}

func (m *Manager) RegisterTarget(id string, r Rect, accept Type) {
	m.targets = append(m.targets, target{id: id, rect: r, accept: accept})
}

// SourceAt returns the payload of the topmost source under the point.
func (m *Manager) SourceAt(x, y int) (Payload, bool) {
	for i := len(m.sources) - 1; i >= 0; i-- {
		if m.sources[i].rect.Contains(x, y) {
			return m.sources[i].payload, true
		}
	}
	return Payload{}, false
}

// TargetAt returns the id of the topmost target under the point that
// accepts payloads of type t.
func (m *Manager) TargetAt(x, y int, t Type) (string, bool) {
	for i := len(m.targets) - 1; i >= 0; i-- {
		tg := m.targets[i]
		if tg.accept == t && tg.rect.Contains(x, y) {
			return tg.id, true
		}
	}
	return "", false
}

func (m *Manager) hasTarget(id string, t Type) bool {
	for _, tg := range m.targets {
		if tg.id == id && tg.accept == t {
			return true
		}
	}
	return false
}

// Press arms a drag when the point hits a source. The drag only becomes
// active once the pointer moves off the pressed cell.
func (m *Manager) Press(x, y int) (Payload, bool) {
	m.reset()
	p, ok := m.SourceAt(x, y)
	if !ok {
		return Payload{}, false
	}
	m.state = pending
	m.payload = p
	m.pressX, m.pressY = x, y
	return p, true
}

func (m *Manager) Motion(x, y int) {
	switch m.state {
	case idle:
		return
	case pending:
		if x == m.pressX && y == m.pressY {
			return
		}
		m.state = dragging
	}
	m.over, _ = m.TargetAt(x, y, m.payload.Type)
}

// Release ends the gesture. It reports a drop only when an active drag ends
// over an accepting target.
func (m *Manager) Release(x, y int) (Drop, bool) {
	defer m.reset()
	if m.state != dragging {
		return Drop{}, false
	}
	id, ok := m.TargetAt(x, y, m.payload.Type)
	if !ok {
		return Drop{}, false
	}
	return Drop{Payload: m.payload, Target: id}, true
}

// Begin starts an active drag without a pointer, hovering the payload's
// origin when it is a registered target.
func (m *Manager) Begin(p Payload) {
	m.reset()
	m.state = dragging
	m.payload = p
	if m.hasTarget(p.Origin, p.Type) {
		m.over = p.Origin
	}
}

// Hover moves the active drag over the target with the given id.
func (m *Manager) Hover(id string) bool {
	if m.state != dragging || !m.hasTarget(id, m.payload.Type) {
		return false
	}
	m.over = id
	return true
}

// Drop releases the active drag over the hovered target.
func (m *Manager) Drop() (Drop, bool) {
	defer m.reset()
	if m.state != dragging || m.over == "" {
		return Drop{}, false
	}
	return Drop{Payload: m.payload, Target: m.over}, true
}

func (m *Manager) Cancel() {
	m.reset()
}

func (m *Manager) reset() {
	m.state = idle
	m.payload = Payload{}
	m.over = ""
}

func (m *Manager) Active() bool {
	return m.state == dragging
}

func (m *Manager) isPending() bool {
	return m.state == pending
}

func (m *Manager) Dragging() (Payload, bool) {
	if m.state != dragging {
		return Payload{}, false
	}
	return m.payload, true
}

func (m *Manager) IsDraggingItem(id int) bool {
	return m.state == dragging && m.payload.ItemID == id
}

func (m *Manager) IsOver(id string) bool {
	return m.state == dragging && m.over != "" && m.over == id
}

// Over returns the hovered target id, if any.
func (m *Manager) Over() (string, bool) {
	if m.state != dragging || m.over == "" {
		return "", false
	}
	return m.over, true
}
