package fsm

import (
	"fmt"
	"time"

	"github.com/lixenwraith/culture-catch/events"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:     make(map[StateID]*Node[T]),
		guardReg:  make(map[string]GuardFunc[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init enters the initial state, running OnEnter for the chain from Root to it
func (m *Machine[T]) Init(ctx T, initialID StateID) error {
	node, ok := m.nodes[initialID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", initialID)
	}
	if len(node.Path) == 0 {
		return fmt.Errorf("state %d has no compiled path", initialID)
	}

	m.InitialStateID = initialID
	m.activeStateID = initialID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], node.Path...)

	m.transitioning = true
	for _, id := range m.activePath {
		if n, exists := m.nodes[id]; exists {
			for _, action := range n.OnEnter {
				action.Func(ctx, action.Args)
			}
		}
	}
	m.transitioning = false

	return nil
}

// Update advances the FSM by delta time, running OnUpdate actions then tick transitions (Event == EventNone)
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.activeStateID == StateNone || m.transitioning {
		return
	}

	m.timeInState += dt

	leaf := m.nodes[m.activeStateID]
	for _, action := range leaf.OnUpdate {
		action.Func(ctx, action.Args)
	}

	m.fire(ctx, events.EventNone)
}

// HandleEvent routes an event through the active path, leaf first
// Returns true if the event triggered a transition
// Events raised from inside exit/enter actions are ignored
func (m *Machine[T]) HandleEvent(ctx T, eventType events.EventType) bool {
	if m.activeStateID == StateNone || m.transitioning || eventType == events.EventNone {
		return false
	}
	return m.fire(ctx, eventType)
}

// fire evaluates transitions matching eventType, bubbling Leaf -> Parent -> Root
func (m *Machine[T]) fire(ctx T, eventType events.EventType) bool {
	currID := m.activeStateID
	for currID != StateNone {
		node := m.nodes[currID]
		for _, trans := range node.Transitions {
			if trans.Event != eventType {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx) {
				m.transition(ctx, trans.TargetID)
				return true
			}
		}
		currID = node.ParentID
	}
	return false
}

// transition performs the state change through the lowest common ancestor
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	if m.activeStateID == targetID {
		return
	}

	targetNode, ok := m.nodes[targetID]
	if !ok {
		// Graph is validated at build time; an unknown target is a programming error
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d", targetID))
	}

	lcaIndex := -1
	currentPath := m.activePath
	targetPath := targetNode.Path

	minLen := min(len(currentPath), len(targetPath))
	for i := 0; i < minLen; i++ {
		if currentPath[i] != targetPath[i] {
			break
		}
		lcaIndex = i
	}

	m.transitioning = true

	// Exit phase: walk UP from current leaf to LCA (exclusive)
	for i := len(currentPath) - 1; i > lcaIndex; i-- {
		if node, exists := m.nodes[currentPath[i]]; exists {
			for _, action := range node.OnExit {
				action.Func(ctx, action.Args)
			}
		}
	}

	// Leaf is switched before entering so OnEnter actions observe the target as current
	m.activeStateID = targetID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], targetPath...)

	// Enter phase: walk DOWN from LCA (exclusive) to target leaf
	for i := lcaIndex + 1; i < len(targetPath); i++ {
		if node, exists := m.nodes[targetPath[i]]; exists {
			for _, action := range node.OnEnter {
				action.Func(ctx, action.Args)
			}
		}
	}

	m.transitioning = false
}

// Reset exits the whole active path and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	if m.activeStateID != StateNone {
		m.transitioning = true
		for i := len(m.activePath) - 1; i >= 0; i-- {
			if node, ok := m.nodes[m.activePath[i]]; ok {
				for _, action := range node.OnExit {
					action.Func(ctx, action.Args)
				}
			}
		}
		m.transitioning = false
	}

	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]
	return m.Init(ctx, m.InitialStateID)
}

// Current returns the active leaf StateID
func (m *Machine[T]) Current() StateID {
	return m.activeStateID
}

// CurrentName returns the active leaf name, empty before Init
func (m *Machine[T]) CurrentName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns time spent in the current state
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

// InState reports whether id is the active leaf or one of its ancestors
func (m *Machine[T]) InState(id StateID) bool {
	for _, s := range m.activePath {
		if s == id {
			return true
		}
	}
	return false
}
