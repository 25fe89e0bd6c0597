package fsm

import (
	"fmt"

	"github.com/lixenwraith/culture-catch/events"
)

// AddState adds a node to the machine
func (m *Machine[T]) AddState(id StateID, name string, parentID StateID) *Node[T] {
	node := &Node[T]{
		ID:          id,
		Name:        name,
		ParentID:    parentID,
		Transitions: make([]Transition[T], 0),
		OnEnter:     make([]Action[T], 0),
		OnUpdate:    make([]Action[T], 0),
		OnExit:      make([]Action[T], 0),
	}
	m.nodes[id] = node
	return node
}

// AddTransition adds a transition to a specific node
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) {
	if node, ok := m.nodes[sourceID]; ok {
		node.Transitions = append(node.Transitions, t)
	}
}

// On adds an event transition guarded by a registered guard name ("" = always)
func (m *Machine[T]) On(sourceID StateID, event events.EventType, targetID StateID, guard string) error {
	t := Transition[T]{TargetID: targetID, Event: event}
	if guard != "" {
		g, ok := m.guardReg[guard]
		if !ok {
			return fmt.Errorf("unknown guard '%s'", guard)
		}
		t.Guard = g
	}
	if _, ok := m.nodes[sourceID]; !ok {
		return fmt.Errorf("unknown source state %d", sourceID)
	}
	m.AddTransition(sourceID, t)
	return nil
}

// Enter appends a registered action to a node's OnEnter list
func (m *Machine[T]) Enter(id StateID, action string, args any) error {
	return m.attach(id, action, args, func(n *Node[T], a Action[T]) { n.OnEnter = append(n.OnEnter, a) })
}

// Exit appends a registered action to a node's OnExit list
func (m *Machine[T]) Exit(id StateID, action string, args any) error {
	return m.attach(id, action, args, func(n *Node[T], a Action[T]) { n.OnExit = append(n.OnExit, a) })
}

// Every appends a registered action to a node's OnUpdate list
func (m *Machine[T]) Every(id StateID, action string, args any) error {
	return m.attach(id, action, args, func(n *Node[T], a Action[T]) { n.OnUpdate = append(n.OnUpdate, a) })
}

func (m *Machine[T]) attach(id StateID, action string, args any, add func(*Node[T], Action[T])) error {
	node, ok := m.nodes[id]
	if !ok {
		return fmt.Errorf("unknown state %d", id)
	}
	fn, ok := m.actionReg[action]
	if !ok {
		return fmt.Errorf("unknown action '%s'", action)
	}
	add(node, Action[T]{Func: fn, Args: args})
	return nil
}

// CompilePaths calculates the Path slice for every node in the graph
// Must be called after all nodes are added and before Init
func (m *Machine[T]) CompilePaths() error {
	for id, node := range m.nodes {
		path := make([]StateID, 0, 4)
		curr := node

		// Walk up to root
		for {
			path = append(path, curr.ID)
			if curr.ParentID == StateNone {
				break
			}
			parent, ok := m.nodes[curr.ParentID]
			if !ok {
				return fmt.Errorf("node %d references missing parent %d", id, curr.ParentID)
			}
			if len(path) > len(m.nodes) {
				return fmt.Errorf("node %d has a parent cycle", id)
			}
			curr = parent
		}

		// Reverse to get [Root, ..., Leaf]
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}

		node.Path = path
	}
	return nil
}
