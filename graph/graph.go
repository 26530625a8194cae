// Copyright 2017-2026, Square, Inc.

// Package graph provides the node graph: nodes, the edges between their
// slots, and the ordering used to lower the graph to source.
package graph

import (
	"fmt"
	"sort"

	"github.com/square/shadergraph/node"
	"github.com/square/shadergraph/property"
	"github.com/square/shadergraph/value"
)

// Endpoint is one end of an edge: a slot on a node.
type Endpoint struct {
	Node int `yaml:"node" json:"node"`
	Slot int `yaml:"slot" json:"slot"`
}

// Edge connects an output slot (From) to an input slot (To).
type Edge struct {
	From Endpoint `yaml:"from" json:"from"`
	To   Endpoint `yaml:"to" json:"to"`
}

func (e Edge) String() string {
	return fmt.Sprintf("edge %d:%d -> %d:%d", e.From.Node, e.From.Slot, e.To.Node, e.To.Slot)
}

// Graph is a set of nodes and the edges between their slots. Every input has
// at most one incoming edge; outputs fan out freely. The edge set is kept
// acyclic by Connect. A Graph is not safe for concurrent use.
type Graph struct {
	Props *property.Registry

	nodes map[int]node.Node     // node id -> node
	edges map[Endpoint]Edge     // destination input -> edge
	out   map[int]map[Edge]bool // source node id -> outgoing edges
}

// New creates an empty graph whose property nodes resolve against props.
func New(props *property.Registry) *Graph {
	return &Graph{
		Props: props,
		nodes: map[int]node.Node{},
		edges: map[Endpoint]Edge{},
		out:   map[int]map[Edge]bool{},
	}
}

// AddNode reconfigures n against the graph's properties and adds it.
func (g *Graph) AddNode(n node.Node) error {
	if _, ok := g.nodes[n.ID()]; ok {
		return DuplicateNodeError{Node: n.ID()}
	}
	n.Reconfigure(g.Props)
	g.nodes[n.ID()] = n
	return nil
}

// NextNodeId returns an id greater than every node id in the graph.
func (g *Graph) NextNodeId() int {
	max := 0
	for id := range g.nodes {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func (g *Graph) Node(id int) (node.Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in id order.
func (g *Graph) Nodes() []node.Node {
	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	nodes := make([]node.Node, len(ids))
	for i, id := range ids {
		nodes[i] = g.nodes[id]
	}
	return nodes
}

func (g *Graph) Len() int {
	return len(g.nodes)
}

// RemoveNode removes a node and every edge to or from it.
func (g *Graph) RemoveNode(id int) error {
	if _, ok := g.nodes[id]; !ok {
		return NodeNotFoundError{Node: id}
	}
	for e := range g.out[id] {
		g.removeEdge(e)
	}
	for _, e := range g.edges {
		if e.To.Node == id {
			g.removeEdge(e)
		}
	}
	delete(g.out, id)
	delete(g.nodes, id)
	return nil
}

// Connect adds an edge from output slot srcSlot of node src to input slot
// dstSlot of node dst. On error the graph is unchanged.
func (g *Graph) Connect(src, srcSlot, dst, dstSlot int) error {
	e := Edge{
		From: Endpoint{Node: src, Slot: srcSlot},
		To:   Endpoint{Node: dst, Slot: dstSlot},
	}

	srcNode, ok := g.nodes[src]
	if !ok {
		return NodeNotFoundError{Node: src}
	}
	dstNode, ok := g.nodes[dst]
	if !ok {
		return NodeNotFoundError{Node: dst}
	}
	from, ok := srcNode.Slot(srcSlot)
	if !ok {
		return SlotNotFoundError{Node: src, Slot: srcSlot}
	}
	to, ok := dstNode.Slot(dstSlot)
	if !ok {
		return SlotNotFoundError{Node: dst, Slot: dstSlot}
	}
	if !from.IsOutput() {
		return DirectionError{Node: src, Slot: srcSlot, Expected: node.Output}
	}
	if !to.IsInput() {
		return DirectionError{Node: dst, Slot: dstSlot, Expected: node.Input}
	}
	if !value.CanConvert(from.Type, to.Type) {
		return TypeMismatchError{Edge: e, From: from.Type, To: to.Type}
	}
	if existing, ok := g.edges[e.To]; ok {
		return SlotOccupiedError{Existing: existing}
	}
	if src == dst || g.reachable(dst, src) {
		return WouldCycleError{Edge: e}
	}

	g.addEdge(e)
	return nil
}

// Restore adds a saved edge whose source slot may not exist yet, as for a
// property node bound to a property that is not declared. The edge is
// dangling until the node has the slot again. Both nodes must exist and the
// destination must be a free input. On error the graph is unchanged.
func (g *Graph) Restore(src, srcSlot, dst, dstSlot int) error {
	e := Edge{
		From: Endpoint{Node: src, Slot: srcSlot},
		To:   Endpoint{Node: dst, Slot: dstSlot},
	}

	if _, ok := g.nodes[src]; !ok {
		return NodeNotFoundError{Node: src}
	}
	dstNode, ok := g.nodes[dst]
	if !ok {
		return NodeNotFoundError{Node: dst}
	}
	to, ok := dstNode.Slot(dstSlot)
	if !ok {
		return SlotNotFoundError{Node: dst, Slot: dstSlot}
	}
	if !to.IsInput() {
		return DirectionError{Node: dst, Slot: dstSlot, Expected: node.Input}
	}
	if existing, ok := g.edges[e.To]; ok {
		return SlotOccupiedError{Existing: existing}
	}
	if src == dst || g.reachable(dst, src) {
		return WouldCycleError{Edge: e}
	}

	g.addEdge(e)
	return nil
}

// Disconnect removes the edge into input slot dstSlot of node dst.
func (g *Graph) Disconnect(dst, dstSlot int) error {
	e, ok := g.edges[Endpoint{Node: dst, Slot: dstSlot}]
	if !ok {
		return fmt.Errorf("node %d slot %d is not connected", dst, dstSlot)
	}
	g.removeEdge(e)
	return nil
}

// Incoming returns the edge into an input slot, if any.
func (g *Graph) Incoming(dst, dstSlot int) (Edge, bool) {
	e, ok := g.edges[Endpoint{Node: dst, Slot: dstSlot}]
	return e, ok
}

// Outgoing returns the edges leaving a node, sorted.
func (g *Graph) Outgoing(src int) []Edge {
	edges := make([]Edge, 0, len(g.out[src]))
	for e := range g.out[src] {
		edges = append(edges, e)
	}
	sortEdges(edges)
	return edges
}

// Edges returns every edge, sorted by destination then source.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		edges = append(edges, e)
	}
	sortEdges(edges)
	return edges
}

// TopologicalOrder returns the nodes so that every edge's source precedes its
// destination. Among nodes that are ready at the same time, the lowest id
// comes first, so the order depends only on graph content.
func (g *Graph) TopologicalOrder() ([]node.Node, error) {
	indegree := make(map[int]int, len(g.nodes))
	for id := range g.nodes {
		indegree[id] = 0
	}
	for _, e := range g.edges {
		indegree[e.To.Node]++
	}

	ready := []int{}
	for id, n := range indegree {
		if n == 0 {
			ready = append(ready, id)
		}
	}
	sort.Ints(ready)

	order := make([]node.Node, 0, len(g.nodes))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, g.nodes[id])

		// Decrement each successor once per edge. A successor whose count
		// reaches zero joins the ready set, which stays sorted.
		for e := range g.out[id] {
			indegree[e.To.Node]--
			if indegree[e.To.Node] == 0 {
				ready = insertSorted(ready, e.To.Node)
			}
		}
	}

	if len(order) != len(g.nodes) {
		var stuck []int
		for id, n := range indegree {
			if n > 0 {
				stuck = append(stuck, id)
			}
		}
		sort.Ints(stuck)
		return nil, CycleDetectedError{Nodes: stuck}
	}
	return order, nil
}

// Reconfigure reconfigures one node. Edges to slots the node no longer has
// are kept; Validate reports them.
func (g *Graph) Reconfigure(id int) error {
	n, ok := g.nodes[id]
	if !ok {
		return NodeNotFoundError{Node: id}
	}
	n.Reconfigure(g.Props)
	return nil
}

// ReconfigureAll reconfigures every node in id order, e.g. after properties
// changed.
func (g *Graph) ReconfigureAll() {
	for _, n := range g.Nodes() {
		n.Reconfigure(g.Props)
	}
}

// PropertyUsers returns the ids of property nodes bound to a property.
func (g *Graph) PropertyUsers(propertyId string) []int {
	var users []int
	for _, n := range g.Nodes() {
		if pn, ok := n.(*node.PropertyNode); ok && pn.PropertyId == propertyId {
			users = append(users, pn.ID())
		}
	}
	return users
}

// RemoveProperty removes a property from the registry. Unless force is true,
// a property still used by property nodes is not removed. Nodes left bound
// to a removed property report an error and are skipped by code generation.
func (g *Graph) RemoveProperty(propertyId string, force bool) error {
	if _, ok := g.Props.Property(propertyId); !ok {
		return property.PropertyNotFoundError{Id: propertyId}
	}
	if users := g.PropertyUsers(propertyId); len(users) > 0 && !force {
		return PropertyInUseError{Property: propertyId, Nodes: users}
	}
	return g.Props.Remove(propertyId)
}

// ConvertToProperty replaces a constant or texture asset node with a property
// node bound to a new registry property holding the node's value. The new
// node takes the old node's id, so edges from output slots the property node
// also has are kept; other edges of the old node are removed.
func (g *Graph) ConvertToProperty(id int) (*node.PropertyNode, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, NodeNotFoundError{Node: id}
	}
	src, ok := n.(node.PropertySource)
	if !ok {
		return nil, fmt.Errorf("node %d (%s) cannot be converted to a property", id, n.Type())
	}

	p, err := g.Props.Add(src.AsProperty())
	if err != nil {
		return nil, err
	}

	pn := node.NewPropertyNode(id, p.ID)
	pn.Reconfigure(g.Props)
	g.nodes[id] = pn

	for _, e := range g.Outgoing(id) {
		if s, ok := pn.Slot(e.From.Slot); !ok || !s.IsOutput() {
			g.removeEdge(e)
		}
	}
	for _, e := range g.edges {
		if e.To.Node == id {
			g.removeEdge(e)
		}
	}
	return pn, nil
}

// --------------------------------------------------------------------------

func (g *Graph) addEdge(e Edge) {
	g.edges[e.To] = e
	if g.out[e.From.Node] == nil {
		g.out[e.From.Node] = map[Edge]bool{}
	}
	g.out[e.From.Node][e] = true
}

func (g *Graph) removeEdge(e Edge) {
	delete(g.edges, e.To)
	delete(g.out[e.From.Node], e)
}

// reachable returns true if to can be reached from from by following edges.
func (g *Graph) reachable(from, to int) bool {
	seen := map[int]bool{from: true}
	stack := []int{from}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == to {
			return true
		}
		for e := range g.out[id] {
			if !seen[e.To.Node] {
				seen[e.To.Node] = true
				stack = append(stack, e.To.Node)
			}
		}
	}
	return false
}

func insertSorted(ids []int, id int) []int {
	i := sort.SearchInts(ids, id)
	ids = append(ids, 0)
	copy(ids[i+1:], ids[i:])
	ids[i] = id
	return ids
}

func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.To.Node != b.To.Node {
			return a.To.Node < b.To.Node
		}
		if a.To.Slot != b.To.Slot {
			return a.To.Slot < b.To.Slot
		}
		if a.From.Node != b.From.Node {
			return a.From.Node < b.From.Node
		}
		return a.From.Slot < b.From.Slot
	})
}
