// This file contains a thin wrapper around the graph module for
// managing the dependencies between standings.
package internal

import (
	"iter"

	"github.com/dominikbraun/graph"
)

var nodeId int = 0

func NextNodeId() int {
	id := nodeId
	nodeId += 1
	return id
}

type GraphNode interface {
	// A unique ID that is used as the node hash
	Id() int
}

func getNodeId[T GraphNode](node T) int {
	return node.Id()
}

// A DependencyGraph holds nodes that have to be recomputed in
// topological order when one of their dependencies changes.
//
// A node that derives its value from another node has an incoming
// edge from that node.
type DependencyGraph[T GraphNode] struct {
	graph.Graph[int, T]
}

func NewDependencyGraph[T GraphNode]() *DependencyGraph[T] {
	dependencyGraph := &DependencyGraph[T]{
		Graph: graph.New(getNodeId[T], graph.Directed(), graph.Acyclic()),
	}
	return dependencyGraph
}

func (g *DependencyGraph[T]) AddEdge(source, target T) error {
	err := g.Graph.AddEdge(source.Id(), target.Id())
	return err
}

// BreadthSearchIter iterates the nodes reachable from start in
// breadth first order, start included.
func (g *DependencyGraph[T]) BreadthSearchIter(start T) iter.Seq2[T, int] {
	iterator := func(yield func(v T, depth int) bool) {
		visitor := func(key, depth int) bool {
			v, _ := g.Vertex(key)
			return !yield(v, depth)
		}
		graph.BFSWithDepth(g.Graph, start.Id(), visitor)
	}
	return iterator
}
