package doctree

// WalkFunc is the function signature for Walk callbacks.
// The depth of top-level nodes is 0. Return a non-nil error to stop the walk.
type WalkFunc func(n Node, depth int) error

// Walk performs a pre-order traversal of nodes and their descendants.
// If walkFunc returns a non-nil error, the walk stops and returns it.
func Walk(nodes []Node, walkFunc WalkFunc) error {
	return walk(nodes, 0, walkFunc, nil)
}

// WalkWithContext performs a traversal with enter and leave callbacks.
// Enter is called before visiting children, leave after. Either may be nil.
func WalkWithContext(nodes []Node, enter, leave WalkFunc) error {
	return walk(nodes, 0, enter, leave)
}

func walk(nodes []Node, depth int, enter, leave WalkFunc) error {
	for _, node := range nodes {
		if node == nil {
			continue
		}

		if enter != nil {
			if err := enter(node, depth); err != nil {
				return err
			}
		}

		if err := walk(node.Meta().Children, depth+1, enter, leave); err != nil {
			return err
		}

		if leave != nil {
			if err := leave(node, depth); err != nil {
				return err
			}
		}
	}

	return nil
}

// FindAll returns all nodes matching the predicate, in pre-order.
func FindAll(nodes []Node, predicate func(n Node) bool) []Node {
	var result []Node

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(nodes, func(node Node, _ int) error {
		if predicate(node) {
			result = append(result, node)
		}
		return nil
	})

	return result
}

// FindFirst returns the first node matching the predicate, or nil if none found.
func FindFirst(nodes []Node, predicate func(n Node) bool) Node {
	var found Node

	//nolint:errcheck,revive // errStopWalk is expected and intentionally ignored
	Walk(nodes, func(node Node, _ int) error {
		if predicate(node) {
			found = node
			return errStopWalk
		}
		return nil
	})

	return found
}

// FindByKind returns all nodes of the specified kind.
func FindByKind(nodes []Node, kind Kind) []Node {
	return FindAll(nodes, func(n Node) bool {
		return n.Kind() == kind
	})
}

// errStopWalk is a sentinel error used to stop walking early.
var errStopWalk = &stopWalkError{}

type stopWalkError struct{}

func (e *stopWalkError) Error() string {
	return "stop walk"
}
