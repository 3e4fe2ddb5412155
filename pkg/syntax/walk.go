package syntax

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(n *Node) error

// Walk performs a pre-order traversal of the tree starting at root.
// If walkFunc returns a non-nil error the walk stops and returns it.
func Walk(root *Node, walkFunc WalkFunc) error {
	if root == nil {
		return nil
	}

	if err := walkFunc(root); err != nil {
		return err
	}

	for _, child := range root.Children {
		if err := Walk(child, walkFunc); err != nil {
			return err
		}
	}

	return nil
}

// WalkKinds walks the tree and calls fn only for nodes whose kind is in kinds.
func WalkKinds(root *Node, kinds []Kind, fn WalkFunc) error {
	var want [kindCount]bool
	for _, k := range kinds {
		if k < kindCount {
			want[k] = true
		}
	}
	return Walk(root, func(n *Node) error {
		if n.Kind < kindCount && want[n.Kind] {
			return fn(n)
		}
		return nil
	})
}
