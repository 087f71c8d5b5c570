package internal

// ReconstructPath rebuilds the start-to-goal node sequence by following
// predecessor links backwards from the goal, then reversing.
func ReconstructPath[Node comparable](cameFrom map[Node]Node, goal, start Node) []Node {
	path := []Node{goal}
	current := goal
	for current != start {
		previous, exists := cameFrom[current]
		if !exists {
			break
		}
		path = append(path, previous)
		current = previous
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
