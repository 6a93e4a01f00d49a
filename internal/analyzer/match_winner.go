package analyzer

// consumeLeading removes leading steps of a terminal's decision path that
// one match step accounts for: an equal step, or any step whose parent
// chain passes through the position a wildcard leaves unconstrained.
func consumeLeading(step *dataPath, terminal []*dataPath) []*dataPath {
	for len(terminal) > 0 {
		head := terminal[0]
		var remove bool
		if step.kind == wildcardPath {
			remove = head.isDescendantOf(step.parent)
		} else {
			remove = step.equal(head)
		}
		if !remove {
			break
		}
		terminal = terminal[1:]
	}
	return terminal
}

// coversTerminal reports whether a match's decision path accounts for
// every step of a terminal's accumulated decision path.
func coversTerminal(m *matchEntry, terminal decisionPath) bool {
	remaining := terminal.steps
	for _, step := range m.decision.steps {
		remaining = consumeLeading(step, remaining)
	}
	return len(remaining) == 0
}

// resolveWinner picks the authoritative match for one terminal: a user
// branch always outranks a synthesized alternative, and among user
// branches the lower source index wins. Returns nil when nothing covers
// the terminal, which indicates a defect in tree construction.
func resolveWinner(terminal decisionPath, matches []*matchEntry) *matchEntry {
	var winner *matchEntry
	for _, m := range matches {
		if !coversTerminal(m, terminal) {
			continue
		}
		switch {
		case winner == nil:
			winner = m
		case winner.kind == alternativeMatch && m.kind == userDefinedMatch:
			winner = m
		case winner.kind == userDefinedMatch && m.kind == userDefinedMatch && m.index < winner.index:
			winner = m
		}
	}
	return winner
}

// walkTerminals visits every terminal of a decision tree in case order.
func walkTerminals(node decisionNode, visit func(*endNode)) {
	switch n := node.(type) {
	case *tupleNode:
		walkTerminals(n.next, visit)
	case *switchNode:
		for _, c := range n.cases {
			walkTerminals(c.node, visit)
		}
	case *endNode:
		visit(n)
	}
}
