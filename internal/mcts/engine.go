// Package mcts implements the Monte Carlo Tree Search opponent. The engine
// operates on cloned simulation snapshots only; the finally selected action
// is applied to real state by the caller through the command handlers.
package mcts

import (
	"math"

	"golang.org/x/exp/rand"
)

// Config holds the search budget and constants
type Config struct {
	Simulations         int
	ExplorationConstant float64
	MaxDepth            int
}

// DefaultConfig returns the standard search parameters
func DefaultConfig() Config {
	return Config{
		Simulations:         1000,
		ExplorationConstant: 1.41, // sqrt(2)
		MaxDepth:            50,
	}
}

// node is one entry in the slice-arena tree
type node struct {
	state     *SimState
	action    Action
	actionIdx int
	parent    int
	children  []int
	untried   []Action
	visits    int
	reward    float64
	depth     int
}

func (n *node) averageReward() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.reward / float64(n.visits)
}

// ucb1 scores a child for selection; unvisited children rank infinitely high
func (n *node) ucb1(parentVisits int, c float64) float64 {
	if n.visits == 0 {
		return math.Inf(1)
	}
	exploration := c * math.Sqrt(math.Log(float64(parentVisits))/float64(n.visits))
	return n.averageReward() + exploration
}

// Statistics summarizes the last search for logging and inspection
type Statistics struct {
	Simulations int
	Nodes       int
	MaxDepth    int
}

// Engine runs iteration-budgeted UCB1 tree search. All randomness comes from
// the injected source, so a fixed seed and budget always select the same
// action. The engine runs on a single goroutine; the budget is a simulation
// count, never wall-clock time.
type Engine struct {
	cfg   Config
	rng   *rand.Rand
	nodes []node
	stats Statistics
}

// New creates an engine with the given configuration and random source
func New(cfg Config, rng *rand.Rand) *Engine {
	return &Engine{cfg: cfg, rng: rng}
}

// Search runs the full simulation budget from the given snapshot and returns
// the action to play. With no legal action besides Pass it returns Pass.
func (e *Engine) Search(root *SimState) Action {
	rootState := root.Clone()
	e.nodes = e.nodes[:0]
	e.nodes = append(e.nodes, node{
		state:   rootState,
		parent:  -1,
		untried: rootState.LegalActions(),
	})
	rootScore := rootState.Port.Score

	for i := 0; i < e.cfg.Simulations; i++ {
		id := e.selectNode()
		id = e.expand(id)
		reward := e.rollout(id, rootScore)
		e.backpropagate(id, reward)
	}

	e.stats = Statistics{Simulations: e.cfg.Simulations, Nodes: len(e.nodes)}
	for i := range e.nodes {
		if e.nodes[i].depth > e.stats.MaxDepth {
			e.stats.MaxDepth = e.nodes[i].depth
		}
	}

	return e.bestAction()
}

// Stats returns statistics for the most recent search
func (e *Engine) Stats() Statistics {
	return e.stats
}

// selectNode descends from the root through fully expanded nodes, choosing
// the child with the highest UCB1 score
func (e *Engine) selectNode() int {
	id := 0
	for {
		n := &e.nodes[id]
		if len(n.untried) > 0 || len(n.children) == 0 {
			return id
		}

		best := n.children[0]
		bestScore := math.Inf(-1)
		for _, childID := range n.children {
			score := e.nodes[childID].ucb1(n.visits, e.cfg.ExplorationConstant)
			if score > bestScore {
				bestScore = score
				best = childID
			}
		}
		id = best
	}
}

// expand instantiates one child for the next unexplored action, advancing a
// cloned state by that action
func (e *Engine) expand(id int) int {
	n := &e.nodes[id]
	if len(n.untried) == 0 || n.depth >= e.cfg.MaxDepth {
		return id
	}

	action := n.untried[0]
	n.untried = n.untried[1:]
	actionIdx := len(n.children)

	childState := n.state.Clone()
	childState.Apply(action)

	childID := len(e.nodes)
	e.nodes = append(e.nodes, node{
		state:     childState,
		action:    action,
		actionIdx: actionIdx,
		parent:    id,
		untried:   childState.LegalActions(),
		depth:     n.depth + 1,
	})
	// Re-resolve: the append may have moved the backing array
	e.nodes[id].children = append(e.nodes[id].children, childID)
	return childID
}

// rollout plays uniform-random legal actions from the node's state until the
// depth bound, a terminal state, or a stall, and scores the playout as the
// simulated score delta against the root
func (e *Engine) rollout(id int, rootScore int) float64 {
	state := e.nodes[id].state.Clone()
	depth := e.nodes[id].depth

	for depth < e.cfg.MaxDepth && !state.Terminal() && !state.Stalled() {
		actions := state.LegalActions()
		state.Apply(actions[e.rng.Intn(len(actions))])
		depth++
	}

	return float64(state.Port.Score - rootScore)
}

// backpropagate adds the rollout reward along the path to the root
func (e *Engine) backpropagate(id int, reward float64) {
	for id >= 0 {
		e.nodes[id].visits++
		e.nodes[id].reward += reward
		id = e.nodes[id].parent
	}
}

// bestAction picks the root child with the highest visit count; ties break
// by average reward, then by lowest action index for determinism
func (e *Engine) bestAction() Action {
	root := &e.nodes[0]
	if len(root.children) == 0 {
		return Pass()
	}

	bestID := -1
	for _, childID := range root.children {
		if bestID == -1 {
			bestID = childID
			continue
		}
		c, b := &e.nodes[childID], &e.nodes[bestID]
		switch {
		case c.visits > b.visits:
			bestID = childID
		case c.visits == b.visits && c.averageReward() > b.averageReward():
			bestID = childID
		case c.visits == b.visits && c.averageReward() == b.averageReward() && c.actionIdx < b.actionIdx:
			bestID = childID
		}
	}
	return e.nodes[bestID].action
}
