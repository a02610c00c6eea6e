package reachable

import "github.com/katalvlaran/wfst/fst"

// tarjan computes the strongly connected components of g (a dense graph
// over state ids 0..n-1 given by adj), grounded in the teacher's
// three-color DFS style (dfs.TopologicalSort) but extended with Tarjan's
// low-link bookkeeping to condense cycles. tarjan returns component,
// where component[s] is the id of s's SCC. Ids are assigned in the order
// SCCs complete, which is reverse topological order: every
// inter-component edge src->dst has component[src] > component[dst].
type tarjanState struct {
	adj      [][]fst.StateId
	index    []int
	lowlink  []int
	onStack  []bool
	stack    []fst.StateId
	counter  int
	component []int
	numSCC   int
}

const (
	tarjanUnvisited = -1
)

func tarjan(n int, adj [][]fst.StateId) []int {
	st := &tarjanState{
		adj:       adj,
		index:     make([]int, n),
		lowlink:   make([]int, n),
		onStack:   make([]bool, n),
		component: make([]int, n),
	}
	for i := range st.index {
		st.index[i] = tarjanUnvisited
	}
	for v := 0; v < n; v++ {
		if st.index[v] == tarjanUnvisited {
			st.strongconnect(fst.StateId(v))
		}
	}
	return st.component
}

func (st *tarjanState) strongconnect(v fst.StateId) {
	st.index[v] = st.counter
	st.lowlink[v] = st.counter
	st.counter++
	st.stack = append(st.stack, v)
	st.onStack[v] = true

	for _, w := range st.adj[v] {
		if st.index[w] == tarjanUnvisited {
			st.strongconnect(w)
			if st.lowlink[w] < st.lowlink[v] {
				st.lowlink[v] = st.lowlink[w]
			}
		} else if st.onStack[w] {
			if st.index[w] < st.lowlink[v] {
				st.lowlink[v] = st.index[w]
			}
		}
	}

	if st.lowlink[v] == st.index[v] {
		id := st.numSCC
		st.numSCC++
		for {
			n := len(st.stack) - 1
			w := st.stack[n]
			st.stack = st.stack[:n]
			st.onStack[w] = false
			st.component[w] = id
			if w == v {
				break
			}
		}
	}
}
