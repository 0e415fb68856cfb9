package subgraph

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/fastgraph/fastgraph"
)

type State int

const (
	Unstarted State = iota
	Searching
	Exhausted
)

func (s State) String() string {
	switch s {
	case Unstarted:
		return "unstarted"
	case Searching:
		return "searching"
	case Exhausted:
		return "exhausted"
	}
	return "invalid-state"
}

// backLink describes the pattern edges between the node at some position
// of the order and an earlier node (or itself). out is set for edges
// leaving the later node in a directed pattern.
type backLink struct {
	other int
	out   bool
	edges []int
}

// search is the backtracking engine shared by the exact and the
// approximate matcher. With maxMissing == 0 every pattern edge must be
// hosted; otherwise up to maxMissing pattern edges may stay unhosted.
type search struct {
	target, pattern *fastgraph.FastGraph
	nodeCmp         NodeComparator
	edgeCmp         EdgeComparator
	approximate     bool
	maxMissing      int
	state           State
	mappings        []SubgraphMapping
	order           []int
	links           [][]backLink
	group           edgeGroup
}

func newSearch(target, pattern *fastgraph.FastGraph, nodeCmp NodeComparator, edgeCmp EdgeComparator) (*search, error) {
	if target == nil || pattern == nil {
		return nil, fastgraph.InvalidArgumentf("target and pattern must not be nil")
	}
	if target.Directed() != pattern.Directed() {
		return nil, fastgraph.InvalidArgumentf("cannot match a directed=%v pattern in a directed=%v target", pattern.Directed(), target.Directed())
	}
	if nodeCmp == nil {
		nodeCmp = AlwaysEqualNodeComparator{}
	}
	if edgeCmp == nil {
		edgeCmp = AlwaysEqualEdgeComparator{}
	}
	ct, cp := nodeCmp.Graphs()
	if err := checkGraphs("node", target, pattern, ct, cp); err != nil {
		return nil, err
	}
	ct, cp = edgeCmp.Graphs()
	if err := checkGraphs("edge", target, pattern, ct, cp); err != nil {
		return nil, err
	}
	return &search{
		target:   target,
		pattern:  pattern,
		nodeCmp:  nodeCmp,
		edgeCmp:  edgeCmp,
		state:    Unstarted,
		mappings: make([]SubgraphMapping, 0, 10),
	}, nil
}

func (s *search) State() State {
	return s.state
}

// Find runs the search on the first call and reports whether at least one
// mapping exists. Later calls return the same answer without searching.
func (s *search) Find() bool {
	if s.state == Exhausted {
		return len(s.mappings) > 0
	}
	s.state = Searching
	s.run()
	s.state = Exhausted
	errors.Logf("DEBUG", "subgraph search (%v nodes, %v edges) in (%v nodes, %v edges): %v mappings",
		s.pattern.NumberOfNodes(), s.pattern.NumberOfEdges(),
		s.target.NumberOfNodes(), s.target.NumberOfEdges(), len(s.mappings))
	return len(s.mappings) > 0
}

// Mappings lists the embeddings found so far. It is never nil.
func (s *search) Mappings() []SubgraphMapping {
	mappings := make([]SubgraphMapping, len(s.mappings))
	copy(mappings, s.mappings)
	return mappings
}

func (s *search) run() {
	p := s.pattern.NumberOfNodes()
	if p == 0 {
		s.mappings = append(s.mappings, newMapping(nil, make([]int, s.pattern.NumberOfEdges())))
		return
	}
	if s.target.NumberOfNodes() < p {
		return
	}
	if !s.approximate && !fastgraph.DegreesCover(s.target, s.pattern) {
		return
	}
	s.order = patternOrder(s.pattern)
	s.links = s.backLinks()
	cands := s.candidates()
	if cands == nil {
		return
	}
	mapping := make([]int, p)
	used := make([]bool, s.target.NumberOfNodes())
	next := make([]int, p)
	missing := make([]int, p+1)
	for i := range mapping {
		mapping[i] = -1
	}
	depth := 0
	for depth >= 0 {
		if depth == p {
			s.record(mapping)
			depth--
			continue
		}
		u := s.order[depth]
		if t := mapping[u]; t != -1 {
			used[t] = false
			mapping[u] = -1
		}
		found := false
		for next[depth] < len(cands[u]) {
			t := cands[u][next[depth]]
			next[depth]++
			if used[t] {
				continue
			}
			mapping[u] = t
			m, ok := s.extend(depth, mapping)
			if !ok || missing[depth]+m > s.maxMissing {
				mapping[u] = -1
				continue
			}
			missing[depth+1] = missing[depth] + m
			used[t] = true
			found = true
			break
		}
		if found {
			depth++
		} else {
			next[depth] = 0
			depth--
		}
	}
}

func (s *search) candidates() [][]int {
	t, p := s.target, s.pattern
	cands := make([][]int, p.NumberOfNodes())
	for u := range cands {
		for v := 0; v < t.NumberOfNodes(); v++ {
			if s.nodeCmp.CompareNodes(v, u) != Equal {
				continue
			}
			if !s.approximate {
				if t.NodeDegree(v) < p.NodeDegree(u) || t.SelfLoops(v) < p.SelfLoops(u) {
					continue
				}
				if p.Directed() && (t.NodeInDegree(v) < p.NodeInDegree(u) || t.NodeOutDegree(v) < p.NodeOutDegree(u)) {
					continue
				}
			}
			cands[u] = append(cands[u], v)
		}
		if len(cands[u]) == 0 {
			return nil
		}
	}
	return cands
}

// backLinks groups, for every position of the order, the pattern edges
// that connect the node at that position to itself or to earlier nodes.
func (s *search) backLinks() [][]backLink {
	p := s.pattern
	position := make([]int, p.NumberOfNodes())
	for i, u := range s.order {
		position[u] = i
	}
	links := make([][]backLink, len(s.order))
	for i, u := range s.order {
		idx := make(map[[2]int]int)
		add := func(other int, out bool, e int) {
			key := [2]int{other, 0}
			if out {
				key[1] = 1
			}
			if j, has := idx[key]; has {
				links[i][j].edges = append(links[i][j].edges, e)
				return
			}
			idx[key] = len(links[i])
			links[i] = append(links[i], backLink{other: other, out: out, edges: []int{e}})
		}
		p.VisitConnections(u, fastgraph.Out, func(v, e int) {
			if v == u || position[v] < i {
				add(v, p.Directed(), e)
			}
		})
		p.VisitConnections(u, fastgraph.In, func(v, e int) {
			if v != u && position[v] < i {
				add(v, false, e)
			}
		})
	}
	return links
}

// hosts lists the target edges that could host the pattern edges of link
// given the current mapping.
func (s *search) hosts(u int, l backLink, mapping []int) []int {
	t := s.target
	tu, tw := mapping[u], mapping[l.other]
	switch {
	case l.other == u:
		return t.EdgesBetweenDirected(tu, tu)
	case !t.Directed():
		return t.EdgesBetween(tu, tw)
	case l.out:
		return t.EdgesBetweenDirected(tu, tw)
	default:
		return t.EdgesBetweenDirected(tw, tu)
	}
}

// extend checks the pattern edges closed by assigning the node at depth.
// It returns the number of those edges that cannot be hosted; exact
// searches fail on the first one.
func (s *search) extend(depth int, mapping []int) (int, bool) {
	u := s.order[depth]
	missing := 0
	for _, l := range s.links[depth] {
		hosts := s.hosts(u, l, mapping)
		if !s.approximate && len(hosts) < len(l.edges) {
			return 0, false
		}
		s.fillGroup(&s.group, l.edges, hosts)
		m := s.group.maxMatching(nil)
		if m < len(l.edges) {
			if !s.approximate {
				return 0, false
			}
			missing += len(l.edges) - m
		}
	}
	return missing, true
}

func (s *search) record(mapping []int) {
	if s.approximate {
		s.recordBest(mapping)
		return
	}
	edges := make([]int, s.pattern.NumberOfEdges())
	var groups []edgeGroup
	for depth, links := range s.links {
		u := s.order[depth]
		for _, l := range links {
			var g edgeGroup
			s.fillGroup(&g, l.edges, s.hosts(u, l, mapping))
			groups = append(groups, g)
		}
	}
	choices := make([][][]int, len(groups))
	for i := range groups {
		choices[i] = groups[i].assignments()
		if len(choices[i]) == 0 {
			return
		}
	}
	// odometer over the per group choices
	pick := make([]int, len(groups))
	for {
		for i, g := range groups {
			for k, pe := range g.pattern {
				edges[pe] = choices[i][pick[i]][k]
			}
		}
		s.mappings = append(s.mappings, newMapping(mapping, edges))
		i := len(pick) - 1
		for ; i >= 0; i-- {
			pick[i]++
			if pick[i] < len(choices[i]) {
				break
			}
			pick[i] = 0
		}
		if i < 0 {
			return
		}
	}
}

// recordBest keeps one mapping per node assignment using a maximum
// matching in every edge group.
func (s *search) recordBest(mapping []int) {
	edges := make([]int, s.pattern.NumberOfEdges())
	for depth, links := range s.links {
		u := s.order[depth]
		for _, l := range links {
			var g edgeGroup
			s.fillGroup(&g, l.edges, s.hosts(u, l, mapping))
			assign := make([]int, len(l.edges))
			g.maxMatching(assign)
			for k, pe := range l.edges {
				edges[pe] = assign[k]
			}
		}
	}
	s.mappings = append(s.mappings, newMapping(mapping, edges))
}
