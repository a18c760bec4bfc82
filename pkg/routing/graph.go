// Package routing computes minimum-cost paths for emergency vehicles over a
// caller-supplied road network. The network is rebuilt fresh on every call;
// nothing is cached between invocations.
package routing

// Edge is one input road segment. Endpoint labels are the network's primary
// key; an absent label is accepted as the empty-label node (callers are
// expected to validate before submission). Distance and TrafficWeight are
// non-negative by contract.
type Edge struct {
	From          string `json:"from"`
	To            string `json:"to"`
	Distance      int    `json:"distance"`
	TrafficWeight int    `json:"traffic_weight"`
}

// Neighbor is one weighted adjacency entry.
type Neighbor struct {
	Node   string
	Weight int
}

// Adjacency maps every node label to its weighted neighbours.
type Adjacency map[string][]Neighbor

// BuildAdjacency converts an edge list into an undirected adjacency
// structure. Effective weight is distance + traffic weight when useTraffic
// is set, distance alone otherwise. Parallel edges between the same pair
// are all kept; relaxation picks the cheapest. Self-loops are kept too,
// they can never improve a path.
func BuildAdjacency(edges []Edge, useTraffic bool) Adjacency {
	adj := make(Adjacency)

	for _, e := range edges {
		weight := e.Distance
		if useTraffic {
			weight += e.TrafficWeight
		}

		adj[e.From] = append(adj[e.From], Neighbor{Node: e.To, Weight: weight})
		adj[e.To] = append(adj[e.To], Neighbor{Node: e.From, Weight: weight})
	}

	return adj
}
