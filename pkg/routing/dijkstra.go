package routing

import (
	"github.com/adhika-w/trafficx/pkg"
	da "github.com/adhika-w/trafficx/pkg/datastructure"
	"github.com/adhika-w/trafficx/pkg/util"
)

// Dijkstra runs single-source shortest-path search over one adjacency
// structure. Every search allocates its own labels and frontier, so one
// value must not be shared between concurrent calls; build a new one per
// query instead.
type Dijkstra struct {
	adj Adjacency

	dist    map[string]float64
	prev    map[string]string
	settled map[string]bool

	pq      *da.MinHeap[string]
	heapRef map[string]*da.PriorityQueueNode[string]

	numSettledNodes int
}

func NewDijkstra(adj Adjacency) *Dijkstra {
	return &Dijkstra{
		adj:     adj,
		dist:    make(map[string]float64, len(adj)),
		prev:    make(map[string]string, len(adj)),
		settled: make(map[string]bool, len(adj)),
		pq:      da.NewFourAryHeap[string](),
		heapRef: make(map[string]*da.PriorityQueueNode[string], len(adj)),
	}
}

// ShortestPath computes the minimum-cost path from start to destination.
// It returns the node labels start..destination inclusive and the total
// cost, or (empty, -1) when the destination is unreachable or the start
// label has no adjacency entry at all. Edge weights are assumed
// non-negative; negative weights are out of contract.
func (us *Dijkstra) ShortestPath(start, destination string) ([]string, int) {
	if _, ok := us.adj[start]; !ok {
		return []string{}, pkg.UNREACHABLE_COST
	}

	us.pq.Preallocate(len(us.adj))

	sNode := da.NewPriorityQueueNode(0, start)
	us.pq.Insert(sNode)
	us.dist[start] = 0
	us.heapRef[start] = sNode

	for !us.pq.IsEmpty() {
		minNode, err := us.pq.ExtractMin()
		if err != nil {
			break
		}
		u := minNode.GetItem()

		if us.settled[u] {
			continue
		}
		us.settled[u] = true
		us.numSettledNodes++

		if u == destination {
			return us.reconstructPath(start, destination), int(minNode.GetRank())
		}

		us.relax(u)
	}

	return []string{}, pkg.UNREACHABLE_COST
}

// relax scans the neighbours of the freshly settled node u and improves
// their tentative distances.
func (us *Dijkstra) relax(u string) {
	for _, neighbor := range us.adj[u] {
		v := neighbor.Node
		if us.settled[v] {
			continue
		}

		newDist := us.dist[u] + float64(neighbor.Weight)

		vNode, labelled := us.heapRef[v]
		if labelled && newDist >= us.dist[v] {
			continue
		}

		us.dist[v] = newDist
		us.prev[v] = u

		if labelled {
			us.pq.DecreaseKey(vNode, newDist)
		} else {
			vNode = da.NewPriorityQueueNode(newDist, v)
			us.heapRef[v] = vNode
			us.pq.Insert(vNode)
		}
	}
}

// reconstructPath walks the predecessor links back from the destination.
func (us *Dijkstra) reconstructPath(start, destination string) []string {
	path := []string{destination}
	cur := destination
	for cur != start {
		p, ok := us.prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	return util.ReverseG(path)
}

// ShortestPath is the one-shot form: it builds a fresh search state over
// adj and runs a single query.
func ShortestPath(adj Adjacency, start, destination string) ([]string, int) {
	return NewDijkstra(adj).ShortestPath(start, destination)
}
