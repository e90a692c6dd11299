package tube

import (
	"container/heap"
	"sort"

	"tubemap.nanjingmetro.org/internal/mapdoc"
	"tubemap.nanjingmetro.org/internal/models"
)

// Alternative route enumeration bounds: paths may cost at most two extra
// segments over the optimum, and at most maxRoutes alternatives are returned.
const (
	allRoutesSlack = 2 * segmentCost
	maxRoutes      = 8
)

type queueItem struct {
	id   string
	dist int
}

type priorityQueue []queueItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x any)         { *pq = append(*pq, x.(queueItem)) }
func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// ShortestRoute resolves both endpoint names case-insensitively and runs
// Dijkstra from every id of the origin name at once, so the search starts on
// whichever line avoids a pointless first transfer. Results are cached.
func (e *Engine) ShortestRoute(from, to string) (models.Route, error) {
	fromIDs, toIDs, err := e.resolveEndpoints(from, to)
	if err != nil {
		return models.Route{}, err
	}

	if cached, ok := e.routes.get(from, to); ok {
		return cached, nil
	}

	route, ok := e.dijkstra(fromIDs, toIDs)
	if !ok {
		// Cannot happen on a linked document: every station is on a line
		// and every line is a connected sequence.
		return models.Route{}, &InvalidStationError{Station: to}
	}

	e.routes.set(from, to, route)
	return route, nil
}

// AllRoutes enumerates alternative simple routes between two station names,
// cheapest first. The walk never revisits a station name, never exceeds the
// optimal cost by more than allRoutesSlack, and stops after maxRoutes paths.
func (e *Engine) AllRoutes(from, to string) ([]models.Route, error) {
	fromIDs, toIDs, err := e.resolveEndpoints(from, to)
	if err != nil {
		return nil, err
	}

	shortest, ok := e.dijkstra(fromIDs, toIDs)
	if !ok {
		return nil, &InvalidStationError{Station: to}
	}

	budget := shortest.Cost + allRoutesSlack
	targets := make(map[string]bool, len(toIDs))
	for _, id := range toIDs {
		targets[id] = true
	}

	var routes []models.Route
	seen := make(map[string]bool)

	var walk func(path []pathStep, visited map[string]bool, cost int)
	walk = func(path []pathStep, visited map[string]bool, cost int) {
		if len(routes) >= maxRoutes {
			return
		}
		current := path[len(path)-1].id

		if targets[current] {
			route := e.buildRoute(path, cost)
			key := routeKey(route)
			if !seen[key] {
				seen[key] = true
				routes = append(routes, route)
			}
			return
		}

		for _, next := range e.adjacency[current] {
			nameKey := e.stationNameKey(next.to)
			if visited[nameKey] && !next.transfer {
				continue
			}
			if next.transfer && visited["t:"+next.to] {
				continue
			}
			if cost+next.cost > budget {
				continue
			}

			if next.transfer {
				visited["t:"+next.to] = true
			} else {
				visited[nameKey] = true
			}
			walk(append(path, pathStep{id: next.to, via: next}), visited, cost+next.cost)
			if next.transfer {
				delete(visited, "t:"+next.to)
			} else {
				delete(visited, nameKey)
			}
		}
	}

	for _, start := range fromIDs {
		visited := map[string]bool{e.stationNameKey(start): true}
		walk([]pathStep{{id: start}}, visited, 0)
	}

	sort.SliceStable(routes, func(i, j int) bool { return routes[i].Cost < routes[j].Cost })
	return routes, nil
}

func (e *Engine) resolveEndpoints(from, to string) (fromIDs, toIDs []string, err error) {
	fromIDs = e.doc.StationIDsByName(from)
	if len(fromIDs) == 0 {
		return nil, nil, &InvalidStationError{Station: from}
	}
	toIDs = e.doc.StationIDsByName(to)
	if len(toIDs) == 0 {
		return nil, nil, &InvalidStationError{Station: to}
	}
	return fromIDs, toIDs, nil
}

type pathStep struct {
	id  string
	via edge // zero value for the origin step
}

// dijkstra runs a multi-source shortest-path search from every origin id and
// stops as soon as any target id is settled.
func (e *Engine) dijkstra(fromIDs, toIDs []string) (models.Route, bool) {
	targets := make(map[string]bool, len(toIDs))
	for _, id := range toIDs {
		targets[id] = true
	}

	dist := make(map[string]int, len(e.adjacency))
	prev := make(map[string]pathStep, len(e.adjacency))
	settled := make(map[string]bool, len(e.adjacency))

	pq := make(priorityQueue, 0, len(fromIDs))
	for _, id := range fromIDs {
		dist[id] = 0
		heap.Push(&pq, queueItem{id: id, dist: 0})
	}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(queueItem)
		if settled[item.id] {
			continue
		}
		settled[item.id] = true

		if targets[item.id] {
			return e.buildRoute(reconstruct(item.id, fromIDs, prev), item.dist), true
		}

		for _, next := range e.adjacency[item.id] {
			candidate := item.dist + next.cost
			if current, known := dist[next.to]; !known || candidate < current {
				dist[next.to] = candidate
				prev[next.to] = pathStep{id: item.id, via: next}
				heap.Push(&pq, queueItem{id: next.to, dist: candidate})
			}
		}
	}

	return models.Route{}, false
}

func reconstruct(target string, fromIDs []string, prev map[string]pathStep) []pathStep {
	origins := make(map[string]bool, len(fromIDs))
	for _, id := range fromIDs {
		origins[id] = true
	}

	var path []pathStep
	current := target
	for {
		step, ok := prev[current]
		if !ok {
			break
		}
		path = append([]pathStep{{id: current, via: step.via}}, path...)
		current = step.id
		if origins[current] {
			break
		}
	}
	return append([]pathStep{{id: current}}, path...)
}

func (e *Engine) buildRoute(path []pathStep, cost int) models.Route {
	route := models.Route{
		Legs: make([]models.RouteLeg, 0, len(path)),
		Cost: cost,
	}

	for i, step := range path {
		station, _ := e.doc.StationByID(step.id)
		leg := models.RouteLeg{Station: station}
		if i > 0 {
			leg.LineID = step.via.lineID
			leg.Transfer = step.via.transfer
			if step.via.transfer {
				route.Transfers++
			}
		}
		route.Legs = append(route.Legs, leg)
	}

	return route
}

func (e *Engine) stationNameKey(id string) string {
	station, _ := e.doc.StationByID(id)
	return mapdoc.NameKey(station.Name)
}

func routeKey(route models.Route) string {
	key := ""
	for _, name := range route.StationNames() {
		key += name + "|"
	}
	return key
}
