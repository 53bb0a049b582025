package generation

import "github.com/zyedidia/generic/mapset"

type horizonItem struct {
	coords RoomCoords
	depth  int
}

// EnsureNeighborsGenerated fills in the generation horizon around coords.
// Every room fewer than radius door hops away gets its walls populated and
// the room behind each of its open doors built, so every room exactly
// radius hops away exists. Each slot is expanded at most once per call.
func (g *RoomGraph) EnsureNeighborsGenerated(coords RoomCoords, radius int) {
	if _, exists := g.rooms[coords]; !exists || radius <= 0 {
		return
	}

	visited := mapset.New[RoomCoords]()
	visited.Put(coords)
	queue := []horizonItem{{coords: coords, depth: 0}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if item.depth >= radius {
			continue
		}

		room := g.rooms[item.coords]
		if !room.doorsInit {
			g.ConfigureDoors(item.coords)
		}

		for i := 0; i < len(room.layout.Doors); i++ {
			door := room.layout.Doors[i]
			if door.Sealed {
				continue
			}
			if !door.TargetGenerated && !g.TryGenerateDoorTarget(item.coords, door.Direction) {
				continue
			}
			if visited.Has(door.Target) {
				continue
			}
			visited.Put(door.Target)
			queue = append(queue, horizonItem{coords: door.Target, depth: item.depth + 1})
		}
	}
}
