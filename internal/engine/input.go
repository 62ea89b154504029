package engine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ParseWaypoints reads whitespace-separated integers in (x, y) pairs until EOF.
func ParseWaypoints(r io.Reader) ([]Waypoint, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var coords []int
	for sc.Scan() {
		n, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", len(coords)+1, err)
		}
		coords = append(coords, n)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading waypoints: %w", err)
	}
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("odd number of coordinates (%d)", len(coords))
	}

	waypoints := make([]Waypoint, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		waypoints = append(waypoints, Waypoint{X: coords[i], Y: coords[i+1]})
	}
	return waypoints, nil
}
