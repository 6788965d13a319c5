// Package cfen implements a compact single-line text serialization of a
// cubie.Cube (cube FEN): a dense, positional, ASCII form suitable for
// passing cube state around the CLI and web surfaces.
package cfen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/behrlich/fmc-cube/internal/cubie"
)

// String renders c as "corners/edges": eight "id:orientation" corner
// fields, a slash, then twelve "id:udfbrl" edge fields, where udfbrl is
// the three orientation flags as consecutive digits; fields on each side
// are comma-separated. Orientation flags are rendered as 1/0 rather than
// true/false to keep the form terse.
func String(c cubie.Cube) string {
	var corners []string
	for _, co := range c.Corners {
		corners = append(corners, fmt.Sprintf("%d:%d", co.ID, co.Orientation))
	}
	var edges []string
	for _, e := range c.Edges {
		edges = append(edges, fmt.Sprintf("%d:%s", e.ID, flags(e)))
	}
	return strings.Join(corners, ",") + "/" + strings.Join(edges, ",")
}

func flags(e cubie.Edge) string {
	b := func(v bool) string {
		if v {
			return "1"
		}
		return "0"
	}
	return b(e.OrientedUD) + b(e.OrientedFB) + b(e.OrientedRL)
}

// Parse reverses String, reporting an error for anything that isn't a
// well-formed 8-corner/12-edge CFEN string.
func Parse(s string) (cubie.Cube, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return cubie.Cube{}, fmt.Errorf("cfen: missing corner/edge separator")
	}
	cornerFields := strings.Split(parts[0], ",")
	edgeFields := strings.Split(parts[1], ",")
	if len(cornerFields) != 8 {
		return cubie.Cube{}, fmt.Errorf("cfen: expected 8 corners, got %d", len(cornerFields))
	}
	if len(edgeFields) != 12 {
		return cubie.Cube{}, fmt.Errorf("cfen: expected 12 edges, got %d", len(edgeFields))
	}

	var c cubie.Cube
	for i, f := range cornerFields {
		id, orientation, ok := strings.Cut(f, ":")
		if !ok {
			return cubie.Cube{}, fmt.Errorf("cfen: malformed corner field %q", f)
		}
		idVal, err := strconv.Atoi(id)
		if err != nil {
			return cubie.Cube{}, fmt.Errorf("cfen: bad corner id %q: %w", id, err)
		}
		oVal, err := strconv.Atoi(orientation)
		if err != nil {
			return cubie.Cube{}, fmt.Errorf("cfen: bad corner orientation %q: %w", orientation, err)
		}
		c.Corners[i] = cubie.Corner{ID: uint8(idVal), Orientation: uint8(oVal)}
	}
	for i, f := range edgeFields {
		id, flagStr, ok := strings.Cut(f, ":")
		if !ok {
			return cubie.Cube{}, fmt.Errorf("cfen: malformed edge field %q", f)
		}
		idVal, err := strconv.Atoi(id)
		if err != nil {
			return cubie.Cube{}, fmt.Errorf("cfen: bad edge id %q: %w", id, err)
		}
		if len(flagStr) != 3 {
			return cubie.Cube{}, fmt.Errorf("cfen: bad edge orientation flags %q", flagStr)
		}
		c.Edges[i] = cubie.Edge{
			ID:         uint8(idVal),
			OrientedUD: flagStr[0] == '1',
			OrientedFB: flagStr[1] == '1',
			OrientedRL: flagStr[2] == '1',
		}
	}
	return c, nil
}
