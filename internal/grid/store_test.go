package grid

import (
	"errors"
	"testing"

	"map-tools/internal/core"
)

func TestRebuildProducesFreshRowMajorTiles(t *testing.T) {
	shapes := []core.Shape{
		{Rows: 1, Cols: 1},
		{Rows: 2, Cols: 3},
		{Rows: 7, Cols: 4, IsHex: true},
		{Rows: 10, Cols: 10},
	}
	for _, shape := range shapes {
		s := NewStore()
		tiles, err := s.Rebuild(shape)
		if err != nil {
			t.Fatalf("%v: rebuild error %v", shape, err)
		}
		if len(tiles) != shape.Rows*shape.Cols {
			t.Fatalf("%v: got %d tiles, want %d", shape, len(tiles), shape.Rows*shape.Cols)
		}
		i := 0
		for row := 0; row < shape.Rows; row++ {
			for col := 0; col < shape.Cols; col++ {
				tile := tiles[i]
				if tile.Coordinate() != core.At(col, row) {
					t.Fatalf("%v: tile %d at %v, want (%d, %d)", shape, i, tile.Coordinate(), col, row)
				}
				if tile.Candidates() != AllCandidates {
					t.Fatalf("%v: tile %v candidates %v", shape, tile.Coordinate(), tile.Candidates())
				}
				if tile.Highlight() != Unselected {
					t.Fatalf("%v: tile %v highlight %v", shape, tile.Coordinate(), tile.Highlight())
				}
				if !tile.Quantum() || tile.Category() != QuantumCategory {
					t.Fatalf("%v: fresh tile should be quantum", shape)
				}
				i++
			}
		}
	}
}

func TestRebuildRejectsInvalidShapeAndKeepsGrid(t *testing.T) {
	s := NewStore()
	if _, err := s.Rebuild(core.Shape{Rows: 2, Cols: 2}); err != nil {
		t.Fatal(err)
	}
	s.Paint(core.At(1, 1), PaintWith(Grass))
	gen := s.Generation()

	for _, bad := range []core.Shape{{Rows: 0, Cols: 2}, {Rows: 2, Cols: -1}} {
		if _, err := s.Rebuild(bad); !errors.Is(err, core.ErrInvalidShape) {
			t.Fatalf("%v: expected ErrInvalidShape, got %v", bad, err)
		}
	}
	if s.Generation() != gen || s.Len() != 4 {
		t.Fatalf("invalid rebuild changed the store: gen %d len %d", s.Generation(), s.Len())
	}
	tile, _ := s.TileAt(core.At(1, 1))
	if terrain, ok := tile.Terrain(); !ok || terrain != Grass {
		t.Fatal("painted tile lost after rejected rebuild")
	}
}

func TestTileAtOutOfBounds(t *testing.T) {
	s := NewStore()
	if _, ok := s.TileAt(core.At(0, 0)); ok {
		t.Fatal("empty store must not find tiles")
	}
	s.Rebuild(core.Shape{Rows: 3, Cols: 2})
	for _, c := range []core.Coordinate{core.At(2, 0), core.At(0, 3), core.At(-1, 0), core.At(0, -5)} {
		if _, ok := s.TileAt(c); ok {
			t.Fatalf("TileAt(%v) should be not found", c)
		}
	}
	tile, ok := s.TileAt(core.At(1, 2))
	if !ok || tile.Coordinate() != core.At(1, 2) {
		t.Fatalf("TileAt(1,2) = %v, %v", tile.Coordinate(), ok)
	}
}

func TestColumnsViewMatchesTiles(t *testing.T) {
	s := NewStore()
	s.Rebuild(core.Shape{Rows: 3, Cols: 4})
	s.Paint(core.At(2, 1), PaintWith(Stone))

	cols := s.Columns()
	if len(cols) != 4 {
		t.Fatalf("got %d columns, want 4", len(cols))
	}
	for x, col := range cols {
		if len(col) != 3 {
			t.Fatalf("column %d has %d tiles, want 3", x, len(col))
		}
		for y, tile := range col {
			if tile.Coordinate() != core.At(x, y) {
				t.Fatalf("columns[%d][%d] holds %v", x, y, tile.Coordinate())
			}
			want, _ := s.TileAt(core.At(x, y))
			if tile != want {
				t.Fatalf("columns[%d][%d] = %+v, tiles view has %+v", x, y, tile, want)
			}
		}
	}
	if cols[2][1].Category() != "stone" {
		t.Fatalf("painted tile not visible through columns view: %v", cols[2][1].Category())
	}
}

func TestPublishedSnapshotsAreNeverMutated(t *testing.T) {
	s := NewStore()
	s.Rebuild(core.Shape{Rows: 2, Cols: 2})
	before := s.Tiles()

	s.Paint(core.At(0, 0), PaintWith(Ocean))
	var st InteractionState
	s.ApplyHighlights(st.WithSelected(core.At(1, 1)))

	if before[0].Candidates() != AllCandidates {
		t.Fatal("paint mutated a previously published snapshot")
	}
	if before[3].Highlight() != Unselected {
		t.Fatal("highlight pass mutated a previously published snapshot")
	}
	cur, _ := s.TileAt(core.At(1, 1))
	if cur.Highlight() != Selected {
		t.Fatal("current snapshot missing highlight")
	}
}

func TestApplyHighlightsReportsChange(t *testing.T) {
	s := NewStore()
	s.Rebuild(core.Shape{Rows: 2, Cols: 2})
	var st InteractionState
	if s.ApplyHighlights(st) {
		t.Fatal("no-op highlight pass reported a change")
	}
	if !s.ApplyHighlights(st.WithHover(core.At(0, 1))) {
		t.Fatal("hover change not reported")
	}
}
