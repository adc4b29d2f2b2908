package maze

// Stats summarizes the shape of a carved maze.
type Stats struct {
	Cells           int `json:"cells" yaml:"cells"`
	Passages        int `json:"passages" yaml:"passages"`
	DeadEnds        int `json:"dead_ends" yaml:"dead_ends"`
	LongestCorridor int `json:"longest_corridor" yaml:"longest_corridor"`
}

// Summarize counts passages, dead ends and the longest straight corridor.
// Only east and north openings are counted so each passage is seen once.
func Summarize(g *Grid) Stats {
	s := Stats{Cells: g.Size()}

	for c := range g.Coords() {
		cell := g.cell(c)
		if c.X+1 < g.width && !cell.HasWall(East) {
			s.Passages++
		}
		if c.Z+1 < g.depth && !cell.HasWall(North) {
			s.Passages++
		}
		if cell.Openings() == 1 {
			s.DeadEnds++
		}
	}

	// Corridor length is measured in cells along a row or column.
	for z := 0; z < g.depth; z++ {
		run := 1
		for x := 0; x+1 < g.width; x++ {
			if g.cell(C(x, z)).HasWall(East) {
				run = 1
				continue
			}
			run++
			s.LongestCorridor = max(s.LongestCorridor, run)
		}
		s.LongestCorridor = max(s.LongestCorridor, run)
	}
	for x := 0; x < g.width; x++ {
		run := 1
		for z := 0; z+1 < g.depth; z++ {
			if g.cell(C(x, z)).HasWall(North) {
				run = 1
				continue
			}
			run++
			s.LongestCorridor = max(s.LongestCorridor, run)
		}
	}

	return s
}
