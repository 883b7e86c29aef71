package stream

// mask records which coarse cells are claimed by a streamline.
type mask struct {
	nx, ny int
	cells  []bool
	traj   []int
	cur    int
}

func newMask(nx, ny int) *mask {
	return &mask{nx: nx, ny: ny, cells: make([]bool, nx*ny), cur: -1}
}

func (m *mask) occupied(xm, ym int) bool {
	return m.cells[ym*m.nx+xm]
}

func (m *mask) start(xm, ym int) {
	m.traj = m.traj[:0]
	m.cur = -1
	m.update(xm, ym)
}

// update claims the cell under a moving trajectory. It returns false when
// the cell belongs to another line.
func (m *mask) update(xm, ym int) bool {
	idx := ym*m.nx + xm
	if idx == m.cur {
		return true
	}
	if m.cells[idx] {
		return false
	}
	m.cells[idx] = true
	m.traj = append(m.traj, idx)
	m.cur = idx
	return true
}

func (m *mask) resetStart(xm, ym int) {
	m.cur = ym*m.nx + xm
}

func (m *mask) undo() {
	for _, idx := range m.traj {
		m.cells[idx] = false
	}
	m.traj = m.traj[:0]
}

// seeds enumerates mask cells from the outer boundary spiralling inward.
func seeds(nx, ny int) [][2]int {
	out := make([][2]int, 0, nx*ny)
	xfirst, yfirst := 0, 1
	xlast, ylast := nx-1, ny-1
	x, y := 0, 0
	dir := 0 // right, up, left, down

	for i := 0; i < nx*ny; i++ {
		out = append(out, [2]int{x, y})
		switch dir {
		case 0:
			x++
			if x >= xlast {
				xlast--
				dir = 1
			}
		case 1:
			y++
			if y >= ylast {
				ylast--
				dir = 2
			}
		case 2:
			x--
			if x <= xfirst {
				xfirst++
				dir = 3
			}
		case 3:
			y--
			if y <= yfirst {
				yfirst++
				dir = 0
			}
		}
	}
	return out
}
