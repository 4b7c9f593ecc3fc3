package system

import (
	"container/heap"
	"math"
)

type cell struct {
	x int
	y int
}

// navGrid is a uniform occupancy grid over the level bounds.
type navGrid struct {
	size    float64
	w       int
	h       int
	blocked []bool
}

func newNavGrid(width, height, size float64) *navGrid {
	gw := int(math.Ceil(width / size))
	gh := int(math.Ceil(height / size))
	if gw <= 0 || gh <= 0 {
		return nil
	}
	return &navGrid{size: size, w: gw, h: gh, blocked: make([]bool, gw*gh)}
}

// block marks every cell overlapping the rectangle.
func (g *navGrid) block(minX, minY, maxX, maxY float64) {
	x0, y0 := g.clampCell(minX, minY)
	x1, y1 := g.clampCell(maxX-0.001, maxY-0.001)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.blocked[y*g.w+x] = true
		}
	}
}

func (g *navGrid) clampCell(x, y float64) (int, int) {
	gx := int(math.Floor(x / g.size))
	gy := int(math.Floor(y / g.size))
	gx = min(max(gx, 0), g.w-1)
	gy = min(max(gy, 0), g.h-1)
	return gx, gy
}

func (g *navGrid) cellAt(x, y float64) cell {
	gx, gy := g.clampCell(x, y)
	return cell{x: gx, y: gy}
}

func (g *navGrid) center(c cell) (float64, float64) {
	half := g.size * 0.5
	return float64(c.x)*g.size + half, float64(c.y)*g.size + half
}

func (g *navGrid) isBlocked(c cell) bool {
	return g.blocked[c.y*g.w+c.x]
}

// path runs A* from start to goal with 4-connectivity. The result includes
// both endpoints and is nil when the goal is unreachable.
func (g *navGrid) path(start, goal cell) []cell {
	if g.isBlocked(start) || g.isBlocked(goal) {
		return nil
	}

	n := g.w * g.h
	cameFrom := make([]int, n)
	gScore := make([]float64, n)
	for i := range cameFrom {
		cameFrom[i] = -1
		gScore[i] = math.Inf(1)
	}
	startIdx := start.y*g.w + start.x
	goalIdx := goal.y*g.w + goal.x
	gScore[startIdx] = 0

	open := &openSet{}
	heap.Init(open)
	heap.Push(open, &openItem{pos: start, f: manhattan(start, goal)})

	for open.Len() > 0 {
		cur := heap.Pop(open).(*openItem).pos
		curIdx := cur.y*g.w + cur.x
		if curIdx == goalIdx {
			return reconstruct(cameFrom, g.w, startIdx, goalIdx)
		}
		for _, nb := range g.neighbors(cur) {
			idx := nb.y*g.w + nb.x
			if g.blocked[idx] {
				continue
			}
			tentative := gScore[curIdx] + 1
			if tentative < gScore[idx] {
				cameFrom[idx] = curIdx
				gScore[idx] = tentative
				heap.Push(open, &openItem{pos: nb, f: tentative + manhattan(nb, goal)})
			}
		}
	}
	return nil
}

func (g *navGrid) neighbors(p cell) []cell {
	out := make([]cell, 0, 4)
	if p.x > 0 {
		out = append(out, cell{x: p.x - 1, y: p.y})
	}
	if p.x < g.w-1 {
		out = append(out, cell{x: p.x + 1, y: p.y})
	}
	if p.y > 0 {
		out = append(out, cell{x: p.x, y: p.y - 1})
	}
	if p.y < g.h-1 {
		out = append(out, cell{x: p.x, y: p.y + 1})
	}
	return out
}

func reconstruct(cameFrom []int, gridW, startIdx, goalIdx int) []cell {
	if startIdx == goalIdx {
		return []cell{{x: startIdx % gridW, y: startIdx / gridW}}
	}
	if cameFrom[goalIdx] == -1 {
		return nil
	}

	path := make([]cell, 0, 32)
	for cur := goalIdx; cur != -1; cur = cameFrom[cur] {
		path = append(path, cell{x: cur % gridW, y: cur / gridW})
		if cur == startIdx {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func manhattan(a, b cell) float64 {
	return math.Abs(float64(a.x-b.x)) + math.Abs(float64(a.y-b.y))
}

type openItem struct {
	pos   cell
	f     float64
	index int
}

type openSet []*openItem

func (o openSet) Len() int           { return len(o) }
func (o openSet) Less(i, j int) bool { return o[i].f < o[j].f }
func (o openSet) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}
func (o *openSet) Push(x any) {
	item := x.(*openItem)
	item.index = len(*o)
	*o = append(*o, item)
}
func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*o = old[:n-1]
	return item
}
