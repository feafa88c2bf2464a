package router

const (
	heapD               = 2
	heapBranchingFactor = 1 << heapD
)

// color is the traversal state of a vertex:
// white is unvisited, gray is queued, black is settled.
type color int

const (
	white color = iota
	black
	gray
)

type heapItem struct {
	priority float64
	vertex   VertexID
}

// vertexHeap is a min heap with four children per node, holding the
// frontier of a Dijkstra search. Children of slot i start at 4i+1.
type vertexHeap struct {
	// per vertex: the color for white and black vertices, else the heap
	// slot shifted by 2
	index []int
	items []heapItem
}

func newVertexHeap(vertexCount int) *vertexHeap {
	return &vertexHeap{
		index: make([]int, vertexCount),
		items: make([]heapItem, 0, vertexCount),
	}
}

func (h *vertexHeap) move(item heapItem, to int) {
	h.index[item.vertex] = to + 2
	h.items[to] = item
}

func (h *vertexHeap) up(index int, item heapItem) {
	for index > 0 {
		parentIndex := (index - 1) >> heapD
		parent := h.items[parentIndex]
		if parent.priority <= item.priority {
			break
		}
		h.move(parent, index)
		index = parentIndex
	}
	h.move(item, index)
}

func (h *vertexHeap) down(index int, item heapItem) {
	for {
		child := (index << heapD) + 1
		if child >= len(h.items) {
			break
		}
		min := child
		last := child + heapBranchingFactor
		if last > len(h.items) {
			last = len(h.items)
		}
		for i := child + 1; i < last; i++ {
			if h.items[i].priority < h.items[min].priority {
				min = i
			}
		}
		if h.items[min].priority >= item.priority {
			break
		}
		h.move(h.items[min], index)
		index = min
	}
	h.move(item, index)
}

func (h *vertexHeap) empty() bool { return len(h.items) == 0 }

func (h *vertexHeap) color(v VertexID) color {
	i := h.index[v]
	if i < 2 {
		return color(i)
	}
	return gray
}

// priority is only valid for queued vertices.
func (h *vertexHeap) priority(v VertexID) float64 {
	return h.items[h.index[v]-2].priority
}

// push queues a vertex that has never been seen.
func (h *vertexHeap) push(v VertexID, prio float64) {
	h.items = append(h.items, heapItem{})
	h.up(len(h.items)-1, heapItem{priority: prio, vertex: v})
}

// decreaseKey moves a queued vertex up after its key dropped to prio.
func (h *vertexHeap) decreaseKey(v VertexID, prio float64) {
	h.up(h.index[v]-2, heapItem{priority: prio, vertex: v})
}

// pop settles the vertex with the smallest key. The heap must not be empty.
func (h *vertexHeap) pop() (VertexID, float64) {
	root := h.items[0]
	h.index[root.vertex] = int(black)
	last := h.items[len(h.items)-1]
	h.items = h.items[:len(h.items)-1]
	if len(h.items) > 0 {
		h.down(0, last)
	}
	return root.vertex, root.priority
}

// update queues v or lowers its key. It reports whether anything changed;
// black vertices are never touched.
func (h *vertexHeap) update(v VertexID, prio float64) bool {
	switch h.color(v) {
	case white:
		h.push(v, prio)
		return true
	case gray:
		if prio < h.priority(v) {
			h.decreaseKey(v, prio)
			return true
		}
	}
	return false
}
