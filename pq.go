package gridplan

type queueItem struct {
	index        CellIndex
	gScore       float64
	hScore       float64
	fCost        float64
	indexInQueue int
}

type priorityQueue []*queueItem

func (queue priorityQueue) Len() int { return len(queue) }

// Lower f wins; on equal f the entry closer to the target as the crow flies
// wins, which fixes the expansion order among equally good candidates.
func (queue priorityQueue) Less(i, j int) bool {
	if queue[i].fCost != queue[j].fCost {
		return queue[i].fCost < queue[j].fCost
	}
	return queue[i].hScore < queue[j].hScore
}

func (queue priorityQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].indexInQueue = i
	queue[j].indexInQueue = j
}

func (queue *priorityQueue) Push(x any) {
	item := x.(*queueItem)
	item.indexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *priorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]
	return item
}
