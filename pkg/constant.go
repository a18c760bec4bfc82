package pkg

const (
	INF_WEIGHT float64 = 1e15

	// UNREACHABLE_COST is the sentinel routing cost paired with an empty path.
	UNREACHABLE_COST = -1
)

const (
	DEBUG = false
)
