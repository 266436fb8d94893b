package llm

import (
	"golang.org/x/sync/semaphore"
)

var (
	IdeaWeight = int64(5)
	IdeaSem    = semaphore.NewWeighted(IdeaWeight)
)
