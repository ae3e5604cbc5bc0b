package network

import (
	"sort"
	"sync"
)

// MaxRecentRTTs is the number of round trips the ping estimate is taken over.
const MaxRecentRTTs = 10

// rttTracker keeps the most recent round trip times in milliseconds.
type rttTracker struct {
	lock       sync.Mutex
	recentRTTs []int64
}

func (t *rttTracker) add(rtt int64) {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.recentRTTs = append(t.recentRTTs, rtt)
	if len(t.recentRTTs) > MaxRecentRTTs {
		t.recentRTTs = t.recentRTTs[len(t.recentRTTs)-MaxRecentRTTs:]
	}
}

// ping returns the mean of the recent RTTs with outliers removed.
func (t *rttTracker) ping() float64 {
	t.lock.Lock()
	defer t.lock.Unlock()
	rtts := removeOutlierRTTs(t.recentRTTs)
	if len(rtts) == 0 {
		return 0
	}
	var sum int64
	for _, rtt := range rtts {
		sum += rtt
	}
	return float64(sum) / float64(len(rtts))
}

// removeOutlierRTTs removes outler RTTs from the recent RTTs.
// An outlier RTT is defined as an RTT that is greater than 2 times the median RTT
// and is also greater than 20ms.
func removeOutlierRTTs(recentRTTs []int64) []int64 {
	result := make([]int64, 0, len(recentRTTs))
	medianRTT := medianRTT(recentRTTs)
	for _, rtt := range recentRTTs {
		if rtt > 2*medianRTT && rtt > 20 {
			continue
		}
		result = append(result, rtt)
	}
	return result
}

// medianRTT returns the median RTT from a slice of RTTs.
func medianRTT(recentRTTs []int64) int64 {
	if len(recentRTTs) == 0 {
		return 0
	}
	sortedRTTs := make([]int64, len(recentRTTs))
	copy(sortedRTTs, recentRTTs)
	sort.Slice(sortedRTTs, func(i, j int) bool {
		return sortedRTTs[i] < sortedRTTs[j]
	})
	if len(sortedRTTs)%2 == 0 {
		return (sortedRTTs[len(sortedRTTs)/2-1] + sortedRTTs[len(sortedRTTs)/2]) / 2
	}
	return sortedRTTs[len(sortedRTTs)/2]
}
