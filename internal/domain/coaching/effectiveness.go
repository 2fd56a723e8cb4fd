package coaching

import (
	"sync"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/phase"
)

// effectivenessEntry records how a single exchange landed: the phase it was
// generated in and the sentiment shift measured on the following user message.
type effectivenessEntry struct {
	Phase          phase.Phase
	SentimentDelta int
}

// effectivenessLog is a bounded in-memory ring of recent outcomes, advisory
// only and scoped to the process lifetime. It replaces the unbounded global
// array an earlier variant of this feature used.
type effectivenessLog struct {
	mu      sync.Mutex
	entries []effectivenessEntry
	next    int
	filled  bool
}

func newEffectivenessLog(capacity int) *effectivenessLog {
	if capacity < 1 {
		capacity = 1
	}
	return &effectivenessLog{entries: make([]effectivenessEntry, capacity)}
}

func (l *effectivenessLog) record(p phase.Phase, sentimentDelta int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[l.next] = effectivenessEntry{Phase: p, SentimentDelta: sentimentDelta}
	l.next++
	if l.next == len(l.entries) {
		l.next = 0
		l.filled = true
	}
}

// averageDelta returns the mean sentiment shift observed for a phase, and
// whether any observations exist.
func (l *effectivenessLog) averageDelta(p phase.Phase) (float64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := l.next
	if l.filled {
		count = len(l.entries)
	}

	sum, n := 0, 0
	for i := 0; i < count; i++ {
		if l.entries[i].Phase == p {
			sum += l.entries[i].SentimentDelta
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}
