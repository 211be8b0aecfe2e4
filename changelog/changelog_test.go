package changelog_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/waypointlabs/wayfarer/changelog"
	"github.com/waypointlabs/wayfarer/costmodel"
)

func TestDrainIsAtomicAndClears(t *testing.T) {
	l := changelog.New[string]()
	l.Append(changelog.Change[string]{From: "a", To: "b", OldCost: 1, NewCost: 2})
	l.Append(changelog.Change[string]{From: "b", To: "a", OldCost: 1, NewCost: 2})
	require.Equal(t, 2, l.Len())

	batch := l.Drain()
	require.Len(t, batch.Changes, 2)
	require.NotEqual(t, batch.ID.String(), "")
	require.Equal(t, 0, l.Len())

	empty := l.Drain()
	require.Empty(t, empty.Changes)
	require.NotEqual(t, batch.ID, empty.ID)
}

func TestConcurrentAppend(t *testing.T) {
	l := changelog.New[int]()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Append(changelog.Change[int]{From: i, To: i + 1, OldCost: costmodel.Zero, NewCost: costmodel.Cost(i)})
		}(i)
	}
	wg.Wait()
	require.Equal(t, 100, l.Len())
}
