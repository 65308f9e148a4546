package tilescroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockDue(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewClock(100*time.Millisecond, start)

	tables := []struct {
		after time.Duration
		due   int
	}{
		{-time.Second, 0},
		{50 * time.Millisecond, 0},
		{250 * time.Millisecond, 2},
		{250 * time.Millisecond, 0},
		{299 * time.Millisecond, 0},
		{300 * time.Millisecond, 1},
		{time.Second, 7},
		{900 * time.Millisecond, 0},
	}

	total := 0
	for _, table := range tables {
		due := c.Due(start.Add(table.after))
		assert.Equal(t, table.due, due, "after %s", table.after)
		total += due
	}
	assert.Equal(t, 10, total)
	assert.Equal(t, total, c.Applied())
	assert.Equal(t, time.Second, c.Elapsed(start.Add(time.Second)))

	c.Restart(start.Add(time.Minute))
	assert.Equal(t, 0, c.Applied())
	assert.Equal(t, 0, c.Due(start.Add(time.Minute+50*time.Millisecond)))
	assert.Equal(t, 1, c.Due(start.Add(time.Minute+150*time.Millisecond)))
}

func TestClockStill(t *testing.T) {
	start := time.Now()
	c := NewClock(0, start)
	assert.Equal(t, 0, c.Due(start.Add(time.Hour)))
}
