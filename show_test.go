package tilescroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShow(t *testing.T) {
	assets := testAssets(t)
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	s, err := DefaultShow(start, assets, nil)
	require.NoError(t, err)

	assert.Equal(t, 512, s.Bounds().Dx())
	assert.Equal(t, 256, s.Bounds().Dy())
	assert.Equal(t, ModeSprites, s.Current().Config().Mode)

	s.Update(start.Add(5 * time.Second))
	assert.Equal(t, ModeSprites, s.Current().Config().Mode)

	s.Update(start.Add(spritesDuration))
	assert.Equal(t, ModeSprites, s.Current().Config().Mode)

	switched := start.Add(spritesDuration + time.Millisecond)
	s.Update(switched)
	assert.Equal(t, ModeConveyor, s.Current().Config().Mode)
	assert.Equal(t, 0, s.Current().Frame())

	s.Update(switched.Add(250 * time.Millisecond))
	assert.Equal(t, 2, s.Current().Frame())

	s.Update(switched.Add(5 * time.Second))
	assert.Equal(t, conveyorLast, s.Current().Frame())

	// The last stage runs forever
	s.Update(switched.Add(time.Hour))
	assert.Equal(t, ModeConveyor, s.Current().Config().Mode)
}

func TestNewShowErrors(t *testing.T) {
	_, err := NewShow(time.Now(), nil)
	assert.Equal(t, errNoStages, err)

	_, err = NewShow(time.Now(), nil, Stage{Duration: time.Second})
	assert.Equal(t, errNoStages, err)

	_, err = DefaultShow(time.Now(), &Assets{}, nil)
	assert.Equal(t, errMissingAssets, err)
}
