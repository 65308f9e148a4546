package tilescroll

import (
	"errors"
	"image"
	"log"
	"time"
)

const spritesDuration = 10 * time.Second

var errNoStages = errors.New("tilescroll: show has no stages")

// Stage is one renderer in a Show and how long it is shown for. A zero
// Duration shows the stage forever.
type Stage struct {
	Renderer *Renderer
	Duration time.Duration
}

// Show plays a sequence of stages, advancing the current renderer by the
// ticks due on its clock.
type Show struct {
	stages  []Stage
	current int
	clock   *Clock
	logger  *log.Logger
}

// NewShow returns a show of the given stages starting at now.
func NewShow(now time.Time, logger *log.Logger, stages ...Stage) (*Show, error) {
	if len(stages) == 0 {
		return nil, errNoStages
	}
	for _, s := range stages {
		if s.Renderer == nil {
			return nil, errNoStages
		}
	}
	return &Show{
		stages: stages,
		clock:  NewClock(stages[0].Renderer.Config().Tick, now),
		logger: orDiscard(logger),
	}, nil
}

// DefaultShow returns the sprite sheets for ten seconds followed by the
// conveyor animation. The assets must have been loaded for both.
func DefaultShow(now time.Time, assets *Assets, logger *log.Logger) (*Show, error) {
	sprites, err := NewRenderer(SpritesConfig(), assets, logger)
	if err != nil {
		return nil, err
	}
	conveyor, err := NewRenderer(ConveyorConfig(), assets, logger)
	if err != nil {
		return nil, err
	}
	return NewShow(now, logger, Stage{sprites, spritesDuration}, Stage{Renderer: conveyor})
}

// Update moves to the next stage if the current one has run its course and
// otherwise advances the current renderer.
func (s *Show) Update(now time.Time) {
	stage := s.stages[s.current]
	if stage.Duration > 0 && s.current+1 < len(s.stages) && s.clock.Elapsed(now) > stage.Duration {
		s.current++
		next := s.stages[s.current].Renderer
		next.Seek(0)
		s.clock = NewClock(next.Config().Tick, now)
		s.logger.Printf("Switching to %s\n", next.Config().Mode)
		return
	}

	if n := s.clock.Due(now); n > 0 {
		stage.Renderer.Advance(n)
	}
}

// Current returns the renderer of the current stage.
func (s *Show) Current() *Renderer {
	return s.stages[s.current].Renderer
}

// Bounds returns the largest raster bounds of any stage.
func (s *Show) Bounds() image.Rectangle {
	var b image.Rectangle
	for _, stage := range s.stages {
		b = b.Union(stage.Renderer.Bounds())
	}
	return b
}
