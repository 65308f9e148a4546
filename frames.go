package tilescroll

import (
	"context"
	"errors"
	"image"
	"log"
	"sort"
	"sync"
)

type job struct {
	index, frame int
}

func generateJobs(ctx context.Context, frames []int) (<-chan job, <-chan error) {
	out := make(chan job)
	errc := make(chan error, 1)

	// Ascending order lets each worker seek forwards
	jobs := make([]job, len(frames))
	for i, f := range frames {
		jobs[i] = job{i, f}
	}
	sort.SliceStable(jobs, func(i, j int) bool { return jobs[i].frame < jobs[j].frame })

	go func() {
		defer close(out)
		defer close(errc)
		for _, j := range jobs {
			select {
			case out <- j:
			case <-ctx.Done():
				errc <- errors.New("render cancelled")
				return
			}
		}
	}()
	return out, errc
}

func frameWorker(ctx context.Context, cfg Config, assets *Assets, in <-chan job, results []*image.RGBA, logger *log.Logger) (<-chan error, error) {
	r, err := NewRenderer(cfg, assets, logger)
	if err != nil {
		return nil, err
	}

	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for j := range in {
			if ctx.Err() != nil {
				errc <- ctx.Err()
				return
			}
			results[j.index] = r.RenderFrame(j.frame)
			logger.Printf("Rendered frame %d\n", j.frame)
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// RenderFrames renders the given absolute frame numbers using workers
// renderers in parallel and returns the images in the same order as frames.
// Each worker owns its renderer; only the immutable assets are shared.
func RenderFrames(ctx context.Context, cfg Config, assets *Assets, frames []int, workers int, logger *log.Logger) ([]*image.RGBA, error) {
	logger = orDiscard(logger)
	if workers < 1 {
		workers = 1
	}

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	results := make([]*image.RGBA, len(frames))

	var errcList []<-chan error

	jobs, errc := generateJobs(ctx, frames)
	errcList = append(errcList, errc)

	for i := 0; i < workers; i++ {
		errc, err := frameWorker(ctx, cfg, assets, jobs, results, logger)
		if err != nil {
			return nil, err
		}
		errcList = append(errcList, errc)
	}

	if err := waitForPipeline(errcList...); err != nil {
		return nil, err
	}

	return results, nil
}
