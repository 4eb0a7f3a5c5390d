package semaphore

import (
	"context"
	"fmt"

	"github.com/talx-hub/likeboard/internal/serviceerrs"
)

type Semaphore struct {
	semaCh chan struct{}
}

func New(maxCount uint64) *Semaphore {
	if maxCount == 0 {
		maxCount = 1
	}
	return &Semaphore{
		semaCh: make(chan struct{}, maxCount),
	}
}

// Acquire blocks until a slot is free or ctx is done.
func (s *Semaphore) Acquire(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", serviceerrs.ErrSemaphoreAcquire, ctx.Err())
	case s.semaCh <- struct{}{}:
		return nil
	}
}

func (s *Semaphore) Release() {
	<-s.semaCh
}

func (s *Semaphore) Cap() int {
	return cap(s.semaCh)
}
