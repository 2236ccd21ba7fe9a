// internal/historian/historian.go
package historian

import (
	"context"
	"time"

	"github.com/jason-s-yu/blackjack/internal/cache"
	"github.com/sirupsen/logrus"
)

// Queue yields queued round actions. ok is false when nothing arrived before timeout.
type Queue interface {
	Pop(ctx context.Context, timeout time.Duration) (rec cache.RoundActionRecord, ok bool, err error)
}

// Sink persists a batch of round actions.
type Sink interface {
	InsertRoundActions(ctx context.Context, records []cache.RoundActionRecord) error
}

// Service drains the round action queue into the sink in batches.
type Service struct {
	queue      Queue
	sink       Sink
	batchSize  int
	maxPending int
	flushDelay time.Duration
	popTimeout time.Duration
	retryDelay time.Duration
	logger     *logrus.Logger

	batch   []cache.RoundActionRecord
	retryAt time.Time
}

// pendingBatches is how many full batches are retained while the sink is failing.
const pendingBatches = 50

// NewService builds a historian. batchSize and flushEvery fall back to 20 and 500ms when not positive.
func NewService(q Queue, s Sink, batchSize int, flushEvery time.Duration, logger *logrus.Logger) *Service {
	if batchSize <= 0 {
		batchSize = 20
	}
	if flushEvery <= 0 {
		flushEvery = 500 * time.Millisecond
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{
		queue:      q,
		sink:       s,
		batchSize:  batchSize,
		maxPending: batchSize * pendingBatches,
		flushDelay: flushEvery,
		popTimeout: 3 * time.Second,
		retryDelay: time.Second,
		logger:     logger,
		batch:      make([]cache.RoundActionRecord, 0, batchSize),
	}
}

// Run pops records until ctx is cancelled, flushing when the batch fills and on
// every tick. Whatever is still buffered is flushed before returning.
func (s *Service) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.flushDelay)
	defer ticker.Stop()

	s.logger.Info("historian started")
	for {
		select {
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err := s.Flush(flushCtx)
			cancel()
			s.logger.Info("historian shutting down")
			return err

		case <-ticker.C:
			s.flushIfDue(ctx)

		default:
			rec, ok, err := s.queue.Pop(ctx, s.popTimeout)
			if err != nil {
				if ctx.Err() != nil {
					continue
				}
				s.logger.WithError(err).Error("pop round action")
				select {
				case <-ctx.Done():
				case <-time.After(s.retryDelay):
				}
				continue
			}
			if !ok {
				continue
			}
			s.Add(ctx, rec)
		}
	}
}

// Add buffers rec and flushes once the batch is full. After a failed flush no
// new attempt is made until the retry delay has passed.
func (s *Service) Add(ctx context.Context, rec cache.RoundActionRecord) {
	s.batch = append(s.batch, rec)
	s.trim()
	if len(s.batch) >= s.batchSize {
		s.flushIfDue(ctx)
	}
}

func (s *Service) flushIfDue(ctx context.Context) {
	if time.Now().Before(s.retryAt) {
		return
	}
	s.Flush(ctx)
}

// trim drops the oldest records once more than maxPending are buffered.
func (s *Service) trim() {
	over := len(s.batch) - s.maxPending
	if over <= 0 {
		return
	}
	s.logger.WithField("dropped", over).Warn("round action buffer full, dropping oldest")
	s.batch = append(s.batch[:0], s.batch[over:]...)
}

// Pending returns the number of buffered records.
func (s *Service) Pending() int {
	return len(s.batch)
}

// Flush writes the buffered records. On failure they stay buffered for the next flush.
func (s *Service) Flush(ctx context.Context) error {
	if len(s.batch) == 0 {
		return nil
	}
	batchCopy := make([]cache.RoundActionRecord, len(s.batch))
	copy(batchCopy, s.batch)

	if err := s.sink.InsertRoundActions(ctx, batchCopy); err != nil {
		s.retryAt = time.Now().Add(s.retryDelay)
		s.logger.WithError(err).WithField("pending", len(batchCopy)).Error("flush round actions")
		return err
	}
	s.retryAt = time.Time{}
	s.batch = s.batch[:0]
	s.logger.WithField("count", len(batchCopy)).Debug("flushed round actions")
	return nil
}
