package operator

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Purvi1411/expense-tracker/internal/events"
)

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
type OperatorDelegator struct {
	publisher  events.Publisher
	logger     *logrus.Logger
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup

	stateMutex sync.RWMutex
	stopped    bool
}

func NewOperatorDelegator(publisher events.Publisher, logger *logrus.Logger, numWorkers, queueSize int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &OperatorDelegator{
		publisher:  publisher,
		logger:     logger,
		queue:      make(chan ActionItem, queueSize),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.publisher, d.logger, d.queue)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop drains the queue and waits for the workers to finish.
func (d *OperatorDelegator) Stop() {
	d.stateMutex.Lock()
	if d.stopped {
		d.stateMutex.Unlock()
		return
	}
	d.stopped = true
	close(d.queue)
	d.stateMutex.Unlock()

	d.wg.Wait()
}

// Notify enqueues event without blocking. It reports false when the event was
// dropped because the queue is full or the delegator has stopped.
func (d *OperatorDelegator) Notify(ctx context.Context, event events.Event) bool {
	d.stateMutex.RLock()
	defer d.stateMutex.RUnlock()

	if d.stopped {
		return false
	}

	item := ActionItem{
		ctx:   context.WithoutCancel(ctx),
		event: event,
	}

	select {
	case d.queue <- item:
		return true
	default:
		d.logger.WithField("eventType", event.Type).Warn("OperatorDelegator.Notify.queue full, dropping event")
		return false
	}
}
