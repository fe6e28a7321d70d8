package operator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Purvi1411/expense-tracker/internal/events"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	publisher events.Publisher
	logger    *logrus.Logger
	queue     chan ActionItem
}

func NewOperator(publisher events.Publisher, logger *logrus.Logger, queue chan ActionItem) *Operator {
	return &Operator{
		publisher: publisher,
		logger:    logger,
		queue:     queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	err := o.publisher.Publish(item.ctx, item.event)
	if err != nil {
		o.logger.WithError(err).WithFields(logrus.Fields{
			"eventType": item.event.Type,
			"ownerID":   item.event.OwnerID.String(),
			"entityID":  item.event.EntityID.String(),
		}).Error("Operator.processItem.publish failed")
		return
	}
	o.logger.WithField("eventType", item.event.Type).Debug("Operator.processItem.published")
}

type ActionItem struct {
	ctx   context.Context
	event events.Event
}
