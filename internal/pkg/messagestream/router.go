package messagestream

import (
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

// NewRouter wires one consumer handler. Messages that still fail after the
// retries are moved to poisonTopic instead of blocking the queue.
func NewRouter(publisher message.Publisher, poisonTopic string, handlerName string, topic string, subscriber message.Subscriber, handlerFunc func(msg *message.Message) error, logger watermill.LoggerAdapter, maxRetries int) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, err
	}

	poisonQueue, err := middleware.PoisonQueue(publisher, poisonTopic)
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(
		middleware.CorrelationID,
		poisonQueue,
		middleware.Retry{
			MaxRetries:      maxRetries,
			InitialInterval: 500 * time.Millisecond,
			Multiplier:      2,
			Logger:          logger,
		}.Middleware,
		middleware.Recoverer,
	)

	router.AddNoPublisherHandler(handlerName, topic, subscriber, handlerFunc)

	return router, nil
}
