package messagestream

import (
	"fmt"

	"marketplace-service/config"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"go.uber.org/zap"
)

type Amqp struct {
	cfg    amqp.Config
	logger watermill.LoggerAdapter
}

func NewAmpq(cfg *config.MessageStreamConfig, zapLogger *zap.Logger) *Amqp {
	uri := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.Username, cfg.Password, cfg.Host, cfg.Port)
	amqpCfg := amqp.NewDurableQueueConfig(uri)
	prefix := cfg.ExchangeName
	amqpCfg.Queue.GenerateName = func(topic string) string {
		return fmt.Sprintf("%s.%s", prefix, topic)
	}

	return &Amqp{
		cfg:    amqpCfg,
		logger: NewZapAdapter(zapLogger),
	}
}

func (a *Amqp) NewSubscriber() (*amqp.Subscriber, error) {
	return amqp.NewSubscriber(a.cfg, a.logger)
}

func (a *Amqp) NewPublisher() (*amqp.Publisher, error) {
	return amqp.NewPublisher(a.cfg, a.logger)
}

func (a *Amqp) Logger() watermill.LoggerAdapter {
	return a.logger
}

// zapAdapter routes watermill's internal logs into zap.
type zapAdapter struct {
	l *zap.Logger
}

func NewZapAdapter(l *zap.Logger) watermill.LoggerAdapter {
	return &zapAdapter{l: l}
}

func (z *zapAdapter) Error(msg string, err error, fields watermill.LogFields) {
	z.l.Error(msg, append(toZap(fields), zap.Error(err))...)
}

func (z *zapAdapter) Info(msg string, fields watermill.LogFields) {
	z.l.Info(msg, toZap(fields)...)
}

func (z *zapAdapter) Debug(msg string, fields watermill.LogFields) {
	z.l.Debug(msg, toZap(fields)...)
}

func (z *zapAdapter) Trace(msg string, fields watermill.LogFields) {
	z.l.Debug(msg, toZap(fields)...)
}

func (z *zapAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &zapAdapter{l: z.l.With(toZap(fields)...)}
}

func toZap(fields watermill.LogFields) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}
