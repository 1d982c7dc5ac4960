package eventqueue

import (
	"context"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/contracts"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/models"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type eventPublisher struct {
	Channel *amqp091.Channel
	Queue   string
	Limiter *rate.Limiter
	Log     *zap.Logger
}

// NewEventPublisher declares the record event queue and returns a publisher
// throttled to ratePerSecond. Events over the rate are dropped, not queued.
func NewEventPublisher(rabbitMQConnection *amqp091.Connection, queue string, ratePerSecond int, log *zap.Logger) (contracts.EventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	if ratePerSecond <= 0 {
		ratePerSecond = 20
	}

	return &eventPublisher{
		Channel: channel,
		Queue:   queue,
		Limiter: rate.NewLimiter(rate.Limit(ratePerSecond), ratePerSecond),
		Log:     log,
	}, nil
}

func (p *eventPublisher) Publish(ctx context.Context, event *models.RecordEvent) error {
	if !p.Limiter.Allow() {
		p.Log.Warn("record event dropped, publish rate exceeded",
			zap.String(constvars.LoggingEntityKey, event.Entity),
			zap.String(constvars.LoggingActionKey, event.Action),
		)
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}
	return nil
}

func (p *eventPublisher) Close() error {
	return p.Channel.Close()
}
