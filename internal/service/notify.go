package service

import (
	"context"

	"github.com/aditya-1310/experiment-dehix-sub000/internal/domain"
	"github.com/aditya-1310/experiment-dehix-sub000/internal/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotificationSink interface {
	Create(ctx context.Context, n domain.Notification) error
}

// Dispatcher рассылает уведомления о найме. Доставка fire-and-forget:
// сбой sink логируется и не влияет на вызвавшую операцию.
type Dispatcher struct {
	sink NotificationSink
	log  *zap.Logger
}

func NewDispatcher(sink NotificationSink, log *zap.Logger) *Dispatcher {
	return &Dispatcher{sink: sink, log: log}
}

// OnStatusApproved шлёт по уведомлению обеим сторонам найма. Адресат
// freelancer-уведомления — id hire-запроса, как в исходном потоке.
func (d *Dispatcher) OnStatusApproved(ctx context.Context, hireID, businessID string) {
	notes := []domain.Notification{
		{
			ID:      uuid.NewString(),
			Message: "You are hired by business.",
			Type:    domain.NotificationHire,
			Entity:  "freelancer",
			Path:    "/freelancer/talent",
			UserIDs: []string{hireID},
		},
		{
			ID:      uuid.NewString(),
			Message: "Talent is hired successfully.",
			Type:    domain.NotificationHire,
			Entity:  "business",
			Path:    "/business/talent",
			UserIDs: []string{businessID},
		},
	}
	for _, n := range notes {
		if err := d.sink.Create(ctx, n); err != nil {
			d.log.Error("hire notification failed",
				zap.String("hire_request_id", hireID),
				zap.String("entity", n.Entity),
				zap.Error(err))
			continue
		}
		metrics.NotificationsTotal.Inc()
	}
}
