package port

import (
	"context"

	"brokerage-service/internal/core/domain"
)

// DealEventsPort публикует события о заключенных сделках
// для внешних потребителей (отчетность, уведомления).
type DealEventsPort interface {
	PublishDealCreated(ctx context.Context, deal domain.Deal) error
}
