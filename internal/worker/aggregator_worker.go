package worker

import (
	"github.com/spec-kit/company-portal/internal/events"
	"github.com/spec-kit/company-portal/internal/service"
)

// StartAggregator attaches the host aggregator to the fan-out channel.
// Events published before this point are dropped.
func StartAggregator(aggregator *service.NotificationAggregator, dispatcher events.Dispatcher) {
	if aggregator == nil {
		return
	}
	aggregator.RegisterHandlers(dispatcher)
}
