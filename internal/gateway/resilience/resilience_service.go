package resilience

import (
	"context"

	"go.uber.org/zap"

	"smartnotes/pkg/logger"
)

// ServiceResilience обеспечивает отказоустойчивость вызовов внешнего сервиса,
// комбинируя Circuit Breaker и повторные попытки.
type ServiceResilience struct {
	serviceName    string
	circuitBreaker *CircuitBreaker
	retry          *Retry
}

// NewServiceResilience создает новую обертку отказоустойчивости для сервиса.
func NewServiceResilience(serviceName string) *ServiceResilience {
	return &ServiceResilience{
		serviceName:    serviceName,
		circuitBreaker: NewCircuitBreaker(serviceName, DefaultCircuitBreakerConfig()),
		retry:          NewRetry(serviceName, DefaultRetryConfig()),
	}
}

// ExecuteWithResilience выполняет операцию с отказоустойчивостью.
func (r *ServiceResilience) ExecuteWithResilience(
	ctx context.Context,
	operationName string,
	operation func() error,
) error {
	log := logger.Log(ctx).With(
		zap.String("service", r.serviceName),
		zap.String("operation", operationName),
	)
	log.Debug(ctx, "executing operation with resilience")

	return r.circuitBreaker.Execute(ctx, func() error {
		return r.retry.Execute(ctx, operation)
	})
}

// ExecuteWithResultString выполняет операцию с отказоустойчивостью и возвращает строку.
func (r *ServiceResilience) ExecuteWithResultString(
	ctx context.Context,
	operationName string,
	operation func() (string, error),
) (string, error) {
	var result string

	err := r.ExecuteWithResilience(ctx, operationName, func() error {
		var opErr error
		result, opErr = operation()
		return opErr
	})
	if err != nil {
		return "", err
	}

	return result, nil
}
