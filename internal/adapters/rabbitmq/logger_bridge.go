package rabbitmq

import (
	"fmt"

	"github.com/ank17jaat/SpaceMate/internal/core/port"
	"github.com/ank17jaat/SpaceMate/pkg/rabbitmq/rabbitmq_common"
)

// loggerBridge адаптирует наш LoggerPort к интерфейсу логгера pkg/rabbitmq.
type loggerBridge struct {
	logger port.LoggerPort
}

func NewLoggerBridge(logger port.LoggerPort) rabbitmq_common.Logger {
	if logger == nil {
		return rabbitmq_common.NewNoopLogger()
	}
	return &loggerBridge{logger: logger}
}

// pkg-логгер использует пары ключ-значение в стиле slog
func keyvalsToFields(keysAndValues ...interface{}) port.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}
	fields := make(port.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", keysAndValues[i])
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}

func (b *loggerBridge) Debug(msg string, keysAndValues ...interface{}) {
	b.logger.Debug(msg, keyvalsToFields(keysAndValues...))
}

func (b *loggerBridge) Info(msg string, keysAndValues ...interface{}) {
	b.logger.Info(msg, keyvalsToFields(keysAndValues...))
}

func (b *loggerBridge) Warn(msg string, keysAndValues ...interface{}) {
	b.logger.Warn(msg, keyvalsToFields(keysAndValues...))
}

func (b *loggerBridge) Error(err error, msg string, keysAndValues ...interface{}) {
	b.logger.Error(msg, err, keyvalsToFields(keysAndValues...))
}
