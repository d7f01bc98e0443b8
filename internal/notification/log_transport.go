package notification

import (
	"context"

	"go.uber.org/zap"
)

// LogTransportは開発・テスト用。送らずにログへ残すだけで常に成功。
type LogTransport struct {
	logger *zap.Logger
}

func NewLogTransport(logger *zap.Logger) *LogTransport {
	return &LogTransport{logger: logger}
}

func (t *LogTransport) Send(_ context.Context, to string, body string) error {
	t.logger.Info("whatsapp message (would send)",
		zap.String("to", to),
		zap.String("message", body))
	return nil
}
