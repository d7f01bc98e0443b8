// Package notification は注文確定の通知をWhatsApp系の転送先へ送る。
package notification

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"storefront/internal/domain/model"
)

// Gatewayはメッセージを組み立てて設定済みの宛先全員に送る。
// 1件失敗しても残りは送る。全員成功のときだけtrue。
type Gateway struct {
	transport  Transport
	recipients []string
	logger     *zap.Logger
}

func NewGateway(cfg Config, transport Transport, logger *zap.Logger) *Gateway {
	return &Gateway{
		transport:  transport,
		recipients: splitRecipients(cfg.Recipients),
		logger:     logger,
	}
}

func (g *Gateway) NotifyOrderCreated(ctx context.Context, order model.Order, items []model.OrderItem) bool {
	message := FormatOrderMessage(order, items)
	success := true

	for _, to := range g.recipients {
		if err := g.transport.Send(ctx, to, message); err != nil {
			g.logger.Error("failed to send whatsapp notification",
				zap.String("to", to),
				zap.String("order_number", order.OrderNumber),
				zap.Error(err))
			success = false
			continue
		}
		g.logger.Info("whatsapp notification sent",
			zap.String("to", to),
			zap.String("order_number", order.OrderNumber))
	}

	return success
}

// カンマ区切りの宛先をtrimして空は捨てる
func splitRecipients(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
