package notification

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Transportは宛先1件へメッセージを1通送る。
type Transport interface {
	Send(ctx context.Context, to string, body string) error
}

// Configは通知まわりの設定。環境からの読み込みはconfigパッケージ側でやる。
type Config struct {
	Provider   string // log | http | twilio | meta
	APIURL     string
	APIKey     string
	Recipients string // カンマ区切り

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string // 例: whatsapp:+14155238886

	MetaPhoneNumberID string
	MetaAccessToken   string
}

// NewTransportは設定のproviderから実装を1つ選ぶ。不明値はlogに落とす。
func NewTransport(cfg Config, client *http.Client, logger *zap.Logger) Transport {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	switch cfg.Provider {
	case "twilio":
		return NewTwilioTransport(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFrom, client)
	case "meta":
		return NewMetaTransport(cfg.MetaPhoneNumberID, cfg.MetaAccessToken, client)
	case "http":
		return NewHTTPTransport(cfg.APIURL, cfg.APIKey, client)
	default:
		return NewLogTransport(logger)
	}
}

// normalizePhoneは数字以外を全部落とす。
func normalizePhone(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// 国際形式が要る転送先用。+が無ければ付ける。
func toInternational(number string) string {
	n := normalizePhone(number)
	if !strings.HasPrefix(n, "+") {
		n = "+" + n
	}
	return n
}
