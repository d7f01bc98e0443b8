package config

import (
	"fmt"
	"os"

	"storefront/internal/notification"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	GoEnv string // dev/prod
	FEURL string // フロントURL（CORSで使う）

	WhatsApp notification.Config // 注文通知の設定
}

// Loadは環境変数から読む。DB接続はinfra/db側でDATABASE_URL/POSTGRES_*を見る。
func Load() (Config, error) {
	cfg := Config{
		Port:  os.Getenv("PORT"),
		GoEnv: getenv("GO_ENV", "dev"),
		FEURL: os.Getenv("FE_URL"),

		WhatsApp: notification.Config{
			Provider:   getenv("WHATSAPP_PROVIDER", "log"),
			APIURL:     os.Getenv("WHATSAPP_API_URL"),
			APIKey:     os.Getenv("WHATSAPP_API_KEY"),
			Recipients: getenv("WHATSAPP_RECIPIENT_NUMBERS", "3740280,3569074"),

			TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
			TwilioAuthToken:  os.Getenv("WHATSAPP_API_KEY"),
			TwilioFrom:       os.Getenv("TWILIO_WHATSAPP_FROM"),

			MetaPhoneNumberID: os.Getenv("META_PHONE_NUMBER_ID"),
			MetaAccessToken:   os.Getenv("META_ACCESS_TOKEN"),
		},
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	switch cfg.WhatsApp.Provider {
	case "log", "http", "twilio", "meta":
	default:
		return Config{}, fmt.Errorf("WHATSAPP_PROVIDER must be one of log/http/twilio/meta")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
