package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// HTTPTransportは汎用のWhatsApp HTTPゲートウェイ向け。
type HTTPTransport struct {
	url    string
	apiKey string
	client *http.Client
}

func NewHTTPTransport(url string, apiKey string, client *http.Client) *HTTPTransport {
	return &HTTPTransport{url: url, apiKey: apiKey, client: client}
}

func (t *HTTPTransport) Send(ctx context.Context, to string, body string) error {
	if t.url == "" {
		return errors.New("whatsapp api url not configured")
	}

	payload, err := json.Marshal(map[string]string{
		"to":      normalizePhone(to),
		"message": body,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("whatsapp api error: %s", string(raw))
	}
	return nil
}
