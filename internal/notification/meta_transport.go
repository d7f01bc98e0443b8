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

const metaBaseURL = "https://graph.facebook.com/v18.0"

// MetaTransportはMeta WhatsApp Business API経由で送る。
type MetaTransport struct {
	phoneNumberID string
	accessToken   string
	client        *http.Client

	//テストで差し替える
	baseURL string
}

func NewMetaTransport(phoneNumberID string, accessToken string, client *http.Client) *MetaTransport {
	return &MetaTransport{
		phoneNumberID: phoneNumberID,
		accessToken:   accessToken,
		client:        client,
		baseURL:       metaBaseURL,
	}
}

func (t *MetaTransport) Send(ctx context.Context, to string, body string) error {
	if t.phoneNumberID == "" || t.accessToken == "" {
		return errors.New("meta whatsapp credentials not configured")
	}

	payload, err := json.Marshal(map[string]interface{}{
		"messaging_product": "whatsapp",
		"to":                toInternational(to),
		"type":              "text",
		"text": map[string]string{
			"body": body,
		},
	})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/%s/messages", t.baseURL, t.phoneNumberID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+t.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)

		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("meta whatsapp api error: %s", apiErr.Error.Message)
		}
		return fmt.Errorf("meta whatsapp api error: %s", string(raw))
	}
	return nil
}
