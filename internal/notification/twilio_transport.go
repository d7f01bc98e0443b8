package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const twilioBaseURL = "https://api.twilio.com"

// TwilioTransportはTwilioのWhatsApp API経由で送る。
type TwilioTransport struct {
	accountSID string
	authToken  string
	from       string
	client     *http.Client

	//テストで差し替える
	baseURL string
}

func NewTwilioTransport(accountSID string, authToken string, from string, client *http.Client) *TwilioTransport {
	return &TwilioTransport{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		client:     client,
		baseURL:    twilioBaseURL,
	}
}

func (t *TwilioTransport) Send(ctx context.Context, to string, body string) error {
	if t.accountSID == "" || t.authToken == "" || t.from == "" {
		return errors.New("twilio credentials not configured")
	}

	dest := "whatsapp:" + toInternational(to)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", t.baseURL, t.accountSID)
	form := url.Values{
		"From": {t.from},
		"To":   {dest},
		"Body": {body},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(t.accountSID, t.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)

		//Twilioのエラー本文からmessageを拾えたらそれを使う
		var apiErr struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("twilio api error: %s", apiErr.Message)
		}
		return fmt.Errorf("twilio api error: %s", string(raw))
	}
	return nil
}
