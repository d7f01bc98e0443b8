package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeTransportは宛先ごとに成否を決める。
type fakeTransport struct {
	failFor map[string]bool
	sent    []string
}

func (t *fakeTransport) Send(_ context.Context, to string, _ string) error {
	t.sent = append(t.sent, to)
	if t.failFor[to] {
		return errors.New("boom")
	}
	return nil
}

func TestGateway_AllRecipientsSucceed(t *testing.T) {
	tr := &fakeTransport{}
	g := NewGateway(Config{Recipients: "111,222"}, tr, zap.NewNop())

	order, items := sampleOrder()
	ok := g.NotifyOrderCreated(context.Background(), order, items)

	assert.True(t, ok)
	assert.Equal(t, []string{"111", "222"}, tr.sent)
}

func TestGateway_OneFailureDoesNotStopOthers(t *testing.T) {
	tr := &fakeTransport{failFor: map[string]bool{"111": true}}
	g := NewGateway(Config{Recipients: "111,222"}, tr, zap.NewNop())

	order, items := sampleOrder()
	ok := g.NotifyOrderCreated(context.Background(), order, items)

	//集計はfalseだが、残りの宛先にも送っている
	assert.False(t, ok)
	assert.Equal(t, []string{"111", "222"}, tr.sent)
}

func TestGateway_SkipsEmptyRecipients(t *testing.T) {
	tr := &fakeTransport{}
	g := NewGateway(Config{Recipients: " 111 ,, 222 , "}, tr, zap.NewNop())

	order, items := sampleOrder()
	ok := g.NotifyOrderCreated(context.Background(), order, items)

	assert.True(t, ok)
	assert.Equal(t, []string{"111", "222"}, tr.sent)
}

func TestNewTransport_ProviderSelection(t *testing.T) {
	logger := zap.NewNop()

	assert.IsType(t, &LogTransport{}, NewTransport(Config{Provider: "log"}, nil, logger))
	assert.IsType(t, &LogTransport{}, NewTransport(Config{Provider: ""}, nil, logger))
	assert.IsType(t, &HTTPTransport{}, NewTransport(Config{Provider: "http"}, nil, logger))
	assert.IsType(t, &TwilioTransport{}, NewTransport(Config{Provider: "twilio"}, nil, logger))
	assert.IsType(t, &MetaTransport{}, NewTransport(Config{Provider: "meta"}, nil, logger))
}
