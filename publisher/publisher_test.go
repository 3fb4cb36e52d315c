package publisher

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/angas/pricepulse/types"
	"github.com/angas/pricepulse/viewmodel"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doneToken struct{ err error }

func (t doneToken) Wait() bool                     { return true }
func (t doneToken) WaitTimeout(time.Duration) bool { return true }
func (t doneToken) Error() error                   { return t.err }

func (t doneToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

type message struct {
	topic    string
	retained bool
	payload  []byte
}

// fakeClient implements the parts of mqtt.Client the publisher uses.
type fakeClient struct {
	mqtt.Client
	mu       sync.Mutex
	messages []message
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, message{topic: topic, retained: retained, payload: payload.([]byte)})
	return doneToken{}
}

func (c *fakeClient) Messages() []message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]message(nil), c.messages...)
}

func testState() viewmodel.UiState {
	s := viewmodel.DefaultUiState()
	s.ElectricityPrices = []float64{1.0, 2.0, 0.5}
	s.CurrentHour = 1
	s.Appliance = types.ApplianceShower
	return s
}

func TestPublish(t *testing.T) {
	client := &fakeClient{}
	p := newWithClient(client, slog.New(slog.NewTextHandler(io.Discard, nil)), "home/pricepulse")

	require.NoError(t, p.Publish(testState()))

	msgs := client.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "home/pricepulse/state", msgs[0].topic)
	assert.True(t, msgs[0].retained)
	assert.Equal(t, "home/pricepulse/price/current", msgs[1].topic)
	assert.Equal(t, "2.0000", string(msgs[1].payload))

	var payload statePayload
	require.NoError(t, json.Unmarshal(msgs[0].payload, &payload))
	assert.Equal(t, "NO1", payload.Region)
	assert.Equal(t, []int{1}, payload.AboveLimit)
	assert.Equal(t, []float64{6, 12, 3}, payload.ApplianceCosts)
	assert.True(t, payload.LimitEnabled)
}

func TestPublishSkipsUnloadedState(t *testing.T) {
	client := &fakeClient{}
	p := newWithClient(client, slog.New(slog.NewTextHandler(io.Discard, nil)), "pricepulse")

	require.NoError(t, p.Publish(viewmodel.DefaultUiState()))
	assert.Empty(t, client.Messages())
}

func TestPublishCurrentPriceOutOfRange(t *testing.T) {
	client := &fakeClient{}
	p := newWithClient(client, slog.New(slog.NewTextHandler(io.Discard, nil)), "pricepulse")

	s := testState()
	s.CurrentHour = 20
	require.NoError(t, p.Publish(s))
	assert.Equal(t, "null", string(client.Messages()[1].payload))
}

func TestRunStopsWhenChannelCloses(t *testing.T) {
	client := &fakeClient{}
	p := newWithClient(client, slog.New(slog.NewTextHandler(io.Discard, nil)), "pricepulse")

	states := make(chan viewmodel.UiState, 1)
	states <- testState()
	close(states)

	p.Run(context.Background(), states)
	assert.Len(t, client.Messages(), 2)
}
