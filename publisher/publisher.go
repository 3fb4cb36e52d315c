package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/angas/pricepulse/calc"
	"github.com/angas/pricepulse/config"
	"github.com/angas/pricepulse/convert"
	"github.com/angas/pricepulse/viewmodel"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

const publishTimeout = 5 * time.Second

type statePayload struct {
	Region         string    `json:"region"`
	RegionName     string    `json:"regionName"`
	Prices         []float64 `json:"prices"`
	CurrentHour    int       `json:"currentHour"`
	CurrentPrice   *float64  `json:"currentPrice"`
	MaxPrice       float64   `json:"maxPrice"`
	LimitEnabled   bool      `json:"limitEnabled"`
	AboveLimit     []int     `json:"hoursAboveLimit"`
	Appliance      string    `json:"appliance"`
	ApplianceCosts []float64 `json:"applianceCosts"`
}

// Publisher mirrors the UI state to an MQTT broker, retained, so home
// automation can react to the price limit.
type Publisher struct {
	client mqtt.Client
	logger *slog.Logger
	topic  string
}

func New(cnfg config.AppConfigMqtt) *Publisher {
	logger := slog.Default().With("module", "publisher")
	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s:%d", cnfg.Host, cnfg.Port))
	opts.SetClientID("pricepulse-" + uuid.NewString()[:8])
	opts.SetUsername(cnfg.Username)
	opts.SetPassword(cnfg.Password)
	opts.SetAutoReconnect(true)
	opts.OnConnect = func(client mqtt.Client) {
		logger.Info("MQTT connected")
	}
	opts.OnConnectionLost = func(client mqtt.Client, err error) {
		logger.Warn("MQTT connection lost", slog.Any("error", err))
	}

	mqttLogger := slog.Default().With("module", "mqtt")
	mqtt.CRITICAL = newMqttLogger(mqttLogger, slog.LevelError)
	mqtt.ERROR = newMqttLogger(mqttLogger, slog.LevelError)
	mqtt.WARN = newMqttLogger(mqttLogger, slog.LevelWarn)

	return newWithClient(mqtt.NewClient(opts), logger, cnfg.GetTopic())
}

func newWithClient(client mqtt.Client, logger *slog.Logger, topic string) *Publisher {
	return &Publisher{client: client, logger: logger, topic: topic}
}

func (p *Publisher) Connect() error {
	p.logger.Debug("connecting MQTT client")
	if token := p.client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	return nil
}

func (p *Publisher) Disconnect() {
	p.client.Disconnect(250)
}

// Run publishes every state received until ctx is done or states is closed.
func (p *Publisher) Run(ctx context.Context, states <-chan viewmodel.UiState) {
	for {
		select {
		case <-ctx.Done():
			return
		case state, ok := <-states:
			if !ok {
				return
			}
			if err := p.Publish(state); err != nil {
				p.logger.Warn("failed to publish state", slog.Any("error", err))
			}
		}
	}
}

func (p *Publisher) Publish(state viewmodel.UiState) error {
	if !state.Loaded() {
		return nil
	}

	payload := newStatePayload(state)
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := p.publish(p.topic+"/state", data); err != nil {
		return err
	}

	current := "null"
	if payload.CurrentPrice != nil {
		current = fmt.Sprintf("%.4f", *payload.CurrentPrice)
	}
	return p.publish(p.topic+"/price/current", []byte(current))
}

func (p *Publisher) publish(topic string, data []byte) error {
	token := p.client.Publish(topic, 0, true, data)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publish to %s timed out", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	return nil
}

func newStatePayload(state viewmodel.UiState) statePayload {
	payload := statePayload{
		Region:         state.CurrentRegion.String(),
		RegionName:     state.CurrentRegion.DisplayName(),
		Prices:         convert.RoundAll(state.ElectricityPrices, 4),
		CurrentHour:    state.CurrentHour,
		MaxPrice:       state.MaxPrice,
		LimitEnabled:   calc.LimitEnabled(state.MaxPrice),
		AboveLimit:     calc.HoursAboveLimit(state.ElectricityPrices, state.MaxPrice),
		Appliance:      state.Appliance.String(),
		ApplianceCosts: convert.RoundAll(calc.ApplianceCosts(state.ElectricityPrices, state.Appliance), 4),
	}
	if current := calc.CurrentPrice(state.ElectricityPrices, state.CurrentHour); current.IsValid() {
		v := convert.RoundFloat64(current.Value(), 4)
		payload.CurrentPrice = &v
	}
	return payload
}
