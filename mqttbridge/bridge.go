// Package mqttbridge ingests device records published over MQTT.
//
// Payloads carry the same JSON fields as the HTTP endpoints plus "api_key",
// which is checked with the same rule as the X-API-KEY header.
package mqttbridge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"sensorhub/config"
	"sensorhub/logger"
	"sensorhub/mirror"
	"sensorhub/services"
)

const (
	connectTimeout    = 10 * time.Second
	handleTimeout     = 5 * time.Second
	disconnectQuiesce = 1000 // milliseconds

	topicSensorData  = "sensor-data"
	topicTemperature = "temperature"
	topicLogs        = "logs"
)

var (
	// ErrUnknownTopic 구독하지 않은 토픽
	ErrUnknownTopic = errors.New("unknown topic")
	// ErrInvalidPayload JSON 객체가 아닌 페이로드
	ErrInvalidPayload = errors.New("payload must be a JSON object")
)

// Bridge MQTT → 레코드 저장소
type Bridge struct {
	cfg    config.MQTTConfig
	svc    *services.Services
	mirror mirror.Mirror
	client pahomqtt.Client
}

// New Bridge 생성 (연결은 Start 에서)
func New(cfg config.MQTTConfig, svc *services.Services, m mirror.Mirror) *Bridge {
	if m == nil {
		m = mirror.Noop{}
	}
	return &Bridge{cfg: cfg, svc: svc, mirror: m}
}

// Topics 구독 토픽 목록
func (b *Bridge) Topics() []string {
	prefix := strings.TrimSuffix(b.cfg.TopicPrefix, "/")
	return []string{
		prefix + "/" + topicSensorData,
		prefix + "/" + topicTemperature,
		prefix + "/" + topicLogs,
	}
}

// Start 브로커에 연결하고 토픽을 구독한다
func (b *Bridge) Start() error {
	opts := pahomqtt.NewClientOptions()
	opts.AddBroker(b.cfg.Broker)
	opts.SetClientID(b.cfg.ClientID)
	if b.cfg.Username != "" {
		opts.SetUsername(b.cfg.Username)
		opts.SetPassword(b.cfg.Password)
	}
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(connectTimeout)

	// 재연결 시 구독 복구
	opts.SetOnConnectHandler(func(c pahomqtt.Client) {
		if err := b.subscribe(c); err != nil {
			logger.Error("MQTT subscribe failed: %v", err)
		}
	})
	opts.SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
		logger.Warn("MQTT connection lost: %v", err)
	})

	b.client = pahomqtt.NewClient(opts)
	token := b.client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return fmt.Errorf("mqtt connect timeout after %v", connectTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", err)
	}

	logger.WithFields(map[string]interface{}{
		"broker": b.cfg.Broker,
		"topics": strings.Join(b.Topics(), ","),
	}).Info("MQTT bridge connected")
	return nil
}

func (b *Bridge) subscribe(c pahomqtt.Client) error {
	filters := make(map[string]byte, 3)
	for _, topic := range b.Topics() {
		filters[topic] = byte(b.cfg.QoS)
	}

	token := c.SubscribeMultiple(filters, func(_ pahomqtt.Client, msg pahomqtt.Message) {
		ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
		defer cancel()

		if err := b.Handle(ctx, msg.Topic(), msg.Payload()); err != nil {
			logger.WithFields(map[string]interface{}{
				"topic": msg.Topic(),
				"error": err.Error(),
			}).Warn("MQTT message dropped")
		}
	})
	if !token.WaitTimeout(connectTimeout) {
		return fmt.Errorf("subscribe timeout")
	}
	return token.Error()
}

// Close 브로커 연결 종료
func (b *Bridge) Close() {
	if b.client == nil {
		return
	}
	b.client.Unsubscribe(b.Topics()...).WaitTimeout(connectTimeout)
	b.client.Disconnect(disconnectQuiesce)
	logger.Info("MQTT bridge disconnected")
}

// Handle 메시지 하나를 검증하고 저장한다
func (b *Bridge) Handle(ctx context.Context, topic string, payload []byte) error {
	kind := topic[strings.LastIndex(topic, "/")+1:]
	if !b.known(topic) {
		return fmt.Errorf("%w: %s", ErrUnknownTopic, topic)
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	var input map[string]any
	if err := dec.Decode(&input); err != nil || input == nil {
		return ErrInvalidPayload
	}

	secret, _ := input["api_key"].(string)
	delete(input, "api_key")
	if _, err := b.svc.Keys.Authenticate(ctx, secret); err != nil {
		return err
	}

	switch kind {
	case topicSensorData:
		r, err := b.svc.Sensors.Create(ctx, input)
		if err != nil {
			return err
		}
		b.mirror.SensorReading(r)
	case topicTemperature:
		r, err := b.svc.Temperatures.Create(ctx, input)
		if err != nil {
			return err
		}
		b.mirror.TemperatureReading(r)
	case topicLogs:
		if _, err := b.svc.Logs.Create(ctx, input); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bridge) known(topic string) bool {
	for _, t := range b.Topics() {
		if t == topic {
			return true
		}
	}
	return false
}
