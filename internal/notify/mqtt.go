// Package notify pushes schedule-change notices to player hosts over MQTT,
// so rsked can reload a freshly accepted schedule instead of polling for
// the file to change.
package notify

import (
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

const updateTopic = "rsked/schedule/updated"

var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Warn().Err(err).Msg("MQTT connection lost")
}

// Publisher announces accepted schedule versions. A nil Publisher is a
// valid no-op, used when no broker is configured.
type Publisher struct {
	client mqtt.Client
}

func NewPublisher(brokerURL, clientID string) (*Publisher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler
	opts.SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return &Publisher{client: client}, nil
}

// ScheduleUpdated publishes the new version on the update topic.
func (p *Publisher) ScheduleUpdated(version string) {
	if p == nil {
		return
	}
	payload, _ := json.Marshal(map[string]string{"version": version})
	token := p.client.Publish(updateTopic, 1, false, payload)
	token.Wait()
	if err := token.Error(); err != nil {
		log.Warn().Err(err).Str("version", version).Msg("could not publish schedule update")
		return
	}
	log.Info().Str("version", version).Msg("published schedule update")
}

// Close disconnects from the broker.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	p.client.Disconnect(250)
}
