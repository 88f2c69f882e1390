package estimatesvc

import (
	"encoding/json"
	logger "log"

	"github.com/nats-io/nats.go"
)

//estimateEvent describes one served estimate for downstream analytics consumers
type estimateEvent struct {
	ZipCode          string `json:"zipCode"`
	ShippingMethodID string `json:"shippingMethodId"`
	TransitDays      int    `json:"transitDays"`
	DeliveryDate     string `json:"deliveryDate"`
	ServedAt         int64  `json:"servedAt"`
}

//estimateEventPublisher sends served estimates over NATS according to publishOverNats.
//Publishing is best effort: failures are logged and never surfaced to the shopper.
type estimateEventPublisher struct {
	log             *logger.Logger
	natsConnection  *nats.Conn
	subject         string
	publishOverNats bool
}

//makeEstimateEventPublisher creates estimateEventPublisher. A nil natsConnection
//disables publishing.
func makeEstimateEventPublisher(log *logger.Logger,
	natsConnection *nats.Conn,
	subject string) *estimateEventPublisher {
	return &estimateEventPublisher{
		log:             log,
		natsConnection:  natsConnection,
		subject:         subject,
		publishOverNats: natsConnection != nil,
	}
}

//publish sends an estimateEvent over NATS when publishing is enabled
func (p *estimateEventPublisher) publish(event *estimateEvent) {
	if !p.publishOverNats {
		return
	}
	jsonData, err := json.Marshal(event)
	if err != nil {
		p.log.Printf("failed to marshal estimateEvent in "+
			"estimateEventPublisher.publish, error:%v", err)
		return
	}
	if err = p.natsConnection.Publish(p.subject, jsonData); err != nil {
		p.log.Printf("failed to send estimateEvent in "+
			"estimateEventPublisher.publish, error:%v", err)
	}
}
