package rabbitmq

import (
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/rabbitmq/amqp091-go"
)

// declareTopology sets up the events exchange and the queues bound to it.
func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		constant.EventsExchange, // name
		"topic",                 // type
		true,                    // durable
		false,                   // auto-delete
		false,                   // internal
		false,                   // no-wait
		nil,                     // arguments
	)
	if err != nil {
		return err
	}

	bindings := map[string]string{
		constant.NotificationQueue: constant.NotificationRoutingKey,
		constant.OTPQueue:          constant.OTPRoutingKey,
	}
	for queue, key := range bindings {
		if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			return err
		}
		if err := channel.QueueBind(queue, key, constant.EventsExchange, false, nil); err != nil {
			return err
		}
	}
	return nil
}

func dial(url string) (*amqp091.Connection, *amqp091.Channel, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}
