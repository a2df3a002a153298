package messaging

import (
	"cobalt-screening-service/internal/app/config"
	"fmt"
	"log"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const connectionName = "cobalt-screening-service"

func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)

	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName(connectionName)

	conn, err := amqp091.DialConfig(connectionString, amqp091.Config{
		Heartbeat:  10 * time.Second,
		Properties: properties,
	})
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Printf("Successfully connected to rabbitMQ as %s", connectionName)
	return conn
}
