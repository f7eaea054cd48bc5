package event

import (
	"fmt"

	messagebus "github.com/vardius/message-bus"

	"github.com/example/image-tagger/api"
	"github.com/example/image-tagger/api/apitype"
	"github.com/example/image-tagger/common/logger"
)

type Broker struct {
	bus messagebus.MessageBus

	api.Sender
}

func InitBus(queueSize int) *Broker {
	return &Broker{
		bus: messagebus.New(queueSize),
	}
}

// InitDevNullBus gives a broker without a backing bus. Sends are dropped.
// Useful when a service's notifications are of no interest to anyone.
func InitDevNullBus() *Broker {
	return &Broker{
		bus: nil,
	}
}

func (s *Broker) Subscribe(topic api.Topic, fn interface{}) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Subscribe(string(topic), fn); err != nil {
		logger.Error.Panic("Could not subscribe")
	}
}

func (s *Broker) SendToTopic(topic api.Topic) {
	logger.Trace.Printf("Sending to '%s'", topic)
	if s.bus != nil {
		s.bus.Publish(string(topic))
	}
}

func (s *Broker) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	logger.Trace.Printf("Sending command to '%s'", topic)
	if s.bus != nil {
		s.bus.Publish(string(topic), command)
	}
}

func (s *Broker) SendError(message string, err error) {
	formattedMessage := ""
	if err != nil {
		formattedMessage = fmt.Sprintf("%s\n%s", message, err.Error())
	} else {
		formattedMessage = message
	}
	logger.Error.Printf("Error: %s", formattedMessage)
	s.SendCommandToTopic(api.ShowError, &api.ErrorCommand{Message: message})
}
