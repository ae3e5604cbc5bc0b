package main

import (
	"github.com/cbodonnell/hanabi/pkg/log"
	"github.com/cbodonnell/hanabi/pkg/messages"
)

// offlineTransport encodes messages as they would go on the wire and logs them.
type offlineTransport struct {
	clientID uint32
}

func (t *offlineTransport) Send(messageType messages.MessageType, payload interface{}) {
	msg, err := messages.NewMessage(t.clientID, messageType, payload)
	if err != nil {
		log.Error("Failed to create %s message: %v", messageType, err)
		return
	}
	b, err := messages.SerializeMessage(msg)
	if err != nil {
		log.Error("Failed to serialize %s message: %v", messageType, err)
		return
	}
	log.Info("Would send %s (%d bytes): %s", messageType, len(b), msg.Payload)
}
