package messages

import (
	"encoding/json"
	"fmt"

	"github.com/cbodonnell/hanabi/pkg/game/constants"
	"github.com/cbodonnell/hanabi/pkg/game/types"
	"github.com/google/uuid"
)

const (
	// MessageBufferSize represents the maximum size of a message
	MessageBufferSize = 1024
)

// MessageType identifies the body carried by a Message.
type MessageType byte

const (
	MessageTypeClientAction MessageType = iota + 1
	MessageTypeClientReplayAction
	MessageTypeClientPing
	MessageTypeServerPong
	MessageTypeServerWarning
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeClientAction:
		return "action"
	case MessageTypeClientReplayAction:
		return "replayAction"
	case MessageTypeClientPing:
		return "ping"
	case MessageTypeServerPong:
		return "pong"
	case MessageTypeServerWarning:
		return "warning"
	}
	return fmt.Sprintf("unknown(%d)", byte(t))
}

// Message represents a generic message for serialization/deserialization
type Message struct {
	ID       uuid.UUID       `json:"id"`
	ClientID uint32          `json:"clientID"`
	Type     MessageType     `json:"type"`
	Payload  json.RawMessage `json:"payload"`
}

// NewMessage wraps a JSON encodable body in a Message with a fresh ID.
func NewMessage(clientID uint32, messageType MessageType, body interface{}) (*Message, error) {
	var payload json.RawMessage
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s payload: %v", messageType, err)
		}
		payload = b
	}
	return &Message{
		ID:       uuid.New(),
		ClientID: clientID,
		Type:     messageType,
		Payload:  payload,
	}, nil
}

// ClientAction is a game action taken on the local player's turn.
// Target is a card order for plays and discards and a player index for clues.
type ClientAction struct {
	Type   constants.ActionType `json:"type"`
	Target int                  `json:"target"`
	Clue   *types.Clue          `json:"clue,omitempty"`
}

// ClientReplayAction is an action taken by the leader of a shared replay.
type ClientReplayAction struct {
	Type  constants.ReplayActionType `json:"type"`
	Order int                        `json:"order"`
	Suit  *int                       `json:"suit,omitempty"`
	Rank  *int                       `json:"rank,omitempty"`
}

// ServerWarning is shown to the user when the server rejects something.
type ServerWarning struct {
	Warning string `json:"warning"`
}
