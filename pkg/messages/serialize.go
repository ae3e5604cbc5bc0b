package messages

import (
	"bytes"
	"fmt"
	"io"

	messagefb "github.com/cbodonnell/hanabi/flatbuffers/message"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

// SerializeMessage encodes a message as a zstd compressed flatbuffer.
func SerializeMessage(m *Message) ([]byte, error) {
	b, err := SerializeMessageFlatbuffer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize message: %v", err)
	}

	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress message: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}

	return compressed.Bytes(), nil
}

// DeserializeMessage decodes the output of SerializeMessage.
func DeserializeMessage(data []byte) (*Message, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()

	b, err := io.ReadAll(compReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read decompressed message: %v", err)
	}

	message, err := DeserializeMessageFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize message: %v", err)
	}

	return message, nil
}

func SerializeMessageFlatbuffer(m *Message) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("message is nil")
	}
	builder := flatbuffers.NewBuilder(0)

	id := builder.CreateByteVector(m.ID[:])
	payload := builder.CreateByteVector(m.Payload)

	messagefb.MessageStart(builder)
	messagefb.MessageAddId(builder, id)
	messagefb.MessageAddClientId(builder, m.ClientID)
	messagefb.MessageAddType(builder, byte(m.Type))
	messagefb.MessageAddPayload(builder, payload)
	messageOffset := messagefb.MessageEnd(builder)
	builder.Finish(messageOffset)
	b := builder.FinishedBytes()

	return b, nil
}

func DeserializeMessageFlatbuffer(b []byte) (m *Message, err error) {
	if len(b) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("message too short: %d bytes", len(b))
	}
	// Accessors panic on a corrupt buffer.
	defer func() {
		if r := recover(); r != nil {
			m, err = nil, fmt.Errorf("malformed message flatbuffer: %v", r)
		}
	}()

	messageFlatbuffer := messagefb.GetRootAsMessage(b, 0)
	id, err := uuid.FromBytes(messageFlatbuffer.IdBytes())
	if err != nil {
		return nil, fmt.Errorf("failed to parse message id: %v", err)
	}

	message := &Message{
		ID:       id,
		ClientID: messageFlatbuffer.ClientId(),
		Type:     MessageType(messageFlatbuffer.Type()),
	}
	if payload := messageFlatbuffer.PayloadBytes(); len(payload) > 0 {
		message.Payload = append([]byte(nil), payload...)
	}

	return message, nil
}
