package ws

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
)

// Message represents a WebSocket message with type-based routing.
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Message types - Slots
const (
	TypeOpenSlot   = "open_slot"
	TypeCloseSlot  = "close_slot"
	TypeListSlots  = "list_slots"
	TypeDeleteSlot = "delete_slot"
	TypeSave       = "save"
)

// Message types - Gameplay
const (
	TypeInput    = "input"
	TypeAction   = "action"
	TypeSnapshot = "snapshot"
	TypeEvents   = "events"
	TypeOutcome  = "outcome"
)

// Message types - System
const (
	TypeError      = "error"
	TypeSlotOpened = "slot_opened"
	TypeSlotClosed = "slot_closed"
	TypeSlotList   = "slot_list"
	TypeSaved      = "saved"
	TypeShutdown   = "shutdown"
)

// ErrorMessage is sent when an error occurs.
type ErrorMessage struct {
	Message string `json:"message"`
}

// NewErrorMessage creates a Message with an error payload.
func NewErrorMessage(msg string) Message {
	data, _ := json.Marshal(ErrorMessage{Message: msg})
	return Message{Type: TypeError, Data: data}
}

// NewMessage creates a Message with a typed payload.
func NewMessage(msgType string, payload any) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: msgType, Data: data}, nil
}

// BinaryMessage is the msgpack envelope of binary frames. Payload structs
// are encoded with their json field names.
type BinaryMessage struct {
	Type string `msgpack:"type"`
	Data any    `msgpack:"data"`
}

// EncodeBinary encodes a typed payload as a msgpack frame.
func EncodeBinary(msgType string, payload any) ([]byte, error) {
	return marshalMsgpack(BinaryMessage{Type: msgType, Data: payload})
}

// DecodeBinary decodes a msgpack frame into its type and payload; the
// payload is decoded into dst.
func DecodeBinary(data []byte, dst any) (string, error) {
	var env struct {
		Type string             `msgpack:"type"`
		Data msgpack.RawMessage `msgpack:"data"`
	}
	if err := msgpack.Unmarshal(data, &env); err != nil {
		return "", err
	}
	if dst != nil {
		if err := unmarshalMsgpack(env.Data, dst); err != nil {
			return env.Type, err
		}
	}
	return env.Type, nil
}
