package ws

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

const (
	EventRegisterUser        = "registerUser"
	EventSendMessage         = "sendMessage"
	EventReceiveMessage      = "receiveMessage"
	EventApplicationReceived = "applicationReceived"
)

var errInvalidUserID = errors.New("invalid user id")

// Envelope is the frame format in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type SendMessagePayload struct {
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Message    string `json:"message"`
}

func encodeEvent(event string, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Event: event, Data: raw})
}

// decodeUserID accepts the registerUser payload as a JSON string or number,
// or an object with a userId field.
func decodeUserID(data json.RawMessage) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "", errInvalidUserID
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return "", errInvalidUserID
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		return n.String(), nil
	}

	var obj struct {
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		if id := strings.TrimSpace(obj.UserID); id != "" {
			return id, nil
		}
	}
	return "", errInvalidUserID
}
