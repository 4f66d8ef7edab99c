package server

import (
	"encoding/json"
	"time"

	"github.com/lox/holdem/internal/game"
)

// MessageType identifies a WebSocket message.
type MessageType string

const (
	// Client to server.
	MessageTypeAction MessageType = "action"

	// Server to client.
	MessageTypeState   MessageType = "state"
	MessageTypeError   MessageType = "error"
	MessageTypeWinners MessageType = "winners"
)

// Message is the envelope for every WebSocket frame.
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage wraps a payload in an envelope with the current timestamp.
func NewMessage(messageType MessageType, data any) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// ActionData is an inbound player action. The transport layer has already
// mapped the connection to a seat before this reaches the engine.
type ActionData struct {
	Seat   int    `json:"seat"`
	Action string `json:"action"`
	Amount int    `json:"amount,omitempty"`
}

// ErrorData relays a rejected action back to the sender.
type ErrorData struct {
	Message string `json:"message"`
}

// WinnerInfo is one seat's award in a winners payload.
type WinnerInfo struct {
	Seat   int    `json:"seat"`
	Amount int    `json:"amount"`
	Reason string `json:"reason"`
}

// WinnersData announces the outcome of a resolved hand.
type WinnersData struct {
	Winners []WinnerInfo `json:"winners"`
	Pot     int          `json:"pot"`
}

func winnersData(winners []game.Winner, pot int) WinnersData {
	infos := make([]WinnerInfo, len(winners))
	for i, w := range winners {
		infos[i] = WinnerInfo{Seat: w.Seat, Amount: w.Amount, Reason: w.Reason}
	}
	return WinnersData{Winners: infos, Pot: pot}
}
