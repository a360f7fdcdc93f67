package models

import "encoding/json"

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// InitialData is pushed to a session as soon as it is open
type InitialData struct {
	ServerHostname string `json:"server_hostname"`
}
