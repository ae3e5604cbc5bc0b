package network

import "errors"

// ErrNotConnected is returned when the client is used before Connect.
var ErrNotConnected = errors.New("not connected")

// ErrConnectionClosedByServer is returned when the server closes the websocket
type ErrConnectionClosedByServer struct {
	Reason string
}

func (e *ErrConnectionClosedByServer) Error() string {
	if e.Reason == "" {
		return "connection closed by server"
	}
	return "connection closed by server: " + e.Reason
}

// ErrConnectionClosedByClient is returned when the websocket is closed locally
type ErrConnectionClosedByClient struct{}

func (e *ErrConnectionClosedByClient) Error() string {
	return "connection closed by client"
}
