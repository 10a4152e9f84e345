// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package transmit

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocketTransmitter carries Pronto codes to a BroadLink-style bridge
// over a WebSocket connection authenticated with HTTP Basic auth.
type WebSocketTransmitter struct {
	conn *websocket.Conn
}

// OpenWebSocketTransmitter dials wsURL (ws:// or wss://), attaching
// Basic auth headers when both username and password are non-empty.
func OpenWebSocketTransmitter(wsURL, username, password string, skipSSLVerify bool) (*WebSocketTransmitter, error) {
	u, err := url.Parse(wsURL)
	if err != nil {
		return nil, fmt.Errorf("pronto/transmit: invalid URL: %w", err)
	}
	switch u.Scheme {
	case "ws", "wss":
	default:
		return nil, fmt.Errorf("pronto/transmit: unsupported URL scheme %q (use ws:// or wss://)", u.Scheme)
	}

	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	if u.Scheme == "wss" {
		dialer.TLSClientConfig = &tls.Config{InsecureSkipVerify: skipSSLVerify}
	}

	headers := http.Header{}
	if username != "" && password != "" {
		credentials := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
		headers.Set("Authorization", "Basic "+credentials)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	conn, resp, err := dialer.DialContext(ctx, wsURL, headers)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("pronto/transmit: websocket connect failed (HTTP %d): %w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("pronto/transmit: websocket connect failed: %w", err)
	}
	return &WebSocketTransmitter{conn: conn}, nil
}

// Send writes one binary WebSocket message: "<deviceID>\n<prontoCode>".
// The bridge on the other end is expected to split on the first newline;
// the exact device-addressed transmit grammar a given bridge speaks is a
// transport contract this module only documents.
func (w *WebSocketTransmitter) Send(ctx context.Context, prontoCode string, deviceID string) error {
	payload := []byte(deviceID + "\n" + prontoCode)
	deadline, ok := ctx.Deadline()
	if ok {
		if err := w.conn.SetWriteDeadline(deadline); err != nil {
			return err
		}
	}
	return w.conn.WriteMessage(websocket.BinaryMessage, payload)
}

// Close releases the underlying WebSocket connection.
func (w *WebSocketTransmitter) Close() error {
	return w.conn.Close()
}
