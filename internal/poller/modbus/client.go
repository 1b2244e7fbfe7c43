// internal/poller/modbus/client.go
package modbus

import (
	"errors"
	"fmt"
	"time"

	"github.com/goburrow/modbus"
)

// Client implements poller.Client using Modbus TCP.
// This adapter is geometry-only: it issues reads and unpacks raw responses.
type Client struct {
	handler *modbus.TCPClientHandler
	client  modbus.Client
}

// Config is minimal transport config.
type Config struct {
	Endpoint string
	UnitID   uint8
	Timeout  time.Duration
}

// New creates a connected Modbus TCP client.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("modbus client: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout
	h.SlaveId = cfg.UnitID

	if err := h.Connect(); err != nil {
		return nil, fmt.Errorf("modbus client: connect %s: %w", cfg.Endpoint, err)
	}

	return &Client{
		handler: h,
		client:  modbus.NewClient(h),
	}, nil
}

// Close closes the TCP connection.
func (c *Client) Close() error {
	if c == nil || c.handler == nil {
		return nil
	}
	return c.handler.Close()
}

// ---- poller.Client interface ----

func (c *Client) ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) {
	b, err := c.client.ReadHoldingRegisters(addr, qty)
	if err != nil {
		return nil, err
	}
	return unpackRegisters(b, qty)
}

func (c *Client) ReadInputRegisters(addr, qty uint16) ([]uint16, error) {
	b, err := c.client.ReadInputRegisters(addr, qty)
	if err != nil {
		return nil, err
	}
	return unpackRegisters(b, qty)
}

// ---- helpers (pure geometry) ----

// unpackRegisters decodes big-endian register bytes.
func unpackRegisters(data []byte, qty uint16) ([]uint16, error) {
	if len(data) != int(qty)*2 {
		return nil, fmt.Errorf("modbus: register payload %d bytes, want %d", len(data), int(qty)*2)
	}
	out := make([]uint16, qty)
	for i := range out {
		out[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return out, nil
}
