// internal/writer/modbus/client.go
package modbus

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goburrow/modbus"

	"github.com/tamzrod/modbus-thermo/internal/config"
)

// EndpointClient pushes display patterns and status registers to one
// endpoint over a single TCP connection. Requests are serialized because
// the handler's SlaveId is switched per write.
type EndpointClient struct {
	mu      sync.Mutex
	handler *modbus.TCPClientHandler
	client  modbus.Client
}

type Config struct {
	Endpoint string
	Timeout  time.Duration
}

func NewEndpointClient(cfg Config) (*EndpointClient, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("writer modbus: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout

	if err := h.Connect(); err != nil {
		return nil, fmt.Errorf("writer modbus: connect %s: %w", cfg.Endpoint, err)
	}

	return &EndpointClient{
		handler: h,
		client:  modbus.NewClient(h),
	}, nil
}

func (c *EndpointClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handler.Close()
}

// WriteDisplay stores the pattern in two holding registers, high word at
// addr, low word at addr+1.
func (c *EndpointClient) WriteDisplay(unitID uint8, addr uint16, bits uint32) error {
	return c.writeHolding(unitID, addr, config.DisplayRegisters, displayPayload(bits))
}

// WriteStatusRegisters writes a run of status block registers with FC 16.
func (c *EndpointClient) WriteStatusRegisters(unitID uint8, addr uint16, regs []uint16) error {
	if len(regs) == 0 {
		return nil
	}
	return c.writeHolding(unitID, addr, uint16(len(regs)), registerPayload(regs))
}

func (c *EndpointClient) writeHolding(unitID uint8, addr, qty uint16, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.handler.SlaveId = unitID

	_, err := c.client.WriteMultipleRegisters(addr, qty, payload)
	return err
}

func displayPayload(bits uint32) []byte {
	out := make([]byte, 2*config.DisplayRegisters)
	binary.BigEndian.PutUint32(out, bits)
	return out
}

func registerPayload(regs []uint16) []byte {
	out := make([]byte, 2*len(regs))
	for i, r := range regs {
		binary.BigEndian.PutUint16(out[2*i:], r)
	}
	return out
}
