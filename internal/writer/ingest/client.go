// internal/writer/ingest/client.go
package ingest

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/tamzrod/modbus-thermo/internal/config"
)

// Raw Ingest v1 frame (LOCKED):
//
//	0–1  magic "RI"
//	2    version 0x01
//	3    area (3 = holding registers, the only area a display lives in)
//	4–5  unit id
//	6–7  first register
//	8–9  register count
//	10+  registers, big-endian
//
// The endpoint answers with one status byte.
const (
	frameHeaderLen = 10

	frameVersion    byte = 0x01
	areaHoldingRegs byte = 0x03
	ackOK           byte = 0x00
	ackRejected     byte = 0x01
	defaultTimeout       = 2 * time.Second
)

var frameMagic = [2]byte{'R', 'I'}

// ErrRejected is returned when the endpoint refuses a frame.
var ErrRejected = errors.New("writer ingest: rejected")

// frame is one holding-register write addressed to a unit's memory.
type frame struct {
	unitID uint8
	addr   uint16
	regs   []uint16
}

func displayFrame(unitID uint8, addr uint16, bits uint32) frame {
	regs := make([]uint16, config.DisplayRegisters)
	regs[0] = uint16(bits >> 16)
	regs[1] = uint16(bits)
	return frame{unitID: unitID, addr: addr, regs: regs}
}

func (f frame) marshal() []byte {
	b := make([]byte, frameHeaderLen+2*len(f.regs))

	b[0], b[1] = frameMagic[0], frameMagic[1]
	b[2] = frameVersion
	b[3] = areaHoldingRegs
	binary.BigEndian.PutUint16(b[4:], uint16(f.unitID))
	binary.BigEndian.PutUint16(b[6:], f.addr)
	binary.BigEndian.PutUint16(b[8:], uint16(len(f.regs)))

	for i, r := range f.regs {
		binary.BigEndian.PutUint16(b[frameHeaderLen+2*i:], r)
	}
	return b
}

func decodeAck(ack byte) error {
	switch ack {
	case ackOK:
		return nil
	case ackRejected:
		return ErrRejected
	default:
		return fmt.Errorf("writer ingest: unknown ack 0x%02x", ack)
	}
}

// EndpointClient sends each write as one frame over its own connection.
type EndpointClient struct {
	endpoint string
	timeout  time.Duration
}

type Config struct {
	Endpoint string
	Timeout  time.Duration
}

func NewEndpointClient(cfg Config) (*EndpointClient, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("writer ingest: endpoint required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &EndpointClient{
		endpoint: cfg.Endpoint,
		timeout:  cfg.Timeout,
	}, nil
}

func (c *EndpointClient) Close() error { return nil }

// WriteDisplay sends the pattern as two registers, high word first.
func (c *EndpointClient) WriteDisplay(unitID uint8, addr uint16, bits uint32) error {
	return c.send(displayFrame(unitID, addr, bits))
}

func (c *EndpointClient) WriteStatusRegisters(unitID uint8, addr uint16, regs []uint16) error {
	if len(regs) == 0 {
		return nil
	}
	return c.send(frame{unitID: unitID, addr: addr, regs: regs})
}

func (c *EndpointClient) send(f frame) error {
	conn, err := net.DialTimeout("tcp", c.endpoint, c.timeout)
	if err != nil {
		return fmt.Errorf("writer ingest: dial: %w", err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
		return fmt.Errorf("writer ingest: deadline: %w", err)
	}

	// net.Conn.Write only returns short on error.
	if _, err := conn.Write(f.marshal()); err != nil {
		return fmt.Errorf("writer ingest: write: %w", err)
	}

	var ack [1]byte
	if _, err := io.ReadFull(conn, ack[:]); err != nil {
		return fmt.Errorf("writer ingest: read ack: %w", err)
	}
	return decodeAck(ack[0])
}
