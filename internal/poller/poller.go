// internal/poller/poller.go
package poller

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/tamzrod/modbus-thermo/internal/config"
)

// Client abstracts the Modbus reads the poller needs.
type Client interface {
	ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) // FC 3
	ReadInputRegisters(addr, qty uint16) ([]uint16, error)   // FC 4
}

// Factory creates a fresh client. ONE attempt per call.
type Factory func() (Client, error)

// Config is the minimal runtime config the poller needs.
type Config struct {
	UnitID   string
	Interval time.Duration
	Sensor   Register
	Status   Register
}

// Poller is a dumb, clock-driven reader of the two input ports.
// Close may be called from another goroutine while Run is polling.
type Poller struct {
	cfg     Config
	factory Factory

	mu     sync.Mutex
	client Client
	closed bool
}

// ErrClosed is reported by polls after Close.
var ErrClosed = errors.New("poller: closed")

// New creates a poller with immutable config.
// factory may be nil, in which case a dead client is never replaced.
func New(cfg Config, client Client, factory Factory) (*Poller, error) {
	if cfg.UnitID == "" {
		return nil, errors.New("poller: unit id required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	for _, r := range []Register{cfg.Sensor, cfg.Status} {
		if r.FC != 3 && r.FC != 4 {
			return nil, fmt.Errorf("poller: unsupported function code %d", r.FC)
		}
	}
	return &Poller{cfg: cfg, client: client, factory: factory}, nil
}

// PollOnce performs exactly one poll cycle: SENSOR then STATUS.
// All-or-nothing: any failure aborts the cycle and drops the client so the
// next cycle reconnects through the factory.
func (p *Poller) PollOnce() PollResult {
	res := PollResult{
		UnitID: p.cfg.UnitID,
		At:     time.Now(),
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		res.Err = ErrClosed
		return res
	}

	if p.client == nil {
		if p.factory == nil {
			res.Err = errors.New("poller: no client")
			return res
		}
		c, err := p.factory()
		if err != nil {
			res.Err = fmt.Errorf("poller: connect: %w", err)
			return res
		}
		p.client = c
	}

	sensor, err := p.read(p.cfg.Sensor, config.SensorRegisters)
	if err != nil {
		p.drop()
		res.Err = fmt.Errorf("poller: sensor read: %w", err)
		return res
	}

	status, err := p.read(p.cfg.Status, config.StatusRegisters)
	if err != nil {
		p.drop()
		res.Err = fmt.Errorf("poller: status read: %w", err)
		return res
	}

	// Commit only if both reads succeeded
	res.Sensor = int32(uint32(sensor[0])<<16 | uint32(sensor[1]))
	res.Status = int32(status[0])
	return res
}

func (p *Poller) read(r Register, qty uint16) ([]uint16, error) {
	var (
		regs []uint16
		err  error
	)

	switch r.FC {
	case 3:
		regs, err = p.client.ReadHoldingRegisters(r.Address, qty)
	case 4:
		regs, err = p.client.ReadInputRegisters(r.Address, qty)
	default:
		return nil, errors.New("poller: unsupported function code")
	}
	if err != nil {
		return nil, err
	}
	if len(regs) != int(qty) {
		return nil, fmt.Errorf("short read: got %d registers, want %d", len(regs), qty)
	}
	return regs, nil
}

// Close releases the current client. Later polls report ErrClosed and
// never reconnect.
func (p *Poller) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	c, ok := p.client.(io.Closer)
	p.client = nil
	if !ok {
		return nil
	}
	return c.Close()
}

// drop discards the current client after a transport failure.
// Caller holds p.mu.
func (p *Poller) drop() {
	if p.factory == nil {
		return
	}
	if c, ok := p.client.(io.Closer); ok {
		_ = c.Close()
	}
	p.client = nil
}
