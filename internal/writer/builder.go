// internal/writer/builder.go
package writer

import (
	"errors"
	"time"

	cfg "github.com/tamzrod/modbus-thermo/internal/config"
	"github.com/tamzrod/modbus-thermo/internal/writer/ingest"
	wmodbus "github.com/tamzrod/modbus-thermo/internal/writer/modbus"
)

// BuildPlan converts one unit config into a Writer Plan.
// Assumes config has already passed validation.
func BuildPlan(u cfg.UnitConfig) (Plan, error) {
	if u.ID == "" {
		return Plan{}, errors.New("writer: unit.id required")
	}

	plan := Plan{UnitID: u.ID}

	for _, t := range u.Targets {
		plan.Targets = append(plan.Targets, DisplayTarget{
			TargetID:     t.ID,
			Endpoint:     t.Endpoint,
			UnitID:       t.UnitID,
			Address:      t.DisplayAddress,
			StatusUnitID: t.StatusUnitID,
		})
	}

	if u.Source.StatusSlot != nil {
		plan.Status = &StatusPlan{
			BaseSlot:   *u.Source.StatusSlot,
			DeviceName: u.Source.DeviceName,
		}
	}

	return plan, nil
}

// BuildEndpointClients creates one client per unique endpoint, using the
// protocol declared by the first target naming it.
func BuildEndpointClients(u cfg.UnitConfig) (map[string]EndpointClient, func() error, error) {
	timeout := time.Duration(u.Source.TimeoutMs) * time.Millisecond

	clients := make(map[string]EndpointClient)
	var closers []func() error

	closeAll := func() error {
		var last error
		for _, fn := range closers {
			if err := fn(); err != nil {
				last = err
			}
		}
		return last
	}

	for _, t := range u.Targets {
		if _, ok := clients[t.Endpoint]; ok {
			continue
		}

		switch t.Protocol {
		case cfg.ProtocolIngest:
			c, err := ingest.NewEndpointClient(ingest.Config{
				Endpoint: t.Endpoint,
				Timeout:  timeout,
			})
			if err != nil {
				_ = closeAll()
				return nil, nil, err
			}
			clients[t.Endpoint] = c
			closers = append(closers, c.Close)

		default:
			c, err := wmodbus.NewEndpointClient(wmodbus.Config{
				Endpoint: t.Endpoint,
				Timeout:  timeout,
			})
			if err != nil {
				_ = closeAll()
				return nil, nil, err
			}
			clients[t.Endpoint] = c
			closers = append(closers, c.Close)
		}
	}

	return clients, closeAll, nil
}
