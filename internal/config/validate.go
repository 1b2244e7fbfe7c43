// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/tamzrod/modbus-thermo/internal/status"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	type span struct {
		start uint32
		end   uint32
		unit  string
		kind  string
	}

	if cfg == nil || len(cfg.Thermo.Units) == 0 {
		return fmt.Errorf("config: at least one unit is required")
	}

	// ------------------------------------------------------------
	// UNIT / SOURCE / PORT VALIDATION
	// ------------------------------------------------------------

	seen := make(map[string]struct{})

	// key = endpoint, value = protocol (one client per endpoint)
	protocols := make(map[string]string)

	for _, u := range cfg.Thermo.Units {
		if u.ID == "" {
			return fmt.Errorf("unit id is required")
		}
		if _, dup := seen[u.ID]; dup {
			return fmt.Errorf("unit %q: duplicate unit id", u.ID)
		}
		seen[u.ID] = struct{}{}

		if u.Source.Endpoint == "" {
			return fmt.Errorf("unit %q: source.endpoint is required", u.ID)
		}
		if u.Source.TimeoutMs < 0 {
			return fmt.Errorf("unit %q: source.timeout_ms must be >= 0", u.ID)
		}
		if u.Poll.IntervalMs < 0 {
			return fmt.Errorf("unit %q: poll.interval_ms must be >= 0", u.ID)
		}

		if err := validateRegister(u.ID, "sensor", u.Ports.Sensor, SensorRegisters); err != nil {
			return err
		}
		if err := validateRegister(u.ID, "status", u.Ports.Status, StatusRegisters); err != nil {
			return err
		}

		// sensor and status must not share a register
		if u.Ports.Sensor.FC == u.Ports.Status.FC {
			s := uint32(u.Ports.Sensor.Address)
			st := uint32(u.Ports.Status.Address)
			if st >= s && st < s+SensorRegisters {
				return fmt.Errorf(
					"unit %q: status register %d overlaps sensor registers %d-%d (fc=%d)",
					u.ID, st, s, s+SensorRegisters-1, u.Ports.Sensor.FC,
				)
			}
		}

		if len(u.Targets) == 0 {
			return fmt.Errorf("unit %q: at least one display target is required", u.ID)
		}

		for _, t := range u.Targets {
			if t.Endpoint == "" {
				return fmt.Errorf("unit %q: target %d has no endpoint", u.ID, t.ID)
			}
			switch t.Protocol {
			case "", ProtocolModbus, ProtocolIngest:
			default:
				return fmt.Errorf("unit %q: target %q: unknown protocol %q", u.ID, t.Endpoint, t.Protocol)
			}
			proto := t.Protocol
			if proto == "" {
				proto = ProtocolModbus
			}
			if prev, ok := protocols[t.Endpoint]; ok && prev != proto {
				return fmt.Errorf("endpoint %s: mixed protocols %q and %q", t.Endpoint, prev, proto)
			}
			protocols[t.Endpoint] = proto

			if uint32(t.DisplayAddress)+DisplayRegisters-1 > 0xFFFF {
				return fmt.Errorf("unit %q: target %q: display_address %d out of range", u.ID, t.Endpoint, t.DisplayAddress)
			}
		}

		// device_name sanity (ASCII only)
		for i := 0; i < len(u.Source.DeviceName); i++ {
			if u.Source.DeviceName[i] > 0x7F {
				return fmt.Errorf(
					"unit %q: device_name must contain ASCII characters only",
					u.ID,
				)
			}
		}
	}

	// ------------------------------------------------------------
	// DEVICE STATUS BLOCK VALIDATION (PER-TARGET, OPT-IN)
	// ------------------------------------------------------------

	// key = endpoint | status_unit_id | status_slot
	statusOwner := make(map[string]string)

	for _, u := range cfg.Thermo.Units {
		if u.Source.StatusSlot == nil {
			continue
		}

		slot := *u.Source.StatusSlot

		// the block must fit in the 16-bit register space
		if uint32(slot)*status.SlotsPerDevice+status.SlotsPerDevice-1 > 0xFFFF {
			return fmt.Errorf(
				"unit %q: status_slot %d out of range (max %d)",
				u.ID,
				slot,
				MaxStatusSlot,
			)
		}

		for _, t := range u.Targets {
			// each target must declare status_unit_id
			if t.StatusUnitID == nil {
				return fmt.Errorf(
					"unit %q: status_slot is set but target %q has no status_unit_id",
					u.ID,
					t.Endpoint,
				)
			}

			key := fmt.Sprintf("%s|%d|%d", t.Endpoint, *t.StatusUnitID, slot)

			if prev, exists := statusOwner[key]; exists {
				return fmt.Errorf(
					"status_slot collision: endpoint=%s status_unit_id=%d slot=%d used by units %q and %q",
					t.Endpoint,
					*t.StatusUnitID,
					slot,
					prev,
					u.ID,
				)
			}

			statusOwner[key] = u.ID
		}
	}

	// ------------------------------------------------------------
	// MEMORY GEOMETRY VALIDATION (DISPLAY + STATUS BLOCKS)
	// ------------------------------------------------------------

	// key = endpoint | memory unit_id
	spans := make(map[string][]span)

	claim := func(endpoint string, memUnitID uint8, s span) error {
		key := fmt.Sprintf("%s|%d", endpoint, memUnitID)

		for _, prev := range spans[key] {
			// overlap check (inclusive)
			if !(s.end < prev.start || s.start > prev.end) {
				return fmt.Errorf(
					"memory overlap: endpoint=%s unit_id=%d %s range=%d-%d (unit=%s) overlaps with %s range=%d-%d (unit=%s)",
					endpoint,
					memUnitID,
					s.kind,
					s.start,
					s.end,
					s.unit,
					prev.kind,
					prev.start,
					prev.end,
					prev.unit,
				)
			}
		}

		spans[key] = append(spans[key], s)
		return nil
	}

	for _, u := range cfg.Thermo.Units {
		for _, t := range u.Targets {
			start := uint32(t.DisplayAddress)
			if err := claim(t.Endpoint, t.UnitID, span{
				start: start,
				end:   start + DisplayRegisters - 1,
				unit:  u.ID,
				kind:  "display",
			}); err != nil {
				return err
			}

			if u.Source.StatusSlot == nil || t.StatusUnitID == nil {
				continue
			}

			start = uint32(*u.Source.StatusSlot) * status.SlotsPerDevice
			if err := claim(t.Endpoint, *t.StatusUnitID, span{
				start: start,
				end:   start + status.SlotsPerDevice - 1,
				unit:  u.ID,
				kind:  "status",
			}); err != nil {
				return err
			}
		}
	}

	return nil
}

func validateRegister(unitID, name string, r RegisterConfig, qty uint32) error {
	if r.FC != 3 && r.FC != 4 {
		return fmt.Errorf("unit %q: ports.%s.fc must be 3 or 4, got %d", unitID, name, r.FC)
	}
	if uint32(r.Address)+qty-1 > 0xFFFF {
		return fmt.Errorf("unit %q: ports.%s.address %d out of range", unitID, name, r.Address)
	}
	return nil
}
