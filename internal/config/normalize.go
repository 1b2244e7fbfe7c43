// internal/config/normalize.go
package config

const (
	defaultTimeoutMs  = 1000
	defaultIntervalMs = 1000

	deviceNameMaxChars = 16
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	for ui := range cfg.Thermo.Units {
		u := &cfg.Thermo.Units[ui]

		if u.Source.TimeoutMs == 0 {
			u.Source.TimeoutMs = defaultTimeoutMs
		}
		if u.Poll.IntervalMs == 0 {
			u.Poll.IntervalMs = defaultIntervalMs
		}

		for ti := range u.Targets {
			if u.Targets[ti].Protocol == "" {
				u.Targets[ti].Protocol = ProtocolModbus
			}
		}

		// ------------------------------------------------------------
		// DEVICE STATUS BLOCK NORMALIZATION (OPT-IN)
		// ------------------------------------------------------------

		if u.Source.StatusSlot == nil {
			continue
		}

		// ASCII already validated; truncate to the status block capacity.
		if len(u.Source.DeviceName) > deviceNameMaxChars {
			u.Source.DeviceName = u.Source.DeviceName[:deviceNameMaxChars]
		}
	}
}
