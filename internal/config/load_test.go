// internal/config/load_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
thermo:
  units:
    - id: boiler
      source:
        endpoint: "10.0.0.2:502"
        unit_id: 1
        status_slot: 2
        device_name: "BOILER-ROOM-THERMOMETER"
      ports:
        sensor: { fc: 4, address: 0 }
        status: { fc: 4, address: 2 }
      targets:
        - id: 1
          endpoint: "10.0.0.3:502"
          unit_id: 1
          display_address: 100
          status_unit_id: 10
        - id: 2
          endpoint: "10.0.0.4:9000"
          protocol: ingest
          unit_id: 1
          display_address: 0
          status_unit_id: 10
`

func TestLoad_ValidateNormalize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thermo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, Validate(cfg))
	Normalize(cfg)

	require.Len(t, cfg.Thermo.Units, 1)
	u := cfg.Thermo.Units[0]

	assert.Equal(t, "boiler", u.ID)
	assert.Equal(t, RegisterConfig{FC: 4, Address: 2}, u.Ports.Status)
	assert.Equal(t, defaultTimeoutMs, u.Source.TimeoutMs)
	assert.Equal(t, defaultIntervalMs, u.Poll.IntervalMs)
	assert.Equal(t, "BOILER-ROOM-THER", u.Source.DeviceName)
	assert.Equal(t, ProtocolModbus, u.Targets[0].Protocol)
	assert.Equal(t, ProtocolIngest, u.Targets[1].Protocol)
	require.NotNil(t, u.Targets[0].StatusUnitID)
	assert.Equal(t, uint8(10), *u.Targets[0].StatusUnitID)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("thermo:\n  unitz: []\n"))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
