// cmd/thermo/once_test.go
package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/modbus-thermo/internal/thermo"
)

func TestOnceFlags_BoundToVariables(t *testing.T) {
	t.Cleanup(func() { onceSensor, onceStatus = 0, 0 })

	require.NoError(t, onceCmd.ParseFlags([]string{"--sensor", "-7", "--status", "36"}))
	assert.Equal(t, int32(-7), onceSensor)
	assert.Equal(t, int32(36), onceStatus)
}

func TestOnceFlags_RejectNonInteger(t *testing.T) {
	t.Cleanup(func() { onceSensor, onceStatus = 0, 0 })

	assert.Error(t, onceCmd.ParseFlags([]string{"--sensor", "warm"}))
}

func TestRunOnce(t *testing.T) {
	var out bytes.Buffer

	assert.Equal(t, 0, runOnce(&out, 14400, 0))
	assert.Contains(t, out.String(), "temperature: 0.0")
	assert.NotContains(t, out.String(), "error:")

	out.Reset()
	assert.Equal(t, 1, runOnce(&out, 14400, 1<<thermo.StatusFaultBit))
	assert.Contains(t, out.String(), fmt.Sprintf("0x%08X", thermo.ErrorBits))
	assert.Contains(t, out.String(), "error:")
}
