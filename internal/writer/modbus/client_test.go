// internal/writer/modbus/client_test.go
package modbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/modbus-thermo/internal/thermo"
)

func TestDisplayPayload_HighWordFirst(t *testing.T) {
	assert.Equal(t, []byte{0x06, 0xF7, 0xEF, 0x80}, displayPayload(thermo.ErrorBits))
	assert.Equal(t, []byte{0x10, 0x00, 0x00, 0x7B}, displayPayload(0x1000007B))
}

func TestRegisterPayload_BigEndian(t *testing.T) {
	assert.Equal(t, []byte{0x00, 0x01, 0xAB, 0xCD}, registerPayload([]uint16{0x0001, 0xABCD}))
	assert.Empty(t, registerPayload(nil))
}

func TestNewEndpointClient_RequiresEndpoint(t *testing.T) {
	_, err := NewEndpointClient(Config{})
	require.Error(t, err)
}
