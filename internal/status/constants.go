// internal/status/constants.go
package status

// Device Status Block layout constants.
// These values define the protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerDevice is the fixed number of logical slots per device.
const SlotsPerDevice = 20

// ---- SLOT INDICES ----

// SlotHealthCode holds the device health state.
const SlotHealthCode = 0

// SlotLastErrorCode holds the last fault code (see thermo.Code*).
const SlotLastErrorCode = 1

// SlotSecondsInError holds the duration (in seconds) the device has been in error.
const SlotSecondsInError = 2

// SlotDisplayHi and SlotDisplayLo hold the last pattern sent to the display.
const SlotDisplayHi = 3
const SlotDisplayLo = 4

// SlotTenths holds the last temperature in tenths of a degree (two's complement).
const SlotTenths = 5

// SlotUnit holds the last temperature unit code (1=C, 2=F, 3=error).
const SlotUnit = 6

// ---- RESERVED RANGE ----

// Slots 7–10 are reserved for future use.
const SlotReservedStart = 7
const SlotReservedEnd = 10

// ---- DEVICE NAME ----

// SlotDeviceNameStart is the first slot used for the device name.
// Device name is always placed at the END of the status block.
const SlotDeviceNameStart = 11

// SlotDeviceNameSlots is the number of slots reserved for the device name.
const SlotDeviceNameSlots = 8

// SlotDeviceNameEnd is the last slot used for the device name (inclusive).
const SlotDeviceNameEnd = SlotDeviceNameStart + SlotDeviceNameSlots - 1

// ---- LIMITS ----

// DeviceNameMaxChars is the maximum number of ASCII characters stored for device name.
const DeviceNameMaxChars = 16

// MaxSecondsInError is where seconds_in_error saturates.
const MaxSecondsInError = 65535

// ---- HEALTH CODES ----

// HealthUnknown represents an unknown or boot state.
const HealthUnknown uint16 = 0

// HealthOK represents a healthy device.
const HealthOK uint16 = 1

// HealthError represents a device error state.
const HealthError uint16 = 2
