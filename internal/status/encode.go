// internal/status/encode.go
package status

// Encode converts a Snapshot and a packed device name into a full device
// status block. Layout is protocol-locked.
// No IO. No side effects.
func Encode(s Snapshot, nameRegs []uint16) []uint16 {
	regs := make([]uint16, SlotsPerDevice)

	for _, f := range Fields(s) {
		regs[f.Slot] = f.Value
	}

	// Slots SlotReservedStart..SlotReservedEnd are RESERVED → left as zero

	for i := 0; SlotDeviceNameStart+i <= SlotDeviceNameEnd && i < len(nameRegs); i++ {
		regs[SlotDeviceNameStart+i] = nameRegs[i]
	}

	return regs
}

// Field is one live slot of the status block.
type Field struct {
	Slot  uint16
	Value uint16
}

// Fields lists the live (non-identity) slots of s in slot order.
func Fields(s Snapshot) []Field {
	return []Field{
		{SlotHealthCode, s.Health},
		{SlotLastErrorCode, s.LastErrorCode},
		{SlotSecondsInError, s.SecondsInError},
		{SlotDisplayHi, uint16(s.Display >> 16)},
		{SlotDisplayLo, uint16(s.Display)},
		{SlotTenths, uint16(s.Tenths)},
		{SlotUnit, s.Unit},
	}
}

// EncodeDeviceName packs up to 16 ASCII characters into 8 uint16 registers.
// Each register stores two ASCII bytes in big-endian order.
func EncodeDeviceName(name string) []uint16 {
	out := make([]uint16, SlotDeviceNameSlots)

	b := []byte(name)
	if len(b) > DeviceNameMaxChars {
		b = b[:DeviceNameMaxChars]
	}

	// sanitize to printable ASCII
	for i := 0; i < len(b); i++ {
		if b[i] < 0x20 || b[i] > 0x7E {
			b[i] = '?'
		}
	}

	for i := 0; i < DeviceNameMaxChars; i += 2 {
		var hi, lo byte
		if i < len(b) {
			hi = b[i]
		}
		if i+1 < len(b) {
			lo = b[i+1]
		}
		out[i/2] = uint16(hi)<<8 | uint16(lo)
	}

	return out
}
