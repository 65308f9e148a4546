package tilemap

import "encoding/binary"

// ParseIDs converts raw bytes into tile ids, two bytes per id in
// little-endian order. A trailing odd byte is ignored.
func ParseIDs(raw []byte) []uint16 {
	ids := make([]uint16, len(raw)/bytesPerID)
	for i := range ids {
		ids[i] = binary.LittleEndian.Uint16(raw[i*bytesPerID:])
	}
	return ids
}
