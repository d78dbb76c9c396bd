package pix

import "fmt"

// CRC16/CCITT-FALSE parameters mandated by the BR-Code manual.
const (
	crcPolynomial = 0x1021
	crcInitial    = 0xFFFF
)

// Checksum computes CRC16/CCITT-FALSE (poly 0x1021, init 0xFFFF, no
// reflection, no final xor) over b.
func Checksum(b []byte) uint16 {
	crc := uint32(crcInitial)
	for _, c := range b {
		crc ^= uint32(c) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ crcPolynomial
			} else {
				crc <<= 1
			}
			crc &= 0xFFFF
		}
	}
	return uint16(crc)
}

// CRC16 returns the checksum of s as four upper-case hex digits.
func CRC16(s string) string {
	return fmt.Sprintf("%04X", Checksum([]byte(s)))
}
