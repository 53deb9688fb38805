package pkg

import "unsafe"

// BytesToString reuses buf as the string data, so buf must not be modified afterwards.
func BytesToString(buf []byte) string {
	if len(buf) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(buf), len(buf))
}
