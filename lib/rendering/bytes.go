package rendering

import "unsafe"

// Bytes reinterprets a slice of plain values as its raw bytes in memory, in
// the layout the GPU reads them. T must not contain pointers.
func Bytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	size := int(unsafe.Sizeof(data[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*size)
}

// SizeOf returns the byte size of one T.
func SizeOf[T any]() int {
	var v T
	return int(unsafe.Sizeof(v))
}
