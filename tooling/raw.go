package tooling

import "unsafe"

// RawBytes reinterprets the backing array of a slice as raw bytes. Mainly
// used to hand vertex and index data to the GPU driver without copying.
// The returned slice aliases v and must not outlive it.
func RawBytes[T any](v []T) []byte {
	if len(v) == 0 {
		return nil
	}
	size := int(unsafe.Sizeof(v[0])) * len(v)
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), size)
}
