package types

import (
	"fmt"
	"sort"
)

// NativeKind identifies a native numeric or array-element kind, the unit
// the array dtype machinery of the embedding compiler works in.
type NativeKind string

// Recognized native kinds.
const (
	KindInt8       NativeKind = "int8"
	KindInt16      NativeKind = "int16"
	KindInt32      NativeKind = "int32"
	KindInt64      NativeKind = "int64"
	KindUint8      NativeKind = "uint8"
	KindUint16     NativeKind = "uint16"
	KindUint32     NativeKind = "uint32"
	KindUint64     NativeKind = "uint64"
	KindFloat32    NativeKind = "float32"
	KindFloat64    NativeKind = "float64"
	KindComplex64  NativeKind = "complex64"
	KindComplex128 NativeKind = "complex128"
	KindBool       NativeKind = "bool_"
)

// nativeScalars maps each recognized native kind to its canonical scalar.
var nativeScalars = map[NativeKind]Scalar{
	KindInt8:       {Name: "int8"},
	KindInt16:      {Name: "int16"},
	KindInt32:      {Name: "int32"},
	KindInt64:      Int64,
	KindUint8:      {Name: "uint8"},
	KindUint16:     {Name: "uint16"},
	KindUint32:     {Name: "uint32"},
	KindUint64:     {Name: "uint64"},
	KindFloat32:    {Name: "float32"},
	KindFloat64:    Float64,
	KindComplex64:  {Name: "complex64"},
	KindComplex128: Complex128,
	KindBool:       Bool,
}

// FromNativeKind maps a native scalar kind to its canonical scalar type.
// Unknown kinds are an error.
func FromNativeKind(k NativeKind) (Type, error) {
	s, ok := nativeScalars[k]
	if !ok {
		return nil, fmt.Errorf("unknown native scalar kind %q", k)
	}
	return s, nil
}

// IsNativeKind reports whether name is a recognized native scalar kind.
func IsNativeKind(name string) bool {
	_, ok := nativeScalars[NativeKind(name)]
	return ok
}

// NativeKinds returns the recognized native kinds in sorted order.
func NativeKinds() []NativeKind {
	kinds := make([]NativeKind, 0, len(nativeScalars))
	for k := range nativeScalars {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
