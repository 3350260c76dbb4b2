package numeric

import (
	"cmp"
	"math"
)

// Signed integer kinds.
type (
	Int   int
	Int8  int8
	Int16 int16
	Int32 int32
	Int64 int64
)

// Unsigned integer kinds.
type (
	Uint   uint
	Uint8  uint8
	Uint16 uint16
	Uint32 uint32
	Uint64 uint64
)

// Floating-point kinds. NaN compares less than every other value, matching
// cmp.Compare.
type (
	Float32 float32
	Float64 float64
)

func (v Int) Scalar() float64        { return float64(v) }
func (Int) FromScalar(f float64) Int { return saturate[Int](f, math.MinInt, math.MaxInt) }
func (v Int) Compare(o Int) int      { return cmp.Compare(v, o) }

func (v Int8) Scalar() float64         { return float64(v) }
func (Int8) FromScalar(f float64) Int8 { return saturate[Int8](f, math.MinInt8, math.MaxInt8) }
func (v Int8) Compare(o Int8) int      { return cmp.Compare(v, o) }

func (v Int16) Scalar() float64          { return float64(v) }
func (Int16) FromScalar(f float64) Int16 { return saturate[Int16](f, math.MinInt16, math.MaxInt16) }
func (v Int16) Compare(o Int16) int      { return cmp.Compare(v, o) }

func (v Int32) Scalar() float64          { return float64(v) }
func (Int32) FromScalar(f float64) Int32 { return saturate[Int32](f, math.MinInt32, math.MaxInt32) }
func (v Int32) Compare(o Int32) int      { return cmp.Compare(v, o) }

func (v Int64) Scalar() float64          { return float64(v) }
func (Int64) FromScalar(f float64) Int64 { return saturate[Int64](f, math.MinInt64, math.MaxInt64) }
func (v Int64) Compare(o Int64) int      { return cmp.Compare(v, o) }

func (v Uint) Scalar() float64         { return float64(v) }
func (Uint) FromScalar(f float64) Uint { return saturate[Uint](f, 0, math.MaxUint) }
func (v Uint) Compare(o Uint) int      { return cmp.Compare(v, o) }

func (v Uint8) Scalar() float64          { return float64(v) }
func (Uint8) FromScalar(f float64) Uint8 { return saturate[Uint8](f, 0, math.MaxUint8) }
func (v Uint8) Compare(o Uint8) int      { return cmp.Compare(v, o) }

func (v Uint16) Scalar() float64           { return float64(v) }
func (Uint16) FromScalar(f float64) Uint16 { return saturate[Uint16](f, 0, math.MaxUint16) }
func (v Uint16) Compare(o Uint16) int      { return cmp.Compare(v, o) }

func (v Uint32) Scalar() float64           { return float64(v) }
func (Uint32) FromScalar(f float64) Uint32 { return saturate[Uint32](f, 0, math.MaxUint32) }
func (v Uint32) Compare(o Uint32) int      { return cmp.Compare(v, o) }

func (v Uint64) Scalar() float64           { return float64(v) }
func (Uint64) FromScalar(f float64) Uint64 { return saturate[Uint64](f, 0, math.MaxUint64) }
func (v Uint64) Compare(o Uint64) int      { return cmp.Compare(v, o) }

func (v Float32) Scalar() float64            { return float64(v) }
func (Float32) FromScalar(f float64) Float32 { return Float32(f) }
func (v Float32) Compare(o Float32) int      { return cmp.Compare(v, o) }

func (v Float64) Scalar() float64            { return float64(v) }
func (Float64) FromScalar(f float64) Float64 { return Float64(f) }
func (v Float64) Compare(o Float64) int      { return cmp.Compare(v, o) }

// Compile-time checks that every kind satisfies the contract.
var (
	_ Value[Int]     = Int(0)
	_ Value[Int8]    = Int8(0)
	_ Value[Int16]   = Int16(0)
	_ Value[Int32]   = Int32(0)
	_ Value[Int64]   = Int64(0)
	_ Value[Uint]    = Uint(0)
	_ Value[Uint8]   = Uint8(0)
	_ Value[Uint16]  = Uint16(0)
	_ Value[Uint32]  = Uint32(0)
	_ Value[Uint64]  = Uint64(0)
	_ Value[Float32] = Float32(0)
	_ Value[Float64] = Float64(0)
)
