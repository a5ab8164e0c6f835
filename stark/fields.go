package stark

import (
	"encoding/json"
	"fmt"
)

// P is the Mersenne31 prime, the modulus of the base field.
const P uint32 = (1 << 31) - 1

// M31 is a base field element, an integer modulo P.
type M31 uint32

func NewM31(v uint32) M31 {
	return M31(v % P)
}

func (me M31) Uint32() uint32 {
	return uint32(me)
}

func (me M31) Add(rhs M31) M31 {
	s := uint64(me) + uint64(rhs)
	if s >= uint64(P) {
		s -= uint64(P)
	}
	return M31(s)
}

func (me M31) Sub(rhs M31) M31 {
	s := uint64(me) + uint64(P) - uint64(rhs)
	if s >= uint64(P) {
		s -= uint64(P)
	}
	return M31(s)
}

func (me M31) Mul(rhs M31) M31 {
	return M31(uint64(me) * uint64(rhs) % uint64(P))
}

func (me M31) Neg() M31 {
	if me == 0 {
		return 0
	}
	return M31(P) - me
}

// CM31 is an element of the quadratic extension, real + imag*i with i^2 = -1.
type CM31 struct {
	Real M31
	Imag M31
}

// QM31 is an element of the quartic extension built as a degree two
// extension of CM31, first + second*u.
type QM31 struct {
	First  CM31
	Second CM31
}

func NewQM31(a, b, c, d uint32) QM31 {
	return QM31{
		First:  CM31{Real: NewM31(a), Imag: NewM31(b)},
		Second: CM31{Real: NewM31(c), Imag: NewM31(d)},
	}
}

func (me QM31) IsZero() bool {
	return me == QM31{}
}

// JSON layout is the flat four element array [first.real, first.imag,
// second.real, second.imag] used by proof dump files.

func (me QM31) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]uint32{
		uint32(me.First.Real), uint32(me.First.Imag),
		uint32(me.Second.Real), uint32(me.Second.Imag),
	})
}

func (me *QM31) UnmarshalJSON(data []byte) error {
	var vals [4]uint32
	if err := json.Unmarshal(data, &vals); err != nil {
		return fmt.Errorf("qm31: %w", err)
	}
	*me = NewQM31(vals[0], vals[1], vals[2], vals[3])
	return nil
}
