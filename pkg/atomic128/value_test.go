package atomic128

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/suite"
)

type ValueTestSuite struct {
	suite.Suite
	full *Backend
}

func (s *ValueTestSuite) SetupTest() {
	s.full = fullBackend(s.T())
}

func (s *ValueTestSuite) TestAligned() {
	for i := 0; i < 64; i++ {
		v := New(WithBackend(s.full))
		s.Require().Zero(uintptr(unsafe.Pointer(v.words()))%16)
	}
}

func (s *ValueTestSuite) TestStoreLoadRoundTrip() {
	stores := map[string]func(*Value, *Value) error{
		"setOpaque":   (*Value).SetOpaque,
		"setRelease":  (*Value).SetRelease,
		"setVolatile": (*Value).SetVolatile,
	}
	loads := map[string]func(*Value, *Value) error{
		"getOpaque":   (*Value).GetOpaque,
		"getAcquire":  (*Value).GetAcquire,
		"getVolatile": (*Value).GetVolatile,
	}
	for _, order := range []WordOrder{LowFirst, HighFirst} {
		v := New(WithBackend(s.full), WithWordOrder(order))
		for sn, store := range stores {
			for ln, load := range loads {
				src := NewFrom(0x0123456789abcdef, 0xfedcba9876543210, WithBackend(s.full))
				s.Require().NoError(store(v, src), sn)
				got := New(WithBackend(s.full), WithWordOrder(order.Reversed()))
				s.Require().NoError(load(v, got), ln)
				s.Require().Equal(uint64(0x0123456789abcdef), got.High(), "%s/%s %s", sn, ln, order)
				s.Require().Equal(uint64(0xfedcba9876543210), got.Low(), "%s/%s %s", sn, ln, order)
			}
		}
	}
}

func (s *ValueTestSuite) TestWordOrderLayout() {
	lo := NewFrom(1, 2, WithBackend(s.full), WithWordOrder(LowFirst))
	a, b := lo.Words()
	s.Require().Equal([2]uint64{2, 1}, [2]uint64{a, b})

	hi := NewFrom(1, 2, WithBackend(s.full), WithWordOrder(HighFirst))
	a, b = hi.Words()
	s.Require().Equal([2]uint64{1, 2}, [2]uint64{a, b})
	s.Require().True(lo.Equal(hi))

	hi.SetWords(7, 8)
	s.Require().Equal(uint64(7), hi.High())
	s.Require().Equal(uint64(8), hi.Low())
	hi.SetHigh(9)
	hi.SetLow(10)
	s.Require().Equal("0x0000000000000009000000000000000a", hi.String())
}

func (s *ValueTestSuite) TestCopyAcrossOrders() {
	src := NewFrom(3, 4, WithBackend(s.full), WithWordOrder(HighFirst))
	dst := NewCopy(src, WithBackend(s.full), WithWordOrder(LowFirst))
	s.Require().Equal(uint64(3), dst.High())
	s.Require().Equal(uint64(4), dst.Low())
	s.Require().Equal(uint64(4), dst.Uint64())
	s.Require().Equal(LowFirst, dst.Order())
	s.Require().Same(s.full, dst.Backend())
}

func (s *ValueTestSuite) TestCompareAndSetAcrossOrders() {
	v := NewFrom(5, 6, WithBackend(s.full), WithWordOrder(LowFirst))
	expected := NewFrom(5, 6, WithWordOrder(HighFirst), WithBackend(s.full))
	candidate := NewFrom(7, 8, WithWordOrder(HighFirst), WithBackend(s.full))
	s.Require().True(v.CompareAndSet(expected, candidate))
	s.Require().Equal(uint64(7), v.High())
	s.Require().Equal(uint64(8), v.Low())
}

func (s *ValueTestSuite) TestZeroValue() {
	hostBackend(s.T())
	var v Value
	s.Require().Equal(LowFirst, v.Order())
	s.Require().Zero(v.High())
	s.Require().Zero(v.Low())
	s.Require().NotNil(v.Backend())

	expected := New()
	s.Require().True(v.CompareAndSet(expected, NewFrom(0, 1)))
	s.Require().Equal(uint64(1), v.Low())
}

func TestValueTestSuite(t *testing.T) {
	suite.Run(t, new(ValueTestSuite))
}
