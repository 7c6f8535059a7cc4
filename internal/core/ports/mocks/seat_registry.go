package mocks

import (
	"github.com/srgjo27/seat_reservation/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// SeatRegistry is a mock type for the SeatRegistry type
type SeatRegistry struct {
	mock.Mock
}

// GetSeat provides a mock function with given fields: seatID
func (_m *SeatRegistry) GetSeat(seatID string) (*domain.Seat, error) {
	ret := _m.Called(seatID)

	var r0 *domain.Seat
	if rf, ok := ret.Get(0).(func(string) *domain.Seat); ok {
		r0 = rf(seatID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Seat)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(seatID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Seats provides a mock function with given fields:
func (_m *SeatRegistry) Seats() []domain.Seat {
	ret := _m.Called()

	var r0 []domain.Seat
	if rf, ok := ret.Get(0).(func() []domain.Seat); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Seat)
	}

	return r0
}

// NewSeatRegistry creates a new instance of SeatRegistry. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewSeatRegistry(t interface {
	mock.TestingT
	Cleanup(func())
}) *SeatRegistry {
	m := &SeatRegistry{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
