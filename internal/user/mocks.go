package user

import (
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUser(id int64) (*User, error) {
	args := m.Called(id)
	if u := args.Get(0); u != nil {
		return u.(*User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) CreateUser(u *User) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *MockUserRepository) FindByHandle(handle string) ([]User, error) {
	args := m.Called(handle)
	if users := args.Get(0); users != nil {
		return users.([]User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) SetTelegramID(userID, telegramID int64) error {
	args := m.Called(userID, telegramID)
	return args.Error(0)
}

func (m *MockUserRepository) FirstEligible() (*User, error) {
	args := m.Called()
	if u := args.Get(0); u != nil {
		return u.(*User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) ListByPoints() ([]User, error) {
	args := m.Called()
	if users := args.Get(0); users != nil {
		return users.([]User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) ResetDailyPlays() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
