package game

import (
	"github.com/stretchr/testify/mock"
)

type GameRepositoryMock struct {
	mock.Mock
}

func (m *GameRepositoryMock) RecordPlay(entry *History) (int, error) {
	args := m.Called(entry)
	return args.Int(0), args.Error(1)
}

func (m *GameRepositoryMock) RecentHistory(limit int) ([]History, error) {
	args := m.Called(limit)
	if entries := args.Get(0); entries != nil {
		return entries.([]History), args.Error(1)
	}
	return nil, args.Error(1)
}
