package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/zlee-dev/dice-rewards/internal/apperrors"
	"github.com/zlee-dev/dice-rewards/internal/user"
)

// pinRolls patches the die so outcomes are deterministic.
func pinRolls(t *testing.T, rolls ...int) {
	orig := rollDie
	i := 0
	rollDie = func() int {
		v := rolls[i%len(rolls)]
		i++
		return v
	}
	t.Cleanup(func() { rollDie = orig })
}

func phone(s string) *string { return &s }

func eligibleUser(plays int) *user.User {
	return &user.User{UserID: 1, Username: "alice", Phone: phone("13800000000"), Plays: plays}
}

func assertRejection(t *testing.T, err error, message string) {
	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, message, appErr.Message)
}

func TestScore(t *testing.T) {
	cases := []struct {
		userScore, botScore int
		delta               int
		result              string
	}{
		{6, 2, 10, "赢"},
		{2, 1, 10, "赢"},
		{1, 5, -5, "输"},
		{5, 6, -5, "输"},
		{3, 3, 0, "平局"},
		{1, 1, 0, "平局"},
		{6, 6, 0, "平局"},
	}
	for _, c := range cases {
		delta, result := score(c.userScore, c.botScore)
		assert.Equal(t, c.delta, delta, "rolls %d vs %d", c.userScore, c.botScore)
		assert.Equal(t, c.result, result, "rolls %d vs %d", c.userScore, c.botScore)
	}
}

func TestPlayMessage(t *testing.T) {
	assert.Equal(t, "你赢了！+10 分", playMessage("赢", 10))
	assert.Equal(t, "你输了！-5 分", playMessage("输", -5))
	assert.Equal(t, "你平局了！0 分", playMessage("平局", 0))
}

func TestService_Play_Win(t *testing.T) {
	pinRolls(t, 6, 2)
	userRepo := &user.MockUserRepository{}
	gameRepo := &GameRepositoryMock{}
	service := NewService(userRepo, gameRepo)

	userRepo.On("GetUser", int64(1)).Return(eligibleUser(0), nil)
	gameRepo.On("RecordPlay", mock.MatchedBy(func(e *History) bool {
		return e.UserID == 1 && e.UserScore == 6 && e.BotScore == 2 &&
			e.Result == "赢" && e.PointsChange == 10 && !e.CreatedAt.IsZero()
	})).Return(10, nil)

	resp, err := service.Play(1)
	assert.NoError(t, err)
	assert.Equal(t, 6, resp.UserScore)
	assert.Equal(t, 2, resp.BotScore)
	assert.Equal(t, "你赢了！+10 分", resp.Message)
	assert.Equal(t, 10, resp.TotalPoints)
	userRepo.AssertExpectations(t)
	gameRepo.AssertExpectations(t)
}

func TestService_Play_Lose(t *testing.T) {
	pinRolls(t, 1, 5)
	userRepo := &user.MockUserRepository{}
	gameRepo := &GameRepositoryMock{}
	service := NewService(userRepo, gameRepo)

	userRepo.On("GetUser", int64(1)).Return(eligibleUser(3), nil)
	gameRepo.On("RecordPlay", mock.MatchedBy(func(e *History) bool {
		return e.Result == "输" && e.PointsChange == -5
	})).Return(25, nil)

	resp, err := service.Play(1)
	assert.NoError(t, err)
	assert.Equal(t, "你输了！-5 分", resp.Message)
	assert.Equal(t, 25, resp.TotalPoints)
}

func TestService_Play_Draw(t *testing.T) {
	pinRolls(t, 4, 4)
	userRepo := &user.MockUserRepository{}
	gameRepo := &GameRepositoryMock{}
	service := NewService(userRepo, gameRepo)

	userRepo.On("GetUser", int64(1)).Return(eligibleUser(0), nil)
	gameRepo.On("RecordPlay", mock.MatchedBy(func(e *History) bool {
		return e.Result == "平局" && e.PointsChange == 0
	})).Return(0, nil)

	resp, err := service.Play(1)
	assert.NoError(t, err)
	assert.Equal(t, "你平局了！0 分", resp.Message)
}

func TestService_Play_NotRegistered(t *testing.T) {
	userRepo := &user.MockUserRepository{}
	gameRepo := &GameRepositoryMock{}
	service := NewService(userRepo, gameRepo)

	userRepo.On("GetUser", int64(42)).Return(nil, nil)

	_, err := service.Play(42)
	assertRejection(t, err, "用户未注册")
	gameRepo.AssertNotCalled(t, "RecordPlay")
}

func TestService_Play_Blocked(t *testing.T) {
	userRepo := &user.MockUserRepository{}
	gameRepo := &GameRepositoryMock{}
	service := NewService(userRepo, gameRepo)

	blocked := eligibleUser(0)
	blocked.IsBlocked = true
	userRepo.On("GetUser", int64(1)).Return(blocked, nil)

	_, err := service.Play(1)
	assertRejection(t, err, "你已被封禁")
	gameRepo.AssertNotCalled(t, "RecordPlay")
}

func TestService_Play_NoPhone(t *testing.T) {
	userRepo := &user.MockUserRepository{}
	gameRepo := &GameRepositoryMock{}
	service := NewService(userRepo, gameRepo)

	userRepo.On("GetUser", int64(1)).Return(&user.User{UserID: 1, Username: "alice"}, nil)

	_, err := service.Play(1)
	assertRejection(t, err, "请先授权手机号")
	gameRepo.AssertNotCalled(t, "RecordPlay")
}

func TestService_Play_LimitReached(t *testing.T) {
	userRepo := &user.MockUserRepository{}
	gameRepo := &GameRepositoryMock{}
	service := NewService(userRepo, gameRepo)

	userRepo.On("GetUser", int64(1)).Return(eligibleUser(10), nil)

	_, err := service.Play(1)
	assertRejection(t, err, "今日已达游戏次数上限")
	gameRepo.AssertNotCalled(t, "RecordPlay")
}

// The eligibility check passes but the guarded update loses a race with
// a concurrent play: the rejection must still be the limit one.
func TestService_Play_LimitRace(t *testing.T) {
	pinRolls(t, 5, 2)
	userRepo := &user.MockUserRepository{}
	gameRepo := &GameRepositoryMock{}
	service := NewService(userRepo, gameRepo)

	userRepo.On("GetUser", int64(1)).Return(eligibleUser(9), nil)
	gameRepo.On("RecordPlay", mock.AnythingOfType("*game.History")).Return(0, ErrPlayRejected)

	_, err := service.Play(1)
	assertRejection(t, err, "今日已达游戏次数上限")
}

func TestService_Play_StoreError(t *testing.T) {
	pinRolls(t, 5, 2)
	userRepo := &user.MockUserRepository{}
	gameRepo := &GameRepositoryMock{}
	service := NewService(userRepo, gameRepo)

	storeErr := errors.New("connection refused")
	userRepo.On("GetUser", int64(1)).Return(eligibleUser(0), nil)
	gameRepo.On("RecordPlay", mock.AnythingOfType("*game.History")).Return(0, storeErr)

	_, err := service.Play(1)
	assert.ErrorIs(t, err, storeErr)
	var appErr *apperrors.AppError
	assert.False(t, errors.As(err, &appErr), "store failures must not surface as rejections")
}
