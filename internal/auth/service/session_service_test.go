package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	autherror "github.com/farberstyle-netizen/holistic-dog-site/internal/errors"

	"github.com/farberstyle-netizen/holistic-dog-site/internal/auth/domain"
	"github.com/farberstyle-netizen/holistic-dog-site/internal/auth/service"
	"github.com/farberstyle-netizen/holistic-dog-site/internal/mocks"
	"github.com/farberstyle-netizen/holistic-dog-site/pkg/constant"
)

func TestSessionService_Issue_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := mocks.NewMockSessionRepository(ctrl)
	s := service.NewSessionService(mockSessions)

	var stored *domain.Session

	// Mock expectations
	mockSessions.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sess *domain.Session) error {
			stored = sess
			return nil
		})

	before := time.Now()
	token, expiresAt, err := s.Issue(context.Background(), "user-id")

	assert.NoError(t, err)
	assert.Len(t, token, constant.SessionTokenBytes*2)
	assert.NotNil(t, stored)
	assert.Equal(t, token, stored.Token)
	assert.Equal(t, "user-id", stored.UserID)
	assert.Equal(t, stored.ExpiresAt, expiresAt)
	assert.WithinDuration(t, before.Add(constant.SessionTTL), expiresAt, 5*time.Second)
}

func TestSessionService_Issue_TokensAreUnique(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := mocks.NewMockSessionRepository(ctrl)
	s := service.NewSessionService(mockSessions)

	// Mock expectations
	mockSessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first, _, err := s.Issue(context.Background(), "user-id")
	assert.NoError(t, err)

	second, _, err := s.Issue(context.Background(), "user-id")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSessionService_Issue_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := mocks.NewMockSessionRepository(ctrl)
	s := service.NewSessionService(mockSessions)

	// Mock expectations
	mockSessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

	token, _, err := s.Issue(context.Background(), "user-id")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store session")
	assert.Empty(t, token)
}

func TestSessionService_Validate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := mocks.NewMockSessionRepository(ctrl)
	s := service.NewSessionService(mockSessions)

	us := &domain.UserSession{
		Token:     "session-token",
		ExpiresAt: time.Now().Add(time.Hour),
		UserID:    "user-id",
		Email:     "test@example.com",
		FirstName: "Test",
	}

	// Mock expectations
	mockSessions.EXPECT().GetWithUser(gomock.Any(), "session-token").Return(us, nil)

	result, err := s.Validate(context.Background(), "session-token")

	assert.NoError(t, err)
	assert.Equal(t, us, result)
}

func TestSessionService_Validate_EmptyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := mocks.NewMockSessionRepository(ctrl)
	s := service.NewSessionService(mockSessions)

	result, err := s.Validate(context.Background(), "")

	assert.Error(t, err)
	assert.Equal(t, autherror.ErrNoSessionToken, err)
	assert.Nil(t, result)
}

func TestSessionService_Validate_UnknownOrExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := mocks.NewMockSessionRepository(ctrl)
	s := service.NewSessionService(mockSessions)

	// Mock expectations
	mockSessions.EXPECT().GetWithUser(gomock.Any(), "stale-token").Return(nil, nil)

	result, err := s.Validate(context.Background(), "stale-token")

	assert.Error(t, err)
	assert.Equal(t, autherror.ErrSessionInvalid, err)
	assert.Nil(t, result)
}

func TestSessionService_Validate_LookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := mocks.NewMockSessionRepository(ctrl)
	s := service.NewSessionService(mockSessions)

	// Mock expectations
	mockSessions.EXPECT().GetWithUser(gomock.Any(), "session-token").Return(nil, errors.New("connection reset"))

	result, err := s.Validate(context.Background(), "session-token")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "session lookup failed")
	assert.Nil(t, result)
}

func TestSessionService_Revoke(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := mocks.NewMockSessionRepository(ctrl)
	s := service.NewSessionService(mockSessions)

	// Mock expectations
	mockSessions.EXPECT().Delete(gomock.Any(), "session-token").Return(nil)

	assert.NoError(t, s.Revoke(context.Background(), "session-token"))
}

func TestSessionService_RevokeAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := mocks.NewMockSessionRepository(ctrl)
	s := service.NewSessionService(mockSessions)

	// Mock expectations
	mockSessions.EXPECT().DeleteAllForUser(gomock.Any(), "user-id").Return(nil)

	assert.NoError(t, s.RevokeAll(context.Background(), "user-id"))
}
