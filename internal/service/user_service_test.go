package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "petapi/internal/errors"
	"petapi/internal/model"
)

func TestUserService_GetUser(t *testing.T) {
	tests := []struct {
		name          string
		id            uint
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "existing user",
			id:   1,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Username: "a"}, nil)
			},
			expectedError: nil,
		},
		{
			name: "missing user maps to not found",
			id:   999,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(999)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewUserService(mockRepo)
			user, err := service.GetUser(context.Background(), tt.id)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, user.ID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_ListUsers(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("List", mock.Anything, 0, 100).Return([]model.User{
		{ID: 1, Username: "a"},
		{ID: 2, Username: "b"},
	}, nil)

	service := NewUserService(mockRepo)
	users, err := service.ListUsers(context.Background(), 0, 100)
	assert.NoError(t, err)
	assert.Len(t, users, 2)

	mockRepo.AssertExpectations(t)
}
