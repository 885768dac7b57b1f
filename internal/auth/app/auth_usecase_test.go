package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"smartnotes/internal/auth/app"
	"smartnotes/internal/auth/domain/entities"
	"smartnotes/internal/auth/domain/services"
)

func TestRegister(t *testing.T) {
	testEmail := "ann@x.com"
	testName := "Ann"
	testPassword := "secret1"
	hashedPassword := "hashed_password"
	generatedUserID := "generated-user-id"

	now := time.Now()

	createdUser := &entities.User{
		ID:           generatedUserID,
		Email:        testEmail,
		Username:     testName,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	tests := []struct {
		name         string
		userName     string
		email        string
		password     string
		setupMocks   func(userRepo *mockUserRepository, passwordSvc *mockPasswordService)
		expectedID   string
		expectedErr  error
		errorContext string
	}{
		{
			name:     "Success - user registered successfully",
			userName: testName,
			email:    testEmail,
			password: testPassword,
			setupMocks: func(userRepo *mockUserRepository, passwordSvc *mockPasswordService) {
				userRepo.On("FindByEmail", mock.Anything, testEmail).Return(nil, entities.ErrUserNotFound).Once()
				passwordSvc.On("Hash", mock.Anything, testPassword).Return(hashedPassword, nil).Once()
				userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
					return u.Email == testEmail && u.Username == testName && u.PasswordHash == hashedPassword
				})).Return(createdUser, nil).Once()
			},
			expectedID: generatedUserID,
		},
		{
			name:         "Error - empty name",
			userName:     "",
			email:        testEmail,
			password:     testPassword,
			setupMocks:   func(userRepo *mockUserRepository, passwordSvc *mockPasswordService) {},
			expectedErr:  entities.ErrEmptyUsername,
			errorContext: "validating name",
		},
		{
			name:         "Error - invalid email format",
			userName:     testName,
			email:        "invalid-email",
			password:     testPassword,
			setupMocks:   func(userRepo *mockUserRepository, passwordSvc *mockPasswordService) {},
			expectedErr:  entities.ErrInvalidEmail,
			errorContext: "validating email",
		},
		{
			name:         "Error - empty password",
			userName:     testName,
			email:        testEmail,
			password:     "",
			setupMocks:   func(userRepo *mockUserRepository, passwordSvc *mockPasswordService) {},
			expectedErr:  entities.ErrEmptyPassword,
			errorContext: "validating password",
		},
		{
			name:     "Error - email already registered",
			userName: testName,
			email:    testEmail,
			password: testPassword,
			setupMocks: func(userRepo *mockUserRepository, passwordSvc *mockPasswordService) {
				userRepo.On("FindByEmail", mock.Anything, testEmail).Return(createdUser, nil).Once()
			},
			expectedErr:  services.ErrEmailAlreadyExists,
			errorContext: "checking existing user",
		},
		{
			name:     "Error - database error during user check",
			userName: testName,
			email:    testEmail,
			password: testPassword,
			setupMocks: func(userRepo *mockUserRepository, passwordSvc *mockPasswordService) {
				userRepo.On("FindByEmail", mock.Anything, testEmail).Return(nil, errors.New("database error")).Once()
			},
			expectedErr:  errors.New("database error"),
			errorContext: "checking existing user",
		},
		{
			name:     "Error - password hashing failure",
			userName: testName,
			email:    testEmail,
			password: testPassword,
			setupMocks: func(userRepo *mockUserRepository, passwordSvc *mockPasswordService) {
				userRepo.On("FindByEmail", mock.Anything, testEmail).Return(nil, entities.ErrUserNotFound).Once()
				passwordSvc.On("Hash", mock.Anything, testPassword).Return("", errors.New("hashing error")).Once()
			},
			expectedErr:  errors.New("hashing error"),
			errorContext: "hashing password",
		},
		{
			name:     "Error - duplicate detected at insert",
			userName: testName,
			email:    testEmail,
			password: testPassword,
			setupMocks: func(userRepo *mockUserRepository, passwordSvc *mockPasswordService) {
				userRepo.On("FindByEmail", mock.Anything, testEmail).Return(nil, entities.ErrUserNotFound).Once()
				passwordSvc.On("Hash", mock.Anything, testPassword).Return(hashedPassword, nil).Once()
				userRepo.On("Create", mock.Anything, mock.Anything).Return(nil, services.ErrEmailAlreadyExists).Once()
			},
			expectedErr:  services.ErrEmailAlreadyExists,
			errorContext: "creating user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(mockUserRepository)
			passwordSvc := new(mockPasswordService)
			tokenSvc := new(mockTokenService)

			tt.setupMocks(userRepo, passwordSvc)

			authUseCase := app.NewAuthUseCase(userRepo, passwordSvc, tokenSvc)

			userID, err := authUseCase.Register(context.Background(), tt.userName, tt.email, tt.password)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContext)
				assert.Empty(t, userID)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedID, userID)
			}

			userRepo.AssertExpectations(t)
			passwordSvc.AssertExpectations(t)
			tokenSvc.AssertExpectations(t)
		})
	}
}

func TestLogin(t *testing.T) {
	testEmail := "ann@x.com"
	testPassword := "secret1"
	hashedPassword := "hashed_password"
	userID := "user-id-1"
	accessToken := "access-token-123"

	now := time.Now()
	expiresAt := now.Add(7 * 24 * time.Hour)

	storedUser := &entities.User{
		ID:           userID,
		Email:        testEmail,
		Username:     "Ann",
		PasswordHash: hashedPassword,
	}

	tests := []struct {
		name         string
		email        string
		password     string
		setupMocks   func(userRepo *mockUserRepository, passwordSvc *mockPasswordService, tokenSvc *mockTokenService)
		expectSess   bool
		expectedErr  error
		errorContext string
	}{
		{
			name:     "Success - valid credentials",
			email:    testEmail,
			password: testPassword,
			setupMocks: func(userRepo *mockUserRepository, passwordSvc *mockPasswordService, tokenSvc *mockTokenService) {
				userRepo.On("FindByEmail", mock.Anything, testEmail).Return(storedUser, nil).Once()
				passwordSvc.On("Verify", mock.Anything, testPassword, hashedPassword).Return(true, nil).Once()
				tokenSvc.On("GenerateAccessToken", mock.Anything, userID).Return(accessToken, expiresAt, nil).Once()
			},
			expectSess: true,
		},
		{
			name:         "Error - empty email",
			email:        "",
			password:     testPassword,
			setupMocks:   func(userRepo *mockUserRepository, passwordSvc *mockPasswordService, tokenSvc *mockTokenService) {},
			expectedErr:  entities.ErrEmptyEmail,
			errorContext: "validating email",
		},
		{
			name:         "Error - empty password",
			email:        testEmail,
			password:     "",
			setupMocks:   func(userRepo *mockUserRepository, passwordSvc *mockPasswordService, tokenSvc *mockTokenService) {},
			expectedErr:  entities.ErrEmptyPassword,
			errorContext: "validating password",
		},
		{
			name:     "Error - unknown email yields generic message",
			email:    "ghost@x.com",
			password: testPassword,
			setupMocks: func(userRepo *mockUserRepository, passwordSvc *mockPasswordService, tokenSvc *mockTokenService) {
				userRepo.On("FindByEmail", mock.Anything, "ghost@x.com").Return(nil, entities.ErrUserNotFound).Once()
			},
			expectedErr:  services.ErrInvalidCredentials,
			errorContext: "invalid credentials",
		},
		{
			name:     "Error - wrong password yields generic message",
			email:    testEmail,
			password: "wrong",
			setupMocks: func(userRepo *mockUserRepository, passwordSvc *mockPasswordService, tokenSvc *mockTokenService) {
				userRepo.On("FindByEmail", mock.Anything, testEmail).Return(storedUser, nil).Once()
				passwordSvc.On("Verify", mock.Anything, "wrong", hashedPassword).Return(false, nil).Once()
			},
			expectedErr:  services.ErrInvalidCredentials,
			errorContext: "invalid credentials",
		},
		{
			name:     "Error - token generation failure",
			email:    testEmail,
			password: testPassword,
			setupMocks: func(userRepo *mockUserRepository, passwordSvc *mockPasswordService, tokenSvc *mockTokenService) {
				userRepo.On("FindByEmail", mock.Anything, testEmail).Return(storedUser, nil).Once()
				passwordSvc.On("Verify", mock.Anything, testPassword, hashedPassword).Return(true, nil).Once()
				tokenSvc.On("GenerateAccessToken", mock.Anything, userID).
					Return("", time.Time{}, services.ErrGeneratingJWTToken).Once()
			},
			expectedErr:  services.ErrGeneratingJWTToken,
			errorContext: "generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(mockUserRepository)
			passwordSvc := new(mockPasswordService)
			tokenSvc := new(mockTokenService)

			tt.setupMocks(userRepo, passwordSvc, tokenSvc)

			authUseCase := app.NewAuthUseCase(userRepo, passwordSvc, tokenSvc)

			session, err := authUseCase.Login(context.Background(), tt.email, tt.password)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Contains(t, err.Error(), tt.errorContext)
				assert.Nil(t, session)
			} else {
				require.NoError(t, err)
				require.NotNil(t, session)
				assert.Equal(t, userID, session.UserID)
				assert.Equal(t, "Ann", session.Username)
				assert.Equal(t, testEmail, session.Email)
				assert.Equal(t, accessToken, session.AccessToken)
				assert.Equal(t, expiresAt, session.ExpiresAt)
			}

			userRepo.AssertExpectations(t)
			passwordSvc.AssertExpectations(t)
			tokenSvc.AssertExpectations(t)
		})
	}
}

func TestLoginGenericMessageIsIdentical(t *testing.T) {
	// Сообщение об ошибке не должно различать неизвестный email и неверный пароль.
	userRepo := new(mockUserRepository)
	passwordSvc := new(mockPasswordService)
	tokenSvc := new(mockTokenService)

	storedUser := &entities.User{ID: "u1", Email: "ann@x.com", PasswordHash: "hash"}

	userRepo.On("FindByEmail", mock.Anything, "ghost@x.com").Return(nil, entities.ErrUserNotFound).Once()
	userRepo.On("FindByEmail", mock.Anything, "ann@x.com").Return(storedUser, nil).Once()
	passwordSvc.On("Verify", mock.Anything, "wrong", "hash").Return(false, nil).Once()

	authUseCase := app.NewAuthUseCase(userRepo, passwordSvc, tokenSvc)

	_, errUnknown := authUseCase.Login(context.Background(), "ghost@x.com", "wrong")
	_, errWrongPass := authUseCase.Login(context.Background(), "ann@x.com", "wrong")

	require.Error(t, errUnknown)
	require.Error(t, errWrongPass)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestProfile(t *testing.T) {
	storedUser := &entities.User{ID: "u1", Email: "ann@x.com", Username: "Ann"}

	t.Run("Success - profile found", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByID", mock.Anything, "u1").Return(storedUser, nil).Once()

		authUseCase := app.NewAuthUseCase(userRepo, new(mockPasswordService), new(mockTokenService))

		user, err := authUseCase.Profile(context.Background(), "u1")
		require.NoError(t, err)
		assert.Equal(t, storedUser, user)
		userRepo.AssertExpectations(t)
	})

	t.Run("Error - user not found", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByID", mock.Anything, "missing").Return(nil, entities.ErrUserNotFound).Once()

		authUseCase := app.NewAuthUseCase(userRepo, new(mockPasswordService), new(mockTokenService))

		user, err := authUseCase.Profile(context.Background(), "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
		assert.Nil(t, user)
	})
}
