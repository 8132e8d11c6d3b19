package usecase_test

import (
	"context"
	"testing"

	"cupcakes/internal/config"
	"cupcakes/internal/domain/model"
	"cupcakes/internal/usecase"
	"cupcakes/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUC(userRepo *UserRepoMock) *usecase.AuthUsecase {
	cfg := config.Config{JWTSecret: "test_secret"}
	return usecase.NewAuthUsecase(cfg, userRepo, validator.NewAuthValidator(userRepo))
}

func TestAuthUsecase_Register_ShortPassword(t *testing.T) {
	uc := newAuthUC(new(UserRepoMock))

	_, err := uc.Register(context.Background(), usecase.RegisterInput{
		FullName: "Maria Silva",
		Email:    "maria@example.com",
		Password: "short",
	})
	assertErrContains(t, err, "invalid input")
}

func TestAuthUsecase_Register_DuplicateEmail(t *testing.T) {
	userRepo := new(UserRepoMock)
	userRepo.On("FindByEmail", mock.Anything, "maria@example.com").Return(&model.User{ID: 1, Email: "maria@example.com"}, nil)

	uc := newAuthUC(userRepo)

	_, err := uc.Register(context.Background(), usecase.RegisterInput{
		FullName: "Maria Silva",
		Email:    "maria@example.com",
		Password: "password123",
	})
	assertErrContains(t, err, "email ja cadastrado")
}

func TestAuthUsecase_Register_Success(t *testing.T) {
	userRepo := new(UserRepoMock)
	userRepo.On("FindByEmail", mock.Anything, "maria@example.com").Return(nil, nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		//平文は保存しない
		return u.Email == "maria@example.com" &&
			u.Role == model.RoleUser &&
			u.PasswordHash != "password123" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")) == nil
	})).Return(nil)

	uc := newAuthUC(userRepo)

	out, err := uc.Register(context.Background(), usecase.RegisterInput{
		FullName: "Maria Silva",
		Email:    "maria@example.com",
		Password: "password123",
	})
	assert.NoError(t, err)
	assert.Equal(t, "maria@example.com", out.Email)

	userRepo.AssertExpectations(t)
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	userRepo := new(UserRepoMock)
	userRepo.On("FindByEmail", mock.Anything, "maria@example.com").Return(&model.User{
		ID: 1, Email: "maria@example.com", PasswordHash: string(hash), IsActive: true,
	}, nil)

	uc := newAuthUC(userRepo)

	_, err := uc.Login(context.Background(), usecase.LoginInput{
		Email:    "maria@example.com",
		Password: "wrongpass",
	})
	assertErrContains(t, err, "credenciais invalidas")
}

func TestAuthUsecase_Login_InactiveUser(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	userRepo := new(UserRepoMock)
	userRepo.On("FindByEmail", mock.Anything, "maria@example.com").Return(&model.User{
		ID: 1, Email: "maria@example.com", PasswordHash: string(hash), IsActive: false,
	}, nil)

	uc := newAuthUC(userRepo)

	_, err := uc.Login(context.Background(), usecase.LoginInput{
		Email:    "maria@example.com",
		Password: "password123",
	})
	assertErrContains(t, err, "forbidden")
}

func TestAuthUsecase_Login_Success_IssuesToken(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	userRepo := new(UserRepoMock)
	userRepo.On("FindByEmail", mock.Anything, "maria@example.com").Return(&model.User{
		ID: 1, Email: "maria@example.com", FullName: "Maria Silva", PasswordHash: string(hash), Role: model.RoleUser, IsActive: true,
	}, nil)
	userRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	uc := newAuthUC(userRepo)

	out, err := uc.Login(context.Background(), usecase.LoginInput{
		Email:    "maria@example.com",
		Password: "password123",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, out.Token.AccessToken)
	assert.Equal(t, int64(1), out.User.ID)
}

func TestAuthUsecase_Logout_BumpsTokenVersion(t *testing.T) {
	userRepo := new(UserRepoMock)
	userRepo.On("IncrementTokenVersion", mock.Anything, int64(1)).Return(nil)

	uc := newAuthUC(userRepo)

	err := uc.Logout(context.Background(), 1)
	assert.NoError(t, err)

	userRepo.AssertExpectations(t)
}

func TestAuthUsecase_UpdateMe_InvalidFavoriteAddress(t *testing.T) {
	userRepo := new(UserRepoMock)
	userRepo.On("FindByID", mock.Anything, int64(1)).Return(&model.User{ID: 1, FullName: "Maria"}, nil)

	uc := newAuthUC(userRepo)

	bad := model.Address{Street: "Rua A", Number: "1", District: "Centro", City: "SP", PostalCode: "999"}
	_, err := uc.UpdateMe(context.Background(), 1, usecase.UpdateProfileInput{FavoriteAddr: &bad})
	assertErrContains(t, err, "cep invalido")

	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
