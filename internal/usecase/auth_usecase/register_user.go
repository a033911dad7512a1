package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fashionstore/internal/domain/model"
	"fashionstore/internal/repository"
)

// 会員登録の入力
type RegisterUserInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
	Address  string
}

// 会員登録の出力
type RegisterUserOutput struct {
	UserID int64 `json:"userId"`
}

var (
	// 入力が不正
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password too short")

	// 競合
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// 入力チェックの約束（validatorパッケージが実装）
type CredentialsValidator interface {
	ValidateRegister(ctx context.Context, email string, password string) error
	ValidateLogin(ctx context.Context, email string, password string) error
}

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// RegisterUserUsecaseは会員登録の処理。
type RegisterUserUsecase struct {
	userRepo      repository.UserRepository
	validator     CredentialsValidator
	hasher        PasswordHasher
	clock         Clock
	defaultRoleID int64
}

// DI
func NewRegisterUserUsecase(
	userRepo repository.UserRepository,
	validator CredentialsValidator,
	hasher PasswordHasher,
	clock Clock,
	defaultRoleID int64,
) *RegisterUserUsecase {
	return &RegisterUserUsecase{
		userRepo:      userRepo,
		validator:     validator,
		hasher:        hasher,
		clock:         clock,
		defaultRoleID: defaultRoleID,
	}
}

// 会員登録実行
func (u *RegisterUserUsecase) Execute(ctx context.Context, in RegisterUserInput) (RegisterUserOutput, error) {
	var out RegisterUserOutput

	email := strings.TrimSpace(in.Email)

	// 形式チェックと重複チェック
	if err := u.validator.ValidateRegister(ctx, email, in.Password); err != nil {
		return out, err
	}

	// パスワードをハッシュ化
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return out, err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hashed, // 平文は保存しない
		FullName:     optional(in.FullName),
		Phone:        optional(in.Phone),
		Address:      optional(in.Address),
		RoleID:       u.defaultRoleID,
		CreatedAt:    u.clock.Now(),
	}

	// 同時登録は一意制約で弾く
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return out, ErrEmailAlreadyExists
		}
		return out, err
	}

	out.UserID = user.ID
	return out, nil
}

// 起動時に既定ロールが存在するか確認する
func CheckDefaultRole(ctx context.Context, roles repository.RoleRepository, roleID int64) error {
	if roleID <= 0 {
		return fmt.Errorf("default role id must be positive: %d", roleID)
	}
	if _, err := roles.FindByID(ctx, roleID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("default role %d does not exist", roleID)
		}
		return fmt.Errorf("lookup default role %d: %w", roleID, err)
	}
	return nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
