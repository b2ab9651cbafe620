package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"boutique/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// ユーザー名またはパスワードが違う
var ErrInvalidCredentials = errors.New("invalid credentials")

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

// 管理セッション用トークンを発行する約束
type TokenIssuer interface {
	Issue(username string, now time.Time) (token string, expiresAt time.Time, err error)
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
}

// AdminLoginUsecaseは管理画面のログイン処理。
// admin_usersはDBに直接登録する運用でサインアップはない。
type AdminLoginUsecase struct {
	admins   repository.AdminUserRepository
	verifier PasswordVerifier
	issuer   TokenIssuer
	clock    Clock
}

// DI
func NewAdminLoginUsecase(
	admins repository.AdminUserRepository,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	clock Clock,
) *AdminLoginUsecase {
	return &AdminLoginUsecase{
		admins:   admins,
		verifier: verifier,
		issuer:   issuer,
		clock:    clock,
	}
}

func (u *AdminLoginUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return LoginOutput{}, ErrInvalidCredentials
	}

	admin, err := u.admins.FindByUsername(ctx, username)
	if err == repository.ErrNotFound {
		return LoginOutput{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginOutput{}, err
	}

	if !u.verifier.Verify(in.Password, admin.PasswordHash) {
		return LoginOutput{}, ErrInvalidCredentials
	}

	token, expiresAt, err := u.issuer.Issue(admin.Username, u.clock.Now())
	if err != nil {
		return LoginOutput{}, err
	}

	return LoginOutput{Token: token, ExpiresAt: expiresAt}, nil
}

type BcryptPasswordVerifier struct{}

// DI
func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
