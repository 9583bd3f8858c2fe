// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"time"

	"energy_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// otpTTL はワンタイムパスコードの有効期間を定義します。
	otpTTL = 5 * time.Minute

	// placeholderName はOTPリクエストで自動作成されるユーザーの表示名です。
	placeholderName = "User"

	// placeholderPassword は自動作成ユーザーのデフォルトパスワードです。
	// 本人はこのパスワードを知らないため、ログインには使用できません。
	placeholderPassword = "defaultpassword"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスまたは電話番号のユーザーが既に存在する場合、ErrDuplicateUserを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByPhone は指定された電話番号に一致するユーザーを取得します。
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)

	// SetOTP は電話番号に対して新しいパスコードと有効期限を保存します。
	// 既存の未消費コードは上書きされます。
	SetOTP(ctx context.Context, phone, otp string, expiry time.Time) error

	// ClearOTP は電話番号に対するパスコードと有効期限を消去します。
	ClearOTP(ctx context.Context, phone string) error
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users UserRepository
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository) *authUsecase {
	return &authUsecase{users: users}
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録します。
// メールアドレスまたは電話番号が既に使用されている場合、ErrDuplicateUserを返します。
func (u *authUsecase) Register(ctx context.Context, fullName, email, password, phone string) (*entity.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{
		FullName:    fullName,
		Email:       email,
		PhoneNumber: phone,
		Password:    string(hashed),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login はユーザーを認証し、成功時にユーザーを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Profile はメールアドレスでユーザーのプロフィールを取得します。
// パスワードとOTPフィールドはトランスポート層で除外されます。
func (u *authUsecase) Profile(ctx context.Context, email string) (*entity.User, error) {
	return u.users.FindByEmail(ctx, email)
}

// SendOTP は電話番号に対して6桁のパスコードを発行します。
// 未登録の電話番号の場合、プレースホルダーのユーザーを作成します。
// 新しい発行は未消費の既存コードを無効化します。
// 登録済みかどうかを呼び出し元に漏らさないため、どちらの経路でも同じ結果を返します。
func (u *authUsecase) SendOTP(ctx context.Context, phone string) error {
	otp, err := generateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate otp: %w", err)
	}
	expiry := time.Now().Add(otpTTL)

	_, err = u.users.FindByPhone(ctx, phone)
	switch {
	case errors.Is(err, ErrUserNotFound):
		// ユニークメール制約を満たすため、ランダムなプレースホルダーメールを生成する
		email, err := placeholderEmail()
		if err != nil {
			return err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(placeholderPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user := &entity.User{
			FullName:    placeholderName,
			Email:       email,
			PhoneNumber: phone,
			Password:    string(hashed),
			OTP:         &otp,
			OTPExpiry:   &expiry,
		}
		return u.users.Create(ctx, user)
	case err != nil:
		return err
	default:
		return u.users.SetOTP(ctx, phone, otp, expiry)
	}
}

// VerifyOTP は電話番号に対するパスコードを検証します。
// 成功時はコードを消去（ワンタイム保証）し、ユーザーを返します。
// 有効期限ちょうどの時刻は有効として扱います（判定は now > expiry）。
func (u *authUsecase) VerifyOTP(ctx context.Context, phone, otp string) (*entity.User, error) {
	user, err := u.users.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if user.OTP == nil || *user.OTP != otp {
		return nil, ErrInvalidOTP
	}
	if user.OTPExpiry == nil || time.Now().After(*user.OTPExpiry) {
		return nil, ErrOTPExpired
	}
	if err := u.users.ClearOTP(ctx, phone); err != nil {
		return nil, err
	}
	return user, nil
}

// generateOTP は[100000, 999999]の一様乱数から6桁のコードを生成します。
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// placeholderEmail は自動作成ユーザー用の一意なメールアドレスを生成します。
func placeholderEmail() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate placeholder email: %w", err)
	}
	return hex.EncodeToString(b) + "@example.com", nil
}
