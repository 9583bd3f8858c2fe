package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"energy_backend/internal/feature/auth/domain/entity"
)

// fakeUserRepository is an in-memory UserRepository keyed by phone number.
type fakeUserRepository struct {
	usersByPhone map[string]*entity.User
	usersByEmail map[string]*entity.User
	nextID       uint
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		usersByPhone: map[string]*entity.User{},
		usersByEmail: map[string]*entity.User{},
		nextID:       1,
	}
}

func (f *fakeUserRepository) Create(ctx context.Context, u *entity.User) error {
	if _, ok := f.usersByEmail[u.Email]; ok {
		return ErrDuplicateUser
	}
	if _, ok := f.usersByPhone[u.PhoneNumber]; ok {
		return ErrDuplicateUser
	}
	u.ID = f.nextID
	f.nextID++
	u.CreatedAt = time.Now()
	f.usersByEmail[u.Email] = u
	f.usersByPhone[u.PhoneNumber] = u
	return nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, ok := f.usersByEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	u, ok := f.usersByPhone[phone]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepository) SetOTP(ctx context.Context, phone, otp string, expiry time.Time) error {
	u, ok := f.usersByPhone[phone]
	if !ok {
		return ErrUserNotFound
	}
	u.OTP = &otp
	u.OTPExpiry = &expiry
	return nil
}

func (f *fakeUserRepository) ClearOTP(ctx context.Context, phone string) error {
	u, ok := f.usersByPhone[phone]
	if !ok {
		return ErrUserNotFound
	}
	u.OTP = nil
	u.OTPExpiry = nil
	return nil
}

func TestAuthUsecase_SendOTP_CreatesPlaceholderUser(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepository()
	uc := NewAuthUsecase(repo)

	err := uc.SendOTP(context.Background(), "+15550001")
	require.NoError(t, err)

	user := repo.usersByPhone["+15550001"]
	require.NotNil(t, user, "user was not created")
	assert.Equal(t, "User", user.FullName)
	assert.Regexp(t, `^[0-9a-f]{8}@example\.com$`, user.Email)
	require.NotNil(t, user.OTP)
	assert.Regexp(t, `^\d{6}$`, *user.OTP)
	require.NotNil(t, user.OTPExpiry)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), *user.OTPExpiry, 5*time.Second)

	// the placeholder password is hashed, never stored in plaintext
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("defaultpassword")))
}

func TestAuthUsecase_SendOTP_ReissueInvalidatesPriorCode(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepository()
	uc := NewAuthUsecase(repo)

	require.NoError(t, uc.SendOTP(context.Background(), "+15550002"))
	first := *repo.usersByPhone["+15550002"].OTP

	require.NoError(t, uc.SendOTP(context.Background(), "+15550002"))
	second := *repo.usersByPhone["+15550002"].OTP

	if first == second {
		// A collision of two uniform 6-digit draws is possible but the
		// verification below must still hold against the stored code.
		t.Logf("reissued code equals prior code: %s", first)
	} else {
		_, err := uc.VerifyOTP(context.Background(), "+15550002", first)
		assert.ErrorIs(t, err, ErrInvalidOTP, "prior code must be rejected after reissue")
	}

	user, err := uc.VerifyOTP(context.Background(), "+15550002", second)
	require.NoError(t, err)
	assert.Equal(t, "+15550002", user.PhoneNumber)
}

func TestAuthUsecase_VerifyOTP_SingleUse(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepository()
	uc := NewAuthUsecase(repo)

	require.NoError(t, uc.SendOTP(context.Background(), "+15550003"))
	code := *repo.usersByPhone["+15550003"].OTP

	user, err := uc.VerifyOTP(context.Background(), "+15550003", code)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "+15550003", user.PhoneNumber)

	// both fields are cleared together
	assert.Nil(t, repo.usersByPhone["+15550003"].OTP)
	assert.Nil(t, repo.usersByPhone["+15550003"].OTPExpiry)

	// the same code is rejected on the second attempt
	_, err = uc.VerifyOTP(context.Background(), "+15550003", code)
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestAuthUsecase_VerifyOTP_Expired(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepository()
	uc := NewAuthUsecase(repo)

	require.NoError(t, uc.SendOTP(context.Background(), "+15550004"))
	code := *repo.usersByPhone["+15550004"].OTP

	expired := time.Now().Add(-1 * time.Second)
	repo.usersByPhone["+15550004"].OTPExpiry = &expired

	_, err := uc.VerifyOTP(context.Background(), "+15550004", code)
	assert.ErrorIs(t, err, ErrOTPExpired, "matching code past expiry must be rejected")
}

func TestAuthUsecase_VerifyOTP_Failures(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepository()
	uc := NewAuthUsecase(repo)
	require.NoError(t, uc.SendOTP(context.Background(), "+15550005"))

	tests := []struct {
		name    string
		phone   string
		otp     string
		wantErr error
	}{
		{name: "unknown phone", phone: "+19990000", otp: "123456", wantErr: ErrUserNotFound},
		{name: "wrong code", phone: "+15550005", otp: "000000", wantErr: ErrInvalidOTP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.VerifyOTP(context.Background(), tt.phone, tt.otp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthUsecase_Register(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepository()
	uc := NewAuthUsecase(repo)

	user, err := uc.Register(context.Background(), "Alice Doe", "alice@example.com", "s3cretpass", "+15550010")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)

	// the password is stored as a bcrypt hash
	stored := repo.usersByEmail["alice@example.com"]
	assert.NotEqual(t, "s3cretpass", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cretpass")))

	// duplicate email is rejected and the existing record is untouched
	_, err = uc.Register(context.Background(), "Mallory", "alice@example.com", "other", "+15550011")
	assert.ErrorIs(t, err, ErrDuplicateUser)
	assert.Equal(t, "Alice Doe", repo.usersByEmail["alice@example.com"].FullName)
}

func TestAuthUsecase_Login(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepository()
	uc := NewAuthUsecase(repo)
	_, err := uc.Register(context.Background(), "Bob", "bob@example.com", "correct-horse", "+15550020")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "success", email: "bob@example.com", password: "correct-horse", wantErr: nil},
		{name: "wrong password", email: "bob@example.com", password: "battery-staple", wantErr: ErrInvalidCredentials},
		{name: "unknown email", email: "nobody@example.com", password: "correct-horse", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := uc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "bob@example.com", user.Email)
		})
	}
}

func TestGenerateOTP_Range(t *testing.T) {
	t.Parallel()

	for range 200 {
		code, err := generateOTP()
		require.NoError(t, err)
		assert.Len(t, code, 6)
		assert.GreaterOrEqual(t, code, "100000")
		assert.LessOrEqual(t, code, "999999")
	}
}
