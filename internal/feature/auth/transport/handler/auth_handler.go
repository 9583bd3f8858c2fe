// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"energy_backend/internal/feature/auth/domain/entity"
	"energy_backend/internal/feature/auth/transport/http/dto"
	"energy_backend/internal/feature/auth/usecase"
	"energy_backend/internal/metrics"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は指定されたフィールドで新規ユーザーを登録します。
	Register(ctx context.Context, fullName, email, password, phone string) (*entity.User, error)
	// Login はユーザーを認証し、成功時にユーザーを返します。
	Login(ctx context.Context, email, password string) (*entity.User, error)
	// Profile はメールアドレスでユーザーのプロフィールを取得します。
	Profile(ctx context.Context, email string) (*entity.User, error)
	// SendOTP は電話番号に対してワンタイムパスコードを発行します。
	SendOTP(ctx context.Context, phone string) error
	// VerifyOTP はパスコードを検証し、成功時にユーザーを返します。
	VerifyOTP(ctx context.Context, phone, otp string) (*entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - ユーザー作成失敗時（メール・電話番号重複等）も400を返却
// - 成功時はidとemailのみを返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required"})
		return
	}
	user, err := h.auth.Register(c.Request.Context(), req.FullName, req.Email, req.Password, req.PhoneNumber)
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": usecase.ErrDuplicateUser.Error()})
		return
	}
	slog.Info("user registered", "user_id", user.ID, "email", user.Email)
	c.JSON(http.StatusOK, gin.H{
		"message": "User registered successfully",
		"user":    gin.H{"id": user.ID, "email": user.Email},
	})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却（存在有無を漏らさない汎用メッセージ）
// - ストア障害時は500を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}
	user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"error": usecase.ErrInvalidCredentials.Error()})
			return
		}
		slog.Error("login store failure", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error during login"})
		return
	}
	slog.Info("user login successful", "user_id", user.ID, "email", user.Email)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    gin.H{"id": user.ID, "email": user.Email},
	})
}

// Profile はユーザープロフィール取得APIエンドポイントを処理します。
// パスワードとOTPフィールドを除いた固定のプロジェクションを返します。
func (h *AuthHandler) Profile(c *gin.Context) {
	var req dto.ProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}
	user, err := h.auth.Profile(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		slog.Error("profile store failure", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error fetching profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile fetched successfully",
		"user": gin.H{
			"id":          user.ID,
			"email":       user.Email,
			"fullName":    user.FullName,
			"phoneNumber": user.PhoneNumber,
			"createdAt":   user.CreatedAt,
		},
	})
}

// SendOTP はワンタイムパスコード発行APIエンドポイントを処理します。
// 電話番号が登録済みかどうかに関わらず同じレスポンスを返します。
// パスコードの値はレスポンスにもログにも出力しません。
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req dto.SendOTPReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone number is required"})
		return
	}
	if err := h.auth.SendOTP(c.Request.Context(), req.Phone); err != nil {
		slog.Error("send otp failed", "error", err, "phone", req.Phone)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error while sending OTP"})
		return
	}
	metrics.OTPIssuedTotal.Inc()
	slog.Info("otp issued", "phone", req.Phone)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent successfully"})
}

// VerifyOTP はワンタイムパスコード検証APIエンドポイントを処理します。
// - 未登録の電話番号は404
// - コード不一致・期限切れは401
// - 成功時はidと電話番号のみを返却
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone and OTP are required"})
		return
	}
	user, err := h.auth.VerifyOTP(c.Request.Context(), req.Phone, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			metrics.OTPVerifiedTotal.WithLabelValues("not_found").Inc()
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, usecase.ErrInvalidOTP), errors.Is(err, usecase.ErrOTPExpired):
			metrics.OTPVerifiedTotal.WithLabelValues("rejected").Inc()
			slog.Warn("otp rejected", "error", err, "phone", req.Phone)
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			slog.Error("verify otp failed", "error", err, "phone", req.Phone)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "server error while verifying OTP"})
		}
		return
	}
	metrics.OTPVerifiedTotal.WithLabelValues("success").Inc()
	slog.Info("otp verified", "user_id", user.ID, "phone", user.PhoneNumber)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OTP verified successfully",
		"user":    gin.H{"id": user.ID, "phoneNumber": user.PhoneNumber},
	})
}
