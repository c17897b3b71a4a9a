package service

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"simitra_backend/internals/configs"
	"simitra_backend/internals/constants"
	authDTO "simitra_backend/internals/features/users/auth/dto"
	authModel "simitra_backend/internals/features/users/auth/model"
	helper "simitra_backend/internals/helpers"
	"simitra_backend/internals/helpers/dbx"
)

const accessTTL = 24 * time.Hour

var validateAuth = validator.New()

/* ==========================
   Token helpers
========================== */

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

// IssueToken membuat access token baru tanpa mencabut token lama
// (multi sesi per akun diperbolehkan).
func IssueToken(user authModel.UserModel) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      float64(user.ID),
		"username": user.Username,
		"role":     user.Role,
		"jti":      uuid.New().String(),
		"iat":      now.Unix(),
		"exp":      now.Add(accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

/* ==========================
   REGISTER
========================== */

// Register: validasi username & email unik, hash password, buat akun role
// "user", lalu langsung terbitkan token (register = login).
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var body authDTO.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var count int64
	if err := db.Model(&authModel.UserModel{}).
		Where("username = ? OR email = ?", body.Username, body.Email).
		Count(&count).Error; err != nil {
		log.Println("[ERROR] Gagal cek duplikat user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan user")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Username atau email sudah terdaftar")
	}

	hash, err := HashPassword(body.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := authModel.UserModel{
		Username: body.Username,
		Email:    body.Email,
		Password: hash,
		Role:     constants.RoleUser,
	}
	if err := db.Create(&user).Error; err != nil {
		if dbx.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username atau email sudah terdaftar")
		}
		log.Println("[ERROR] Gagal create user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan user")
	}

	token, err := IssueToken(user)
	if err != nil {
		log.Println("[ERROR] Gagal issue token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", authDTO.AuthResponse{
		Token: token,
		User:  authDTO.ToUserDTO(user),
	})
}

/* ==========================
   LOGIN
========================== */

// Login menerima satu field identifier (username atau email).
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var body authDTO.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user authModel.UserModel
	if err := db.Where("username = ? OR email = ?", body.Identifier, body.Identifier).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Username/email atau password salah")
		}
		log.Println("[ERROR] Gagal lookup user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal login")
	}

	if err := CheckPasswordHash(user.Password, body.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username/email atau password salah")
	}

	token, err := IssueToken(user)
	if err != nil {
		log.Println("[ERROR] Gagal issue token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", authDTO.AuthResponse{
		Token: token,
		User:  authDTO.ToUserDTO(user),
	})
}

/* ==========================
   LOGOUT & ME
========================== */

// Logout mencabut HANYA token yang dipakai request ini (masuk blacklist).
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString, _ := c.Locals("token").(string)
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	// Simpan exp token supaya scheduler bisa membersihkan nanti.
	expiredAt := time.Now().Add(accessTTL)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err == nil {
		if expFloat, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(expFloat), 0)
		}
	}

	entry := authModel.TokenBlacklistModel{
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Println("[ERROR] Gagal blacklist token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}

	return helper.JsonOK(c, "Logout berhasil", nil)
}

func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(uint)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user authModel.UserModel
	if err := db.First(&user, userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonOK(c, "", authDTO.ToUserDTO(user))
}
