package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simitra_backend/internals/constants"
	authDTO "simitra_backend/internals/features/users/auth/dto"
	authModel "simitra_backend/internals/features/users/auth/model"
	authService "simitra_backend/internals/features/users/auth/service"
	"simitra_backend/internals/features/users/user/dto"
	helper "simitra_backend/internals/helpers"
	"simitra_backend/internals/helpers/dbx"
	"simitra_backend/internals/helpers/importer"
)

var validateUser = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// =============================
// 📄 List users (opsional ?search= & ?role=)
// =============================
func (ctrl *UserController) GetAllUsers(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&authModel.UserModel{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(username) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("role = ?", role)
	}

	var users []authModel.UserModel
	if err := q.Order("username ASC").Find(&users).Error; err != nil {
		log.Println("[ERROR] Gagal ambil data user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data user")
	}

	return helper.JsonList(c, "", authDTO.ToUserDTOs(users), nil)
}

func (ctrl *UserController) GetUserByID(c *fiber.Ctx) error {
	var user authModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonOK(c, "", authDTO.ToUserDTO(user))
}

// =============================
// ➕ Create user (superadmin)
// =============================
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUser.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hash, err := authService.HashPassword(body.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := authModel.UserModel{
		Username: body.Username,
		Email:    body.Email,
		Password: hash,
		Role:     body.Role,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		if dbx.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username atau email sudah terdaftar")
		}
		log.Println("[ERROR] Gagal create user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.JsonCreated(c, "User berhasil dibuat", authDTO.ToUserDTO(user))
}

// =============================
// 🔄 Update user (partial)
// =============================
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	var user authModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	var body dto.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUser.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if body.Username != nil {
		user.Username = *body.Username
	}
	if body.Email != nil {
		user.Email = *body.Email
	}
	if body.Role != nil {
		user.Role = *body.Role
	}
	if body.Password != nil {
		hash, err := authService.HashPassword(*body.Password)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
		}
		user.Password = hash
	}

	if err := ctrl.DB.Save(&user).Error; err != nil {
		if dbx.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username atau email sudah terdaftar")
		}
		log.Println("[ERROR] Gagal update user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update user")
	}

	return helper.JsonUpdated(c, "User berhasil diupdate", authDTO.ToUserDTO(user))
}

func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	var user authModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	if err := ctrl.DB.Delete(&user).Error; err != nil {
		log.Println("[ERROR] Gagal hapus user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus user")
	}

	return helper.JsonDeleted(c, "User berhasil dihapus", fiber.Map{"id": user.ID})
}

// =============================
// 📥 Import users dari spreadsheet
// =============================
// Upsert by username/email, baris bermasalah dilewati dengan pesan
// "Baris N", satu transaksi untuk seluruh batch.
func (ctrl *UserController) ImportUsers(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File tidak ditemukan di form field 'file'")
	}
	src, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membuka file")
	}
	defer src.Close()

	rows, err := importer.ReadRows(fileHeader.Filename, src)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	header := rows[0]
	colUsername := importer.FindColumn(header, "username", "user name", "nama user")
	colEmail := importer.FindColumn(header, "email", "e-mail", "alamat email")
	colPassword := importer.FindColumn(header, "password", "kata sandi")
	colRole := importer.FindColumn(header, "role", "peran")

	if colUsername < 0 || colEmail < 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kolom username/email tidak ditemukan di header")
	}

	report := importer.Report{Errors: []string{}}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		for i, row := range rows[1:] {
			rowNum := i + 2 // 1-based, header = baris 1

			if importer.IsBlankRow(row) {
				report.AddSkip(rowNum, "baris kosong")
				continue
			}

			username := importer.Cell(row, colUsername)
			email := importer.Cell(row, colEmail)
			password := importer.Cell(row, colPassword)
			role := strings.ToLower(importer.Cell(row, colRole))

			if username == "" || email == "" {
				report.AddFail(rowNum, "username/email kosong")
				continue
			}
			if role == "" {
				role = constants.RoleUser
			}
			if !constants.IsValidRole(role) {
				report.AddFail(rowNum, "role tidak dikenal: "+role)
				continue
			}

			var existing authModel.UserModel
			findErr := tx.Where("username = ? OR email = ?", username, email).First(&existing).Error

			switch {
			case findErr == nil:
				existing.Username = username
				existing.Email = email
				existing.Role = role
				if password != "" {
					hash, hashErr := authService.HashPassword(password)
					if hashErr != nil {
						report.AddFail(rowNum, "gagal hash password")
						continue
					}
					existing.Password = hash
				}
				if saveErr := tx.Save(&existing).Error; saveErr != nil {
					report.AddFail(rowNum, "gagal update user "+username)
					continue
				}
				report.AddSuccess()

			case errors.Is(findErr, gorm.ErrRecordNotFound):
				if password == "" {
					report.AddFail(rowNum, "password kosong untuk user baru "+username)
					continue
				}
				hash, hashErr := authService.HashPassword(password)
				if hashErr != nil {
					report.AddFail(rowNum, "gagal hash password")
					continue
				}
				user := authModel.UserModel{
					Username: username,
					Email:    email,
					Password: hash,
					Role:     role,
				}
				if createErr := tx.Create(&user).Error; createErr != nil {
					report.AddFail(rowNum, "gagal simpan user "+username)
					continue
				}
				report.AddSuccess()

			default:
				return findErr // error DB di luar per-baris → rollback semua
			}
		}
		return nil
	})
	if err != nil {
		log.Println("[ERROR] Import users gagal total:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Import gagal, seluruh batch dibatalkan")
	}

	return helper.JsonOK(c, "Import selesai", report)
}
