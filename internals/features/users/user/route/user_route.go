package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simitra_backend/internals/constants"
	userController "simitra_backend/internals/features/users/user/controller"
	authMiddleware "simitra_backend/internals/middlewares/auth"
)

// 🔐 Superadmin only (kelola akun)
func UserAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := router.Group("/users",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorSuperadmin("mengelola user"),
			constants.SuperadminOnly,
		),
	)
	users.Get("/", ctrl.GetAllUsers)
	users.Get("/:id", ctrl.GetUserByID)
	users.Post("/", ctrl.CreateUser)
	users.Put("/:id", ctrl.UpdateUser)
	users.Delete("/:id", ctrl.DeleteUser)
	users.Post("/import", ctrl.ImportUsers)
}
