package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	kegiatanRoute "simitra_backend/internals/features/kegiatan/route"
	laporanRoute "simitra_backend/internals/features/laporan/route"
	mitraRoute "simitra_backend/internals/features/mitra/route"
	rosterRoute "simitra_backend/internals/features/roster/route"
	spkRoute "simitra_backend/internals/features/spk/route"
	systemRoute "simitra_backend/internals/features/system/route"
	authRoute "simitra_backend/internals/features/users/auth/route"
	userRoute "simitra_backend/internals/features/users/user/route"
	authMiddleware "simitra_backend/internals/middlewares/auth"
)

// SetupRoutes merakit seluruh route aplikasi.
// Publik: auth, health, system settings branding. Sisanya di belakang JWT;
// mutasi di belakang guard role per fitur.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)
	authRoute.AuthRoutes(app, db)
	systemRoute.SystemPublicRoutes(app, db)

	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	// 📖 Read untuk semua user login
	kegiatanRoute.KegiatanUserRoutes(api, db)
	mitraRoute.MitraUserRoutes(api, db)
	rosterRoute.RosterUserRoutes(api, db)
	laporanRoute.LaporanUserRoutes(api, db)
	spkRoute.SpkUserRoutes(api, db)

	// 🔐 Mutasi di belakang guard role
	kegiatanRoute.KegiatanAdminRoutes(api, db)
	mitraRoute.MitraAdminRoutes(api, db)
	rosterRoute.RosterAdminRoutes(api, db)
	spkRoute.SpkAdminRoutes(api, db)
	systemRoute.SystemAdminRoutes(api, db)
	userRoute.UserAdminRoutes(api, db)
}
