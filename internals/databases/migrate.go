package database

import (
	"log"
	"os"

	honorariumModel "simitra_backend/internals/features/kegiatan/honorarium/model"
	kegiatanModel "simitra_backend/internals/features/kegiatan/kegiatan/model"
	referensiModel "simitra_backend/internals/features/kegiatan/referensi/model"
	mitraModel "simitra_backend/internals/features/mitra/model"
	penugasanModel "simitra_backend/internals/features/roster/penugasan/model"
	perencanaanModel "simitra_backend/internals/features/roster/perencanaan/model"
	spkModel "simitra_backend/internals/features/spk/model"
	systemModel "simitra_backend/internals/features/system/model"
	authModel "simitra_backend/internals/features/users/auth/model"
)

// MigrateAll menjalankan AutoMigrate seluruh model. Hanya aktif kalau
// DB_AUTO_MIGRATE=true; di production skema dikelola lewat migrasi terpisah.
func MigrateAll() {
	if os.Getenv("DB_AUTO_MIGRATE") != "true" {
		return
	}
	log.Println("🛠 AutoMigrate aktif...")

	err := DB.AutoMigrate(
		&authModel.UserModel{},
		&authModel.TokenBlacklistModel{},
		&kegiatanModel.KegiatanModel{},
		&kegiatanModel.SubkegiatanModel{},
		&referensiModel.JabatanMitraModel{},
		&referensiModel.SatuanKegiatanModel{},
		&referensiModel.AturanPeriodeModel{},
		&honorariumModel.HonorariumModel{},
		&mitraModel.MitraModel{},
		&mitraModel.TahunAktifModel{},
		&perencanaanModel.PerencanaanModel{},
		&perencanaanModel.KelompokPerencanaanModel{},
		&penugasanModel.PenugasanModel{},
		&penugasanModel.KelompokPenugasanModel{},
		&spkModel.MasterTemplateSpkModel{},
		&spkModel.TemplateBagianTeksModel{},
		&spkModel.TemplatePasalModel{},
		&spkModel.SpkSettingModel{},
		&systemModel.SystemSettingModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai.")
}
