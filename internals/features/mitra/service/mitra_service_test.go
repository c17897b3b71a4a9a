package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"simitra_backend/internals/features/mitra/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.MitraModel{}, &model.TahunAktifModel{}))

	t.Cleanup(func() {
		db.Exec("DELETE FROM tahun_aktif")
		db.Exec("DELETE FROM mitra")
	})
	return db
}

func TestUpsertMitraByNIKCreatesWithActivation(t *testing.T) {
	db := newTestDB(t)

	mitra, created, err := UpsertMitraByNIK(db, model.MitraModel{
		NamaLengkap: "Budi",
		NIK:         "123",
		NomorHP:     "0811",
	}, "2025")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotZero(t, mitra.ID)

	var aktif model.TahunAktifModel
	require.NoError(t, db.First(&aktif, "id_mitra = ? AND tahun = ?", mitra.ID, "2025").Error)
	assert.Equal(t, model.StatusAktif, aktif.Status)
}

func TestUpsertMitraByNIKOverwritesExisting(t *testing.T) {
	db := newTestDB(t)

	first, _, err := UpsertMitraByNIK(db, model.MitraModel{NamaLengkap: "Budi", NIK: "123"}, "2024")
	require.NoError(t, err)

	second, created, err := UpsertMitraByNIK(db, model.MitraModel{
		NamaLengkap: "Budi Santoso",
		NIK:         "123",
		Alamat:      "Jl. Merdeka 1",
	}, "2025")
	require.NoError(t, err)

	assert.False(t, created, "NIK sama tidak boleh bikin baris baru")
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Budi Santoso", second.NamaLengkap)

	var count int64
	db.Model(&model.MitraModel{}).Count(&count)
	assert.EqualValues(t, 1, count)

	// aktivasi kedua tahun harus ada
	var tahunCount int64
	db.Model(&model.TahunAktifModel{}).Where("id_mitra = ?", first.ID).Count(&tahunCount)
	assert.EqualValues(t, 2, tahunCount)
}

func TestEnsureTahunAktifReactivates(t *testing.T) {
	db := newTestDB(t)

	mitra, _, err := UpsertMitraByNIK(db, model.MitraModel{NamaLengkap: "Siti", NIK: "456"}, "2025")
	require.NoError(t, err)

	require.NoError(t, db.Model(&model.TahunAktifModel{}).
		Where("id_mitra = ?", mitra.ID).
		Update("status", model.StatusNonAktif).Error)

	require.NoError(t, EnsureTahunAktif(db, mitra.ID, "2025"))

	var aktif model.TahunAktifModel
	require.NoError(t, db.First(&aktif, "id_mitra = ? AND tahun = ?", mitra.ID, "2025").Error)
	assert.Equal(t, model.StatusAktif, aktif.Status)

	var count int64
	db.Model(&model.TahunAktifModel{}).Where("id_mitra = ?", mitra.ID).Count(&count)
	assert.EqualValues(t, 1, count, "tidak boleh ada baris ganda per (mitra, tahun)")
}

func TestDeleteMitraTahunOnlyRemovesOneYear(t *testing.T) {
	db := newTestDB(t)

	mitra, _, err := UpsertMitraByNIK(db, model.MitraModel{NamaLengkap: "Budi", NIK: "123"}, "2023")
	require.NoError(t, err)
	require.NoError(t, EnsureTahunAktif(db, mitra.ID, "2024"))

	mode, err := DeleteMitraTahun(db, mitra.ID, "2024")
	require.NoError(t, err)
	assert.Equal(t, DeleteModeTahun, mode)

	// mitra + aktivasi 2023 masih ada
	var still model.MitraModel
	require.NoError(t, db.First(&still, mitra.ID).Error)

	var tahun []model.TahunAktifModel
	require.NoError(t, db.Where("id_mitra = ?", mitra.ID).Find(&tahun).Error)
	require.Len(t, tahun, 1)
	assert.Equal(t, "2023", tahun[0].Tahun)
}

func TestDeleteMitraTahunFullWhenSingleActivation(t *testing.T) {
	db := newTestDB(t)

	mitra, _, err := UpsertMitraByNIK(db, model.MitraModel{NamaLengkap: "Budi", NIK: "123"}, "2024")
	require.NoError(t, err)

	// tahun diisi tapi cuma satu aktivasi → hapus utuh
	mode, err := DeleteMitraTahun(db, mitra.ID, "2024")
	require.NoError(t, err)
	assert.Equal(t, DeleteModeFull, mode)

	var count int64
	db.Model(&model.MitraModel{}).Count(&count)
	assert.EqualValues(t, 0, count)
	db.Model(&model.TahunAktifModel{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestDeleteMitraTahunUnknownYear(t *testing.T) {
	db := newTestDB(t)

	mitra, _, err := UpsertMitraByNIK(db, model.MitraModel{NamaLengkap: "Budi", NIK: "123"}, "2023")
	require.NoError(t, err)
	require.NoError(t, EnsureTahunAktif(db, mitra.ID, "2024"))

	_, err = DeleteMitraTahun(db, mitra.ID, "2020")
	assert.Error(t, err, "tahun tanpa aktivasi harus gagal dan rollback")

	var count int64
	db.Model(&model.TahunAktifModel{}).Where("id_mitra = ?", mitra.ID).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestImportMitraReportClassification(t *testing.T) {
	db := newTestDB(t)

	rows := [][]string{
		{"Nama Lengkap", "NIK", "No HP"},
		{"Budi", "111", "0811"},  // baris 2: sukses
		{"Tanpa NIK", "", ""},    // baris 3: gagal NIK kosong
		{"", "", ""},             // baris 4: dilewati
		{"Budi Lagi", "111", ""}, // baris 5: duplikat baris 2
		{"Siti", "222", "0812"},  // baris 6: sukses
	}

	report, err := ImportMitra(db, rows, "2025")
	require.NoError(t, err)

	assert.Equal(t, 2, report.SuccessCount)
	assert.Equal(t, 1, report.SkipCount)
	assert.Equal(t, 2, report.FailCount)

	joined := ""
	for _, e := range report.Errors {
		joined += e + "\n"
	}
	assert.Contains(t, joined, "Baris 3")
	assert.Contains(t, joined, "NIK kosong")
	assert.Contains(t, joined, "Baris 5")
	assert.Contains(t, joined, "duplikat dengan baris 2")

	// baris valid tetap ter-commit
	var count int64
	db.Model(&model.MitraModel{}).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestMapMitraColumns(t *testing.T) {
	cols := MapMitraColumns([]string{" NAMA ", "No NIK", "telepon"})

	assert.Equal(t, 0, cols.Nama)
	assert.Equal(t, 1, cols.NIK)
	assert.Equal(t, 2, cols.NomorHP)
	assert.Equal(t, -1, cols.Email)
}
