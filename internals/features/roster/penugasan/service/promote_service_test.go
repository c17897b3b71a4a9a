package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"simitra_backend/internals/features/roster/penugasan/model"
	perencanaanModel "simitra_backend/internals/features/roster/perencanaan/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&perencanaanModel.PerencanaanModel{},
		&perencanaanModel.KelompokPerencanaanModel{},
		&model.PenugasanModel{},
		&model.KelompokPenugasanModel{},
	))
	return db
}

func seedPerencanaan(t *testing.T, db *gorm.DB) perencanaanModel.PerencanaanModel {
	t.Helper()
	header := perencanaanModel.PerencanaanModel{
		IDSubkegiatan: "sub1",
		IDPengawas:    1,
	}
	require.NoError(t, db.Create(&header).Error)
	require.NoError(t, db.Create(&perencanaanModel.KelompokPerencanaanModel{
		IDPerencanaan: header.ID, IDMitra: 10, KodeJabatan: "PPL", VolumeTugas: 5,
	}).Error)
	require.NoError(t, db.Create(&perencanaanModel.KelompokPerencanaanModel{
		IDPerencanaan: header.ID, IDMitra: 11, KodeJabatan: "PML", VolumeTugas: 2,
	}).Error)
	return header
}

func TestPromoteCreatesPenugasan(t *testing.T) {
	db := newTestDB(t)
	header := seedPerencanaan(t, db)

	penugasan, err := PromoteFromPerencanaan(db, header.ID)
	require.NoError(t, err)

	assert.Equal(t, "sub1", penugasan.IDSubkegiatan)
	assert.Equal(t, model.StatusMenunggu, penugasan.StatusPenugasan)
	assert.Len(t, penugasan.Kelompok, 2)
}

func TestPromoteIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	header := seedPerencanaan(t, db)

	first, err := PromoteFromPerencanaan(db, header.ID)
	require.NoError(t, err)

	// ubah volume di perencanaan lalu promosi ulang
	require.NoError(t, db.Model(&perencanaanModel.KelompokPerencanaanModel{}).
		Where("id_perencanaan = ? AND id_mitra = ?", header.ID, 10).
		Update("volume_tugas", 9).Error)

	second, err := PromoteFromPerencanaan(db, header.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "promosi ulang tidak boleh bikin header baru")

	var headerCount int64
	db.Model(&model.PenugasanModel{}).Count(&headerCount)
	assert.EqualValues(t, 1, headerCount)

	var members []model.KelompokPenugasanModel
	require.NoError(t, db.Where("id_penugasan = ?", second.ID).Find(&members).Error)
	require.Len(t, members, 2, "anggota di-update, bukan diduplikasi")

	byMitra := map[uint]model.KelompokPenugasanModel{}
	for _, m := range members {
		byMitra[m.IDMitra] = m
	}
	assert.Equal(t, 9, byMitra[10].VolumeTugas, "volume mengikuti perencanaan terbaru")
	assert.Equal(t, 2, byMitra[11].VolumeTugas)
}

func TestPromoteDoesNotRemoveMembers(t *testing.T) {
	db := newTestDB(t)
	header := seedPerencanaan(t, db)

	_, err := PromoteFromPerencanaan(db, header.ID)
	require.NoError(t, err)

	// hapus satu anggota dari perencanaan; sinkronisasi satu arah,
	// anggota penugasan tidak ikut hilang
	require.NoError(t, db.
		Where("id_perencanaan = ? AND id_mitra = ?", header.ID, 11).
		Delete(&perencanaanModel.KelompokPerencanaanModel{}).Error)

	penugasan, err := PromoteFromPerencanaan(db, header.ID)
	require.NoError(t, err)
	assert.Len(t, penugasan.Kelompok, 2)
}

func TestPromoteUnknownPerencanaan(t *testing.T) {
	db := newTestDB(t)

	_, err := PromoteFromPerencanaan(db, 999)
	assert.EqualError(t, err, "perencanaan tidak ditemukan")
}

func TestApproveTransition(t *testing.T) {
	db := newTestDB(t)
	header := seedPerencanaan(t, db)

	penugasan, err := PromoteFromPerencanaan(db, header.ID)
	require.NoError(t, err)
	require.Equal(t, model.StatusMenunggu, penugasan.StatusPenugasan)

	approved, err := Approve(db, penugasan.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusDisetujui, approved.StatusPenugasan)

	// approve ulang: no-op, tetap disetujui
	again, err := Approve(db, penugasan.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusDisetujui, again.StatusPenugasan)
}
