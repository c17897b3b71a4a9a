package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"simitra_backend/internals/features/spk/dto"
	"simitra_backend/internals/features/spk/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.MasterTemplateSpkModel{},
		&model.TemplateBagianTeksModel{},
		&model.TemplatePasalModel{},
	))
	return db
}

func TestValidPeriode(t *testing.T) {
	assert.True(t, ValidPeriode("2025-01"))
	assert.True(t, ValidPeriode("2025-12"))
	assert.False(t, ValidPeriode("2025-13"))
	assert.False(t, ValidPeriode("2025-00"))
	assert.False(t, ValidPeriode("2025-1"))
	assert.False(t, ValidPeriode("25-01"))
	assert.False(t, ValidPeriode("2025/01"))
	assert.False(t, ValidPeriode(""))
}

func TestSetActiveTemplateSingleActive(t *testing.T) {
	db := newTestDB(t)

	a := model.MasterTemplateSpkModel{NamaTemplate: "Template A", IsActive: true}
	b := model.MasterTemplateSpkModel{NamaTemplate: "Template B", IsActive: true}
	c := model.MasterTemplateSpkModel{NamaTemplate: "Template C"}
	require.NoError(t, db.Create(&a).Error)
	require.NoError(t, db.Create(&b).Error)
	require.NoError(t, db.Create(&c).Error)

	// dua template aktif sekaligus (data lama rusak) tetap harus beres
	activated, err := SetActiveTemplate(db, c.ID)
	require.NoError(t, err)
	assert.True(t, activated.IsActive)

	var actives []model.MasterTemplateSpkModel
	require.NoError(t, db.Where("is_active = ?", true).Find(&actives).Error)
	require.Len(t, actives, 1)
	assert.Equal(t, c.ID, actives[0].ID)
}

func TestSetActiveTemplateNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := SetActiveTemplate(db, 999)
	assert.EqualError(t, err, "template tidak ditemukan")
}

func TestUpsertBagianTeks(t *testing.T) {
	db := newTestDB(t)

	tpl := model.MasterTemplateSpkModel{NamaTemplate: "Template A"}
	require.NoError(t, db.Create(&tpl).Error)

	require.NoError(t, UpsertBagianTeks(db, tpl.ID, []dto.BagianTeksRequest{
		{JenisBagian: model.BagianPembuka, IsiTeks: "Pada hari ini"},
		{JenisBagian: model.BagianPenutup, IsiTeks: "Demikian"},
	}))

	// upsert ulang jenis yang sama: menimpa, bukan menambah
	require.NoError(t, UpsertBagianTeks(db, tpl.ID, []dto.BagianTeksRequest{
		{JenisBagian: model.BagianPembuka, IsiTeks: "Pada hari Senin"},
	}))

	var bagian []model.TemplateBagianTeksModel
	require.NoError(t, db.Where("template_id = ?", tpl.ID).Find(&bagian).Error)
	require.Len(t, bagian, 2)

	byJenis := map[string]string{}
	for _, b := range bagian {
		byJenis[b.JenisBagian] = b.IsiTeks
	}
	assert.Equal(t, "Pada hari Senin", byJenis[model.BagianPembuka])
	assert.Equal(t, "Demikian", byJenis[model.BagianPenutup])
}

func TestUpsertBagianTeksRejectsUnknownJenis(t *testing.T) {
	db := newTestDB(t)

	tpl := model.MasterTemplateSpkModel{NamaTemplate: "Template A"}
	require.NoError(t, db.Create(&tpl).Error)

	err := UpsertBagianTeks(db, tpl.ID, []dto.BagianTeksRequest{
		{JenisBagian: "lampiran", IsiTeks: "x"},
	})
	assert.Error(t, err)
}

func TestReplacePasalOrderFromArray(t *testing.T) {
	db := newTestDB(t)

	tpl := model.MasterTemplateSpkModel{NamaTemplate: "Template A"}
	require.NoError(t, db.Create(&tpl).Error)

	require.NoError(t, ReplacePasal(db, tpl.ID, []dto.PasalRequest{
		{NomorPasal: "1", JudulPasal: "Ruang Lingkup"},
		{NomorPasal: "2", JudulPasal: "Jangka Waktu"},
		{NomorPasal: "3", JudulPasal: "Pembayaran"},
	}))

	// replace utuh dengan urutan baru
	require.NoError(t, ReplacePasal(db, tpl.ID, []dto.PasalRequest{
		{NomorPasal: "1", JudulPasal: "Pembayaran"},
		{NomorPasal: "2", JudulPasal: "Ruang Lingkup"},
	}))

	var pasal []model.TemplatePasalModel
	require.NoError(t, db.Where("template_id = ?", tpl.ID).Order("urutan ASC").Find(&pasal).Error)
	require.Len(t, pasal, 2, "pasal lama harus terhapus semua")
	assert.Equal(t, 1, pasal[0].Urutan)
	assert.Equal(t, "Pembayaran", pasal[0].JudulPasal)
	assert.Equal(t, 2, pasal[1].Urutan)
	assert.Equal(t, "Ruang Lingkup", pasal[1].JudulPasal)
}
