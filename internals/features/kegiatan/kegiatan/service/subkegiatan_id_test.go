package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"simitra_backend/internals/features/kegiatan/kegiatan/model"
)

func TestMaxSubNumber(t *testing.T) {
	assert.Equal(t, 0, MaxSubNumber(nil))
	assert.Equal(t, 0, MaxSubNumber([]string{}))
	assert.Equal(t, 12, MaxSubNumber([]string{"sub1", "sub12", "sub3"}))
	assert.Equal(t, 5, MaxSubNumber([]string{"sub5", "subX", "lainnya", "sub"}), "id di luar pola diabaikan")
	assert.Equal(t, 100, MaxSubNumber([]string{"sub9", "sub100"}), "urutan numerik, bukan leksikal")
}

func TestNextSubkegiatanID(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.KegiatanModel{}, &model.SubkegiatanModel{}))

	id, err := NextSubkegiatanID(db)
	require.NoError(t, err)
	assert.Equal(t, "sub1", id, "tabel kosong mulai dari sub1")

	keg := model.KegiatanModel{NamaKegiatan: "Sensus"}
	require.NoError(t, db.Create(&keg).Error)
	require.NoError(t, db.Create(&model.SubkegiatanModel{ID: "sub7", IDKegiatan: keg.ID, NamaSub: "Listing"}).Error)

	id, err = NextSubkegiatanID(db)
	require.NoError(t, err)
	assert.Equal(t, "sub8", id)
}
