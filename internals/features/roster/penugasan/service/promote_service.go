package service

import (
	"errors"

	"gorm.io/gorm"

	perencanaanModel "simitra_backend/internals/features/roster/perencanaan/model"
	"simitra_backend/internals/features/roster/penugasan/model"
)

// PromoteFromPerencanaan menyalin satu roster perencanaan ke penugasan.
// Idempotent: header di-upsert per id_subkegiatan, anggota di-upsert per
// (penugasan, mitra) dengan update jabatan/volume. Sinkronisasi satu arah,
// anggota yang sudah dihapus dari perencanaan tidak ikut terhapus di sini.
func PromoteFromPerencanaan(db *gorm.DB, idPerencanaan uint) (*model.PenugasanModel, error) {
	var perencanaan perencanaanModel.PerencanaanModel
	if err := db.Preload("Kelompok").
		First(&perencanaan, "id = ?", idPerencanaan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("perencanaan tidak ditemukan")
		}
		return nil, err
	}

	var penugasan model.PenugasanModel
	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id_subkegiatan = ?", perencanaan.IDSubkegiatan).
			First(&penugasan).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			penugasan = model.PenugasanModel{
				IDSubkegiatan:   perencanaan.IDSubkegiatan,
				IDPengawas:      perencanaan.IDPengawas,
				StatusPenugasan: model.StatusMenunggu,
			}
			if err := tx.Create(&penugasan).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		for _, anggota := range perencanaan.Kelompok {
			var existing model.KelompokPenugasanModel
			err := tx.Where("id_penugasan = ? AND id_mitra = ?", penugasan.ID, anggota.IDMitra).
				First(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				row := model.KelompokPenugasanModel{
					IDPenugasan: penugasan.ID,
					IDMitra:     anggota.IDMitra,
					KodeJabatan: anggota.KodeJabatan,
					VolumeTugas: anggota.VolumeTugas,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
			existing.KodeJabatan = anggota.KodeJabatan
			existing.VolumeTugas = anggota.VolumeTugas
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := db.Preload("Kelompok").First(&penugasan, penugasan.ID).Error; err != nil {
		return nil, err
	}
	return &penugasan, nil
}

// Approve mengubah status menunggu → disetujui. Sudah disetujui berarti no-op.
func Approve(db *gorm.DB, idPenugasan uint) (*model.PenugasanModel, error) {
	var penugasan model.PenugasanModel
	if err := db.First(&penugasan, "id = ?", idPenugasan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("penugasan tidak ditemukan")
		}
		return nil, err
	}

	if penugasan.StatusPenugasan == model.StatusDisetujui {
		return &penugasan, nil
	}

	penugasan.StatusPenugasan = model.StatusDisetujui
	if err := db.Save(&penugasan).Error; err != nil {
		return nil, err
	}
	return &penugasan, nil
}
