package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"simitra_backend/internals/features/mitra/model"
)

// UpsertMitraByNIK: create-or-update keyed NIK + pastikan TahunAktif untuk
// tahun target ada. Dipanggil dari dalam transaksi.
// created=true kalau mitra baru dibuat, false kalau baris lama ditimpa.
func UpsertMitraByNIK(tx *gorm.DB, input model.MitraModel, tahun string) (model.MitraModel, bool, error) {
	var existing model.MitraModel
	err := tx.Where("nik = ?", input.NIK).First(&existing).Error

	switch {
	case err == nil:
		// Timpa field dengan payload terbaru, id tetap.
		input.ID = existing.ID
		input.CreatedAt = existing.CreatedAt
		if saveErr := tx.Save(&input).Error; saveErr != nil {
			return model.MitraModel{}, false, saveErr
		}
		if actErr := EnsureTahunAktif(tx, input.ID, tahun); actErr != nil {
			return model.MitraModel{}, false, actErr
		}
		return input, false, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		if createErr := tx.Create(&input).Error; createErr != nil {
			return model.MitraModel{}, false, createErr
		}
		if actErr := EnsureTahunAktif(tx, input.ID, tahun); actErr != nil {
			return model.MitraModel{}, false, actErr
		}
		return input, true, nil

	default:
		return model.MitraModel{}, false, err
	}
}

// EnsureTahunAktif: find-or-create baris (mitra, tahun); kalau sudah ada
// statusnya dipaksa aktif.
func EnsureTahunAktif(tx *gorm.DB, idMitra uint, tahun string) error {
	var row model.TahunAktifModel
	err := tx.Where("id_mitra = ? AND tahun = ?", idMitra, tahun).First(&row).Error

	switch {
	case err == nil:
		if row.Status != model.StatusAktif {
			row.Status = model.StatusAktif
			return tx.Save(&row).Error
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return tx.Create(&model.TahunAktifModel{
			IDMitra: idMitra,
			Tahun:   tahun,
			Status:  model.StatusAktif,
		}).Error
	default:
		return err
	}
}

// Mode hasil DeleteMitraTahun.
const (
	DeleteModeTahun = "tahun"
	DeleteModeFull  = "full"
)

// DeleteMitraTahun: semantik ganda penghapusan mitra.
// Kalau tahun diisi dan mitra punya aktivasi lebih dari satu tahun, hanya
// baris TahunAktif tahun itu yang dihapus; selain itu mitra dihapus utuh
// (aktivasi ikut lewat cascade). Seluruhnya dalam satu transaksi.
func DeleteMitraTahun(db *gorm.DB, idMitra uint, tahun string) (string, error) {
	mode := DeleteModeFull

	err := db.Transaction(func(tx *gorm.DB) error {
		var mitra model.MitraModel
		if err := tx.First(&mitra, idMitra).Error; err != nil {
			return err
		}

		var tahunCount int64
		if err := tx.Model(&model.TahunAktifModel{}).
			Where("id_mitra = ?", idMitra).
			Count(&tahunCount).Error; err != nil {
			return err
		}

		if tahun != "" && tahunCount > 1 {
			res := tx.Where("id_mitra = ? AND tahun = ?", idMitra, tahun).
				Delete(&model.TahunAktifModel{})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("mitra tidak punya aktivasi tahun %s", tahun)
			}
			mode = DeleteModeTahun
			return nil
		}

		if err := tx.Where("id_mitra = ?", idMitra).
			Delete(&model.TahunAktifModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&mitra).Error
	})

	return mode, err
}
