package service

import (
	"errors"
	"regexp"

	"gorm.io/gorm"

	"simitra_backend/internals/features/spk/dto"
	"simitra_backend/internals/features/spk/model"
)

var periodeRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ValidPeriode memeriksa format periode YYYY-MM dengan bulan 01..12.
func ValidPeriode(periode string) bool {
	return periodeRe.MatchString(periode)
}

// SetActiveTemplate menonaktifkan semua template lalu mengaktifkan satu.
// Hasil akhir selalu tepat satu template aktif.
func SetActiveTemplate(db *gorm.DB, id uint) (*model.MasterTemplateSpkModel, error) {
	var template model.MasterTemplateSpkModel
	if err := db.First(&template, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("template tidak ditemukan")
		}
		return nil, err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.MasterTemplateSpkModel{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&template).Update("is_active", true).Error
	})
	if err != nil {
		return nil, err
	}

	template.IsActive = true
	return &template, nil
}

// UpsertBagianTeks menyimpan isi bagian per (template, jenis_bagian).
func UpsertBagianTeks(tx *gorm.DB, templateID uint, bagian []dto.BagianTeksRequest) error {
	for _, b := range bagian {
		if !model.IsJenisBagianValid(b.JenisBagian) {
			return errors.New("jenis bagian " + b.JenisBagian + " tidak dikenal")
		}
		var existing model.TemplateBagianTeksModel
		err := tx.Where("template_id = ? AND jenis_bagian = ?", templateID, b.JenisBagian).
			First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			row := model.TemplateBagianTeksModel{
				TemplateID:  templateID,
				JenisBagian: b.JenisBagian,
				IsiTeks:     b.IsiTeks,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
		existing.IsiTeks = b.IsiTeks
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
	}
	return nil
}

// ReplacePasal mengganti seluruh pasal template; urutan mengikuti posisi
// array request. Last write wins, tanpa merge.
func ReplacePasal(tx *gorm.DB, templateID uint, pasal []dto.PasalRequest) error {
	if err := tx.Where("template_id = ?", templateID).
		Delete(&model.TemplatePasalModel{}).Error; err != nil {
		return err
	}
	for i, p := range pasal {
		row := model.TemplatePasalModel{
			TemplateID: templateID,
			NomorPasal: p.NomorPasal,
			JudulPasal: p.JudulPasal,
			IsiPasal:   p.IsiPasal,
			Urutan:     i + 1,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
