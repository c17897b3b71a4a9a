package service

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"simitra_backend/internals/features/kegiatan/kegiatan/model"
)

const subIDPrefix = "sub"

// MaxSubNumber mengambil suffix numerik terbesar dari daftar id "sub<N>".
// Id yang tidak sesuai pola diabaikan.
func MaxSubNumber(ids []string) int {
	max := 0
	for _, id := range ids {
		if !strings.HasPrefix(id, subIDPrefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(id, subIDPrefix))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max
}

// NextSubkegiatanID membangkitkan id baru "sub<max+1>".
func NextSubkegiatanID(db *gorm.DB) (string, error) {
	var ids []string
	if err := db.Model(&model.SubkegiatanModel{}).Pluck("id", &ids).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", subIDPrefix, MaxSubNumber(ids)+1), nil
}
