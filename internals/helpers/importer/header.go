package importer

import "strings"

// NormalizeHeader menyamakan nama kolom: trim + lowercase.
func NormalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return out
}

// FindColumn mencari index kolom dari daftar sinonim nama header.
// Header dibandingkan setelah dinormalisasi; -1 kalau tidak ditemukan
// (kolom opsional tidak menggagalkan import).
func FindColumn(header []string, synonyms ...string) int {
	norm := NormalizeHeader(header)
	for _, syn := range synonyms {
		syn = strings.ToLower(strings.TrimSpace(syn))
		for i, h := range norm {
			if h == syn {
				return i
			}
		}
	}
	return -1
}

// Cell mengambil nilai kolom idx dari satu baris; aman untuk idx -1
// maupun baris yang lebih pendek dari header.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// IsBlankRow: semua sel kosong.
func IsBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
