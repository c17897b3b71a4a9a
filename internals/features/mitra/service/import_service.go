package service

import (
	"strconv"

	"gorm.io/gorm"

	"simitra_backend/internals/features/mitra/model"
	"simitra_backend/internals/helpers/importer"
)

// Kolom hasil mapping header spreadsheet mitra; -1 = tidak ditemukan.
type MitraColumns struct {
	Nama    int
	NIK     int
	SobatID int
	Alamat  int
	NomorHP int
	Email   int
}

// MapMitraColumns mencocokkan header (setelah normalisasi) dengan daftar
// sinonim per field. Hanya nama + nik yang wajib ada.
func MapMitraColumns(header []string) MitraColumns {
	return MitraColumns{
		Nama:    importer.FindColumn(header, "nama_lengkap", "nama lengkap", "nama", "name"),
		NIK:     importer.FindColumn(header, "nik", "no nik", "nomor nik"),
		SobatID: importer.FindColumn(header, "sobat_id", "sobat id", "id sobat"),
		Alamat:  importer.FindColumn(header, "alamat", "address"),
		NomorHP: importer.FindColumn(header, "nomor_hp", "no hp", "no. hp", "telepon", "hp"),
		Email:   importer.FindColumn(header, "email", "e-mail", "alamat email"),
	}
}

// ImportMitra memproses baris spreadsheet satu per satu dalam SATU
// transaksi: baris kosong/invalid dilewati dengan pesan "Baris N", NIK
// duplikat di dalam file dihitung gagal, baris valid di-upsert by NIK +
// diaktifkan untuk tahun target. Error di luar penanganan per-baris
// membatalkan seluruh batch.
func ImportMitra(db *gorm.DB, rows [][]string, tahun string) (importer.Report, error) {
	report := importer.Report{Errors: []string{}}
	if len(rows) < 2 {
		return report, nil
	}

	cols := MapMitraColumns(rows[0])
	seenNIK := map[string]int{} // nik → nomor baris pertama di file

	err := db.Transaction(func(tx *gorm.DB) error {
		for i, row := range rows[1:] {
			rowNum := i + 2

			if importer.IsBlankRow(row) {
				report.AddSkip(rowNum, "baris kosong")
				continue
			}

			nama := importer.Cell(row, cols.Nama)
			nik := importer.Cell(row, cols.NIK)

			if nik == "" {
				report.AddFail(rowNum, "NIK kosong")
				continue
			}
			if nama == "" {
				report.AddFail(rowNum, "nama kosong")
				continue
			}
			if firstRow, dup := seenNIK[nik]; dup {
				report.AddFail(rowNum, "NIK duplikat dengan baris "+strconv.Itoa(firstRow))
				continue
			}
			seenNIK[nik] = rowNum

			input := model.MitraModel{
				NamaLengkap: nama,
				NIK:         nik,
				SobatID:     importer.Cell(row, cols.SobatID),
				Alamat:      importer.Cell(row, cols.Alamat),
				NomorHP:     importer.Cell(row, cols.NomorHP),
				Email:       importer.Cell(row, cols.Email),
			}

			if _, _, err := UpsertMitraByNIK(tx, input, tahun); err != nil {
				report.AddFail(rowNum, "gagal simpan mitra NIK "+nik)
				continue
			}
			report.AddSuccess()
		}
		return nil
	})

	return report, err
}
