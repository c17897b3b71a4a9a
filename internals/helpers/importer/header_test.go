package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindColumn(t *testing.T) {
	header := []string{"  Nama Lengkap ", "NIK", "No. HP", "alamat"}

	assert.Equal(t, 0, FindColumn(header, "nama lengkap", "nama"))
	assert.Equal(t, 1, FindColumn(header, "nik"))
	assert.Equal(t, 3, FindColumn(header, "alamat lengkap", "alamat"))
	assert.Equal(t, -1, FindColumn(header, "email"))
}

func TestFindColumnSynonymOrder(t *testing.T) {
	header := []string{"username", "nama user"}

	// sinonim pertama yang ketemu yang menang
	assert.Equal(t, 0, FindColumn(header, "username", "nama user"))
	assert.Equal(t, 1, FindColumn(header, "nama user", "username"))
}

func TestCell(t *testing.T) {
	row := []string{" a ", "b"}

	assert.Equal(t, "a", Cell(row, 0))
	assert.Equal(t, "b", Cell(row, 1))
	assert.Equal(t, "", Cell(row, 2), "baris lebih pendek dari header")
	assert.Equal(t, "", Cell(row, -1), "kolom tidak ditemukan")
}

func TestIsBlankRow(t *testing.T) {
	assert.True(t, IsBlankRow([]string{"", "  ", "\t"}))
	assert.True(t, IsBlankRow(nil))
	assert.False(t, IsBlankRow([]string{"", "x"}))
}

func TestReportMessages(t *testing.T) {
	var r Report
	r.AddSuccess()
	r.AddSuccess()
	r.AddSkip(3, "baris kosong")
	r.AddFail(5, "NIK kosong")

	assert.Equal(t, 2, r.SuccessCount)
	assert.Equal(t, 1, r.SkipCount)
	assert.Equal(t, 1, r.FailCount)
	assert.Len(t, r.Errors, 2)
	assert.True(t, strings.HasPrefix(r.Errors[0], "Baris 3 dilewati"))
	assert.True(t, strings.HasPrefix(r.Errors[1], "Baris 5 gagal"))
	assert.Contains(t, r.Errors[1], "NIK kosong")
}

func TestReadRowsCSV(t *testing.T) {
	csv := "nama,nik\n\"Budi, S.Pd\",123\nSiti,456\n"

	rows, err := ReadRows("mitra.csv", strings.NewReader(csv))
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, []string{"nama", "nik"}, rows[0])
	assert.Equal(t, "Budi, S.Pd", rows[1][0])
	assert.Equal(t, "456", rows[2][1])
}

func TestReadRowsCSVWithBOM(t *testing.T) {
	csv := "\ufeffnama,nik\nBudi,123\n"

	rows, err := ReadRows("mitra.csv", strings.NewReader(csv))
	assert.NoError(t, err)
	assert.Equal(t, 0, FindColumn(rows[0], "nama"), "BOM tidak boleh menempel di header pertama")
}
