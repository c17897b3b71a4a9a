package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var opsiJabatan = []JabatanOption{
	{KodeJabatan: "PPL", NamaJabatan: "Petugas Pendataan Lapangan", Tarif: 50000},
	{KodeJabatan: "PML", NamaJabatan: "Petugas Pemeriksa Lapangan", Tarif: 60000},
}

func TestMatchJabatanExact(t *testing.T) {
	got, ok := MatchJabatan("Petugas Pendataan Lapangan", opsiJabatan)
	assert.True(t, ok)
	assert.Equal(t, "PPL", got.KodeJabatan)

	got, ok = MatchJabatan("pml", opsiJabatan)
	assert.True(t, ok)
	assert.Equal(t, "PML", got.KodeJabatan)
}

func TestMatchJabatanSubstring(t *testing.T) {
	// teks bebas yang mengandung nama lengkap jabatan
	got, ok := MatchJabatan("  petugas pemeriksa lapangan (sensus) ", []JabatanOption{
		{KodeJabatan: "PML", NamaJabatan: "petugas pemeriksa lapangan"},
	})
	assert.True(t, ok)
	assert.Equal(t, "PML", got.KodeJabatan)

	// potongan nama jabatan
	got, ok = MatchJabatan("pendataan lapangan", opsiJabatan)
	assert.True(t, ok)
	assert.Equal(t, "PPL", got.KodeJabatan)
}

func TestMatchJabatanNoMatch(t *testing.T) {
	_, ok := MatchJabatan("koordinator", opsiJabatan)
	assert.False(t, ok)

	_, ok = MatchJabatan("   ", opsiJabatan)
	assert.False(t, ok)

	_, ok = MatchJabatan("ppl", nil)
	assert.False(t, ok)
}
