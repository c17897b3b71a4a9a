package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamaBulan(t *testing.T) {
	assert.Equal(t, "Januari", NamaBulan(1))
	assert.Equal(t, "Desember", NamaBulan(12))
	assert.Equal(t, "", NamaBulan(0))
	assert.Equal(t, "", NamaBulan(13))
}

func TestHitungLimit(t *testing.T) {
	assert.Equal(t, 1_000_000.0, HitungLimit(1_000_000, true), "filter bulan: limit bulanan apa adanya")
	assert.Equal(t, 12_000_000.0, HitungLimit(1_000_000, false), "tanpa filter bulan: plafon setahun")
}

func TestEvalBatas(t *testing.T) {
	limit := HitungLimit(1_000_000, false)

	assert.Equal(t, StatusAman, EvalBatas(12_000_000, limit), "pas di batas masih aman")
	assert.Equal(t, StatusMelebihi, EvalBatas(12_000_001, limit))
	assert.Equal(t, StatusAman, EvalBatas(0, limit))
}
