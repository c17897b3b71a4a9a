package service

const (
	StatusAman     = "aman"
	StatusMelebihi = "melebihi"
)

var namaBulan = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// NamaBulan mengembalikan nama bulan Indonesia untuk 1..12, selain itu "".
func NamaBulan(bulan int) string {
	if bulan < 1 || bulan > 12 {
		return ""
	}
	return namaBulan[bulan-1]
}

// HitungLimit: batas_honor adalah nilai bulanan. Tanpa filter bulan limit
// jadi plafon setahun (×12).
func HitungLimit(batasHonor float64, adaFilterBulan bool) float64 {
	if adaFilterBulan {
		return batasHonor
	}
	return batasHonor * 12
}

// EvalBatas membandingkan total honor terhadap limit. Pas di batas masih aman.
func EvalBatas(total, limit float64) string {
	if total <= limit {
		return StatusAman
	}
	return StatusMelebihi
}
