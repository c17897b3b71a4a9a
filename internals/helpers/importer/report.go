package importer

import "fmt"

// Report merangkum hasil import baris-per-baris. Baris yang gagal tidak
// menghentikan batch; pesan per baris memakai nomor baris spreadsheet
// (1-based, header = baris 1).
type Report struct {
	SuccessCount int      `json:"success_count"`
	SkipCount    int      `json:"skip_count"`
	FailCount    int      `json:"fail_count"`
	Errors       []string `json:"errors"`
}

func (r *Report) AddSuccess() { r.SuccessCount++ }

func (r *Report) AddSkip(rowNum int, reason string) {
	r.SkipCount++
	r.Errors = append(r.Errors, fmt.Sprintf("Baris %d dilewati: %s", rowNum, reason))
}

func (r *Report) AddFail(rowNum int, reason string) {
	r.FailCount++
	r.Errors = append(r.Errors, fmt.Sprintf("Baris %d gagal: %s", rowNum, reason))
}
