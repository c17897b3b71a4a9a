package dto

// ============================
// Response DTO
// ============================

// TransaksiRow: total honor disetujui satu mitra vs batas honor periode.
type TransaksiRow struct {
	IDMitra     uint    `json:"id_mitra"`
	NamaLengkap string  `json:"nama_lengkap"`
	NIK         string  `json:"nik"`
	SobatID     string  `json:"sobat_id"`
	TotalHonor  float64 `json:"total_honor"`
	BatasHonor  float64 `json:"batas_honor"`
	Status      string  `json:"status"` // aman | melebihi
}

// RekapBulananRow: total honor perencanaan per bulan dalam satu tahun.
type RekapBulananRow struct {
	Bulan      int     `json:"bulan"`
	NamaBulan  string  `json:"nama_bulan"`
	JumlahMitra int    `json:"jumlah_mitra"`
	TotalHonor float64 `json:"total_honor"`
}

// RekapMitraRow: total honor perencanaan per mitra dalam satu bulan.
type RekapMitraRow struct {
	IDMitra     uint    `json:"id_mitra"`
	NamaLengkap string  `json:"nama_lengkap"`
	NIK         string  `json:"nik"`
	SobatID     string  `json:"sobat_id"`
	JumlahTugas int     `json:"jumlah_tugas"`
	TotalHonor  float64 `json:"total_honor"`
}

// RekapDetailRow: rincian tugas penyumbang total bulanan satu mitra.
type RekapDetailRow struct {
	IDSubkegiatan string  `json:"id_subkegiatan"`
	NamaSub       string  `json:"nama_sub"`
	NamaKegiatan  string  `json:"nama_kegiatan"`
	KodeJabatan   string  `json:"kode_jabatan"`
	NamaJabatan   string  `json:"nama_jabatan"`
	VolumeTugas   int     `json:"volume_tugas"`
	Tarif         float64 `json:"tarif"`
	TotalHonor    float64 `json:"total_honor"`
}
