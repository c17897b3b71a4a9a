package dto

type CreateHonorariumRequest struct {
	IDSubkegiatan string  `json:"id_subkegiatan" validate:"required"`
	KodeJabatan   string  `json:"kode_jabatan" validate:"required"`
	Tarif         float64 `json:"tarif" validate:"required,gt=0"`
	IDSatuan      uint    `json:"id_satuan" validate:"required"`
	BasisVolume   int     `json:"basis_volume" validate:"omitempty,gte=0"`
	BebanAnggaran string  `json:"beban_anggaran"`
}

type UpdateHonorariumRequest struct {
	Tarif         *float64 `json:"tarif" validate:"omitempty,gt=0"`
	IDSatuan      *uint    `json:"id_satuan"`
	BasisVolume   *int     `json:"basis_volume" validate:"omitempty,gte=0"`
	BebanAnggaran *string  `json:"beban_anggaran"`
}
