package dto

type ProductResponse struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	VolumeL       *float64 `json:"volume_l"`
	MassKg        *float64 `json:"mass_kg"`
	InitialTempC  float64  `json:"initial_temp_c"`
	MeltSensitive bool     `json:"melt_sensitive"`
}

type PackagingResponse struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	UValue float64 `json:"u_value"`
}

type TransportResponse struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	SpeedKmh float64 `json:"speed_kmh"`
	Mode     string  `json:"mode"`
}

type CatalogResponse struct {
	Products   []ProductResponse   `json:"products"`
	Packagings []PackagingResponse `json:"packagings"`
	Transports []TransportResponse `json:"transports"`
}
