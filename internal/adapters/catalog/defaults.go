package catalog

import "delivery-thermal-service/internal/domain"

func vol(l float64) *float64  { return &l }
func mass(k float64) *float64 { return &k }

// DefaultProducts is the built-in product table.
func DefaultProducts() []domain.ProductSpec {
	return []domain.ProductSpec{
		{ID: 1, Name: "Café", Category: domain.BebidaCaliente, VolumeL: vol(0.3), InitialTempC: 85},
		{ID: 2, Name: "Té", Category: domain.BebidaCaliente, VolumeL: vol(0.3), InitialTempC: 80},
		{ID: 3, Name: "Chocolate caliente", Category: domain.BebidaCaliente, VolumeL: vol(0.25), InitialTempC: 75},
		{ID: 4, Name: "Matcha latte", Category: domain.BebidaCaliente, VolumeL: vol(0.3), InitialTempC: 75},
		{ID: 5, Name: "Chai", Category: domain.BebidaCaliente, VolumeL: vol(0.3), InitialTempC: 78},
		{ID: 6, Name: "Refresco", Category: domain.BebidaFria, VolumeL: vol(0.5), InitialTempC: 4},
		{ID: 7, Name: "Jugo natural", Category: domain.BebidaFria, VolumeL: vol(0.4), InitialTempC: 6},
		{ID: 8, Name: "Agua fría", Category: domain.BebidaFria, VolumeL: vol(0.5), InitialTempC: 7},
		{ID: 9, Name: "Smoothie", Category: domain.BebidaFria, VolumeL: vol(0.35), InitialTempC: 5, MeltSensitive: true},
		{ID: 10, Name: "Limonada", Category: domain.BebidaFria, VolumeL: vol(0.4), InitialTempC: 5},
		{ID: 11, Name: "Té helado", Category: domain.BebidaFria, VolumeL: vol(0.3), InitialTempC: 6},
		{ID: 12, Name: "Sopa", Category: domain.ComidaCaliente, VolumeL: vol(0.5), InitialTempC: 80},
		{ID: 13, Name: "Pizza", Category: domain.ComidaCaliente, MassKg: mass(0.4), InitialTempC: 75},
		{ID: 14, Name: "Pasta", Category: domain.ComidaCaliente, MassKg: mass(0.35), InitialTempC: 75},
		{ID: 15, Name: "Hamburguesa", Category: domain.ComidaCaliente, MassKg: mass(0.3), InitialTempC: 70},
		{ID: 16, Name: "Arroz con pollo", Category: domain.ComidaCaliente, MassKg: mass(0.45), InitialTempC: 75},
		{ID: 17, Name: "Helado", Category: domain.ComidaFria, VolumeL: vol(0.15), InitialTempC: -6, MeltSensitive: true},
		{ID: 18, Name: "Ensalada fría", Category: domain.ComidaFria, MassKg: mass(0.25), InitialTempC: 5},
		{ID: 19, Name: "Sushi", Category: domain.ComidaFria, MassKg: mass(0.35), InitialTempC: 8},
		{ID: 20, Name: "Ensalada de frutas", Category: domain.ComidaFria, VolumeL: vol(0.3), InitialTempC: 5},
	}
}

// DefaultPackagings is the built-in packaging table, from no insulation to
// a thermal cup.
func DefaultPackagings() []domain.PackagingSpec {
	return []domain.PackagingSpec{
		{ID: 1, Name: "Simple sin aislamiento", UValue: 15},
		{ID: 2, Name: "Contenedor estándar", UValue: 10},
		{ID: 3, Name: "Bolsa térmica básica", UValue: 7},
		{ID: 4, Name: "Bolsa térmica premium", UValue: 4},
		{ID: 5, Name: "Vaso térmico", UValue: 3},
	}
}

func DefaultTransports() []domain.TransportSpec {
	return []domain.TransportSpec{
		{ID: 1, Name: "Moto/Scooter", SpeedKmh: 40, Mode: domain.ModeMotorized},
		{ID: 2, Name: "Automóvil", SpeedKmh: 50, Mode: domain.ModeMotorized},
		{ID: 3, Name: "Bicicleta", SpeedKmh: 15, Mode: domain.ModeBicycle},
		{ID: 4, Name: "A pie", SpeedKmh: 5, Mode: domain.ModeWalking},
	}
}
