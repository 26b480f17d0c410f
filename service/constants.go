package service

const (
	MonthsPerYear = 12

	MaxProjectionYears = 100 // límite del simulador de interés compuesto

	MinLoanTermYears = 5
	MaxLoanTermYears = 40

	// Porcentajes por defecto sobre el alquiler bruto anual
	DefaultMaintenanceShare      = 0.10
	DefaultVacancyShare          = 0.05
	RentalProtectionPremiumShare = 0.05

	// Amortización fiscal anual del inmueble (2.5% del precio de compra)
	DepreciationRate = 0.025
)
