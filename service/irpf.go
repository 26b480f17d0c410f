package service

type irpfBracket struct {
	upTo float64
	rate float64
}

// Escala de IRPF: el salario pertenece al primer tramo cuyo límite no supera.
var irpfBrackets = []irpfBracket{
	{12450, 0.19},
	{20199, 0.24},
	{35199, 0.30},
	{59999, 0.37},
	{299999, 0.45},
}

const irpfTopRate = 0.47

// IRPFRate returns the marginal income tax rate, as a fraction, for an annual
// gross salary.
func IRPFRate(salary float64) float64 {
	for _, b := range irpfBrackets {
		if salary <= b.upTo {
			return b.rate
		}
	}
	return irpfTopRate
}
