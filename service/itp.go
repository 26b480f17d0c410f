package service

import (
	"fmt"
	"strings"

	"invest-agent/domain"
)

type itpEntry struct {
	community domain.AutonomousCommunity
	rate      float64 // percent of purchase price
}

// Tipos del Impuesto de Transmisiones Patrimoniales por comunidad autónoma.
var itpTable = []itpEntry{
	{"Andalucía", 7.0},
	{"Aragón", 8.0},
	{"Asturias", 8.0},
	{"Islas Baleares", 8.0},
	{"Canarias", 6.5},
	{"Cantabria", 9.0},
	{"Castilla-La Mancha", 9.0},
	{"Castilla y León", 8.0},
	{"Cataluña", 10.0},
	{"Ceuta", 6.0},
	{"Comunidad de Madrid", 6.0},
	{"Comunidad Valenciana", 10.0},
	{"Extremadura", 8.0},
	{"Galicia", 8.0},
	{"La Rioja", 7.0},
	{"Melilla", 6.0},
	{"Murcia", 8.0},
	{"Navarra", 6.0},
	{"País Vasco", 7.0},
}

var itpByCommunity = func() map[domain.AutonomousCommunity]float64 {
	m := make(map[domain.AutonomousCommunity]float64, len(itpTable))
	for _, e := range itpTable {
		m[e.community] = e.rate
	}
	return m
}()

// Communities returns the supported autonomous communities in table order.
func Communities() []domain.AutonomousCommunity {
	out := make([]domain.AutonomousCommunity, len(itpTable))
	for i, e := range itpTable {
		out[i] = e.community
	}
	return out
}

// ITPRate returns the transfer tax rate for community as a whole percentage
// (6.0 means 6%).
func ITPRate(community domain.AutonomousCommunity) (float64, error) {
	rate, ok := itpByCommunity[community]
	if !ok {
		names := make([]string, len(itpTable))
		for i, e := range itpTable {
			names[i] = string(e.community)
		}
		return 0, fmt.Errorf("%w: %q is not one of %s",
			domain.ErrUnknownCommunity, string(community), strings.Join(names, ", "))
	}
	return rate, nil
}
