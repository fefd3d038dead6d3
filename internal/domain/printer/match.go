package printer

import "math"

const earthRadiusKm = 6371

// Distance returns the great-circle distance in kilometers between two
// coordinates using the haversine formula.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// Match pairs a candidate printer with its computed distance.
type Match struct {
	Printer    *Printer
	DistanceKm float64
}

// Nearest selects the active printer closest to (lat, lon) among those whose
// materials cover every required material. Returns nil when no printer
// qualifies. Ties keep the first candidate in input order; the scan is a
// single pass so the result is deterministic for a stable input slice.
func Nearest(lat, lon float64, requiredMaterials []string, printers []*Printer) *Match {
	var best *Match
	for _, p := range printers {
		if !p.IsActive() {
			continue
		}
		if !p.Capabilities().SupportsAll(requiredMaterials) {
			continue
		}
		d := Distance(lat, lon, p.Location().Latitude, p.Location().Longitude)
		if best == nil || d < best.DistanceKm {
			best = &Match{Printer: p, DistanceKm: d}
		}
	}
	return best
}
