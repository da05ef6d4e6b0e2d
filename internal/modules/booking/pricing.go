package booking

import "soundhire/internal/domain"

// Total is the booking price frozen at creation time: the package's daily
// rate plus the DJ fee when the service is included.
func Total(pkg domain.Package, includeDJ bool, djRate float64) float64 {
	if includeDJ {
		return pkg.DailyRate + djRate
	}
	return pkg.DailyRate
}
