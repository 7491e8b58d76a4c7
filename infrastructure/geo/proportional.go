package geo

import "tuberev/internal/core/ports"

// Placeholder audience split applied to every video. Not a geolocation
// signal; replace the distributor to feed real per-country data into the
// revenue estimator.
var defaultShares = map[string]float64{
	"US": 0.3,
	"IN": 0.5,
	"GB": 0.2,
}

type proportionalDistributor struct {
	shares map[string]float64
}

// NewProportionalDistributor returns the fixed-share placeholder distributor.
func NewProportionalDistributor() ports.ViewDistributorPort {
	return &proportionalDistributor{shares: defaultShares}
}

func (d *proportionalDistributor) Distribute(totalViews int64) map[string]int64 {
	views := make(map[string]int64, len(d.shares))
	for country, share := range d.shares {
		views[country] = int64(share * float64(totalViews))
	}
	return views
}
