package revenue

import (
	"math"

	"github.com/sosodev/duration"
)

// CountryCPM maps viewer country codes to an approximate USD rate per 1000
// views. Unlisted countries fall back to the DefaultCPMKey entry.
var CountryCPM = map[string]float64{
	"US": 4.0,
	"GB": 3.5,
	"CA": 3.2,
	"AU": 3.0,
	"IN": 0.3,
	"PK": 0.25,
	"BD": 0.2,
}

// DefaultCPM applies when a country has no entry in CountryCPM or when no
// country breakdown is available at all.
const DefaultCPM = 1.0

const shortFormCutoff = 60 // seconds

// Estimate computes an estimated revenue in USD for a video. isoDuration is
// the ISO-8601 encoding from the API (e.g. "PT10M30S"); unparseable input
// counts as zero seconds. Clips of 60 seconds or less earn at half rate.
// When countryViews is non-empty each country's share is priced with its CPM,
// otherwise viewCount is priced at the default CPM. The result is rounded to
// 2 decimals and never negative.
func Estimate(viewCount int64, isoDuration string, countryViews map[string]int64) float64 {
	totalSeconds := 0.0
	if d, err := duration.Parse(isoDuration); err == nil {
		totalSeconds = d.ToTimeDuration().Seconds()
	}

	multiplier := 1.0
	if totalSeconds <= shortFormCutoff {
		multiplier = 0.5
	}

	total := 0.0
	if len(countryViews) > 0 {
		for country, views := range countryViews {
			cpm, ok := CountryCPM[country]
			if !ok {
				cpm = DefaultCPM
			}
			total += float64(views) / 1000 * cpm * multiplier
		}
	} else {
		total = float64(viewCount) / 1000 * DefaultCPM * multiplier
	}

	if total < 0 {
		total = 0
	}

	return math.Round(total*100) / 100
}
