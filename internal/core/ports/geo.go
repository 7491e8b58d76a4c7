package ports

// ViewDistributorPort splits a video's total view count across viewer
// countries. The shipped implementation is a fixed proportional placeholder;
// a real geolocation source can be swapped in without touching the revenue
// estimator.
type ViewDistributorPort interface {
	Distribute(totalViews int64) map[string]int64
}
