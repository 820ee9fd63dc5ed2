package render

import (
	"math"

	"github.com/pellucidar/impactmap/internal/domain"
)

const (
	// kmPerDegLat is the north-south extent of one degree of latitude.
	kmPerDegLat = 110.574

	// kmPerDegLonEquator is the east-west extent of one degree of
	// longitude at the equator; scaled by cos(latitude) elsewhere.
	kmPerDegLonEquator = 111.320

	// minCosLat floors the latitude cosine so longitude conversion does
	// not blow up near the poles.
	minCosLat = 0.1
)

// KmToDegLat converts a north-south distance to degrees of latitude.
func KmToDegLat(km float64) float64 {
	return km / kmPerDegLat
}

// KmToDegLon converts an east-west distance at the given latitude to
// degrees of longitude.
func KmToDegLon(km, latDeg float64) float64 {
	c := math.Max(minCosLat, math.Cos(latDeg*math.Pi/180.0))
	return km / (kmPerDegLonEquator * c)
}

// BoundingBox returns the lat/lon box covering a circle of the given radius
// around center, using the tangent-plane conversion. Latitudes are clamped
// to ±90; longitudes are left unwrapped.
func BoundingBox(center domain.Geo, radiusKm float64) (min, max domain.Geo) {
	dLat := KmToDegLat(radiusKm)
	dLon := KmToDegLon(radiusKm, center.Lat)

	min = domain.Geo{Lat: clamp(center.Lat-dLat, -90, 90), Lon: center.Lon - dLon}
	max = domain.Geo{Lat: clamp(center.Lat+dLat, -90, 90), Lon: center.Lon + dLon}
	return min, max
}
