package extract

import "regexp"

var (
	// 12345678_zpid
	identifierPattern = regexp.MustCompile(`(\d+)_zpid`)

	// public homedetails pages and the owner dashboard
	listingURLPattern = regexp.MustCompile(`zillow\.com/(homedetails|myzillow)/[^/]*/(\d+)[_/]`)
)

// Identifier returns the listing identifier embedded in a listing URL.
func Identifier(listingURL string) (string, bool) {
	m := identifierPattern.FindStringSubmatch(listingURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// IsListingURL reports whether u has a recognised listing URL shape.
func IsListingURL(u string) bool {
	return listingURLPattern.MatchString(u)
}
