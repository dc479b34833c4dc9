package weather

import (
	"strings"

	"artemisops/internal/domain"
)

type siteEntry struct {
	key  string
	site domain.Site
}

var (
	kennedy    = domain.Site{Name: "Kennedy Space Center, FL", Lat: 28.5729, Lon: -80.6490}
	vandenberg = domain.Site{Name: "Vandenberg SFB, CA", Lat: 34.7420, Lon: -120.5724}
	kourou     = domain.Site{Name: "Kourou, French Guiana", Lat: 5.2360, Lon: -52.7686}
)

// sites is evaluated in order; earlier keys take precedence.
var sites = []siteEntry{
	{"kennedy space center", kennedy},
	{"ksc", kennedy},
	{"cape canaveral", domain.Site{Name: "Cape Canaveral, FL", Lat: 28.4889, Lon: -80.5778}},
	{"vandenberg", vandenberg},
	{"kourou", kourou},
	{"guiana space centre", domain.Site{Name: "Guiana Space Centre", Lat: 5.2360, Lon: -52.7686}},
	{"csg", domain.Site{Name: "Centre Spatial Guyanais", Lat: 5.2360, Lon: -52.7686}},
	{"baikonur", domain.Site{Name: "Baikonur Cosmodrome, Kazakhstan", Lat: 45.9650, Lon: 63.3050}},
	{"tanegashima", domain.Site{Name: "Tanegashima, Japan", Lat: 30.4009, Lon: 130.9750}},
	{"jiuquan", domain.Site{Name: "Jiuquan, China", Lat: 40.9606, Lon: 100.2914}},
	{"wenchang", domain.Site{Name: "Wenchang, China", Lat: 19.6145, Lon: 110.9510}},
	{"atlantic ocean", domain.Site{Name: "Atlantic Recovery Zone", Lat: 30.0, Lon: -75.0}},
	{"pacific ocean", domain.Site{Name: "Pacific Recovery Zone", Lat: 25.0, Lon: -120.0}},
	{"gulf of mexico", domain.Site{Name: "Gulf of Mexico", Lat: 27.0, Lon: -90.0}},
}

// FindSite resolves a free-text site name to known coordinates.
func FindSite(name string) (domain.Site, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return domain.Site{}, false
	}

	for _, e := range sites {
		if strings.Contains(lower, e.key) || strings.Contains(e.key, lower) {
			return e.site, true
		}
	}
	for _, e := range sites {
		n := strings.ToLower(e.site.Name)
		if strings.Contains(lower, n) || strings.Contains(n, lower) {
			return e.site, true
		}
	}

	switch {
	case strings.Contains(lower, "florida") || strings.HasSuffix(lower, ", fl") || strings.HasSuffix(lower, " fl"):
		return kennedy, true
	case strings.Contains(lower, "california") || strings.HasSuffix(lower, ", ca") || strings.HasSuffix(lower, " ca"):
		return vandenberg, true
	case strings.Contains(lower, "guiana"):
		return kourou, true
	}
	return domain.Site{}, false
}
