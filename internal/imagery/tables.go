package imagery

// Rule maps a lower-cased key to an image URL. Rules are evaluated in order
// and the first match wins. Patch keys match whole words of the mission name;
// logo keys match substrings in either direction.
type Rule struct {
	Match string `yaml:"match"`
	URL   string `yaml:"url"`
}

const NASALogo = "https://upload.wikimedia.org/wikipedia/commons/e/e5/NASA_logo.svg"

// DefaultLocalPatches are curated assets shipped with the client.
var DefaultLocalPatches = map[string]string{
	"artemis-ii": "/static/assets/patches/artemis_ii.png",
}

// DefaultFallbackPatches are known-good emblem URLs keyed by mission-name substring.
var DefaultFallbackPatches = []Rule{
	{Match: "artemis iii", URL: "https://upload.wikimedia.org/wikipedia/commons/2/2a/Artemis_III_patch.png"},
	{Match: "artemis ii", URL: "https://upload.wikimedia.org/wikipedia/commons/8/8f/Artemis_II_patch.png"},
	{Match: "artemis i", URL: "https://upload.wikimedia.org/wikipedia/commons/4/4e/Artemis_I_patch.png"},
	{Match: "starliner", URL: "https://upload.wikimedia.org/wikipedia/commons/e/e1/Boeing_Crew_Flight_Test_insignia.png"},
	{Match: "crew dragon", URL: "https://upload.wikimedia.org/wikipedia/commons/6/6b/SpaceX_Crew_Dragon_patch.png"},
}

// DefaultAgencyIDs maps agency abbreviations to Launch Library agency ids.
var DefaultAgencyIDs = map[string]int{
	"NASA":   44,
	"ESA":    27,
	"CSA":    16,
	"JAXA":   37,
	"SPACEX": 121,
	"RFSA":   63,
	"ISRO":   31,
	"CNSA":   17,
}

var DefaultFallbackLogos = []Rule{
	{Match: "nasa", URL: NASALogo},
	{Match: "esa", URL: "https://upload.wikimedia.org/wikipedia/commons/b/bd/ESA_logo.svg"},
	{Match: "csa", URL: "https://upload.wikimedia.org/wikipedia/commons/6/66/Canadian_Space_Agency_logo.svg"},
	{Match: "jaxa", URL: "https://upload.wikimedia.org/wikipedia/commons/1/1e/Jaxa_logo.svg"},
	{Match: "spacex", URL: "https://upload.wikimedia.org/wikipedia/commons/2/2e/SpaceX_logo_black.svg"},
	{Match: "roscosmos", URL: "https://upload.wikimedia.org/wikipedia/commons/4/48/Roscosmos_logo_ru.svg"},
	{Match: "rfsa", URL: "https://upload.wikimedia.org/wikipedia/commons/4/48/Roscosmos_logo_ru.svg"},
	{Match: "isro", URL: "https://upload.wikimedia.org/wikipedia/commons/b/bd/Indian_Space_Research_Organisation_Logo.svg"},
	{Match: "cnsa", URL: "https://upload.wikimedia.org/wikipedia/commons/5/5a/China_National_Space_Administration_logo.svg"},
	{Match: "boeing", URL: "https://upload.wikimedia.org/wikipedia/commons/4/4f/Boeing_full_logo.svg"},
	{Match: "axiom", URL: "https://upload.wikimedia.org/wikipedia/commons/9/9c/Axiom_Space_logo.svg"},
}
