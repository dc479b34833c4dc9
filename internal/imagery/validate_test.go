package imagery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePatchURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"jsc photo code", "https://www.nasa.gov/wp-content/uploads/2025/04/jsc2025e034746.jpg", false},
		{"jsc photo even with keyword", "https://example.com/patch/jsc2025e034746.jpg", false},
		{"iss expedition photo", "https://upload.wikimedia.org/iss068e012345.jpg", false},
		{"ksc photo", "https://images.nasa.gov/KSC-20230402-PH-KLS01_0001.jpg", false},
		{"artemis mission photo", "https://images.nasa.gov/art001e000672.jpg", false},
		{"shuttle photo", "https://example.com/s135e011016.jpg", false},
		{"flickr photo", "https://www.nasa.gov/wp-content/uploads/2023/04/52790983768-79132211b6-k-2.jpg", false},
		{"patch path", "https://cdn.example.org/patch/artemis.png", true},
		{"insignia keyword", "https://example.org/images/crew-11-insignia.png", true},
		{"gallery without keyword", "https://www.nasa.gov/image-detail/amf-crew/", false},
		{"gallery with keyword", "https://www.nasa.gov/image-detail/artemis-ii-patch/", true},
		{"wp uploads without keyword", "https://www.nasa.gov/wp-content/uploads/2024/01/orion.png", false},
		{"wikimedia", "https://upload.wikimedia.org/wikipedia/commons/a/a1/Crew11.png", true},
		{"wikipedia", "https://en.wikipedia.org/wiki/File:Thing.svg", true},
		{"lookalike host", "https://notwikimedia.org.evil.com/x.png", false},
		{"unknown host", "https://cdn.example.com/crew.png", false},
		{"local asset", "/static/assets/missions/crew-11.png", true},
		{"empty", "", false},
		{"uppercase keyword", "https://cdn.example.com/CREW_LOGO.PNG", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidatePatchURL(tc.url, "/static/assets/"))
		})
	}
}

func TestSimplifyName(t *testing.T) {
	assert.Equal(t, "Artemis", SimplifyName("Artemis II"))
	assert.Equal(t, "Crew", SimplifyName("Crew-11"))
	assert.Equal(t, "Axiom Mission", SimplifyName("Axiom Mission 4"))
	assert.Equal(t, "Starliner", SimplifyName("Starliner"))
}
