// Package imagery picks the mission patch and agency logo for a mission from
// curated assets, cached values, fallback tables and upstream searches.
package imagery

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"artemisops/internal/domain"
)

type PatchSearcher interface {
	SearchPatches(ctx context.Context, query string) ([]domain.PatchCandidate, error)
}

type AgencyLogoFetcher interface {
	AgencyLogo(ctx context.Context, agencyID int) (string, error)
}

// Config holds the lookup tables consulted by the Resolver.
type Config struct {
	LocalAssetPrefix string
	LocalPatches     map[string]string
	FallbackPatches  []Rule
	AgencyIDs        map[string]int
	FallbackLogos    []Rule
	DefaultLogo      string
}

func DefaultConfig() Config {
	return Config{
		LocalAssetPrefix: "/static/assets/",
		LocalPatches:     DefaultLocalPatches,
		FallbackPatches:  DefaultFallbackPatches,
		AgencyIDs:        DefaultAgencyIDs,
		FallbackLogos:    DefaultFallbackLogos,
		DefaultLogo:      NASALogo,
	}
}

type Resolver struct {
	cfg       Config
	agencyIDs map[string]int
	patches   PatchSearcher
	agencies  AgencyLogoFetcher
	logger    *slog.Logger
}

func NewResolver(cfg Config, patches PatchSearcher, agencies AgencyLogoFetcher, logger *slog.Logger) *Resolver {
	if cfg.DefaultLogo == "" {
		cfg.DefaultLogo = NASALogo
	}
	ids := make(map[string]int, len(cfg.AgencyIDs))
	for abbrev, id := range cfg.AgencyIDs {
		ids[strings.ToUpper(abbrev)] = id
	}
	return &Resolver{
		cfg:       cfg,
		agencyIDs: ids,
		patches:   patches,
		agencies:  agencies,
		logger:    logger.With("component", "imagery"),
	}
}

// ValidPatch applies ValidatePatchURL with the configured local asset prefix.
func (r *Resolver) ValidPatch(raw string) bool {
	return ValidatePatchURL(raw, r.cfg.LocalAssetPrefix)
}

// ResolvePatch returns the patch image for a mission, or nil when no tier
// produced a valid emblem. The launch image is never used as a patch.
func (r *Resolver) ResolvePatch(ctx context.Context, name, missionID string, cached, launchImage *string) *string {
	if local, ok := r.cfg.LocalPatches[missionID]; ok && local != "" {
		return &local
	}

	accept := func(candidate string) bool {
		if launchImage != nil && candidate == *launchImage {
			return false
		}
		return r.ValidPatch(candidate)
	}

	if cached != nil && accept(*cached) {
		c := *cached
		return &c
	}

	lowerName := strings.ToLower(name)
	for _, rule := range r.cfg.FallbackPatches {
		if rule.Match != "" && containsWord(lowerName, strings.ToLower(rule.Match)) {
			u := rule.URL
			return &u
		}
	}

	if r.patches == nil || strings.TrimSpace(name) == "" {
		return nil
	}

	queries := []string{name}
	if simple := SimplifyName(name); simple != "" && !strings.EqualFold(simple, name) {
		queries = append(queries, simple)
	}
	for _, q := range queries {
		results, err := r.patches.SearchPatches(ctx, q)
		if err != nil {
			r.logger.Warn("patch search failed", "query", q, "error", err)
			continue
		}
		pick, ok := pickCandidate(results, lowerName)
		if !ok {
			continue
		}
		if accept(pick.ImageURL) {
			u := pick.ImageURL
			return &u
		}
		r.logger.Debug("rejected patch candidate", "mission", missionID, "url", pick.ImageURL)
	}
	return nil
}

func pickCandidate(results []domain.PatchCandidate, lowerName string) (domain.PatchCandidate, bool) {
	if len(results) == 0 {
		return domain.PatchCandidate{}, false
	}
	for _, c := range results {
		n := strings.ToLower(strings.TrimSpace(c.Name))
		if n == "" {
			continue
		}
		if strings.Contains(lowerName, n) || strings.Contains(n, lowerName) {
			return c, true
		}
	}
	return results[0], true
}

// ResolveLogo returns the logo of the mission's primary agency.
func (r *Resolver) ResolveLogo(ctx context.Context, agencies string, cached *string) string {
	primary := strings.TrimSpace(strings.Split(agencies, ",")[0])

	if cached != nil && strings.TrimSpace(*cached) != "" {
		return *cached
	}

	if id, ok := r.agencyIDs[strings.ToUpper(primary)]; ok && r.agencies != nil {
		logo, err := r.agencies.AgencyLogo(ctx, id)
		if err != nil {
			r.logger.Warn("agency lookup failed", "agency", primary, "agency_id", id, "error", err)
		} else if logo != "" {
			return logo
		}
	}

	if primary != "" {
		p := strings.ToLower(primary)
		for _, rule := range r.cfg.FallbackLogos {
			key := strings.ToLower(rule.Match)
			if key == "" {
				continue
			}
			if strings.Contains(p, key) || strings.Contains(key, p) {
				return rule.URL
			}
		}
	}

	return r.cfg.DefaultLogo
}

var trailingOrdinal = regexp.MustCompile(`(?i)[\s-]+(?:[ivxlcdm]+|\d+)$`)

// SimplifyName strips a trailing roman numeral or number, so "Artemis II"
// becomes "Artemis" and "Crew-11" becomes "Crew".
func SimplifyName(name string) string {
	return strings.TrimSpace(trailingOrdinal.ReplaceAllString(strings.TrimSpace(name), ""))
}

// containsWord reports whether sub occurs in s on word boundaries, so
// "artemis i" matches "Artemis I" but not "Artemis IV".
func containsWord(s, sub string) bool {
	for start := 0; start <= len(s)-len(sub); {
		i := strings.Index(s[start:], sub)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(sub)
		if !wordRuneBefore(s, i) && !wordRuneAt(s, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		start = i + size
	}
	return false
}

func wordRuneBefore(s string, i int) bool {
	if i == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func wordRuneAt(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
