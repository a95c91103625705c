package nlp

import (
	"regexp"
	"sort"
	"strings"

	"docindex/internal/domain"
)

// Pattern-based entity recognition. Each matcher carries a fixed confidence
// for its category; matchers run in priority order and at a given start
// offset the longer match wins.
type matcher struct {
	kind       domain.EntityKind
	confidence float64
	re         *regexp.Regexp
}

var matchers = []matcher{
	{domain.EntityEmail, 0.95, regexp.MustCompile(`\b[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}\b`)},
	{domain.EntityDate, 0.90, regexp.MustCompile(`\b(?:\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}[/-]\d{1,2}[/-]\d{1,2}|(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{1,2},?\s+\d{4})\b`)},
	{domain.EntityMoney, 0.90, regexp.MustCompile(`\$\s*\d+(?:,\d{3})*(?:\.\d{2})?|\d+(?:,\d{3})*(?:\.\d{2})?\s*(?:USD|EUR|GBP|dollars?|euros?|pounds?)`)},
	{domain.EntityLocation, 0.85, regexp.MustCompile(`\b(?:United States|USA|UK|United Kingdom|New York|California|Texas|London|Paris|Tokyo|Beijing|Washington|Chicago|Los Angeles|San Francisco|Boston|Seattle|Miami|Austin|Denver|Portland|Atlanta)\b`)},
	{domain.EntityOrganization, 0.80, regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+(?:Inc|LLC|Corp|Corporation|Ltd|Limited|Company|Co|Group|Institute|University|College)\.?)\b`)},
	{domain.EntityPerson, 0.75, regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+\b`)},
}

// Words whose presence marks a capitalized sequence as not-a-person.
var personBlockList = []string{
	"Inc", "Corp", "LLC", "Ltd", "University", "College",
}

// ExtractEntities runs all matchers over the text and returns recognized
// entities in document order. Each distinct span is emitted once.
func ExtractEntities(text string) []domain.Entity {
	byStart := make(map[int]domain.Entity)
	seen := make(map[string]struct{})
	for _, m := range matchers {
		for _, loc := range m.re.FindAllStringIndex(text, -1) {
			word := text[loc[0]:loc[1]]
			if m.kind == domain.EntityPerson && looksLikeOrg(word) {
				continue
			}
			if _, dup := seen[word]; dup {
				continue
			}
			if prev, ok := byStart[loc[0]]; ok && prev.End-prev.Start >= loc[1]-loc[0] {
				continue
			}
			seen[word] = struct{}{}
			byStart[loc[0]] = domain.Entity{
				Text:       word,
				Kind:       m.kind,
				Confidence: m.confidence,
				Start:      loc[0],
				End:        loc[1],
			}
		}
	}
	entities := make([]domain.Entity, 0, len(byStart))
	for _, e := range byStart {
		entities = append(entities, e)
	}
	sort.Slice(entities, func(i, j int) bool { return entities[i].Start < entities[j].Start })
	return entities
}

func looksLikeOrg(word string) bool {
	for _, b := range personBlockList {
		if strings.Contains(word, b) {
			return true
		}
	}
	return false
}
