// Package similarity implements keyword-overlap duplicate detection for
// incoming headlines. Titles are reduced to stopword-filtered token sets and
// compared with the Jaccard index; the result is a heuristic filter, not a
// correctness guarantee.
package similarity

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/jstamb/california-breaking-news/internal/domain"
)

// DefaultLookbackHours is the candidate window for duplicate checks.
const DefaultLookbackHours = 168

// DefaultThreshold is the minimum Jaccard score treated as a likely duplicate.
const DefaultThreshold = 0.4

// stopwords are ignored when comparing titles: common English function words
// plus a few words that appear in almost every headline.
var stopwords = map[string]struct{}{}

func init() {
	words := []string{
		"a", "an", "the", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "from", "as", "is", "was", "are", "were", "been",
		"be", "have", "has", "had", "do", "does", "did", "will", "would",
		"could", "should", "may", "might", "must", "shall", "can", "need",
		"that", "which", "who", "whom", "this", "these", "those", "it",
		"its", "his", "her", "their", "our", "your", "my", "into", "about",
		"than", "so", "no", "not", "only", "just", "more", "most", "some",
		"any", "all", "both", "each", "few", "many", "much", "other", "such",
		"what", "when", "where", "why", "how", "if", "then", "because",
		"while", "although", "after", "before", "during", "until", "unless",
		"says", "said", "new", "now", "also", "over", "out", "up", "down",
		"here", "there", "being", "get", "gets", "got", "report", "reports",
		"study", "finds", "shows", "reveals", "according",
	}
	for _, w := range words {
		stopwords[w] = struct{}{}
	}
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9\s]`)

// ExtractKeywords normalizes a title into its set of significant tokens:
// lowercase, punctuation stripped, tokens of length <= 2 and stopwords
// dropped. Duplicate tokens collapse (set semantics).
func ExtractKeywords(title string) map[string]struct{} {
	normalized := nonAlnum.ReplaceAllString(strings.ToLower(title), "")

	keywords := make(map[string]struct{})
	for _, word := range strings.Fields(normalized) {
		if len(word) <= 2 {
			continue
		}
		if _, skip := stopwords[word]; skip {
			continue
		}
		keywords[word] = struct{}{}
	}
	return keywords
}

// Jaccard returns |intersection| / |union| of two keyword sets. It is 0 when
// either set is empty, which guards the divide by zero.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	intersection := 0
	for w := range a {
		if _, ok := b[w]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// SharedKeywords returns the tokens present in both sets, sorted for stable
// output.
func SharedKeywords(a, b map[string]struct{}) []string {
	shared := make([]string, 0)
	for w := range a {
		if _, ok := b[w]; ok {
			shared = append(shared, w)
		}
	}
	sort.Strings(shared)
	return shared
}

// Match is a candidate post scored against the input title.
type Match struct {
	domain.PostRef
	Similarity     float64  `json:"similarity"`
	SharedKeywords []string `json:"shared_keywords"`
}

// Result is the outcome of a duplicate-title check.
type Result struct {
	IsDuplicate   bool     `json:"is_duplicate"`
	InputKeywords []string `json:"input_keywords"`
	Threshold     float64  `json:"threshold"`
	BestMatch     *Match   `json:"best_match"`
	SimilarPosts  []Match  `json:"similar_posts"`
	CheckedCount  int      `json:"checked_count"`
}

// Detect scores the candidate posts against the input title and reports every
// match at or above threshold (inclusive), ranked by descending similarity.
// Scores are rounded to 2 decimal places before the threshold comparison.
// Ties keep the candidates' original order, so passing candidates sorted by
// publish time newest-first preserves that as the tie-break.
func Detect(title string, candidates []domain.PostRef, threshold float64) Result {
	inputKeywords := ExtractKeywords(title)

	result := Result{
		InputKeywords: setToSlice(inputKeywords),
		Threshold:     threshold,
		SimilarPosts:  make([]Match, 0),
		CheckedCount:  len(candidates),
	}

	for _, candidate := range candidates {
		candidateKeywords := ExtractKeywords(candidate.Title)
		score := round2(Jaccard(inputKeywords, candidateKeywords))
		if score < threshold {
			continue
		}
		result.SimilarPosts = append(result.SimilarPosts, Match{
			PostRef:        candidate,
			Similarity:     score,
			SharedKeywords: SharedKeywords(inputKeywords, candidateKeywords),
		})
	}

	sort.SliceStable(result.SimilarPosts, func(i, j int) bool {
		return result.SimilarPosts[i].Similarity > result.SimilarPosts[j].Similarity
	})

	if len(result.SimilarPosts) > 0 {
		result.IsDuplicate = true
		result.BestMatch = &result.SimilarPosts[0]
	}
	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func setToSlice(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
