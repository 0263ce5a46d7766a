// Package textproc normalizes free text into comparable token streams
// for term weighting and skill matching.
package textproc

// stopWords are high-frequency English words that carry no matching
// signal: articles, conjunctions, prepositions, copulas, and a handful
// of resume/job-ad boilerplate words.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "any": {}, "can": {}, "had": {}, "her": {},
	"was": {}, "one": {}, "our": {}, "out": {}, "has": {}, "him": {},
	"his": {}, "how": {}, "its": {}, "may": {}, "new": {}, "now": {},
	"old": {}, "see": {}, "two": {}, "who": {}, "did": {}, "get": {},
	"she": {}, "too": {}, "use": {}, "will": {}, "with": {}, "this": {},
	"that": {}, "from": {}, "they": {}, "have": {}, "been": {},
	"were": {}, "than": {}, "then": {}, "them": {}, "these": {},
	"those": {}, "there": {}, "their": {}, "your": {}, "what": {},
	"when": {}, "where": {}, "which": {}, "while": {}, "would": {},
	"could": {}, "should": {}, "about": {}, "into": {}, "over": {},
	"under": {}, "after": {}, "before": {}, "between": {}, "through": {},
	"during": {}, "within": {}, "without": {}, "such": {}, "each": {},
	"other": {}, "some": {}, "more": {}, "most": {}, "also": {},
	"able": {}, "well": {}, "very": {}, "must": {}, "upon": {},
	"being": {}, "both": {}, "because": {}, "against": {}, "among": {},
	"including": {}, "across": {}, "per": {}, "via": {}, "etc": {},
	"using": {}, "ensure": {}, "required": {}, "requirements": {},
	"responsibilities": {}, "candidate": {}, "applicant": {},
	"position": {}, "role": {}, "duties": {}, "apply": {},
}

// IsStopWord reports whether the lower-cased token is a stop-word.
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}
