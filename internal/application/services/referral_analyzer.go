package services

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinAnalyzeLength is the input length below which callers usually skip
// analysis. Analyze itself accepts any length.
const MinAnalyzeLength = 10

const minKeywordLength = 3

// Interpretation is the best-effort structured hint extracted from referral
// text. It is a hint, never a hard classification: BenefitGuess carries no
// guarantee of being an actual registry benefit name, and reconciliation
// against the curated list is the caller's job.
type Interpretation struct {
	BenefitGuess string
	Keywords     []string
}

// ReferralAnalyzer extracts keywords and a benefit phrase from free-form
// referral text. Pure functions, no I/O, no shared state.
type ReferralAnalyzer struct{}

// NewReferralAnalyzer creates a new analyzer.
func NewReferralAnalyzer() *ReferralAnalyzer {
	return &ReferralAnalyzer{}
}

var nonWordChars = regexp.MustCompile(`[^\p{L}\p{N}\s\-]`)

// stopWords are common Polish function words and referral boilerplate that
// carry no signal.
var stopWords = map[string]struct{}{
	"aby": {}, "ale": {}, "bez": {}, "czy": {}, "dla": {}, "jak": {},
	"jest": {}, "lub": {}, "nad": {}, "nie": {}, "oraz": {}, "pana": {},
	"pani": {}, "pod": {}, "pomoc": {}, "proszę": {}, "prosze": {},
	"przez": {}, "przy": {}, "się": {}, "sie": {}, "tego": {}, "tym": {},
	"uprzejmie": {},
}

// triggerWords mark the start of a benefit-category phrase in referral text.
// Inflected forms are listed separately; the analyzer does no stemming.
var triggerWords = map[string]struct{}{
	"poradnia": {}, "poradni": {},
	"oddział": {}, "oddziału": {}, "oddzial": {},
	"pracownia": {}, "pracowni": {},
	"rehabilitacja": {}, "rehabilitacji": {},
	"laboratorium": {},
	"leczenie": {}, "leczenia": {},
	"ośrodek": {}, "ośrodka": {},
	"zakład": {}, "zakładu": {},
	"gabinet": {}, "gabinetu": {},
}

// Analyze transforms referral text into keywords and a best-guess benefit
// phrase. The first trigger word in text order wins; the guess is the
// trigger word together with the word that follows it, bounded by
// whitespace, or by the end of the text when the phrase runs that far.
func (a *ReferralAnalyzer) Analyze(text string) Interpretation {
	tokens := tokenize(text)

	keywords := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) < minKeywordLength {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		keywords = append(keywords, tok)
	}

	guess := ""
	for i, tok := range tokens {
		if _, ok := triggerWords[tok]; !ok {
			continue
		}
		if i+1 < len(tokens) {
			guess = tok + " " + tokens[i+1]
		} else {
			guess = tok
		}
		break
	}

	return Interpretation{BenefitGuess: guess, Keywords: keywords}
}

// tokenize lower-cases the text, strips punctuation, collapses whitespace
// runs and splits into word tokens.
func tokenize(text string) []string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	normalized = nonWordChars.ReplaceAllString(normalized, "")
	return strings.Fields(normalized)
}
