package entities

import (
	"sort"
	"strings"
)

// CommonBenefits maps registry benefit names to friendly display names.
// The registry accepts arbitrary uppercase benefit strings; this curated
// subset covers the categories patients ask for most often.
var CommonBenefits = map[string]string{
	"PORADNIA KARDIOLOGICZNA":            "Poradnia kardiologiczna",
	"PORADNIA OKULISTYCZNA":              "Poradnia okulistyczna",
	"PORADNIA NEUROLOGICZNA":             "Poradnia neurologiczna",
	"PORADNIA ORTOPEDYCZNA":              "Poradnia ortopedyczna",
	"PORADNIA GINEKOLOGICZNO-POŁOŻNICZA": "Poradnia ginekologiczno-położnicza",
	"PORADNIA UROLOGICZNA":               "Poradnia urologiczna",
	"PORADNIA CHIRURGII OGÓLNEJ":         "Poradnia chirurgii ogólnej",
	"PORADNIA OTOLARYNGOLOGICZNA":        "Poradnia otolaryngologiczna",
	"PORADNIA DERMATOLOGICZNA":           "Poradnia dermatologiczna",
	"PORADNIA ENDOKRYNOLOGICZNA":         "Poradnia endokrynologiczna",
	"PORADNIA DIABETOLOGICZNA":           "Poradnia diabetologiczna",
	"PORADNIA GASTROENTEROLOGICZNA":      "Poradnia gastroenterologiczna",
	"PORADNIA REUMATOLOGICZNA":           "Poradnia reumatologiczna",
	"PORADNIA PULMONOLOGICZNA":           "Poradnia pulmonologiczna",
	"PORADNIA ZDROWIA PSYCHICZNEGO":      "Poradnia zdrowia psychicznego",
	"ODDZIAŁ CHORÓB WEWNĘTRZNYCH":        "Oddział chorób wewnętrznych",
	"ODDZIAŁ KARDIOLOGICZNY":             "Oddział kardiologiczny",
	"REHABILITACJA KARDIOLOGICZNA":       "Rehabilitacja kardiologiczna",
	"ODDZIAŁ CHIRURGII OGÓLNEJ":          "Oddział chirurgii ogólnej",
	"ODDZIAŁ ORTOPEDYCZNY":               "Oddział ortopedyczny",
	"TOMOGRAFIA KOMPUTEROWA":             "Tomografia komputerowa",
	"REZONANS MAGNETYCZNY":               "Rezonans magnetyczny",
	"BADANIA ENDOSKOPOWE PRZEWODU POKARMOWEGO - GASTROSKOPIA": "Gastroskopia",
	"BADANIA ENDOSKOPOWE PRZEWODU POKARMOWEGO - KOLONOSKOPIA": "Kolonoskopia",
	"PORADNIA STOMATOLOGICZNA":                                "Poradnia stomatologiczna",
}

// ResolveBenefit reconciles user input against the curated benefit list.
// Exact registry names win, then a case-insensitive containment match on the
// friendly names, then an inflection-tolerant word match so that phrases
// lifted from referral text ("poradni kardiologicznej") still land on the
// registry name ("PORADNIA KARDIOLOGICZNA"). Anything else is passed through
// uppercased, since the registry also accepts names outside the curated set.
func ResolveBenefit(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	upper := strings.ToUpper(trimmed)
	if _, ok := CommonBenefits[upper]; ok {
		return upper
	}

	lower := strings.ToLower(trimmed)
	for _, key := range sortedBenefitKeys() {
		if strings.Contains(strings.ToLower(CommonBenefits[key]), lower) {
			return key
		}
	}

	inputWords := strings.Fields(lower)
	for _, key := range sortedBenefitKeys() {
		if wordsMatchInflected(inputWords, strings.Fields(strings.ToLower(key))) {
			return key
		}
	}

	return upper
}

func sortedBenefitKeys() []string {
	keys := make([]string, 0, len(CommonBenefits))
	for key := range CommonBenefits {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// wordsMatchInflected reports whether every input word matches a candidate
// word, in order (candidate words may be skipped). Two words match when they
// share a prefix long enough to survive Polish inflectional endings.
func wordsMatchInflected(input, candidate []string) bool {
	if len(input) == 0 {
		return false
	}
	ci := 0
	for _, word := range input {
		matched := false
		for ci < len(candidate) {
			if sharedStem(word, candidate[ci]) {
				matched = true
				ci++
				break
			}
			ci++
		}
		if !matched {
			return false
		}
	}
	return true
}

func sharedStem(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	shorter := len(ra)
	if len(rb) < shorter {
		shorter = len(rb)
	}
	need := shorter - 2
	if need < 4 {
		need = 4
	}
	if shorter < need {
		return false
	}
	common := 0
	for common < shorter && ra[common] == rb[common] {
		common++
	}
	return common >= need
}

// ResolveProvince accepts either a two-character branch code or a voivodeship
// name and returns the branch code. Returns "" when nothing matches.
func ResolveProvince(input string) string {
	trimmed := strings.TrimSpace(input)
	if len(trimmed) == 2 {
		if ValidProvince(trimmed) {
			return trimmed
		}
		return ""
	}
	for code, name := range Provinces {
		if strings.EqualFold(name, trimmed) {
			return code
		}
	}
	return ""
}
