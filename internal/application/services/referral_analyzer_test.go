package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze_ExtractsBenefitPhraseAndKeywords(t *testing.T) {
	a := NewReferralAnalyzer()

	interp := a.Analyze("Proszę o skierowanie do poradni kardiologicznej")

	assert.Equal(t, "poradni kardiologicznej", interp.BenefitGuess)
	assert.Contains(t, interp.Keywords, "skierowanie")
	assert.Contains(t, interp.Keywords, "poradni")
	assert.Contains(t, interp.Keywords, "kardiologicznej")
	// Stop words and tokens under 3 characters are dropped.
	assert.NotContains(t, interp.Keywords, "o")
	assert.NotContains(t, interp.Keywords, "do")
	assert.NotContains(t, interp.Keywords, "proszę")
}

func TestAnalyze_FirstTriggerWins(t *testing.T) {
	a := NewReferralAnalyzer()

	interp := a.Analyze("skierowanie na oddział kardiologiczny lub do poradni neurologicznej")
	assert.Equal(t, "oddział kardiologiczny", interp.BenefitGuess)
}

func TestAnalyze_TriggerAtEndOfText(t *testing.T) {
	a := NewReferralAnalyzer()

	// The phrase boundary defaults to end of string when nothing follows.
	interp := a.Analyze("wymagana dalsza diagnostyka w ramach rehabilitacji")
	assert.Equal(t, "rehabilitacji", interp.BenefitGuess)
}

func TestAnalyze_NoTriggerYieldsEmptyGuess(t *testing.T) {
	a := NewReferralAnalyzer()

	interp := a.Analyze("kontrola wyników badań za trzy miesiące")
	assert.Empty(t, interp.BenefitGuess)
	assert.NotEmpty(t, interp.Keywords)
}

func TestAnalyze_PunctuationAndWhitespace(t *testing.T) {
	a := NewReferralAnalyzer()

	interp := a.Analyze("  Skierowanie:   poradnia  okulistyczna, pilne!  ")
	assert.Equal(t, "poradnia okulistyczna", interp.BenefitGuess)
	assert.Contains(t, interp.Keywords, "pilne")
}

func TestAnalyze_EmptyInput(t *testing.T) {
	a := NewReferralAnalyzer()

	interp := a.Analyze("")
	assert.Empty(t, interp.BenefitGuess)
	assert.Empty(t, interp.Keywords)
}
