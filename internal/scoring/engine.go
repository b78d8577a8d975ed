// internal/scoring/engine.go

// Package scoring evaluates a student utterance against an expected
// utterance: pronunciation overlap, word-level error detection, acoustic
// sub-scores, agent reply and avatar cues.
//
// The pronunciation measure is a bag-of-words overlap, an acknowledged
// placeholder until a real ASR/phonetic pipeline is plugged in behind
// AcousticScorer and the engine boundary. Callers must not read more than
// coarse signal into it.
package scoring

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/juank2492/LenBot/internal/model"
)

const (
	// neutralScore is returned when there is nothing to compare against.
	neutralScore = 50.0
	// repeatThreshold splits correct from incorrect utterances.
	repeatThreshold = 70.0
	// jitterRange bounds the random perturbation added to the overlap score.
	jitterRange = 10.0
)

// Avatar emotions keyed by overall-score bracket.
const (
	EmotionHappy       = "happy"
	EmotionNeutral     = "neutral"
	EmotionThoughtful  = "thoughtful"
	EmotionEncouraging = "encouraging"
)

// Result is the outcome of evaluating one utterance.
type Result struct {
	PronunciationScore float64
	FluencyScore       float64
	IntonationScore    float64
	RhythmScore        float64
	Errors             model.GrammarErrors
	Suggestions        model.Suggestions
	Reply              string
	Emotion            string
	OverallScore       float64
	NeedsRepeat        bool
}

// AcousticScorer produces the fluency/intonation/rhythm sub-scores. The
// default implementation draws placeholders; a real implementation would
// analyze the audio signal.
type AcousticScorer interface {
	Score(rawText, expectedText string) (fluency, intonation, rhythm float64)
}

// randomAcoustic draws each sub-score uniformly from [60, 100].
type randomAcoustic struct {
	rng *rand.Rand
}

func (a *randomAcoustic) Score(rawText, expectedText string) (float64, float64, float64) {
	draw := func() float64 { return 60 + a.rng.Float64()*40 }
	return draw(), draw(), draw()
}

// Engine scores utterances. All randomness flows through the injected
// source, so a fixed seed yields deterministic results.
type Engine struct {
	rng      *rand.Rand
	acoustic AcousticScorer
}

// NewEngine builds an engine around the given randomness source. A nil
// acoustic scorer selects the random placeholder sharing the same source.
func NewEngine(src rand.Source, acoustic AcousticScorer) *Engine {
	rng := rand.New(src)
	if acoustic == nil {
		acoustic = &randomAcoustic{rng: rng}
	}
	return &Engine{rng: rng, acoustic: acoustic}
}

// Evaluate scores rawText against expectedText and selects the agent reply
// and avatar emotion.
func (e *Engine) Evaluate(rawText, expectedText string) Result {
	pronunciation := e.pronunciationScore(rawText, expectedText)
	fluency, intonation, rhythm := e.acoustic.Score(rawText, expectedText)
	errs, suggestions := detectErrors(rawText, expectedText)

	overall := (pronunciation + fluency + intonation + rhythm) / 4

	return Result{
		PronunciationScore: pronunciation,
		FluencyScore:       fluency,
		IntonationScore:    intonation,
		RhythmScore:        rhythm,
		Errors:             errs,
		Suggestions:        suggestions,
		Reply:              e.pickReply(overall),
		Emotion:            emotionFor(overall),
		OverallScore:       overall,
		NeedsRepeat:        overall < repeatThreshold,
	}
}

// pronunciationScore measures unordered token overlap between the student
// and expected utterances, with a bounded random jitter.
func (e *Engine) pronunciationScore(rawText, expectedText string) float64 {
	if rawText == "" || expectedText == "" {
		return neutralScore
	}

	studentWords := tokenize(rawText)
	expectedWords := tokenize(expectedText)
	if len(expectedWords) == 0 {
		return neutralScore
	}

	expectedSet := make(map[string]bool, len(expectedWords))
	for _, w := range expectedWords {
		expectedSet[w] = true
	}

	matches := 0
	for _, w := range studentWords {
		if expectedSet[w] {
			matches++
		}
	}

	similarity := float64(matches) / float64(len(expectedWords)) * 100
	jitter := e.rng.Float64()*2*jitterRange - jitterRange
	return clamp(similarity+jitter, 0, 100)
}

// detectErrors aligns the student tokens against the expected tokens. A
// token missing from the student sequence is an omission at the expected
// position; a mismatched token that does not realign on the next expected
// word is a substitution. No errors are reported when either side is empty.
func detectErrors(rawText, expectedText string) (model.GrammarErrors, model.Suggestions) {
	errs := model.GrammarErrors{}
	suggestions := model.Suggestions{}

	if rawText == "" || expectedText == "" {
		return errs, suggestions
	}

	studentWords := tokenize(rawText)
	expectedWords := tokenize(expectedText)

	j := 0
	for i := 0; i < len(expectedWords); i++ {
		if j >= len(studentWords) {
			errs = append(errs, model.GrammarError{
				Type:     model.ErrorOmission,
				Word:     expectedWords[i],
				Position: i,
			})
			continue
		}
		if studentWords[j] == expectedWords[i] {
			j++
			continue
		}
		// The student token matches the next expected word: the current
		// expected word was skipped.
		if i+1 < len(expectedWords) && studentWords[j] == expectedWords[i+1] {
			errs = append(errs, model.GrammarError{
				Type:     model.ErrorOmission,
				Word:     expectedWords[i],
				Position: i,
			})
			continue
		}
		errs = append(errs, model.GrammarError{
			Type:     model.ErrorSubstitution,
			Wrong:    studentWords[j],
			Correct:  expectedWords[i],
			Position: i,
		})
		suggestions = append(suggestions, fmt.Sprintf("Pronuncia '%s' en lugar de '%s'", expectedWords[i], studentWords[j]))
		j++
	}

	return errs, suggestions
}

// Reply pools keyed by overall-score bracket, mirroring the agent's canned
// personality.
var (
	repliesExcellent = []string{
		"¡Excelente pronunciación! 🌟 You did great!",
		"¡Muy bien! Tu pronunciación es casi perfecta. Keep it up!",
		"¡Fantástico! You're making amazing progress!",
	}
	repliesGood = []string{
		"¡Buen trabajo! Hay algunos detalles que podemos mejorar.",
		"Good effort! Let's practice a bit more.",
		"¡Vas por buen camino! Practiquemos un poco más.",
	}
	repliesFair = []string{
		"Let's try again. Focus on pronouncing each word clearly.",
		"No te preocupes, ¡la práctica hace al maestro! Try again.",
		"Good attempt! Let me help you with the pronunciation.",
	}
	repliesRetry = []string{
		"Don't give up! Let's break it down and practice word by word.",
		"It's okay to make mistakes. That's how we learn! Try again.",
		"¡Vamos a intentarlo de nuevo! Escucha con atención y repite conmigo.",
	}
)

func (e *Engine) pickReply(overall float64) string {
	var pool []string
	switch {
	case overall >= 90:
		pool = repliesExcellent
	case overall >= 70:
		pool = repliesGood
	case overall >= 50:
		pool = repliesFair
	default:
		pool = repliesRetry
	}
	return pool[e.rng.Intn(len(pool))]
}

func emotionFor(overall float64) string {
	switch {
	case overall >= 90:
		return EmotionHappy
	case overall >= 70:
		return EmotionNeutral
	case overall >= 50:
		return EmotionThoughtful
	default:
		return EmotionEncouraging
	}
}

func tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
