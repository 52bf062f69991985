package sentiment

import (
	"context"

	"tweet-sentiment/internal/model"
	"tweet-sentiment/internal/random"
)

// LexiconModel is the name reported by the keyword classifier.
const LexiconModel = "lexicon_sentiment_v1"

var positiveWords = map[string]struct{}{
	"good": {}, "great": {}, "excellent": {}, "amazing": {},
	"love": {}, "best": {}, "positive": {}, "happy": {},
}

var negativeWords = map[string]struct{}{
	"bad": {}, "terrible": {}, "worst": {}, "hate": {},
	"negative": {}, "sad": {}, "awful": {}, "problem": {},
}

// Confidence ranges per outcome.
const (
	polarMin   = 0.70
	polarMax   = 0.95
	neutralMin = 0.60
	neutralMax = 0.85
)

// Lexicon counts positive and negative keywords. It holds no mutable state.
type Lexicon struct {
	src random.Source
}

func NewLexicon(src random.Source) *Lexicon {
	if src == nil {
		src = random.New()
	}
	return &Lexicon{src: src}
}

func (l *Lexicon) Name() string { return LexiconModel }

// Classify labels text by keyword majority. Ties, including no keywords at all,
// are neutral regardless of which word came first.
func (l *Lexicon) Classify(_ context.Context, text string) (model.ClassificationResult, error) {
	if err := checkInput(text); err != nil {
		return model.ClassificationResult{}, err
	}
	toks := tokens(text)
	p, n := 0, 0
	for _, t := range toks {
		if _, ok := positiveWords[t]; ok {
			p++
		}
		if _, ok := negativeWords[t]; ok {
			n++
		}
	}

	var v model.Verdict
	switch {
	case p > n:
		v = model.Verdict{Label: model.Positive, Confidence: random.Confidence(l.src, polarMin, polarMax)}
	case n > p:
		v = model.Verdict{Label: model.Negative, Confidence: random.Confidence(l.src, polarMin, polarMax)}
	default:
		v = model.Verdict{Label: model.Neutral, Confidence: random.Confidence(l.src, neutralMin, neutralMax)}
	}

	return model.ClassificationResult{
		Text:      text,
		Verdict:   v,
		Hashtags:  hashtags(toks),
		WordCount: wordCount(text),
		Model:     LexiconModel,
	}, nil
}
