package classifier

import (
	"fmt"
	"math"
	"sort"

	"github.com/Chative-core-poc-v1/chatbot/internal/agent/textnorm"
)

// DefaultAlpha is the Laplace smoothing used when none is configured.
const DefaultAlpha = 1.0

// NaiveBayes trains a multinomial naive Bayes model over word counts.
type NaiveBayes struct {
	Alpha float64
}

// NewNaiveBayes returns a trainer with the given smoothing. Non-positive
// alpha falls back to DefaultAlpha.
func NewNaiveBayes(alpha float64) *NaiveBayes {
	if alpha <= 0 {
		alpha = DefaultAlpha
	}
	return &NaiveBayes{Alpha: alpha}
}

// Fit builds the vocabulary from corpus and estimates per-label token
// likelihoods. Each distinct label becomes one class.
func (nb *NaiveBayes) Fit(corpus []string, labels []int) (Predictor, error) {
	if len(corpus) == 0 {
		return nil, fmt.Errorf("empty corpus")
	}
	if len(corpus) != len(labels) {
		return nil, fmt.Errorf("corpus has %d texts but %d labels", len(corpus), len(labels))
	}
	alpha := nb.Alpha
	if alpha <= 0 {
		alpha = DefaultAlpha
	}

	vocab := make(map[string]int)
	docs := make([][]string, len(corpus))
	for i, text := range corpus {
		docs[i] = textnorm.Tokenize(text)
		for _, tok := range docs[i] {
			if _, ok := vocab[tok]; !ok {
				vocab[tok] = len(vocab)
			}
		}
	}

	classIndex := make(map[int]int)
	for _, l := range labels {
		if _, ok := classIndex[l]; !ok {
			classIndex[l] = 0
		}
	}
	classes := make([]int, 0, len(classIndex))
	for l := range classIndex {
		classes = append(classes, l)
	}
	sort.Ints(classes)
	for i, l := range classes {
		classIndex[l] = i
	}

	counts := make([][]float64, len(classes))
	for i := range counts {
		counts[i] = make([]float64, len(vocab))
	}
	docsPerClass := make([]float64, len(classes))
	for i, doc := range docs {
		c := classIndex[labels[i]]
		docsPerClass[c]++
		for _, tok := range doc {
			counts[c][vocab[tok]]++
		}
	}

	m := &nbModel{
		vocab:       vocab,
		classes:     classes,
		logPrior:    make([]float64, len(classes)),
		logLikelihd: make([][]float64, len(classes)),
	}
	v := float64(len(vocab))
	for c := range classes {
		m.logPrior[c] = math.Log(docsPerClass[c] / float64(len(docs)))

		var total float64
		for _, n := range counts[c] {
			total += n
		}
		m.logLikelihd[c] = make([]float64, len(vocab))
		for w, n := range counts[c] {
			m.logLikelihd[c][w] = math.Log((n + alpha) / (total + alpha*v))
		}
	}
	return m, nil
}

type nbModel struct {
	vocab       map[string]int
	classes     []int
	logPrior    []float64
	logLikelihd [][]float64
}

// Predict returns the label with the highest posterior. Tokens outside the
// training vocabulary are ignored; ties go to the lowest label.
func (m *nbModel) Predict(text string) int {
	features := make(map[int]float64)
	for _, tok := range textnorm.Tokenize(text) {
		if w, ok := m.vocab[tok]; ok {
			features[w]++
		}
	}

	best, bestScore := 0, math.Inf(-1)
	for c := range m.classes {
		score := m.logPrior[c]
		for w, n := range features {
			score += n * m.logLikelihd[c][w]
		}
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	return m.classes[best]
}

var _ Trainer = (*NaiveBayes)(nil)
