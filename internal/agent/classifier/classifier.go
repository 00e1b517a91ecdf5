// Package classifier provides the trainable text classifier capability the
// classifier strategy consumes, plus a bag-of-words naive Bayes implementation.
package classifier

// Trainer fits a model mapping texts to integer labels.
type Trainer interface {
	Fit(corpus []string, labels []int) (Predictor, error)
}

// Predictor is a trained model. Predict returns one of the labels it was fitted with.
type Predictor interface {
	Predict(text string) int
}
