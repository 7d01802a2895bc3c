package usecase

import "errors"

var (
	// ErrModelUnavailable is returned when the classifier never reached the
	// ready state (missing artifact, bad metadata, label mismatch). The
	// condition is permanent for the process lifetime; there is no retry.
	ErrModelUnavailable = errors.New("classification model is not available")

	// ErrInvalidImage is returned when the uploaded bytes are empty,
	// oversized or not a decodable JPEG/PNG image.
	ErrInvalidImage = errors.New("invalid image")

	// ErrNoLabels is returned when the breed catalog holds no class labels,
	// so model outputs cannot be mapped to breed names.
	ErrNoLabels = errors.New("no class labels available")
)
