package domain

import "errors"

// MaxImagesPerRequest caps how many artifacts one generation call may ask for.
const MaxImagesPerRequest = 3

var ErrPromptRequired = errors.New("prompt is required")
var ErrInvalidImageCount = errors.New("image count out of range")
var ErrGeneratorNotConfigured = errors.New("image service is not configured")
var ErrEmptyGeneration = errors.New("no images were generated")
