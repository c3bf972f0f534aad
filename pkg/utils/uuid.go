package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const tokenIDLength = 21

// GenerateTokenID returns a random identifier for single-use tokens
func GenerateTokenID() (string, error) {
	return gonanoid.Generate(characters, tokenIDLength)
}
