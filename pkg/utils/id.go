package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto para registros sem ID de origem
func GenerateID(prefix string) (string, error) {
	id, err := gonanoid.Generate(characters, 10)
	if err != nil {
		return "", err
	}
	return prefix + id, nil
}
