package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	recordIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	recordIDLength   = 10
)

// NewRecordID gera o ID de um registro persistido pelo serviço, ex.: "rate_3k9x0q2m7a"
func NewRecordID(prefix string) (string, error) {
	id, err := gonanoid.Generate(recordIDAlphabet, recordIDLength)
	if err != nil {
		return "", err
	}

	if prefix == "" {
		return id, nil
	}
	return prefix + "_" + id, nil
}
