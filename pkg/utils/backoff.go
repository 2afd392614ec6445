package utils

import (
	"context"
	"errors"
	"time"
)

// Backoff repete uma operação com espera exponencial entre as tentativas
type Backoff struct {
	base       time.Duration
	maxRetries int
}

func NewBackoff(base time.Duration, maxRetries int) Backoff {
	if maxRetries < 0 {
		maxRetries = 0
	}

	return Backoff{base: base, maxRetries: maxRetries}
}

// Do executa fn até ter sucesso, esgotar as tentativas ou o contexto ser cancelado
func (b Backoff) Do(ctx context.Context, fn func(attempt int) error) error {
	var err error
	for i := 0; i <= b.maxRetries; i++ {
		err = fn(i)
		if err == nil {
			return nil
		}

		var permanent *PermanentError
		if errors.As(err, &permanent) {
			return permanent.Err
		}

		if i == b.maxRetries {
			break
		}

		wait := time.Duration(1<<i) * b.base
		select {
		case <-ctx.Done():
			return err
		case <-time.After(wait):
		}
	}

	return err
}

// PermanentError interrompe as novas tentativas do Backoff
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string {
	return e.Err.Error()
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

// Permanent marca um erro que não deve ser repetido
func Permanent(err error) error {
	if err == nil {
		return nil
	}

	return &PermanentError{Err: err}
}
