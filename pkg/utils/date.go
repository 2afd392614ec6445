package utils

import (
	"strconv"
	"time"
)

// ParseUnixTimestamp converte um timestamp em segundos, enviado como texto, para time.Time
func ParseUnixTimestamp(value string) (time.Time, error) {
	seconds, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, err
	}

	return time.Unix(seconds, 0).UTC(), nil
}
