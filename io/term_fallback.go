package clargsio

import (
	"os"
	"strconv"
)

// fallbackTermSizeFromEnv reads $COLUMNS and $LINES, returning 0 for
// anything missing or malformed.
func fallbackTermSizeFromEnv() (int, int) {
	return positiveEnv("COLUMNS"), positiveEnv("LINES")
}

func positiveEnv(key string) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
