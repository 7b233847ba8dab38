// Package rand generates random test data.
package rand

import (
	"math/rand"
	"sync"
	"time"
)

const letterBytes = "abcdefghijklmnopqrstuvwxyz0123456789"

var (
	mx  sync.Mutex
	src = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// LetterString returns a random string picked in the [0-9]|[a-z] range
func LetterString(n int) string {
	mx.Lock()
	defer mx.Unlock()
	b := make([]byte, n)
	for i := range b {
		b[i] = letterBytes[src.Intn(len(letterBytes))]
	}
	return string(b)
}
