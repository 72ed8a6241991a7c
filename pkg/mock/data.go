package mock

import (
	"math/rand"
	"strconv"
)

const (
	minBodyLen = 8
	maxBodyLen = 1024
)

// Payload is a throwaway element type for tests and benchmarks.
type Payload struct {
	ID   int
	Body []byte
}

// GenerateKeys produces num distinct deterministic keys.
func GenerateKeys(num int) []string {
	keys := make([]string, 0, num)
	for i := 0; i < num; i++ {
		keys = append(keys, "project:285/page:"+strconv.Itoa(i))
	}
	return keys
}

// GeneratePayloads produces num payloads with pseudo-random bodies.
// The source is seeded per call, so repeated runs see the same data.
func GeneratePayloads(num int) []*Payload {
	rnd := rand.New(rand.NewSource(int64(num)))
	list := make([]*Payload, 0, num)
	for i := 0; i < num; i++ {
		body := make([]byte, minBodyLen+rnd.Intn(maxBodyLen-minBodyLen))
		rnd.Read(body)
		list = append(list, &Payload{ID: i, Body: body})
	}
	return list
}
