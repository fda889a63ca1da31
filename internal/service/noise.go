package service

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"

	"github.com/smartcity/tourdifficulty/internal/domain"
)

// NoiseSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type NoiseSource interface {
	Float64() float64
}

// NoiseFactory returns the generator that drives every draw of one assessment.
// Each call gets its own generator; nothing is shared between requests.
type NoiseFactory func(areaID string, at time.Time) NoiseSource

// BucketNoise seeds a local PCG generator from (area id, KST hour, minute/5),
// so repeated assessments of an area within one 5-minute bucket are identical.
func BucketNoise(areaID string, at time.Time) NoiseSource {
	local := at.In(domain.KST)

	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%d|%d", areaID, local.Hour(), local.Minute()/5)
	seed := h.Sum64()

	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// EntropyNoise ignores its arguments and returns an unpredictable generator
func EntropyNoise(string, time.Time) NoiseSource {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func uniform(src NoiseSource, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}
