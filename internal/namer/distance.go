package namer

import (
	"math"

	"github.com/alexisbeaulieu97/swatch/internal/codec"
)

func distance(a, b codec.RGB) float64 {
	return math.Sqrt(float64(squaredDistance(a, b)))
}
