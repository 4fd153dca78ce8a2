package main

import (
	"math/rand/v2"
	"strconv"
)

// Seeder supplies the chart shown when nothing has been saved yet.
type Seeder func() []Point

// randomSeed places three points at random in the upper part of the chart.
func randomSeed(r *rand.Rand) Seeder {
	return func() []Point {
		points := make([]Point, 0, initialNextID-1)
		for id := 1; id < initialNextID; id++ {
			points = append(points, Point{
				ID:    id,
				X:     Number(float64(r.IntN(70) + 10)),
				Y:     Number(float64(r.IntN(60) + 30)),
				Label: strconv.Itoa(id),
			})
		}
		return points
	}
}
