// Package distance provides distance and similarity measures between
// decimal vectors.
//
// # Supported Metrics
//
//   - MetricL2: Euclidean distance
//   - MetricSquaredL2: Squared Euclidean distance
//   - MetricCosine: Cosine similarity (dot product of the normalised vectors)
//   - MetricDot: Dot product (inner product)
//
// # Usage
//
//	dist, err := distance.L2(a, b)
//	sim, err := distance.Cosine(a, b)
//	fn, err := distance.Provider(distance.MetricL2)
package distance
