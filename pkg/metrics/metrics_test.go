package metrics

import "testing"

func TestGeometricBuckets(t *testing.T) {
	buckets := GeometricBuckets(5)
	want := []float64{0.2, 1, 5, 25, 125}

	if len(buckets) != len(want) {
		t.Fatalf("GeometricBuckets(5) length = %d, want %d", len(buckets), len(want))
	}
	for i, w := range want {
		if buckets[i] != w {
			t.Errorf("GeometricBuckets(5)[%d] = %v, want %v", i, buckets[i], w)
		}
	}
}

func TestGeometricBucketsMonotonic(t *testing.T) {
	buckets := GeometricBuckets(10)
	for i := 1; i < len(buckets); i++ {
		if buckets[i] <= buckets[i-1] {
			t.Errorf("GeometricBuckets(10)[%d]=%v not greater than [%d]=%v", i, buckets[i], i-1, buckets[i-1])
		}
	}
}
