// Package cgo_benchmark provides CGO benchmarks for comparison with purego.
//
// It links libvlc at build time, so it is only built with the libvlc_cgo tag:
//
//	go test -tags libvlc_cgo -bench . ./cgo_benchmark
package cgo_benchmark
