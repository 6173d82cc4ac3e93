package usecase

import "time"

// BuildObserver receives build measurements, typically for metrics export.
type BuildObserver interface {
	ObservePhase(phase string, elapsed time.Duration)
	ObserveRows(table string, rows int)
	ObserveSkipped(kind string, count int)
	ObserveBuild(succeeded bool, elapsed time.Duration)
}

type nopBuildObserver struct{}

func (nopBuildObserver) ObservePhase(string, time.Duration) {}
func (nopBuildObserver) ObserveRows(string, int)            {}
func (nopBuildObserver) ObserveSkipped(string, int)         {}
func (nopBuildObserver) ObserveBuild(bool, time.Duration)   {}
