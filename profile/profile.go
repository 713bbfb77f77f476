// Package profile unifies the profiling api between the Gio profiler and
// pkg/profile.
package profile

import (
	"log"

	"gioui.org/layout"
	"gioui.org/x/profiling"
	"github.com/pkg/profile"
)

// Opt specifies the various profiling options.
type Opt string

const (
	None      Opt = "none"
	CPU       Opt = "cpu"
	Memory    Opt = "mem"
	Block     Opt = "block"
	Goroutine Opt = "goroutine"
	Mutex     Opt = "mutex"
	Trace     Opt = "trace"
	Gio       Opt = "gio"
)

// Profiler wraps a running profile session. The zero value no-ops.
type Profiler struct {
	kind     Opt
	stop     func()
	recorder *profiling.CSVTimingRecorder
}

// Start a profiler for the selected option. Unrecognized options no-op.
func Start(opt Opt) Profiler {
	p := Profiler{kind: opt}
	switch opt {
	case CPU:
		p.stop = profile.Start(profile.CPUProfile).Stop
	case Memory:
		p.stop = profile.Start(profile.MemProfile).Stop
	case Block:
		p.stop = profile.Start(profile.BlockProfile).Stop
	case Goroutine:
		p.stop = profile.Start(profile.GoroutineProfile).Stop
	case Mutex:
		p.stop = profile.Start(profile.MutexProfile).Stop
	case Trace:
		p.stop = profile.Start(profile.TraceProfile).Stop
	case Gio:
		recorder, err := profiling.NewRecorder(nil)
		if err != nil {
			log.Printf("starting gio profiler: %v", err)
			break
		}
		p.recorder = recorder
		p.stop = func() {
			if err := recorder.Stop(); err != nil {
				log.Printf("stopping gio profiler: %v", err)
			}
		}
	}
	return p
}

// Record GUI stats for the current frame, when frame profiling is
// active.
func (p Profiler) Record(gtx layout.Context) {
	if p.recorder != nil {
		p.recorder.Profile(gtx)
	}
}

// Stop the profiler, flushing results.
func (p Profiler) Stop() {
	if p.stop != nil {
		p.stop()
	}
}
