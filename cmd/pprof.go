package cmd

import (
	"os"
	"os/signal"
	"runtime/pprof"
	"sync"
	"syscall"
)

// ProfileCPU writes a CPU profile to output until the exit hooks run. On
// SIGINT or SIGTERM the profile is flushed and the process exits with
// status 130.
func (c *Config) ProfileCPU(output string) *Error {
	f, err := os.Create(output)
	if err != nil {
		return Errorf(1, "could not create cpu profile: %v", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return Errorf(1, "could not start cpu profile: %v", err)
	}
	var once sync.Once
	stop := func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			f.Close()
		})
	}
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		stop()
		os.Exit(130)
	}()
	c.AtExit(func() {
		signal.Stop(sigs)
		stop()
	})
	return nil
}
