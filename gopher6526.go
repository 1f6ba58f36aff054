// This file is part of Gopher6526.
//
// Gopher6526 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6526 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6526.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher6526/govern"
	"github.com/jetsetilly/gopher6526/hardware/clocks"
	"github.com/jetsetilly/gopher6526/hardware/machine"
	"github.com/jetsetilly/gopher6526/logger"
	"github.com/jetsetilly/gopher6526/modalflag"
	"github.com/jetsetilly/gopher6526/monitor"
	"github.com/jetsetilly/gopher6526/prefs"
	"github.com/jetsetilly/gopher6526/snapshot"
	"github.com/jetsetilly/gopher6526/statsview"
	"github.com/jetsetilly/gopher6526/version"
	"github.com/jetsetilly/gopher6526/wavwriter"
)

// the default number of cycles for the RUN and SNAPSHOT SAVE modes. about
// ten seconds of a PAL machine.
const defaultCycles = 10000000

func main() {
	// the value to use with os.Exit()
	exitVal := 0

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "SNAPSHOT", "MONITOR", "DUMP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "SNAPSHOT":
		err = snapshotMode(md)

	case "MONITOR":
		err = monitorMode(md)

	case "DUMP":
		err = dump(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		exitVal = 20
	}

	os.Exit(exitVal)
}

// create a new machine. preferences given on the command line take priority
// over the values in the preferences file. the snapshot file is loaded if
// one is given.
func newMachine(cmdlinePrefs string, snapshotFile string) (*machine.Machine, error) {
	if cmdlinePrefs != "" {
		prefs.PushCommandLineStack(cmdlinePrefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
			}
		}()
	}

	m, err := machine.NewMachine(nil)
	if err != nil {
		return nil, err
	}

	if snapshotFile != "" {
		if err := m.LoadSnapshotFile(snapshotFile); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// start timer A of CIA1 in continuous mode with the toggle output on PB6.
// the output is a square wave with a period of twice the timer period.
func tone(m *machine.Machine, latch uint16) error {
	if latch == 0 {
		return nil
	}

	for _, w := range []struct {
		address uint16
		data    uint8
	}{
		{address: 0xdc03, data: 0xff},
		{address: 0xdc04, data: uint8(latch)},
		{address: 0xdc05, data: uint8(latch >> 8)},
		{address: 0xdc0e, data: 0x07},
	} {
		m.Step()
		if err := m.Store(w.address, w.data); err != nil {
			return err
		}
	}

	return nil
}

// interrupt signal handling. the returned function reports whether the
// signal has been seen.
func interrupted() (func() bool, func()) {
	var seen atomic.Bool

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	done := make(chan bool)
	go func() {
		select {
		case <-intChan:
			seen.Store(true)
		case <-done:
		}
	}()

	return seen.Load, func() {
		signal.Stop(intChan)
		close(done)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	cycles := md.AddUint64("cycles", defaultCycles, "number of cycles to run")
	wav := md.AddString("wav", "", "record PB6/PB7 of CIA1 to wav file")
	toneLatch := md.AddInt("tone", 0, "start CIA1 timer A as a tone generator with the latch value")
	stats := md.AddBool("statsview", false, "run stats server")
	statsAddr := md.AddString("statsaddr", statsview.DefaultAddress, "address of the stats server")
	cmdlinePrefs := md.AddString("prefs", "", "preferences for this run (key::value; key::value)")
	log := md.AddBool("log", false, "echo log to stdout")

	md.AdditionalHelp("an optional snapshot file can be given to start the run from")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("stats server not available in this build")
		}
		statsview.Launch(os.Stdout, *statsAddr)
	}

	m, err := newMachine(*cmdlinePrefs, md.GetArg(0))
	if err != nil {
		return err
	}

	var aw *wavwriter.WavWriter
	if *wav != "" {
		freq, _ := clocks.Frequency(m.Instance.Prefs.Spec())
		aw, err = wavwriter.New(*wav, "CIA1", freq*1000000)
		if err != nil {
			return err
		}
		m.Ports1.AddObserver(aw)
	}

	if err := tone(m, uint16(*toneLatch)); err != nil {
		return err
	}

	isInterrupted, stop := interrupted()
	defer stop()

	err = m.RunForCycles(*cycles, func(_ uint64) (govern.State, error) {
		if isInterrupted() {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("ended at cycle %d\n", m.Cycle())

	if aw != nil {
		return aw.Write(m.Cycle())
	}

	return nil
}

func snapshotMode(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("INFO", "SAVE")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "INFO":
		return snapshotInfo(md)
	case "SAVE":
		return snapshotSave(md)
	}

	return nil
}

func snapshotInfo(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single snapshot file is required for %s mode", md)
	}

	rd, err := snapshot.LoadFile(md.GetArg(0))
	if err != nil {
		return err
	}

	fmt.Println(rd)

	return nil
}

func snapshotSave(md *modalflag.Modes) error {
	md.NewMode()

	cycles := md.AddUint64("cycles", defaultCycles, "number of cycles to run before saving")
	toneLatch := md.AddInt("tone", 0, "start CIA1 timer A as a tone generator with the latch value")
	cmdlinePrefs := md.AddString("prefs", "", "preferences for this run (key::value; key::value)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a snapshot file to save to is required for %s mode", md)
	}

	m, err := newMachine(*cmdlinePrefs, "")
	if err != nil {
		return err
	}

	if err := tone(m, uint16(*toneLatch)); err != nil {
		return err
	}

	if err := m.RunForCycles(*cycles, nil); err != nil {
		return err
	}

	return m.SaveSnapshotFile(md.GetArg(0))
}

func monitorMode(md *modalflag.Modes) error {
	md.NewMode()

	runLength := md.AddUint64("run", monitor.DefaultRunLength, "number of cycles for the run command")
	toneLatch := md.AddInt("tone", 0, "start CIA1 timer A as a tone generator with the latch value")
	cmdlinePrefs := md.AddString("prefs", "", "preferences for this run (key::value; key::value)")

	md.AdditionalHelp("an optional snapshot file can be given to start the monitor from")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := newMachine(*cmdlinePrefs, md.GetArg(0))
	if err != nil {
		return err
	}

	if err := tone(m, uint16(*toneLatch)); err != nil {
		return err
	}

	mon := monitor.NewMonitor(m, os.Stdout)
	mon.RunLength = *runLength

	return mon.Run(os.Stdin)
}

func dump(md *modalflag.Modes) error {
	md.NewMode()

	output := md.AddString("o", "", "write the dot graph to file rather than stdout")
	chip := md.AddString("chip", "CIA1", "the chip to dump: CIA1, CIA2 or ALL")

	md.AdditionalHelp("writes a graphviz dot graph of the chip state. an optional snapshot file can be given")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := newMachine("", md.GetArg(0))
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch *chip {
	case "CIA1":
		memviz.Map(out, m.CIA1)
	case "CIA2":
		memviz.Map(out, m.CIA2)
	case "ALL":
		memviz.Map(out, m)
	default:
		return fmt.Errorf("unknown chip (%s)", *chip)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		fmt.Println(version.String())
		return nil
	}

	v, _, _ := version.Version()
	fmt.Println(v)

	return nil
}
