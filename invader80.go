// This file is part of Invader80.
//
// Invader80 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Invader80 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Invader80.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/softlanding/invader80/cpm"
	"github.com/softlanding/invader80/curated"
	"github.com/softlanding/invader80/debugger"
	"github.com/softlanding/invader80/debugger/terminal"
	"github.com/softlanding/invader80/debugger/terminal/colorterm"
	"github.com/softlanding/invader80/debugger/terminal/plainterm"
	"github.com/softlanding/invader80/disassembly"
	"github.com/softlanding/invader80/hardware"
	"github.com/softlanding/invader80/hardware/ports/midway"
	"github.com/softlanding/invader80/logger"
	"github.com/softlanding/invader80/modalflag"
	"github.com/softlanding/invader80/performance"
	"github.com/softlanding/invader80/romload"
	"github.com/softlanding/invader80/statsview"
)

const romHelp = `ROM files are loaded at address zero by default. An alternative origin can
be appended to the filename with the @ character. For example, the four 2KB
images of the original cabinet's ROM set:

    invaders.h@0x0000 invaders.g@0x0800 invaders.f@0x1000 invaders.e@0x1800`

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORMANCE", "CPM")

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
	case "DEBUG":
		err = debug(md)
	case "DISASM":
		err = disasm(md)
	case "PERFORMANCE":
		err = perform(md)
	case "CPM":
		err = cpmConsole(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)
		os.Exit(20)
	}
}

// parseROMArgs converts the remaining command line arguments into ROM
// loaders. See romHelp for the accepted format.
func parseROMArgs(args []string, origin uint16) ([]romload.Loader, error) {
	if len(args) == 0 {
		return nil, curated.Errorf("at least one ROM file required")
	}

	loaders := make([]romload.Loader, 0, len(args))
	for _, arg := range args {
		o := origin
		if i := strings.LastIndex(arg, "@"); i != -1 {
			v, err := strconv.ParseUint(arg[i+1:], 0, 16)
			if err != nil {
				return nil, curated.Errorf("cannot parse ROM origin: %s", arg[i+1:])
			}
			o = uint16(v)
			arg = arg[:i]
		}
		loaders = append(loaders, romload.NewLoader(arg, o))
	}

	return loaders, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp(romHelp)

	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("stats", false, "run stats server")
	uncapped := md.AddBool("uncapped", false, "run as fast as possible, with no frame timing")

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
		statsview.Launch(os.Stdout)
	}

	loaders, err := parseROMArgs(md.RemainingArgs(), 0x0000)
	if err != nil {
		return err
	}

	m := hardware.NewMachine()
	m.AttachDevice(midway.NewMidway())

	err = m.AttachROM(loaders...)
	if err != nil {
		return err
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// pace the emulation to the real cabinet's frame rate
	tick := time.NewTicker(time.Second / hardware.FramesPerSecond)
	defer tick.Stop()

	for {
		select {
		case <-intChan:
			fmt.Println("\r")
			return nil
		default:
		}

		_, err = m.StepFrame()
		if err != nil {
			return err
		}

		if !*uncapped {
			<-tick.C
		}
	}
}

func debug(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp(romHelp)

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		term = &plainterm.PlainTerminal{}
	}

	loaders, err := parseROMArgs(md.RemainingArgs(), 0x0000)
	if err != nil {
		return err
	}

	m := hardware.NewMachine()
	m.AttachDevice(midway.NewMidway())

	dbg, err := debugger.NewDebugger(m, term)
	if err != nil {
		return err
	}

	return dbg.Start(loaders...)
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp(romHelp)

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	from := md.AddUint("from", 0x0000, "address to disassemble from")
	to := md.AddUint("to", 0x1fff, "address to disassemble to")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	loaders, err := parseROMArgs(md.RemainingArgs(), 0x0000)
	if err != nil {
		return err
	}

	m := hardware.NewMachine()
	err = m.AttachROM(loaders...)
	if err != nil {
		return err
	}

	attr := disassembly.WriteAttr{ByteCode: *bytecode}
	return disassembly.Write(os.Stdout, m.Mem, attr, uint16(*from), uint16(*to))
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp(romHelp)

	profile := md.AddBool("profile", false, "perform cpu and memory profiling")
	duration := md.AddString("duration", "5s", "run duration")
	stats := md.AddBool("stats", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	loaders, err := parseROMArgs(md.RemainingArgs(), 0x0000)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, *profile, *duration, loaders...)
}

func cpmConsole(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp(`Runs a CP/M test program, mapping the console output
routines of the BDOS to stdout. Useful for 8080 exerciser programs.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	loaders, err := parseROMArgs(md.RemainingArgs(), cpm.Origin)
	if err != nil {
		return err
	}

	m := hardware.NewMachine()
	err = m.AttachROM(loaders...)
	if err != nil {
		return err
	}

	con := cpm.NewConsole(m, os.Stdout)
	err = con.Run()
	fmt.Println()

	return err
}
