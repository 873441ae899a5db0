// This file is part of Totem.
//
// Totem is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Totem is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Totem.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	
	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/totem/cue"
	"github.com/jetsetilly/totem/focusgrid"
	"github.com/jetsetilly/totem/gui"
	"github.com/jetsetilly/totem/gui/sdlgl"
	"github.com/jetsetilly/totem/gui/tui"
	"github.com/jetsetilly/totem/keyinput"
	"github.com/jetsetilly/totem/logger"
	"github.com/jetsetilly/totem/modalflag"
	"github.com/jetsetilly/totem/paths"
	"github.com/jetsetilly/totem/profile"
	"github.com/jetsetilly/totem/recorder"
	"github.com/jetsetilly/totem/serialswitch"
	"github.com/jetsetilly/totem/statsview"
	"github.com/jetsetilly/totem/version"
)

// SDL requires that window creation and event handling happen in the main
// thread
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	// #ctrlc handler. the run loops check the channel every frame
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	os.Exit(launch(os.Args[1:], os.Stdout, intChan))
}

// options common to all modes
type options struct {
	prefs     profile.Overrides
	watch     bool
	fps       int
	grid      modalflag.Dimensions
	statsview bool
	record    string
	playback  string
}

// launch parses the command line and runs the selected mode. returns the
// value to use with os.Exit()
func launch(args []string, output io.Writer, intChan <-chan os.Signal) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "TERM", "SWITCH", "CHECK")
	md.AdditionalHelp(fmt.Sprintf("the last argument is a TOML profile describing the key mapping. the default is %s", paths.ResourcePath(defaultProfile)))

	opts := options{}
	md.AddVar(&opts.prefs, "prefs", "profile overrides. for example: keyinput.shareinputs::false; keyinput.debounce.trailtime::0.1")
	log := md.AddBool("log", false, "echo log to stderr")
	ver := md.AddBool("version", false, "print version information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *ver {
		fmt.Fprintln(output, version.Current())
		return 0
	}

	if *log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, opts, intChan)
	case "TERM":
		err = term(md, opts, intChan, false)
	case "SWITCH":
		err = term(md, opts, intChan, true)
	case "CHECK":
		err = check(md, opts, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// flags for the modes that display the focus grid
type runFlags struct {
	fps   *int
	grid  *modalflag.Dimensions
	watch *bool
	stats *bool
	rec   *string
	plb   *string
}

func addRunFlags(md *modalflag.Modes) runFlags {
	return runFlags{
		fps:   md.AddInt("fps", 60, "frames per second of the input pipeline"),
		grid:  md.AddDimensions("grid", 4, 3, "columns and rows of the focus grid"),
		watch: md.AddBool("watch", false, "reload the profile when it changes"),
		stats: md.AddBool("statsview", false, fmt.Sprintf("run stats server (available: %v)", statsview.Available())),
		rec:   md.AddString("record", "", "record input events to file"),
		plb:   md.AddString("playback", "", "play back input events from a recording"),
	}
}

// apply the parsed flags to the options
func (f runFlags) apply(opts *options) {
	opts.fps = *f.fps
	opts.grid = *f.grid
	opts.watch = *f.watch
	opts.statsview = *f.stats
	opts.record = *f.rec
	opts.playback = *f.plb
}

// the profile used when one is not given on the command line
const defaultProfile = "profile.toml"

func profileArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		if paths.Exists(defaultProfile) {
			return paths.ResourcePath(defaultProfile), nil
		}
		return "", fmt.Errorf("profile required for %s mode", md)
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

// start the session with the frontend. the frontend is destroyed when the
// session ends
func start(filename string, opts options, fe frontend, player cue.Player, intChan <-chan os.Signal) error {
	defer fe.destroy()

	if opts.statsview {
		statsview.Launch()
	}

	lim, err := gui.NewLimiter(opts.fps)
	if err != nil {
		return err
	}
	defer lim.Stop()

	grid := focusgrid.NewGrid(opts.grid.Cols, opts.grid.Rows)
	s := newSession(filename, opts.prefs, grid, player)

	if opts.playback != "" {
		s.plb, err = recorder.NewPlayback(opts.playback)
		if err != nil {
			return err
		}
		if s.plb.Profile != filename {
			logger.Logf(logger.Allow, "totem", "recording was made with %s", s.plb.Profile)
		}
	}

	if opts.record != "" {
		s.rec, err = recorder.NewRecorder(opts.record, filename)
		if err != nil {
			return err
		}
		defer func() {
			if err := s.rec.End(); err != nil {
				logger.Log(logger.Allow, "totem", err)
			}
		}()
	}

	return s.run(fe, lim.Wait, opts.watch, intChan)
}

// openPlayer opens the audio device for auditory cues. failure is not fatal
func openPlayer() *cue.SDLPlayer {
	ply, err := cue.NewSDLPlayer()
	if err != nil {
		logger.Log(logger.Allow, "totem", err)
		return nil
	}
	return ply
}

// #mainthread
func run(md *modalflag.Modes, opts options, intChan <-chan os.Signal) error {
	md.NewMode()
	rf := addRunFlags(md)
	title := md.AddString("title", "Totem", "window title")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	rf.apply(&opts)

	filename, err := profileArg(md)
	if err != nil {
		return err
	}

	wnd, err := sdlgl.NewWindow(*title, 800, 600)
	if err != nil {
		return err
	}

	var player cue.Player
	if ply := openPlayer(); ply != nil {
		defer ply.Close()
		player = ply
	}

	return start(filename, opts, &sdlFrontend{wnd: wnd}, player, intChan)
}

func term(md *modalflag.Modes, opts options, intChan <-chan os.Signal, serial bool) error {
	md.NewMode()
	rf := addRunFlags(md)

	var device *string
	var baud *int
	if serial {
		device = md.AddString("device", "/dev/ttyUSB0", "serial device of the switch box")
		baud = md.AddInt("baud", 9600, "baud rate of the switch box")
	}
	sound := md.AddBool("cues", false, "play auditory cues")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	rf.apply(&opts)

	filename, err := profileArg(md)
	if err != nil {
		return err
	}

	fe := &termFrontend{}

	if serial {
		fe.sw, err = serialswitch.Open(*device, *baud)
		if err != nil {
			return err
		}
	}

	fe.scr, err = tui.NewScreen()
	if err != nil {
		if fe.sw != nil {
			fe.sw.Close()
		}
		return err
	}

	// the log is echoed to stderr which would corrupt the terminal display
	logger.SetEcho(nil)

	var player cue.Player
	if *sound {
		if ply := openPlayer(); ply != nil {
			defer ply.Close()
			player = ply
		}
	}

	return start(filename, opts, fe, player, intChan)
}

func check(md *modalflag.Modes, opts options, output io.Writer) error {
	md.NewMode()
	dump := md.AddBool("dump", false, "print the profile after overrides have been applied")
	viz := md.AddString("memviz", "", "write the structure of the input controller to a dot file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := profileArg(md)
	if err != nil {
		return err
	}

	prf, err := profile.Load(filename)
	if err != nil {
		return err
	}

	if err := prf.Apply(opts.prefs); err != nil {
		return err
	}

	if *dump {
		io.WriteString(output, prf.Dump())
		io.WriteString(output, "\n")
	}

	ctrl := keyinput.NewController(prf, nil)
	fmt.Fprintln(output, ctrl)

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, ctrl)
	}

	return nil
}
