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

// Package modalflag wraps the flag package of the standard library. It adds
// program modes, each with a different set of flags.
//
// Arguments are given with NewArgs() and then parsed with Parse(), which
// takes no arguments. This allows the argument list to be parsed in layers,
// one for each mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "CHECK")
//	logging := md.AddBool("log", false, "echo log to stderr")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		fps := md.AddInt("fps", 60, "frames per second")
//		md.Parse()
//		run(*fps, md.GetArg(0))
//	case "CHECK":
//		check(md.RemainingArgs())
//	}
//
// The first sub-mode is the default and is selected when the first argument
// after the flags is not the name of a sub-mode. Sub-mode names are case
// insensitive and are reported by Mode() in upper case.
//
// Flag values that are not one of the basic types can be added with
// AddVar(). The Dimensions type is an example of a flag.Value for arguments of
// the form 4x3.
package modalflag
