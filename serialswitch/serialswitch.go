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

// Package serialswitch reads an assistive switch box connected to a serial
// port.
//
// The switch box sends one byte for every change of switch state. The high
// bit is set when the switch is pressed and clear when it is released. The
// low seven bits are the number of the switch, starting from zero. Switch
// zero is reported as userinput.KeySwitch1.
package serialswitch

import (
	"errors"
	"io"
	"time"

	"github.com/pkg/term"

	"github.com/jetsetilly/totem/curated"
	"github.com/jetsetilly/totem/logger"
	"github.com/jetsetilly/totem/userinput"
)

// Sentinal error patterns.
const (
	OpenError = "serialswitch: %s: %v"
	ReadError = "serialswitch: read: %v"
)

// the maximum time a read will wait for data. the reading goroutine checks
// for a closed Switch at this interval
const readTimeout = 250 * time.Millisecond

// Window is the window ID given to all events from the switch box.
const Window userinput.WindowID = 0

// Decode a single byte from the switch box.
func Decode(b byte) userinput.EventKeyboard {
	return userinput.EventKeyboard{
		Key:    userinput.KeySwitch1 + userinput.KeyCode(b&0x7f),
		Down:   b&0x80 == 0x80,
		Window: Window,
	}
}

// Scan reads from r until the end of the data, passing every decoded event
// to the function. Returns nil at the end of the data.
func Scan(r io.Reader, f func(userinput.Event)) error {
	b := make([]byte, 64)
	for {
		n, err := r.Read(b)
		for _, v := range b[:n] {
			f(Decode(v))
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return curated.Errorf(ReadError, err)
		}
	}
}

// Switch is an open connection to a switch box.
type Switch struct {
	device string
	t      *term.Term
	events chan userinput.Event
	done   chan struct{}
}

// Open the serial device. Events are available on the Events() channel.
func Open(device string, baud int) (*Switch, error) {
	t, err := term.Open(device, term.Speed(baud), term.RawMode)
	if err != nil {
		return nil, curated.Errorf(OpenError, device, err)
	}

	if err := t.SetReadTimeout(readTimeout); err != nil {
		t.Close()
		return nil, curated.Errorf(OpenError, device, err)
	}

	sw := &Switch{
		device: device,
		t:      t,
		events: make(chan userinput.Event, 16),
		done:   make(chan struct{}),
	}

	go sw.loop()

	logger.Logf(logger.Allow, "serialswitch", "opened %s at %d baud", device, baud)

	return sw, nil
}

func (sw *Switch) loop() {
	defer close(sw.events)

	b := make([]byte, 64)
	for {
		n, err := sw.t.Read(b)

		for _, v := range b[:n] {
			select {
			case sw.events <- Decode(v):
			case <-sw.done:
				return
			}
		}

		select {
		case <-sw.done:
			return
		default:
		}

		// a read that times out returns no data and possibly io.EOF
		if err != nil && !errors.Is(err, io.EOF) {
			logger.Log(logger.Allow, "serialswitch", curated.Errorf(ReadError, err))
			return
		}
	}
}

// Events returns the channel on which switch events are sent. The channel is
// closed when the Switch is closed or when the device can no longer be read.
func (sw *Switch) Events() <-chan userinput.Event {
	return sw.events
}

// Close the serial device.
func (sw *Switch) Close() error {
	select {
	case <-sw.done:
		return nil
	default:
	}
	close(sw.done)
	return sw.t.Close()
}
