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

package gui

import (
	"time"

	"github.com/jetsetilly/totem/curated"
)

// Limiter paces a loop to a fixed number of frames per second. The period is
// adjusted every frame so that the average frame rate does not drift.
type Limiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration

	tick chan time.Duration
	done chan struct{}
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(framesPerSecond int) (*Limiter, error) {
	if framesPerSecond <= 0 {
		return nil, curated.Errorf(LimiterError, "frames per second must be greater than zero")
	}

	lim := &Limiter{
		framesPerSecond: framesPerSecond,
		secondsPerFrame: time.Second / time.Duration(framesPerSecond),
		tick:            make(chan time.Duration),
		done:            make(chan struct{}),
	}

	// run ticker concurrently
	go func() {
		adjustedSecondPerFrame := lim.secondsPerFrame
		t := time.Now()
		for {
			time.Sleep(adjustedSecondPerFrame)
			nt := time.Now()
			select {
			case lim.tick <- nt.Sub(t):
			case <-lim.done:
				return
			}
			adjustedSecondPerFrame -= nt.Sub(t) - lim.secondsPerFrame
			adjustedSecondPerFrame = max(adjustedSecondPerFrame, 0)
			t = nt
		}
	}()

	return lim, nil
}

// FramesPerSecond returns the requested frame rate.
func (lim *Limiter) FramesPerSecond() int {
	return lim.framesPerSecond
}

// Period returns the ideal duration of a frame.
func (lim *Limiter) Period() time.Duration {
	return lim.secondsPerFrame
}

// Wait blocks until the next frame is due. Returns the time that has passed
// since the previous frame.
func (lim *Limiter) Wait() time.Duration {
	return <-lim.tick
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *Limiter) Stop() {
	select {
	case <-lim.done:
	default:
		close(lim.done)
	}
}
