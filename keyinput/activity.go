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

package keyinput

import (
	"time"

	"github.com/jetsetilly/totem/logger"
	"github.com/jetsetilly/totem/userinput"
)

// Activity routes raw input for an application with several windows through
// a single Controller. Events are delivered to the target of the window in
// which the most recent raw event originated.
type Activity struct {
	ctrl    *Controller
	windows map[userinput.WindowID]Target

	current    userinput.WindowID
	hasCurrent bool
}

// NewActivity is the preferred method of initialisation for the Activity
// type.
func NewActivity(ctrl *Controller) *Activity {
	return &Activity{
		ctrl:    ctrl,
		windows: make(map[userinput.WindowID]Target),
	}
}

// Controller returns the Controller used by the Activity.
func (a *Activity) Controller() *Controller {
	return a.ctrl
}

// AddWindow adds or replaces the target for the window. If there is no
// current window then the window becomes the current window.
func (a *Activity) AddWindow(id userinput.WindowID, target Target) {
	a.windows[id] = target
	if !a.hasCurrent {
		a.current = id
		a.hasCurrent = true
	}
}

// RemoveWindow forgets the window. If the window is the current routing
// target the controller is reset so that keys held in that window do not
// produce events elsewhere.
func (a *Activity) RemoveWindow(id userinput.WindowID) {
	delete(a.windows, id)
	if a.hasCurrent && a.current == id {
		a.hasCurrent = false
		a.ctrl.Reset()
	}
}

func (a *Activity) target() Target {
	if !a.hasCurrent {
		return nil
	}
	return a.windows[a.current]
}

// IssueEvent routes the raw event to the Controller. An event from a window
// that has not been added is dropped.
func (a *Activity) IssueEvent(ev userinput.Event) {
	if id, ok := userinput.WindowOf(ev); ok {
		if _, ok := a.windows[id]; !ok {
			logger.Logf(logger.Allow, logTag, "%v from unknown window %d. event dropped", ev, id)
			return
		}
		a.current = id
		a.hasCurrent = true
	}
	a.ctrl.IssueEvent(ev, a.target())
}

// Update the Controller. Events are delivered to the current window.
func (a *Activity) Update(dt time.Duration) {
	a.ctrl.Update(dt, a.target())
}
