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

package alarm

import (
	"fmt"
	"strings"
)

// Alarm is a single deferred event. An alarm is either unset or set to
// exactly one cycle.
type Alarm struct {
	ctx      *Context
	name     string
	callback func(cycle uint64)

	cycle   uint64
	pending bool
}

func (a *Alarm) String() string {
	if a.pending {
		return fmt.Sprintf("%s @ %d", a.name, a.cycle)
	}
	return fmt.Sprintf("%s unset", a.name)
}

// Name returns the name given to the alarm when it was created.
func (a *Alarm) Name() string {
	return a.name
}

// Set the alarm for the specified cycle. Any previous setting is forgotten.
func (a *Alarm) Set(cycle uint64) {
	a.cycle = cycle
	a.pending = true
}

// Unset the alarm. Unsetting an alarm that is not set has no effect.
func (a *Alarm) Unset() {
	a.pending = false
}

// Pending returns the cycle the alarm is set for. The second return value is
// false if the alarm is not set.
func (a *Alarm) Pending() (uint64, bool) {
	return a.cycle, a.pending
}

// Context is a collection of alarms driven by the same clock.
type Context struct {
	name   string
	alarms []*Alarm

	// the cycle of the most recently dispatched alarm
	lastDispatch uint64
	dispatched   bool
}

// NewContext is the preferred method of initialisation for the Context type.
func NewContext(name string) *Context {
	return &Context{
		name: name,
	}
}

func (ctx *Context) String() string {
	s := strings.Builder{}
	s.WriteString(ctx.name)
	for _, a := range ctx.alarms {
		s.WriteString("\n  ")
		s.WriteString(a.String())
	}
	return s.String()
}

// NewAlarm creates a new alarm in the context. The alarm is not set. The
// callback is given the cycle the alarm was set for, which may be earlier
// than the cycle at which Dispatch() was called.
func (ctx *Context) NewAlarm(name string, callback func(cycle uint64)) *Alarm {
	a := &Alarm{
		ctx:      ctx,
		name:     name,
		callback: callback,
	}
	ctx.alarms = append(ctx.alarms, a)
	return a
}

// Next returns the cycle of the earliest pending alarm. The second return
// value is false if there are no pending alarms.
func (ctx *Context) Next() (uint64, bool) {
	if a := ctx.next(); a != nil {
		return a.cycle, true
	}
	return 0, false
}

// the earliest pending alarm. alarms set for the same cycle are returned in
// order of creation.
func (ctx *Context) next() *Alarm {
	var n *Alarm
	for _, a := range ctx.alarms {
		if a.pending && (n == nil || a.cycle < n.cycle) {
			n = a
		}
	}
	return n
}

// Dispatch calls every alarm set for a cycle at or before now. Returns the
// number of alarms that were called.
func (ctx *Context) Dispatch(now uint64) int {
	n := 0
	for {
		a := ctx.next()
		if a == nil || a.cycle > now {
			return n
		}
		a.pending = false
		ctx.lastDispatch = a.cycle
		ctx.dispatched = true
		a.callback(a.cycle)
		n++
	}
}

// LastDispatch returns the cycle of the most recently dispatched alarm. The
// second return value is false if no alarm has ever been dispatched.
func (ctx *Context) LastDispatch() (uint64, bool) {
	return ctx.lastDispatch, ctx.dispatched
}
