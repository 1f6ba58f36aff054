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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value any

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooks are called either side of a value being stored.
type hooks struct {
	pre  func(value Value) error
	post func(value Value) error
}

// SetHookPre sets the callback function to be called just before the prefs
// value is updated. The callback is called even if the value hasn't changed.
// An error returned by the callback prevents the update.
func (h *hooks) SetHookPre(f func(value Value) error) {
	h.pre = f
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. The callback is called even if the value hasn't changed.
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.post = f
}

// store v in the atomic value, calling the hook functions as appropriate.
func (h *hooks) store(av *atomic.Value, v Value) error {
	if h.pre != nil {
		if err := h.pre(v); err != nil {
			return err
		}
	}
	av.Store(v)
	if h.post != nil {
		if err := h.post(v); err != nil {
			return err
		}
	}
	return nil
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	hooks
	value atomic.Value // bool
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(&p.value, v)
	case string:
		return p.store(&p.value, strings.ToLower(strings.TrimSpace(v)) == "true")
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	if v := p.value.Load(); v != nil {
		return v.(bool)
	}
	return false
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String implements a string type in the prefs system.
type String struct {
	hooks
	maxLen int
	value  atomic.Value // string
}

func (p *String) String() string {
	return p.Get().(string)
}

// SetMaxLen sets the maximum length for a string when it is set. A value of
// zero or less means there is no limit. An existing value is cropped if
// necessary and the cropped part is lost.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max
	if s := p.Get().(string); p.maxLen > 0 && len(s) > p.maxLen {
		p.value.Store(s[:p.maxLen])
	}
}

// Set new value to String type. Values of other types are converted with
// the %v verb.
func (p *String) Set(v Value) error {
	s := fmt.Sprintf("%v", v)
	if p.maxLen > 0 && len(s) > p.maxLen {
		s = s[:p.maxLen]
	}
	return p.store(&p.value, s)
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	if v := p.value.Load(); v != nil {
		return v.(string)
	}
	return ""
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Int implements an integer type in the prefs system.
type Int struct {
	hooks
	value atomic.Value // int
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.Get())
}

// Set new value to Int type. New value can be an int or a string.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.store(&p.value, v)
	case int32:
		return p.store(&p.value, int(v))
	case int64:
		return p.store(&p.value, int(v))
	case uint64:
		return p.store(&p.value, int(v))
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Int: %w", v, err)
		}
		return p.store(&p.value, n)
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	if v := p.value.Load(); v != nil {
		return v.(int)
	}
	return 0
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// Float implements a floating point type in the prefs system.
type Float struct {
	hooks
	value atomic.Value // float64
}

func (p *Float) String() string {
	return fmt.Sprintf("%.3f", p.Get())
}

// Set new value to Float type. New value can be a float64, float32, int or
// string.
func (p *Float) Set(v Value) error {
	switch v := v.(type) {
	case float64:
		return p.store(&p.value, v)
	case float32:
		return p.store(&p.value, float64(v))
	case int:
		return p.store(&p.value, float64(v))
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Float: %w", v, err)
		}
		return p.store(&p.value, f)
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Float", v)
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	if v := p.value.Load(); v != nil {
		return v.(float64)
	}
	return float64(0.0)
}

// Reset sets the float value to zero.
func (p *Float) Reset() error {
	return p.Set(0.0)
}

// Generic is a general purpose preferences type, useful for values that
// cannot be represented by a single live value. Use NewGeneric() to create a
// new instance.
//
// The Generic type does not support hook functions. Access is protected by a
// mutex rather than an atomic value.
type Generic struct {
	crit sync.Mutex
	set  func(string) error
	get  func() string
}

// NewGeneric is the preferred method of initialisation for the Generic type.
func NewGeneric(set func(string) error, get func() string) *Generic {
	return &Generic{
		set: set,
		get: get,
	}
}

func (p *Generic) String() string {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.get()
}

// Set triggers the set value procedure for the generic type.
func (p *Generic) Set(v Value) error {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.set(fmt.Sprintf("%v", v))
}

// Get triggers the get value procedure for the generic type.
func (p *Generic) Get() Value {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.get()
}

// Reset sets the generic value to the empty string.
func (p *Generic) Reset() error {
	return p.Set("")
}
