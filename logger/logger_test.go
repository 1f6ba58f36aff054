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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6526/logger"
	"github.com/jetsetilly/gopher6526/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()
	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "cia1", "underflow")
	log.Log(logger.Allow, "cia1", "underflow")
	log.Log(logger.Allow, "cia1", "underflow")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "cia1: underflow (repeat x3)\n")
	test.ExpectEquality(t, log.Len(), 1)

	// same detail but different tag is a new entry
	log.Log(logger.Allow, "cia2", "underflow")
	test.ExpectEquality(t, log.Len(), 2)
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(3)
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		log.Log(logger.Allow, "tag", s)
	}
	test.ExpectEquality(t, log.Len(), 3)

	w := &strings.Builder{}
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: c\ntag: d\ntag: e\n")
}

type prohibitLogging struct {
	allow bool
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(prohibitLogging{allow: false}, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Logf(prohibitLogging{allow: true}, "tag", "detail %d", 10)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail 10\n")
}

func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.SetEcho(w)
	log.Log(logger.Allow, "tag", "one")
	log.SetEcho(nil)
	log.Log(logger.Allow, "tag", "two")
	test.ExpectEquality(t, w.String(), "tag: one\n")
}
