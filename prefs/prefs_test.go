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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher6526/curated"
	"github.com/jetsetilly/gopher6526/prefs"
	"github.com/jetsetilly/gopher6526/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "gopher6526_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Fatalf("error reading tmp file: %v", err)
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	// unsupported type
	test.ExpectFailure(t, v.Set(10))
}

func TestString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))
	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "foo :: bar\n")
}

func TestInt(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectSuccess(t, v.Set("0.5"))
	test.ExpectEquality(t, v.String(), "0.500")
	test.ExpectSuccess(t, v.Set(2))
	test.ExpectEquality(t, v.Get().(float64), 2.0)
	test.ExpectFailure(t, v.Set("abc"))
}

func TestGeneric(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var w, h int

	v := prefs.NewGeneric(
		func(s string) error {
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			return err
		},
		func() string {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)
	test.ExpectSuccess(t, dsk.Add("generic", v))

	w = 1
	h = 2
	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "generic :: 1,2\n")

	w = 0
	h = 0
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, w, 1)
	test.ExpectEquality(t, h, 2)
}

// write bool and then a string from a different prefs.Disk instance. the
// second save must not clobber the results of the first.
func TestBoolAndString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	cmpTmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// removing the limit does not restore the cropped part
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)

	// pre hook rejects value. stored value and post hook are untouched
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 5)
	test.ExpectEquality(t, post, 5)
}

func TestMissingFile(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))

	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	// file is created when requested
	err = dsk.Load(true)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	cmpTmpFile(t, fn, "test :: false\n")
}

func TestKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, curated.Is(dsk.Add("test", &v), prefs.DuplicateKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("a::b", &v), prefs.BadKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("", &v), prefs.BadKey))
}

func TestDefunct(t *testing.T) {
	fn := tmpPrefFile(t)
	content := fmt.Sprintf("%s\ncia.todticks :: 100\nother :: 1\n", prefs.WarningBoilerPlate)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(content), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.DemandSuccess(t, dsk.Save())

	// the defunct key is dropped and the unknown key is kept
	cmpTmpFile(t, fn, "other :: 1\ntest :: false\n")
}
