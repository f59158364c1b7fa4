// This file is part of Rendertarget.
//
// Rendertarget is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Rendertarget is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Rendertarget.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"errors"
	"testing"
	"time"

	"github.com/jetsetilly/rendertarget/curated"
	"github.com/jetsetilly/rendertarget/test"
)

func TestParseProfileString(t *testing.T) {
	p, err := ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileNone)

	p, err = ParseProfileString("cpu, TRACE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileCPU|ProfileTrace)
	test.ExpectEquality(t, p.String(), "cpu,trace")

	p, err = ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileAll)

	_, err = ParseProfileString("cpu,disk")
	test.ExpectSuccess(t, curated.Is(err, UnknownProfile))
}

func TestCalcFPS(t *testing.T) {
	test.ExpectEquality(t, CalcFPS(120, 2), 60.0)
	test.ExpectEquality(t, CalcFPS(120, 0), 0.0)
}

func TestMeasure(t *testing.T) {
	var calls int
	frame := func() error {
		calls++
		time.Sleep(time.Millisecond)
		return nil
	}

	n, elapsed, err := measure(ProfileNone, 10*time.Millisecond, 20*time.Millisecond, frame)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, n > 0)
	test.ExpectSuccess(t, n < calls)
	test.ExpectSuccess(t, elapsed >= 20*time.Millisecond)

	// errors from the frame function end the measurement
	stop := errors.New("stop")
	_, _, err = measure(ProfileNone, 0, time.Second, func() error { return stop })
	test.ExpectEquality(t, err, stop)
}

func TestCheckDuration(t *testing.T) {
	w := &test.CompareWriter{}
	err := Check(w, ProfileNone, "soon", func() error { return nil })
	test.ExpectSuccess(t, curated.Is(err, CheckError))

	err = Check(w, ProfileNone, "0s", func() error { return nil })
	test.ExpectSuccess(t, curated.Is(err, CheckError))
	test.ExpectEquality(t, w.String(), "")
}
