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
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/rendertarget/curated"
)

// Sentinal error pattern returned by Check().
const (
	CheckError = "performance: %v"
)

// Check runs the frame function repeatedly for the specified duration and
// writes the number of frames per second to output. The first second of
// frames is lead time and is not measured.
//
// The duration is a string accepted by time.ParseDuration().
func Check(output io.Writer, profile Profile, duration string, frame func() error) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(CheckError, err)
	}
	if dur <= 0 {
		return curated.Errorf(CheckError, fmt.Sprintf("duration must be positive (%s)", duration))
	}

	numFrames, elapsed, err := measure(profile, time.Second, dur, frame)
	if err != nil {
		return curated.Errorf(CheckError, err)
	}

	fps := CalcFPS(numFrames, elapsed.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds)\n", fps, numFrames, elapsed.Seconds())

	return nil
}

// run the frame function for lead plus dur and return the number of frames
// completed after the lead time
func measure(profile Profile, lead time.Duration, dur time.Duration, frame func() error) (int, time.Duration, error) {
	var numFrames int
	var elapsed time.Duration

	runner := func() error {
		start := time.Now()
		measuring := false
		var measureStart time.Time

		for {
			err := frame()
			if err != nil {
				return err
			}

			now := time.Now()
			if !measuring {
				if now.Sub(start) >= lead {
					measuring = true
					measureStart = now
				}
				continue
			}

			numFrames++
			if now.Sub(measureStart) >= dur {
				elapsed = now.Sub(measureStart)
				return nil
			}
		}
	}

	err := RunProfiler(profile, "performance", runner)
	return numFrames, elapsed, err
}
