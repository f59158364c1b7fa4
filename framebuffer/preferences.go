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

package framebuffer

import (
	"github.com/jetsetilly/rendertarget/curated"
	"github.com/jetsetilly/rendertarget/prefs"
)

// Preferences for the framebuffer package.
type Preferences struct {
	dsk *prefs.Disk

	// check the format of surfaces when they are attached. the check is
	// advisory and the attachment is made whether it passes or not
	Validate prefs.Bool

	// log creation and destruction of render targets, validation warnings
	// and backend errors
	Logging prefs.Bool

	// the default clear mask of a new Context. the value is a list of buffer
	// names separated by the pipe symbol. eg. "color|depth"
	ClearMask prefs.String
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

const (
	validate  = false
	logging   = true
	clearMask = "color|depth|stencil"
)

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
//
// If path is empty then the preferences are not associated with a file and
// the Load() and Save() functions do nothing.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.ClearMask.SetHookPre(func(v prefs.Value) error {
		s, ok := v.(string)
		if !ok {
			return curated.Errorf(prefs.CannotConvert, v, "clear mask")
		}
		_, err := ParseClearMask(s)
		return err
	})

	if path == "" {
		return p, nil
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("framebuffer.validate", &p.Validate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("framebuffer.logging", &p.Logging)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("framebuffer.clearmask", &p.ClearMask)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.Validate.Set(validate)
	p.Logging.Set(logging)
	p.ClearMask.Set(clearMask)
}

// Load current framebuffer preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save current framebuffer preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}

// AllowLogging implements the logger.Permission interface.
func (p *Preferences) AllowLogging() bool {
	return p.Logging.Get().(bool)
}
