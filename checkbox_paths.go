// seehuhn.de/go/checkbox - vector geometry for checkbox controls
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package checkbox

// PathForBoxOutline returns the closed box outline for cfg.
func PathForBoxOutline(cfg Config) *Path {
	return cfg.BoxOutline()
}

// PathForState returns the mark drawn inside the box for the given state.
// The result is nil only if s is not one of Unchecked, Checked or Mixed.
func PathForState(cfg Config, s State) *Path {
	return cfg.MarkPath(s)
}
