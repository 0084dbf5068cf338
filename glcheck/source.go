// This file is part of Framediag.
//
// Framediag is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Framediag is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Framediag.  If not, see <https://www.gnu.org/licenses/>.

package glcheck

//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks

// ErrorSource is implemented by types that return the next pending error from
// a graphics driver's error queue. An empty queue is indicated by the value of
// NoError.
//
// The signature matches the GetError() function of the go-gl packages.
type ErrorSource interface {
	GetError() uint32
}

// SourceFunc allows a plain function to be used as an ErrorSource.
type SourceFunc func() uint32

// GetError implements the ErrorSource interface.
func (f SourceFunc) GetError() uint32 {
	return f()
}
