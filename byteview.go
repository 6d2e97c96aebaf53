/*
Copyright 2012 Google Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ocache

import (
	"bytes"
	"io"
)

// A ByteView holds an immutable view of bytes.
// Internally it wraps either a []byte or a string,
// but that detail is invisible to callers.
//
// A ByteView is meant to be used as a value type, not
// a pointer (like a time.Time). Once constructed its
// contents never change; every accessor either hands back
// a fresh copy or an already-immutable string.
type ByteView struct {
	// If b is non-nil, b is used, else s is used.
	b []byte
	s string
}

// NewByteView builds a ByteView that owns a private copy of b.
// The caller retains ownership of the slice passed in.
func NewByteView(b []byte) ByteView {
	return ByteView{b: cloneBytes(b)}
}

// NewByteViewFromString builds a ByteView over s. Strings are
// already immutable in Go, so no copy is made.
func NewByteViewFromString(s string) ByteView {
	return ByteView{s: s}
}

// Len returns the view's length.
func (v ByteView) Len() int {
	if v.b != nil {
		return len(v.b)
	}
	return len(v.s)
}

// ByteSlice returns a copy of the data as a byte slice.
func (v ByteView) ByteSlice() []byte {
	if v.b != nil {
		return cloneBytes(v.b)
	}
	return []byte(v.s)
}

// String returns the data as a string, making a copy if necessary.
func (v ByteView) String() string {
	if v.b != nil {
		return string(v.b)
	}
	return v.s
}

// Equal reports whether the bytes in v are the same as the bytes in v2.
func (v ByteView) Equal(v2 ByteView) bool {
	if v2.b == nil {
		return v.EqualString(v2.s)
	}
	return v.EqualBytes(v2.b)
}

// EqualString reports whether the bytes in v are the same as s.
func (v ByteView) EqualString(s string) bool {
	if v.b == nil {
		return v.s == s
	}
	if len(s) != v.Len() {
		return false
	}
	for i, bi := range v.b {
		if bi != s[i] {
			return false
		}
	}
	return true
}

// EqualBytes reports whether the bytes in v are the same as b2.
func (v ByteView) EqualBytes(b2 []byte) bool {
	if v.b != nil {
		return bytes.Equal(v.b, b2)
	}
	if len(b2) != v.Len() {
		return false
	}
	for i, bi := range b2 {
		if bi != v.s[i] {
			return false
		}
	}
	return true
}

// WriteTo implements io.WriterTo on the bytes in v, used to stream a
// cached value directly into an HTTP response without an intermediate
// allocation.
func (v ByteView) WriteTo(w io.Writer) (n int64, err error) {
	var m int
	if v.b != nil {
		m, err = w.Write(v.b)
	} else {
		m, err = io.WriteString(w, v.s)
	}
	if err == nil && m < v.Len() {
		err = io.ErrShortWrite
	}
	n = int64(m)
	return
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
