// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/bitmark-inc/wramd/fault"
)

// MaximumNameLength - longest permitted account name
const MaximumNameLength = 12

// Name - an account identity
//
// names are 1..12 characters from the set: . 1-5 a-z
// and may not end with a dot
type Name string

// NewName - validate a string as an account name
func NewName(s string) (Name, error) {
	n := Name(s)
	if !n.Valid() {
		return "", fault.InvalidAccountName
	}
	return n, nil
}

// Valid - check the characters and length of a name
func (name Name) Valid() bool {
	n := len(name)
	if n == 0 || n > MaximumNameLength {
		return false
	}
	if '.' == name[n-1] {
		return false
	}
	for i := 0; i < n; i += 1 {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '1' && c <= '5':
		case c == '.':
		default:
			return false
		}
	}
	return true
}

// String - the text form
func (name Name) String() string {
	return string(name)
}

// Bytes - key form used for storage
func (name Name) Bytes() []byte {
	return []byte(name)
}

// MarshalText - convert a name to its JSON form
func (name Name) MarshalText() ([]byte, error) {
	return []byte(name), nil
}

// UnmarshalText - convert and validate a name from text
func (name *Name) UnmarshalText(s []byte) error {
	n, err := NewName(string(s))
	if nil != err {
		return err
	}
	*name = n
	return nil
}

// NameSet - a deduplicated list of names, preserving first seen order
func NameSet(names []Name) []Name {
	seen := make(map[Name]struct{}, len(names))
	result := make([]Name, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		result = append(result, n)
	}
	return result
}
