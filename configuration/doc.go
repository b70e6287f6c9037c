// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - run a Lua configuration file and map the
// table it returns onto a Go structure
//
// base Lua is available so the file can read certificates from disk
// and use os.getenv for environment supplied items. Caller supplied
// variables are set as globals before the file runs.
package configuration
