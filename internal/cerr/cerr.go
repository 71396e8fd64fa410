// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package cerr provides a string type usable for sentinel error constants
// shared by the chart and runner packages.
package cerr

type Error string

func (e Error) Error() string {
	return string(e)
}
