// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stockbench

type constError string

func (e constError) Error() string {
	return string(e)
}

const ErrMissingColumn = constError("missing column")
const ErrMalformedRow = constError("malformed row")
