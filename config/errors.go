// SPDX-License-Identifier: MIT

package config

import "errors"

// ErrInvalidValue marks a setting outside its allowed range.
var ErrInvalidValue = errors.New("config: invalid value")
