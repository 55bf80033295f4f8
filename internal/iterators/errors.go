// Package iterators is a support (base types) package for the segmenters
// in this module (graphemes, textio). It is modeled on the StringIterator
// half of clipperhouse/uax29's internal/iterators package.
package iterators

import "errors"

var errAdvanceIllegal = errors.New("SplitFunc returned a non-positive advance, this is likely a bug in the SplitFunc")
var errAdvanceTooFar = errors.New("SplitFunc advanced beyond the end of the data, this is likely a bug in the SplitFunc")
