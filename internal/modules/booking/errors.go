package booking

import "errors"

var ErrStoreWrite = errors.New("booking could not be stored")
