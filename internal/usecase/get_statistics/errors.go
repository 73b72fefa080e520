package get_statistics

import "errors"

// ErrInternal возвращается при внутренних ошибках usecase
var ErrInternal = errors.New("get_statistics: internal error")
