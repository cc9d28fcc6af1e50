package domain

import "errors"

// ErrNotFound возвращается хранилищем, когда запись с таким id отсутствует
var ErrNotFound = errors.New("not found")
