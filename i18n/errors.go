package i18n

import "errors"

var (
	ErrUnknownLanguage = errors.New("i18n: no template bundle for language")
	ErrInvalidBundle   = errors.New("i18n: invalid template bundle")
)
