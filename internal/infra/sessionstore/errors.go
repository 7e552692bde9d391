package sessionstore

import "errors"

var (
	// ErrStore возвращается при ошибке хранилища отозванных сессий
	ErrStore = errors.New("sessionstore: storage error")
)
