package selection

import "errors"

var (
	// ErrSnapshotNotFound возвращается, когда снимок не найден или уже использован
	ErrSnapshotNotFound = errors.New("selection.repository: snapshot not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("selection.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("selection.repository: failed to execute query")

	// ErrEncode возвращается при ошибке сериализации снимка
	ErrEncode = errors.New("selection.repository: failed to encode snapshot")

	// ErrDecode возвращается при ошибке десериализации снимка
	ErrDecode = errors.New("selection.repository: failed to decode snapshot")
)
