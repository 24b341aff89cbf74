// Package sl дополняет slog атрибутами, общими для всех слоёв дашборда.
package sl

import "log/slog"

// Err переводит ошибку в атрибут с ключом "error", чтобы записи об ошибках
// в обработчиках, сервисах и клиентах выглядели в логе одинаково:
//
//	log.Error("failed to fetch commission data", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
