package cache

import "errors"

var (
	// ErrCacheRead ошибка чтения из Redis
	ErrCacheRead = errors.New("cache: read failed")

	// ErrCacheWrite ошибка записи в Redis
	ErrCacheWrite = errors.New("cache: write failed")

	// ErrCacheDecode в кеше лежит повреждённое значение
	ErrCacheDecode = errors.New("cache: decode failed")
)
