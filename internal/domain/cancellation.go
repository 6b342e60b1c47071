package domain

import "time"

// CanCancelFree определяет, допускается ли бесплатная отмена бронирования
// Бесплатная отмена возможна, если до начала остаётся не менее
// FreeCancellationNotice (граница включительно: ровно 2 часа — можно)
// Для уже начавшихся бронирований всегда false
func CanCancelFree(start, now time.Time) bool {
	return start.Sub(now) >= FreeCancellationNotice
}
