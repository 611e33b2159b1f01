package scheduling

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// OccupancyIndex множество занятых активными записями слотов на одну дату
type OccupancyIndex struct {
	times map[types.TimeString]struct{}
}

// BuildOccupancy собирает нормализованное время активных записей.
// excludeID пропускает редактируемую запись; записи с некорректным временем отбрасываются.
func BuildOccupancy(bookings []domain.Booking, excludeID *int64) OccupancyIndex {
	idx := OccupancyIndex{times: make(map[types.TimeString]struct{}, len(bookings))}
	for _, b := range bookings {
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if !b.Status.IsActive() {
			continue
		}
		ts, ok := types.NormalizeTimeString(string(b.Time))
		if !ok {
			continue
		}
		idx.times[ts] = struct{}{}
	}
	return idx
}

// LoadOccupancy читает записи на дату и строит индекс
func LoadOccupancy(ctx context.Context, lister BookingLister, date time.Time, excludeID *int64) (OccupancyIndex, error) {
	bookings, err := lister.ListByDate(ctx, date)
	if err != nil {
		return OccupancyIndex{}, err
	}
	return BuildOccupancy(bookings, excludeID), nil
}

// Contains проверяет, занят ли слот
func (o OccupancyIndex) Contains(t types.TimeString) bool {
	if o.times == nil {
		return false
	}
	ts, ok := types.NormalizeTimeString(string(t))
	if !ok {
		return false
	}
	_, taken := o.times[ts]
	return taken
}

// Times возвращает занятые слоты по возрастанию
func (o OccupancyIndex) Times() []types.TimeString {
	out := make([]types.TimeString, 0, len(o.times))
	for t := range o.times {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of occupied slots
func (o OccupancyIndex) Len() int {
	return len(o.times)
}
