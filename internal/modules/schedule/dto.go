package schedule

import "time"

type BookableRangeRequest struct {
	StudentID string    `json:"studentId" binding:"required"`
	TimeBegin time.Time `json:"timeBegin" binding:"required"`
	TimeEnd   time.Time `json:"timeEnd" binding:"required"`
}

type BookableSlotView struct {
	TimeSlotID      string `json:"timeSlotId"`
	StartTime       string `json:"startTime"`
	Status          string `json:"status"`
	Bookable        bool   `json:"bookable"`
	InstructorCount int    `json:"instructorCount"`
	AircraftCount   int    `json:"aircraftCount"`
}

func NewBookableSlotViews(slots []BookableSlot) []BookableSlotView {
	out := make([]BookableSlotView, 0, len(slots))
	for _, s := range slots {
		out = append(out, BookableSlotView{
			TimeSlotID:      s.Slot.ID,
			StartTime:       s.Slot.StartTime.UTC().Format(time.RFC3339),
			Status:          string(s.Slot.Status),
			Bookable:        s.Bookable,
			InstructorCount: s.InstructorCount,
			AircraftCount:   s.AircraftCount,
		})
	}
	return out
}
