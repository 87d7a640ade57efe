package presence

import (
	"sort"
	"time"

	"github.com/leavetrack/leave-backend-go/internal/domain/leave"
	"github.com/leavetrack/leave-backend-go/internal/domain/user"
)

// ComputePresence partitions employees into present and absent for the
// reference date. An employee is absent when any approved request's
// inclusive [start_date, end_date] range contains the date, compared at day
// granularity. Every employee lands in exactly one of the two sets.
//
// An employee covered by several approved requests on the same date is a
// data-integrity anomaly; the covering request is then chosen
// deterministically: earliest start date, id ascending as the final
// tie-break.
func ComputePresence(date time.Time, employees []user.User, approvedLeaves []leave.LeaveRequest) Snapshot {
	covering := make(map[string]leave.LeaveRequest)
	for _, req := range approvedLeaves {
		if req.Status != leave.LeaveStatusApproved || !req.Covers(date) {
			continue
		}
		current, ok := covering[req.UserID]
		if !ok || prefer(req, current) {
			covering[req.UserID] = req
		}
	}

	snapshot := Snapshot{
		Date:    date.Format("2006-01-02"),
		Present: []PresentEmployee{},
		Absent:  []AbsentEmployee{},
	}

	for _, emp := range employees {
		req, absent := covering[emp.ID]
		if !absent {
			snapshot.Present = append(snapshot.Present, toPresent(emp))
			continue
		}
		snapshot.Absent = append(snapshot.Absent, AbsentEmployee{
			ID:            emp.ID,
			Name:          emp.Name,
			Department:    emp.Department,
			Position:      emp.Position,
			AvatarURL:     emp.AvatarURL,
			LeaveType:     req.Type,
			StartDate:     req.StartDate.Format("2006-01-02"),
			EndDate:       req.EndDate.Format("2006-01-02"),
			DaysRemaining: daysRemaining(date, req.EndDate),
		})
	}

	sort.Slice(snapshot.Present, func(i, j int) bool { return snapshot.Present[i].Name < snapshot.Present[j].Name })
	sort.Slice(snapshot.Absent, func(i, j int) bool { return snapshot.Absent[i].Name < snapshot.Absent[j].Name })

	return snapshot
}

// prefer reports whether a should be chosen over b as the covering request.
func prefer(a, b leave.LeaveRequest) bool {
	if !a.StartDate.Equal(b.StartDate) {
		return a.StartDate.Before(b.StartDate)
	}
	return a.ID < b.ID
}

// daysRemaining is the whole-day count from the reference date to the end of
// the absence; zero means the employee returns tomorrow.
func daysRemaining(date, end time.Time) int {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	remaining := int(e.Sub(d).Hours() / 24)
	if remaining < 0 {
		return 0
	}
	return remaining
}
