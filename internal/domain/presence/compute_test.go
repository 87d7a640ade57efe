package presence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leavetrack/leave-backend-go/internal/domain/leave"
	"github.com/leavetrack/leave-backend-go/internal/domain/user"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func approvedLeave(id, userID string, leaveType leave.LeaveType, start, end string) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:        id,
		UserID:    userID,
		Type:      leaveType,
		StartDate: day(start),
		EndDate:   day(end),
		Status:    leave.LeaveStatusApproved,
	}
}

var presenceStaff = []user.User{
	{ID: "u1", Name: "Andi", Department: "Engineering", Position: "Engineer"},
	{ID: "u2", Name: "Budi", Department: "Engineering", Position: "Engineer"},
	{ID: "u3", Name: "Citra", Department: "Finance", Position: "Analyst"},
}

func TestComputePresence_CoveredEmployeeIsAbsent(t *testing.T) {
	t.Parallel()
	snapshot := ComputePresence(day("2024-06-26"), presenceStaff, []leave.LeaveRequest{
		approvedLeave("r1", "u2", leave.LeaveTypeSick, "2024-06-25", "2024-06-27"),
	})

	assert.Equal(t, "2024-06-26", snapshot.Date)
	require.Len(t, snapshot.Absent, 1)
	assert.Equal(t, "u2", snapshot.Absent[0].ID)
	assert.Equal(t, leave.LeaveTypeSick, snapshot.Absent[0].LeaveType)
	assert.Equal(t, 1, snapshot.Absent[0].DaysRemaining)

	require.Len(t, snapshot.Present, 2)
	assert.Equal(t, "Andi", snapshot.Present[0].Name)
	assert.Equal(t, "Citra", snapshot.Present[1].Name)
}

func TestComputePresence_PartitionIsExhaustiveAndDisjoint(t *testing.T) {
	t.Parallel()
	snapshot := ComputePresence(day("2024-06-26"), presenceStaff, []leave.LeaveRequest{
		approvedLeave("r1", "u1", leave.LeaveTypeAnnual, "2024-06-20", "2024-06-30"),
		approvedLeave("r2", "u3", leave.LeaveTypePersonal, "2024-06-26", "2024-06-26"),
	})

	seen := make(map[string]int)
	for _, p := range snapshot.Present {
		seen[p.ID]++
	}
	for _, a := range snapshot.Absent {
		seen[a.ID]++
	}
	require.Len(t, seen, len(presenceStaff))
	for id, count := range seen {
		assert.Equalf(t, 1, count, "employee %s appears %d times", id, count)
	}
}

func TestComputePresence_BoundaryDaysCount(t *testing.T) {
	t.Parallel()
	req := approvedLeave("r1", "u1", leave.LeaveTypeAnnual, "2024-06-10", "2024-06-12")

	for _, date := range []string{"2024-06-10", "2024-06-11", "2024-06-12"} {
		snapshot := ComputePresence(day(date), presenceStaff, []leave.LeaveRequest{req})
		require.Lenf(t, snapshot.Absent, 1, "expected u1 absent on %s", date)
		assert.Equal(t, "u1", snapshot.Absent[0].ID)
	}

	for _, date := range []string{"2024-06-09", "2024-06-13"} {
		snapshot := ComputePresence(day(date), presenceStaff, []leave.LeaveRequest{req})
		assert.Emptyf(t, snapshot.Absent, "expected everyone present on %s", date)
	}
}

func TestComputePresence_NonApprovedIgnored(t *testing.T) {
	t.Parallel()
	pending := approvedLeave("r1", "u1", leave.LeaveTypeAnnual, "2024-06-01", "2024-06-30")
	pending.Status = leave.LeaveStatusPending
	cancelled := approvedLeave("r2", "u2", leave.LeaveTypeAnnual, "2024-06-01", "2024-06-30")
	cancelled.Status = leave.LeaveStatusCancelled

	snapshot := ComputePresence(day("2024-06-15"), presenceStaff, []leave.LeaveRequest{pending, cancelled})

	assert.Empty(t, snapshot.Absent)
	assert.Len(t, snapshot.Present, 3)
}

func TestComputePresence_OverlappingRequestsPickEarliestStart(t *testing.T) {
	t.Parallel()
	snapshot := ComputePresence(day("2024-06-26"), presenceStaff, []leave.LeaveRequest{
		approvedLeave("r2", "u1", leave.LeaveTypePersonal, "2024-06-26", "2024-06-28"),
		approvedLeave("r1", "u1", leave.LeaveTypeAnnual, "2024-06-24", "2024-06-27"),
	})

	require.Len(t, snapshot.Absent, 1)
	assert.Equal(t, leave.LeaveTypeAnnual, snapshot.Absent[0].LeaveType)
	assert.Equal(t, "2024-06-24", snapshot.Absent[0].StartDate)
}

func TestComputePresence_OverlapTieBreaksOnID(t *testing.T) {
	t.Parallel()
	snapshot := ComputePresence(day("2024-06-26"), presenceStaff, []leave.LeaveRequest{
		approvedLeave("r2", "u1", leave.LeaveTypePersonal, "2024-06-25", "2024-06-27"),
		approvedLeave("r1", "u1", leave.LeaveTypeSick, "2024-06-25", "2024-06-28"),
	})

	require.Len(t, snapshot.Absent, 1)
	assert.Equal(t, leave.LeaveTypeSick, snapshot.Absent[0].LeaveType)
}

func TestComputePresence_DaysRemainingClampedToZero(t *testing.T) {
	t.Parallel()
	snapshot := ComputePresence(day("2024-06-12"), presenceStaff, []leave.LeaveRequest{
		approvedLeave("r1", "u1", leave.LeaveTypeAnnual, "2024-06-10", "2024-06-12"),
	})

	require.Len(t, snapshot.Absent, 1)
	assert.Equal(t, 0, snapshot.Absent[0].DaysRemaining)
}

func TestComputePresence_NoEmployees(t *testing.T) {
	t.Parallel()
	snapshot := ComputePresence(day("2024-06-26"), nil, nil)

	assert.NotNil(t, snapshot.Present)
	assert.NotNil(t, snapshot.Absent)
	assert.Empty(t, snapshot.Present)
	assert.Empty(t, snapshot.Absent)
}
