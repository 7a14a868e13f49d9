package schemas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-management-backend/models"
)

func validStay() StayCreate {
	today := models.Today()
	return StayCreate{
		RoomNumber: 101,
		GuestName:  "Олена Ковальчук",
		StartDate:  today,
		EndDate:    today.AddDays(3),
	}
}

func TestStayCreateValid(t *testing.T) {
	req := validStay()
	require.NoError(t, req.Validate())
}

func TestStayCreateTrimsGuestName(t *testing.T) {
	req := validStay()
	req.GuestName = "  John Smith  "
	require.NoError(t, req.Validate())
	assert.Equal(t, "John Smith", req.GuestName)
}

func TestStayCreateRejectsBlankGuestName(t *testing.T) {
	req := validStay()
	req.GuestName = "   "
	err := req.Validate()
	require.Error(t, err)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestStayCreateRejectsLongGuestName(t *testing.T) {
	req := validStay()
	req.GuestName = strings.Repeat("a", 256)
	assert.Error(t, req.Validate())

	req.GuestName = strings.Repeat("a", 255)
	assert.NoError(t, req.Validate())
}

func TestStayCreateRejectsNonPositiveRoomNumber(t *testing.T) {
	req := validStay()
	req.RoomNumber = 0
	assert.Error(t, req.Validate())

	req.RoomNumber = -5
	assert.Error(t, req.Validate())
}

func TestStayCreateDateOrdering(t *testing.T) {
	// start == end is rejected
	req := validStay()
	req.EndDate = req.StartDate
	assert.Error(t, req.Validate())

	// one night is the minimum accepted duration
	req = validStay()
	req.EndDate = req.StartDate.AddDays(1)
	assert.NoError(t, req.Validate())

	// end before start
	req = validStay()
	req.EndDate = req.StartDate.AddDays(-1)
	assert.Error(t, req.Validate())
}

func TestStayCreateStartDateBoundary(t *testing.T) {
	// today is accepted
	req := validStay()
	req.StartDate = models.Today()
	req.EndDate = req.StartDate.AddDays(2)
	assert.NoError(t, req.Validate())

	// yesterday is rejected
	req.StartDate = models.Today().AddDays(-1)
	req.EndDate = req.StartDate.AddDays(2)
	assert.Error(t, req.Validate())
}

func TestStayCreateRequiresDates(t *testing.T) {
	req := validStay()
	req.StartDate = models.Date{}
	req.EndDate = models.Date{}
	assert.Error(t, req.Validate())
}

func TestRoomCreateValidate(t *testing.T) {
	req := RoomCreate{Number: 101, Category: models.CategoryStandard}
	require.NoError(t, req.Validate())

	req.Number = 0
	assert.Error(t, req.Validate())

	req = RoomCreate{Number: 101, Category: "penthouse"}
	err := req.Validate()
	require.Error(t, err)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}
