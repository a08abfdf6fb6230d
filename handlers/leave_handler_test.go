package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/usama228/AMS-Backend/models"
)

func newLeaveApp(claims *models.Claims, leaveRepo *fakeLeaveRepo, userRepo *fakeUserRepo) *fiber.App {
	h := NewLeaveHandler(leaveRepo, userRepo)

	app := fiber.New()
	app.Post("/api/leave", h.RequestLeave)
	app.Put("/api/leave", h.EditLeaveRequest)
	app.Delete("/api/leaves/:leaveId", h.DeleteLeaveRequest)
	app.Get("/api/leaves", h.GetAllLeaves)
	app.Get("/api/leaves/team", withClaims(claims), h.GetAllLeavesByTeamLead)
	app.Put("/api/leave/:id/status", withClaims(claims), h.UpdateLeaveStatus)
	app.Get("/api/leave/:id/status", h.GetUserLeaveStatus)
	return app
}

func seedLeave(repo *fakeLeaveRepo, userID primitive.ObjectID, start, end string) *models.Leave {
	leave := &models.Leave{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		LeaveType: "Annual",
		StartDate: start,
		EndDate:   end,
		Status:    models.LeaveStatusPending,
	}
	repo.leaves = append(repo.leaves, leave)
	return leave
}

func TestRequestLeaveSuccess(t *testing.T) {
	repo := &fakeLeaveRepo{}
	app := newLeaveApp(employeeClaims(), repo, &fakeUserRepo{})

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/leave", fiber.Map{
		"userId":    primitive.NewObjectID().Hex(),
		"leaveType": "Annual",
		"startDate": "2025-03-10",
		"endDate":   "2025-03-14",
		"reason":    "family visit",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	require.Len(t, repo.leaves, 1)
	created := repo.leaves[0]
	assert.Equal(t, models.LeaveStatusPending, created.Status)
	assert.Equal(t, 5, created.WorkingDays, "Mon-Fri interval spans five working days")
	assert.Nil(t, created.ApprovedBy)
}

func TestRequestLeaveEndBeforeStart(t *testing.T) {
	repo := &fakeLeaveRepo{}
	app := newLeaveApp(employeeClaims(), repo, &fakeUserRepo{})

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/leave", fiber.Map{
		"userId":    primitive.NewObjectID().Hex(),
		"leaveType": "Annual",
		"startDate": "2025-03-14",
		"endDate":   "2025-03-10",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "End date must be after start date", decodeEnvelope(t, resp)["message"])
	assert.Empty(t, repo.leaves)
}

func TestRequestLeaveOverlap(t *testing.T) {
	userID := primitive.NewObjectID()
	repo := &fakeLeaveRepo{}
	seedLeave(repo, userID, "2025-03-10", "2025-03-14")
	app := newLeaveApp(employeeClaims(), repo, &fakeUserRepo{})

	cases := []struct {
		name  string
		start string
		end   string
	}{
		{"shared boundary day", "2025-03-14", "2025-03-20"},
		{"contained", "2025-03-11", "2025-03-12"},
		{"containing", "2025-03-01", "2025-03-31"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/leave", fiber.Map{
				"userId":    userID.Hex(),
				"leaveType": "Annual",
				"startDate": tc.start,
				"endDate":   tc.end,
			}))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
		})
	}
	assert.Len(t, repo.leaves, 1)
}

func TestRequestLeaveDisjointInterval(t *testing.T) {
	userID := primitive.NewObjectID()
	repo := &fakeLeaveRepo{}
	seedLeave(repo, userID, "2025-03-10", "2025-03-14")
	app := newLeaveApp(employeeClaims(), repo, &fakeUserRepo{})

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/leave", fiber.Map{
		"userId":    userID.Hex(),
		"leaveType": "Sick",
		"startDate": "2025-03-17",
		"endDate":   "2025-03-18",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Len(t, repo.leaves, 2)
}

func TestRequestLeaveOverlapOtherUserAllowed(t *testing.T) {
	repo := &fakeLeaveRepo{}
	seedLeave(repo, primitive.NewObjectID(), "2025-03-10", "2025-03-14")
	app := newLeaveApp(employeeClaims(), repo, &fakeUserRepo{})

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/leave", fiber.Map{
		"userId":    primitive.NewObjectID().Hex(),
		"leaveType": "Annual",
		"startDate": "2025-03-10",
		"endDate":   "2025-03-14",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestEditLeaveRequestRecomputesWorkingDays(t *testing.T) {
	repo := &fakeLeaveRepo{}
	leave := seedLeave(repo, primitive.NewObjectID(), "2025-03-10", "2025-03-14")
	app := newLeaveApp(employeeClaims(), repo, &fakeUserRepo{})

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/leave", fiber.Map{
		"id":        leave.ID.Hex(),
		"leaveType": "Sick",
		"startDate": "2025-03-12",
		"endDate":   "2025-03-13",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Sick", leave.LeaveType)
	assert.Equal(t, 2, leave.WorkingDays)
}

func TestUpdateLeaveStatusApproverAttribution(t *testing.T) {
	repo := &fakeLeaveRepo{}
	leave := seedLeave(repo, primitive.NewObjectID(), "2025-03-10", "2025-03-14")

	approver := &models.Claims{UserID: primitive.NewObjectID(), UserType: models.UserTypeAdmin}
	app := newLeaveApp(approver, repo, &fakeUserRepo{})

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/leave/"+leave.ID.Hex()+"/status",
		fiber.Map{"status": models.LeaveStatusApproved}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, models.LeaveStatusApproved, leave.Status)
	require.NotNil(t, leave.ApprovedBy)
	assert.Equal(t, approver.UserID, *leave.ApprovedBy)

	// returning to Pending clears the attribution
	resp, err = app.Test(jsonRequest(t, http.MethodPut, "/api/leave/"+leave.ID.Hex()+"/status",
		fiber.Map{"status": models.LeaveStatusPending}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, models.LeaveStatusPending, leave.Status)
	assert.Nil(t, leave.ApprovedBy)
}

func TestUpdateLeaveStatusRejectsUnknownValue(t *testing.T) {
	repo := &fakeLeaveRepo{}
	leave := seedLeave(repo, primitive.NewObjectID(), "2025-03-10", "2025-03-14")
	app := newLeaveApp(employeeClaims(), repo, &fakeUserRepo{})

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/leave/"+leave.ID.Hex()+"/status",
		fiber.Map{"status": "Maybe"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, models.LeaveStatusPending, leave.Status)
}

func TestUpdateLeaveStatusNotFound(t *testing.T) {
	app := newLeaveApp(employeeClaims(), &fakeLeaveRepo{}, &fakeUserRepo{})

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/leave/"+primitive.NewObjectID().Hex()+"/status",
		fiber.Map{"status": models.LeaveStatusApproved}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetAllLeavesPagination(t *testing.T) {
	repo := &fakeLeaveRepo{}
	userID := primitive.NewObjectID()
	for i := 0; i < 25; i++ {
		seedLeave(repo, userID, "2025-03-10", "2025-03-14")
	}
	app := newLeaveApp(employeeClaims(), repo, &fakeUserRepo{})

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/leaves?page=2&limit=10", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	raw, err := json.Marshal(envelope["data"])
	require.NoError(t, err)
	var page models.PagedLeaves
	require.NoError(t, json.Unmarshal(raw, &page))

	assert.Len(t, page.Leaves, 10)
	assert.Equal(t, int64(3), page.TotalPages)
	assert.Equal(t, int64(2), page.CurrentPage)
	assert.Equal(t, int64(25), page.TotalCount)
}

func TestDeleteLeaveRequest(t *testing.T) {
	repo := &fakeLeaveRepo{}
	leave := seedLeave(repo, primitive.NewObjectID(), "2025-03-10", "2025-03-14")
	app := newLeaveApp(employeeClaims(), repo, &fakeUserRepo{})

	resp, err := app.Test(jsonRequest(t, http.MethodDelete, "/api/leaves/"+leave.ID.Hex(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, repo.leaves)

	resp, err = app.Test(jsonRequest(t, http.MethodDelete, "/api/leaves/"+leave.ID.Hex(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetLeaveStatusProjection(t *testing.T) {
	repo := &fakeLeaveRepo{}
	leave := seedLeave(repo, primitive.NewObjectID(), "2025-03-10", "2025-03-14")
	app := newLeaveApp(employeeClaims(), repo, &fakeUserRepo{})

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/leave/"+leave.ID.Hex()+"/status", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, models.LeaveStatusPending, data["status"])
	assert.NotContains(t, data, "leaveType", "projection omits the request body fields")
}
