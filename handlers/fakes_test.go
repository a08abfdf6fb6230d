package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/usama228/AMS-Backend/models"
	"github.com/usama228/AMS-Backend/repository"
)

// in-memory repository fakes; ordering follows insertion so pagination is
// deterministic

type fakeUserRepo struct {
	users []*models.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) (*mongo.InsertOneResult, error) {
	for _, u := range f.users {
		if u.Email == user.Email {
			return nil, repository.ErrDuplicate
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users = append(f.users, user)
	return &mongo.InsertOneResult{InsertedID: user.ID}, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByNationalID(_ context.Context, nationalID string) (*models.User, error) {
	for _, u := range f.users {
		if u.NationalID == nationalID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByPhone(_ context.Context, phone string) (*models.User, error) {
	for _, u := range f.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, id primitive.ObjectID, update bson.M) (*mongo.UpdateResult, error) {
	for _, u := range f.users {
		if u.ID == id {
			if status, ok := update["status"].(string); ok {
				u.Status = status
			}
			if name, ok := update["name"].(string); ok {
				u.Name = name
			}
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (f *fakeUserRepo) FindPage(_ context.Context, _ bson.M, page, limit int64) ([]models.User, int64, error) {
	total := int64(len(f.users))
	start := (page - 1) * limit
	if start >= total {
		return []models.User{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	out := make([]models.User, 0, end-start)
	for _, u := range f.users[start:end] {
		out = append(out, *u)
	}
	return out, total, nil
}

func (f *fakeUserRepo) FindTeamMemberIDs(_ context.Context, teamLeadID primitive.ObjectID) ([]primitive.ObjectID, error) {
	var ids []primitive.ObjectID
	for _, u := range f.users {
		if u.TeamLeadID != nil && *u.TeamLeadID == teamLeadID {
			ids = append(ids, u.ID)
		}
	}
	return ids, nil
}

type fakeAttendanceRepo struct {
	records []*models.Attendance
	// simulates a concurrent insert winning between the existence check and
	// the write
	failNextCreate bool
}

func (f *fakeAttendanceRepo) Create(_ context.Context, attendance *models.Attendance) (*mongo.InsertOneResult, error) {
	if f.failNextCreate {
		f.failNextCreate = false
		return nil, repository.ErrDuplicate
	}
	for _, r := range f.records {
		if r.UserID == attendance.UserID && r.Date == attendance.Date {
			return nil, repository.ErrDuplicate
		}
	}
	f.records = append(f.records, attendance)
	return &mongo.InsertOneResult{InsertedID: attendance.ID}, nil
}

func (f *fakeAttendanceRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Attendance, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) FindByUserAndDate(_ context.Context, userID primitive.ObjectID, date string) (*models.Attendance, error) {
	for _, r := range f.records {
		if r.UserID == userID && r.Date == date {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) FindByUserID(_ context.Context, userID primitive.ObjectID) ([]models.Attendance, error) {
	out := []models.Attendance{}
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, id primitive.ObjectID, _ bson.M) (*mongo.UpdateResult, error) {
	for _, r := range f.records {
		if r.ID == id {
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakeAttendanceRepo) Delete(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	for i, r := range f.records {
		if r.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (f *fakeAttendanceRepo) FindCheckedInByDate(_ context.Context, date string) ([]models.AttendanceWithUser, error) {
	out := []models.AttendanceWithUser{}
	for _, r := range f.records {
		if r.Date == date && !r.CheckIn.IsZero() {
			out = append(out, models.AttendanceWithUser{
				ID:           r.ID,
				UserID:       r.UserID,
				Date:         r.Date,
				CheckIn:      r.CheckIn,
				CheckOut:     r.CheckOut,
				WorkingHours: r.WorkingHours,
			})
		}
	}
	return out, nil
}

type fakeLeaveRepo struct {
	leaves []*models.Leave
}

func (f *fakeLeaveRepo) Create(_ context.Context, leave *models.Leave) (*mongo.InsertOneResult, error) {
	f.leaves = append(f.leaves, leave)
	return &mongo.InsertOneResult{InsertedID: leave.ID}, nil
}

func (f *fakeLeaveRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Leave, error) {
	for _, l := range f.leaves {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeLeaveRepo) FindByIDWithUser(_ context.Context, id primitive.ObjectID) (*models.LeaveWithUser, error) {
	for _, l := range f.leaves {
		if l.ID == id {
			return &models.LeaveWithUser{Leave: *l}, nil
		}
	}
	return nil, nil
}

func (f *fakeLeaveRepo) FindOverlapping(_ context.Context, userID primitive.ObjectID, startDate, endDate string) ([]models.Leave, error) {
	out := []models.Leave{}
	for _, l := range f.leaves {
		if l.UserID == userID && l.Overlaps(startDate, endDate) {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) Update(_ context.Context, id primitive.ObjectID, _ bson.M) (*mongo.UpdateResult, error) {
	for _, l := range f.leaves {
		if l.ID == id {
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakeLeaveRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status string, approvedBy *primitive.ObjectID) (*mongo.UpdateResult, error) {
	for _, l := range f.leaves {
		if l.ID == id {
			l.Status = status
			l.ApprovedBy = approvedBy
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakeLeaveRepo) Delete(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	for i, l := range f.leaves {
		if l.ID == id {
			f.leaves = append(f.leaves[:i], f.leaves[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (f *fakeLeaveRepo) FindPage(_ context.Context, _ bson.M, page, limit int64) ([]models.LeaveWithUser, int64, error) {
	total := int64(len(f.leaves))
	start := (page - 1) * limit
	if start >= total {
		return []models.LeaveWithUser{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	out := make([]models.LeaveWithUser, 0, end-start)
	for _, l := range f.leaves[start:end] {
		out = append(out, models.LeaveWithUser{Leave: *l})
	}
	return out, total, nil
}

// withClaims injects verified token claims the way the auth middleware does.
func withClaims(claims *models.Claims) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if claims != nil {
			c.Locals("user", claims)
		}
		return c.Next()
	}
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return envelope
}
