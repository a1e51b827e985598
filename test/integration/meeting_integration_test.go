package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"crm-meetings-be/internal/controller"
	"crm-meetings-be/internal/dto"
	"crm-meetings-be/internal/entity"
	"crm-meetings-be/internal/model"
	"crm-meetings-be/internal/pkg/logger"
	"crm-meetings-be/internal/pkg/serverutils"
	"crm-meetings-be/internal/repository/unitofwork"
	"crm-meetings-be/internal/service"
	"crm-meetings-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testJwtSecret = "integration_secret"

type fixture struct {
	db         *gorm.DB
	uowFactory unitofwork.RepositoryFactory
	meetings   service.IMeetingService

	liveUser    *entity.User
	deletedUser *entity.User
	contact     *entity.Contact
	lead        *entity.Lead
}

func setup(t *testing.T) *fixture {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, false)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Meeting{}, &model.Contact{}, &model.Lead{}, &model.User{}))

	f := &fixture{
		db:         db,
		uowFactory: unitofwork.NewRepositoryFactory(db),
	}
	nop := logger.NewNopLogger()
	f.meetings = service.NewMeetingService(f.uowFactory, service.NewPublisherService("meeting.events", nil, nil, nop), nop)

	ctx := context.Background()
	uow := f.uowFactory.NewUnitOfWork(ctx)

	f.liveUser = &entity.User{Username: "it-live-" + uuid.NewString(), Role: entity.UserRoleUser, CreatedAt: time.Now()}
	f.deletedUser = &entity.User{Username: "it-gone-" + uuid.NewString(), Role: entity.UserRoleUser, Deleted: true, CreatedAt: time.Now()}
	require.NoError(t, uow.UserRepository().Create(ctx, f.liveUser))
	require.NoError(t, uow.UserRepository().Create(ctx, f.deletedUser))

	f.contact = &entity.Contact{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", CreatedAt: time.Now()}
	require.NoError(t, uow.ContactRepository().Create(ctx, f.contact))

	f.lead = &entity.Lead{LeadName: "Acme", LeadStatus: "open", CreatedAt: time.Now()}
	require.NoError(t, uow.LeadRepository().Create(ctx, f.lead))

	t.Cleanup(func() {
		db.Where("created_by IN ?", []uuid.UUID{f.liveUser.Id, f.deletedUser.Id}).Delete(&model.Meeting{})
		db.Delete(&model.User{}, "id IN ?", []uuid.UUID{f.liveUser.Id, f.deletedUser.Id})
		db.Delete(&model.Contact{}, "id = ?", f.contact.Id)
		db.Delete(&model.Lead{}, "id = ?", f.lead.Id)
	})

	return f
}

func (f *fixture) createMeeting(t *testing.T, creator *entity.User, agenda string) *dto.MeetingResponse {
	t.Helper()
	res, err := f.meetings.Create(context.Background(), uuid.Nil, &dto.CreateMeetingRequest{
		Agenda:        agenda,
		Attendees:     []string{f.contact.Id.String(), uuid.NewString()},
		AttendeesLead: []string{f.lead.Id.String()},
		Related:       json.RawMessage(`{"dealId":"D-1"}`),
		CreatedBy:     creator.Id.String(),
	})
	require.NoError(t, err)
	return res
}

func TestMeetingService_Lifecycle(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	live := f.createMeeting(t, f.liveUser, "Quarterly review")
	orphaned := f.createMeeting(t, f.deletedUser, "Orphaned")

	t.Run("list joins references for live creators", func(t *testing.T) {
		items, err := f.meetings.GetAll(ctx, &dto.ListMeetingRequest{
			Filters: map[string]string{"createdBy": f.liveUser.Id.String(), "deleted": "true"},
		})
		require.NoError(t, err)
		require.Len(t, items, 1)

		item := items[0]
		assert.Equal(t, live.Id, item.Id)
		assert.Equal(t, f.liveUser.Username, item.CreatedByName)
		require.Len(t, item.AttendeesDetails, 1)
		assert.Equal(t, f.contact.Id, item.AttendeesDetails[0].Id)
		require.Len(t, item.AttendeesLeadDetails, 1)
		assert.Equal(t, "Acme", item.AttendeesLeadDetails[0].LeadName)
		assert.Len(t, item.Attendees, 2)
	})

	t.Run("list drops meetings of deleted creators", func(t *testing.T) {
		items, err := f.meetings.GetAll(ctx, &dto.ListMeetingRequest{
			Filters: map[string]string{"createdBy": f.deletedUser.Id.String()},
		})
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("show resolves references in place", func(t *testing.T) {
		detail, err := f.meetings.Show(ctx, orphaned.Id)
		require.NoError(t, err)
		assert.Equal(t, f.deletedUser.Username, detail.CreatedByName)
		require.Len(t, detail.Attendees, 1)
		assert.Equal(t, "Ada", detail.Attendees[0].FirstName)
		assert.JSONEq(t, `{"dealId":"D-1"}`, string(detail.Related))
	})

	t.Run("show missing meeting", func(t *testing.T) {
		_, err := f.meetings.Show(ctx, uuid.New())
		assert.ErrorIs(t, err, service.ErrMeetingNotFound)
	})

	t.Run("delete many flags only live rows", func(t *testing.T) {
		res, err := f.meetings.Delete(ctx, live.Id)
		require.NoError(t, err)
		assert.EqualValues(t, 1, res.MatchedCount)
		assert.EqualValues(t, 1, res.ModifiedCount)

		res, err = f.meetings.DeleteMany(ctx, []string{live.Id.String(), orphaned.Id.String()})
		require.NoError(t, err)
		assert.EqualValues(t, 2, res.MatchedCount)
		assert.EqualValues(t, 1, res.ModifiedCount)

		_, err = f.meetings.DeleteMany(ctx, []string{live.Id.String(), orphaned.Id.String()})
		assert.ErrorIs(t, err, service.ErrMeetingsNotRemoved)

		items, err := f.meetings.GetAll(ctx, &dto.ListMeetingRequest{
			Filters: map[string]string{"createdBy": f.liveUser.Id.String()},
		})
		require.NoError(t, err)
		assert.Empty(t, items)

		detail, err := f.meetings.Show(ctx, live.Id)
		require.NoError(t, err)
		assert.True(t, detail.Deleted)
		assert.Equal(t, "Quarterly review", detail.Agenda)
	})

	t.Run("delete of unknown id still acknowledges", func(t *testing.T) {
		res, err := f.meetings.Delete(ctx, uuid.New())
		require.NoError(t, err)
		assert.Zero(t, res.MatchedCount)
		assert.Zero(t, res.ModifiedCount)
	})
}

func TestMeetingHTTP_CreateUsesTokenUser(t *testing.T) {
	f := setup(t)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	controller.NewMeetingController(f.meetings).RegisterRoutes(app.Group("/api"), serverutils.NewJwtMiddleware(testJwtSecret))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": f.liveUser.Id.String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJwtSecret))
	require.NoError(t, err)

	body, _ := json.Marshal(map[string]interface{}{
		"agenda":    "From HTTP",
		"attendees": []string{f.contact.Id.String()},
	})
	req := httptest.NewRequest("POST", "/api/meeting/v1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signed)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope serverutils.BaseResponse[dto.MeetingResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.NotNil(t, envelope.Data.CreatedBy)
	assert.Equal(t, f.liveUser.Id, *envelope.Data.CreatedBy)
	assert.False(t, envelope.Data.Deleted)

	req = httptest.NewRequest("POST", "/api/meeting/v1", bytes.NewReader([]byte(`{"attendees":["bad"]}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signed)

	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
