package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ecofuture-uz/content-service/internal/api/http/handlers"
	"github.com/ecofuture-uz/content-service/internal/domain"
	"github.com/ecofuture-uz/content-service/internal/observability"
	"github.com/ecofuture-uz/content-service/internal/roster"
	"github.com/ecofuture-uz/content-service/internal/service"
)

type stubKV struct {
	data map[string]string
}

func (s *stubKV) Get(_ context.Context, key string) (string, bool, error) {
	value, ok := s.data[key]
	return value, ok, nil
}

func (s *stubKV) Set(_ context.Context, key, value string) error {
	s.data[key] = value
	return nil
}

func newTeamApp(t *testing.T) *fiber.App {
	t.Helper()

	defaults := func() []domain.TeamMember {
		return []domain.TeamMember{
			{ID: 1, Name: "Farhodova Fozila Uygunovna", Role: "Founder", Bio: "Fozila is a founder.", Image: "/images/team/Farhodova Fozila Uygunovna.jpg", Category: "Founders"},
			{ID: 2, Name: "Ashurov Javohir", Role: "Volunteer", Bio: "Javohir volunteers.", Image: "/images/team/Ashurov Javohir.JPG", Category: "Volunteers"},
		}
	}
	store := roster.NewStore(&stubKV{data: make(map[string]string)}, zap.NewNop(), defaults)
	teamService := service.NewTeamService(store, "/images/team", nil, zap.NewNop())
	require.NoError(t, teamService.Init(context.Background()))

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	app.Get("/team", handlers.NewTeamHandler(teamService).GetTeam)
	return app
}

func TestGetTeam(t *testing.T) {
	app := newTeamApp(t)

	t.Run("returns roster with categories", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/team", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var payload struct {
			Data struct {
				Members []struct {
					Name     string `json:"name"`
					Category string `json:"category"`
				} `json:"members"`
				Categories []string `json:"categories"`
				Total      int      `json:"total"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(body, &payload))
		require.Len(t, payload.Data.Members, 2)
		assert.Equal(t, "Farhodova Fozila Uygunovna", payload.Data.Members[0].Name)
		assert.Equal(t, []string{"All", "Founders", "Volunteers"}, payload.Data.Categories)
		assert.Equal(t, 2, payload.Data.Total)
	})

	t.Run("filters by category and search", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/team?category=Volunteers&q=javohir", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var payload struct {
			Data struct {
				Members []struct {
					Name string `json:"name"`
				} `json:"members"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(body, &payload))
		require.Len(t, payload.Data.Members, 1)
		assert.Equal(t, "Ashurov Javohir", payload.Data.Members[0].Name)
	})

	t.Run("rejects unknown sort key", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/team?sort_by=height", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rejects unknown direction", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/team?sort_by=name&direction=sideways", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
