//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"equipment-rental/internal/handler/api"
	"equipment-rental/internal/pkg/errs"
	"equipment-rental/internal/usecase/queries"
	"equipment-rental/tests/common/builder"
	"equipment-rental/tests/common/httptest"
	commandsmock "equipment-rental/tests/mock/commands"
	queriesmock "equipment-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PreferenceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPreferenceCommands
	mockQueries  *queriesmock.MockPreferenceQueries
}

func (s *PreferenceHandlerTestSuite) SetupTest() {
	s.router = newTestRouter(s.T())
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPreferenceCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPreferenceQueries(s.mockCtrl)

	sess := newSessions(s.mockCtrl)
	sess.userIs(builder.NewRentalBuilder().Identity())

	h := api.NewPreferenceHandler(s.mockCommands, s.mockQueries)
	me := s.router.Group("/api/me", sess.mw.RequireUser())
	me.GET("/preferences", h.Get)
	me.PUT("/preferences", h.Update)
}

func (s *PreferenceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPreferenceHandlerSuite(t *testing.T) {
	suite.Run(t, new(PreferenceHandlerTestSuite))
}

func (s *PreferenceHandlerTestSuite) TestGet() {
	s.mockQueries.EXPECT().Get(gomock.Any(), "ana@example.com").Return(&queries.PreferenceView{DarkMode: true}, nil)

	w := httptest.Do(s.T(), s.router, http.MethodGet, "/api/me/preferences", nil, httptest.WithBearer(userToken))

	got := httptest.DecodeJSON[queries.PreferenceView](s.T(), w, http.StatusOK)
	s.True(got.DarkMode)
}

func (s *PreferenceHandlerTestSuite) TestUpdate() {
	url := "/api/me/preferences"
	owner := builder.NewRentalBuilder().Identity()

	s.Run("turning dark mode off is not a missing field", func() {
		s.mockCommands.EXPECT().SetDarkMode(gomock.Any(), owner, false).Return(&queries.PreferenceView{DarkMode: false}, nil)

		w := httptest.Do(s.T(), s.router, http.MethodPut, url, map[string]any{"darkMode": false}, httptest.WithBearer(userToken))

		s.Equal(http.StatusOK, w.Code, w.Body.String())
		s.JSONEq(`{"darkMode":false}`, w.Body.String())
	})

	s.Run("missing darkMode", func() {
		w := httptest.Do(s.T(), s.router, http.MethodPut, url, map[string]any{}, httptest.WithBearer(userToken))
		httptest.AssertError(s.T(), w, http.StatusBadRequest, "darkMode is required")
	})

	s.Run("write failure", func() {
		s.mockCommands.EXPECT().SetDarkMode(gomock.Any(), owner, true).Return(nil, errs.New("write failed"))

		w := httptest.Do(s.T(), s.router, http.MethodPut, url, map[string]any{"darkMode": true}, httptest.WithBearer(userToken))
		httptest.AssertError(s.T(), w, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("requires sign-in", func() {
		w := httptest.Do(s.T(), s.router, http.MethodPut, url, map[string]any{"darkMode": true})
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}
