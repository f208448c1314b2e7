//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"equipment-rental/internal/domain/catalog"
	"equipment-rental/internal/handler/api"
	"equipment-rental/internal/handler/dto/request"
	resdto "equipment-rental/internal/handler/dto/response"
	"equipment-rental/internal/pkg/errs"
	"equipment-rental/internal/usecase/commands"
	"equipment-rental/internal/usecase/queries"
	"equipment-rental/tests/common/builder"
	"equipment-rental/tests/common/httptest"
	commandsmock "equipment-rental/tests/mock/commands"
	queriesmock "equipment-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCatalogCommands
	mockQueries  *queriesmock.MockCatalogQueries
	sessions     *sessions
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	s.router = newTestRouter(s.T())
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.sessions = newSessions(s.mockCtrl)
	s.sessions.adminActive()

	h := api.NewCatalogHandler(s.mockCommands, s.mockQueries)
	s.router.GET("/api/catalog", h.List)
	s.router.GET("/api/catalog/:id", h.Get)
	s.router.POST("/api/admin/catalog", s.sessions.mw.RequireAdmin(), h.Add)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestList() {
	camera := builder.NewItemBuilder().BuildView()
	lab := builder.NewItemBuilder().With(func(b *builder.ItemBuilder) {
		b.ID = "l1"
		b.Title = "Wet Lab Bench"
		b.Category = catalog.CategoryLab
	}).BuildView()

	s.Run("defaults to equipment with an empty term", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), "", catalog.CategoryEquipment).
			Return([]*queries.CatalogItemView{camera}, nil)

		w := httptest.Do(s.T(), s.router, http.MethodGet, "/api/catalog", nil)

		got := httptest.DecodeJSON[resdto.CatalogListResponse](s.T(), w, http.StatusOK)
		want := resdto.CatalogListResponse{Items: []*queries.CatalogItemView{camera}, Count: 1, Category: "equipment"}
		s.Empty(cmp.Diff(want, got))
	})

	s.Run("passes term and category through", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), "bench", catalog.CategoryLab).
			Return([]*queries.CatalogItemView{lab}, nil)

		w := httptest.Do(s.T(), s.router, http.MethodGet, "/api/catalog?q=bench&category=lab", nil)

		got := httptest.DecodeJSON[resdto.CatalogListResponse](s.T(), w, http.StatusOK)
		s.Equal("lab", got.Category)
		s.Equal("bench", got.Query)
		s.Equal(1, got.Count)
		s.Equal("l1", got.Items[0].ID)
	})

	s.Run("no matches is an empty list, not null", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), "zzz", catalog.CategoryEquipment).Return(nil, nil)

		w := httptest.Do(s.T(), s.router, http.MethodGet, "/api/catalog?q=zzz", nil)

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"items":[]`)
	})

	s.Run("unknown category is rejected before the query", func() {
		w := httptest.Do(s.T(), s.router, http.MethodGet, "/api/catalog?category=kitchen", nil)
		httptest.AssertError(s.T(), w, http.StatusBadRequest, catalog.ErrInvalidCategory.Error())
	})

	s.Run("read failure hides the cause", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), "", catalog.CategoryEquipment).
			Return(nil, errs.Mark(errs.New("disk gone"), queries.ErrCatalogFailure))

		w := httptest.Do(s.T(), s.router, http.MethodGet, "/api/catalog", nil)
		httptest.AssertError(s.T(), w, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *CatalogHandlerTestSuite) TestGet() {
	s.Run("found", func() {
		view := builder.NewItemBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), "e1").Return(view, nil)

		w := httptest.Do(s.T(), s.router, http.MethodGet, "/api/catalog/e1", nil)

		got := httptest.DecodeJSON[queries.CatalogItemView](s.T(), w, http.StatusOK)
		s.Empty(cmp.Diff(*view, got))
	})

	s.Run("not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), "nope").Return(nil, queries.ErrItemNotFound)

		w := httptest.Do(s.T(), s.router, http.MethodGet, "/api/catalog/nope", nil)
		httptest.AssertError(s.T(), w, http.StatusNotFound, "equipment not found")
	})
}

func (s *CatalogHandlerTestSuite) TestAdd() {
	url := "/api/admin/catalog"
	body := request.AddItemRequest{
		Title:       "Zeiss Microscope",
		Description: ptr("Upright research microscope"),
		PricePerDay: ptr(80.0),
		Category:    ptr("lab"),
	}
	created := builder.NewItemBuilder().With(func(b *builder.ItemBuilder) {
		b.ID = "e_123"
		b.Title = "Zeiss Microscope"
		b.Category = catalog.CategoryLab
	}).BuildView()

	s.Run("success returns 201 with Location", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), commands.AddItemRequest{
			Title:       body.Title,
			Description: body.Description,
			PricePerDay: body.PricePerDay,
			Category:    body.Category,
		}).Return(created, nil)

		w := httptest.Do(s.T(), s.router, http.MethodPost, url, body, httptest.WithCookies(adminCookie()))

		got := httptest.DecodeJSON[queries.CatalogItemView](s.T(), w, http.StatusCreated)
		s.Equal("e_123", got.ID)
		s.Equal("/api/catalog/e_123", w.Header().Get("Location"))
	})

	s.Run("title only is enough", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), commands.AddItemRequest{Title: "Tripod"}).Return(created, nil)

		w := httptest.Do(s.T(), s.router, http.MethodPost, url, map[string]any{"title": "Tripod"},
			httptest.WithCookies(adminCookie()))
		s.Equal(http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("requires an admin session", func() {
		w := httptest.Do(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertError(s.T(), w, http.StatusUnauthorized, "Admin sign-in required")
	})

	cases := []struct {
		name   string
		mutate func(map[string]any)
		msg    string
	}{
		{name: "missing title", mutate: httptest.Field("title", nil), msg: "title is required"},
		{name: "blank title", mutate: httptest.Field("title", ""), msg: "title is required"},
		{name: "title too long", mutate: httptest.Field("title", strings.Repeat("a", 256)), msg: "title must be at most 255 characters"},
		{name: "negative price", mutate: httptest.Field("pricePerDay", -1), msg: "pricePerDay must be at least 0"},
		{name: "unknown category", mutate: httptest.Field("category", "kitchen"), msg: catalog.ErrInvalidCategory.Error()},
	}
	for _, tc := range cases {
		s.Run("400: "+tc.name, func() {
			w := httptest.Do(s.T(), s.router, http.MethodPost, url,
				httptest.JSONMap(s.T(), body, tc.mutate), httptest.WithCookies(adminCookie()))
			httptest.AssertError(s.T(), w, http.StatusBadRequest, tc.msg)
		})
	}

	s.Run("400: malformed JSON", func() {
		w := httptest.Do(s.T(), s.router, http.MethodPost, url, `{"title":`, httptest.WithCookies(adminCookie()))
		httptest.AssertError(s.T(), w, http.StatusBadRequest, "Invalid request body")
	})

	s.Run("400: domain rule from the command", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(catalog.ErrEmptyTitle, errs.ErrValidation))

		w := httptest.Do(s.T(), s.router, http.MethodPost, url,
			httptest.JSONMap(s.T(), body, httptest.Field("title", "   ")), httptest.WithCookies(adminCookie()))
		httptest.AssertError(s.T(), w, http.StatusBadRequest, catalog.ErrEmptyTitle.Error())
	})
}
