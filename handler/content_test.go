package handler

import (
	"Engage/pkg/paginator"
	"Engage/pkg/response"
	"Engage/service"
	"Engage/types"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContentService struct {
	listReq  types.ListContentsReq
	statsReq types.ContentFilterReq

	page  *paginator.Page[*types.ContentListItem]
	stats *types.ContentStatsResp
	err   error
}

func (f *fakeContentService) ListContents(_ context.Context, req types.ListContentsReq) (*paginator.Page[*types.ContentListItem], error) {
	f.listReq = req
	return f.page, f.err
}

func (f *fakeContentService) GetStats(_ context.Context, req types.ContentFilterReq) (*types.ContentStatsResp, error) {
	f.statsReq = req
	return f.stats, f.err
}

func newTestRouter(register func(r gin.IRouter)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(response.ErrorMiddleware())
	register(r.Group("/api"))
	return r
}

func doGet(t *testing.T, r http.Handler, url string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)

	// 列表类接口返回数组，只解析对象
	var body map[string]any
	if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestContent_ListContents(t *testing.T) {
	svc := &fakeContentService{
		page: paginator.NewPage(paginator.New(1, 2), 3, []*types.ContentListItem{
			{
				Author:  &types.AuthorInfo{ID: 1, Username: "alice", Followers: 10},
				Content: &types.ContentInfo{ID: 5, Author: 1, Title: "hi", TotalEngagement: 3, Tags: []string{"music"}},
			},
		}),
	}
	h := &Content{ContentService: svc}
	r := newTestRouter(h.RegisterRouter)

	w, body := doGet(t, r, "/api/contents/?author_username=alice&tag=music&title=Hi&timeframe=7&page=1&items_per_page=2")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "alice", svc.listReq.AuthorUsername)
	assert.Equal(t, "music", svc.listReq.Tag)
	assert.Equal(t, "Hi", svc.listReq.Title)
	assert.Equal(t, "7", svc.listReq.Timeframe)
	assert.Equal(t, "1", svc.listReq.Page)
	assert.Equal(t, "2", svc.listReq.ItemsPerPage)

	assert.EqualValues(t, 3, body["count"])
	assert.EqualValues(t, 2, body["total_pages"])
	assert.EqualValues(t, 2, body["next"])
	assert.Nil(t, body["previous"])

	results := body["results"].([]any)
	require.Len(t, results, 1)
	item := results[0].(map[string]any)
	author := item["author"].(map[string]any)
	content := item["content"].(map[string]any)
	assert.Equal(t, "alice", author["username"])
	assert.EqualValues(t, 1, content["author"])
	assert.Equal(t, []any{"music"}, content["tags"])

	for _, m := range []map[string]any{author, content} {
		assert.NotContains(t, m, "big_metadata")
		assert.NotContains(t, m, "secret_value")
	}
}

func TestContent_ListContents_Errors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"bad request", response.NewError(http.StatusBadRequest, "page must be a positive integer"), http.StatusBadRequest, "page must be a positive integer"},
		{"storage failure", errors.New("dial tcp: connection refused"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := &Content{ContentService: &fakeContentService{err: tc.err}}
			r := newTestRouter(h.RegisterRouter)

			w, body := doGet(t, r, "/api/contents/?page=0")
			assert.Equal(t, tc.wantStatus, w.Code)
			assert.EqualValues(t, tc.wantStatus, body["code"])
			assert.Equal(t, tc.wantMsg, body["msg"])
		})
	}
}

func TestContent_GetStats(t *testing.T) {
	stats := &types.ContentStatsResp{
		TotalLikes:          10,
		TotalShares:         2,
		TotalViews:          100,
		TotalComments:       5,
		TotalEngagement:     17,
		TotalEngagementRate: 0.17,
		TotalContents:       2,
		TotalFollowers:      20,
	}
	svc := &fakeContentService{stats: stats}
	h := &Content{ContentService: svc}
	r := newTestRouter(h.RegisterRouter)

	w, body := doGet(t, r, "/api/contents/stats/?author_id=1&tag_id=4")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", svc.statsReq.AuthorID)
	assert.Equal(t, "4", svc.statsReq.TagID)

	assert.Equal(t, map[string]any{
		"total_likes":           float64(10),
		"total_shares":          float64(2),
		"total_views":           float64(100),
		"total_comments":        float64(5),
		"total_engagement":      float64(17),
		"total_engagement_rate": 0.17,
		"total_contents":        float64(2),
		"total_followers":       float64(20),
	}, body)
}

func TestContent_GetStats_NoData(t *testing.T) {
	h := &Content{ContentService: &fakeContentService{err: service.ErrNoData}}
	r := newTestRouter(h.RegisterRouter)

	w, _ := doGet(t, r, "/api/contents/stats/?author_username=nobody")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"msg":"No data found"}`, w.Body.String())
}
