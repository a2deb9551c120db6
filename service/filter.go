package service

import (
	"Engage/config"
	"Engage/dao"
	"Engage/pkg/paginator"
	"Engage/pkg/response"
	"Engage/types"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// maxTimeframeDays 大约一万年，再往前 MySQL DATETIME 也存不下
const maxTimeframeDays = 3_650_000

// BuildContentFilter 把 query 参数翻译成筛选条件
// 只有 timeframe 解析失败会报错；author_id / tag_id 非数字时结果为空
func BuildContentFilter(req types.ContentFilterReq, now time.Time) (dao.ContentFilter, error) {
	var filter dao.ContentFilter

	if req.AuthorID != "" {
		id, err := strconv.ParseUint(strings.TrimSpace(req.AuthorID), 10, 64)
		if err != nil {
			filter.MatchNone = true
		} else {
			filter.AuthorID = &id
		}
	}

	filter.AuthorUsername = req.AuthorUsername

	if req.Timeframe != "" {
		days, err := strconv.Atoi(strings.TrimSpace(req.Timeframe))
		if err != nil || days > maxTimeframeDays || days < -maxTimeframeDays {
			return filter, response.NewError(http.StatusBadRequest, "timeframe must be an integer number of days")
		}
		since := now.AddDate(0, 0, -days)
		if since.Year() < 1 || since.Year() > 9999 {
			return filter, response.NewError(http.StatusBadRequest, "timeframe is out of range")
		}
		filter.CreatedSince = &since
	}

	if req.TagID != "" {
		id, err := strconv.ParseUint(strings.TrimSpace(req.TagID), 10, 64)
		if err != nil {
			filter.MatchNone = true
		} else {
			filter.TagID = &id
		}
	}

	filter.TagName = req.Tag
	filter.Title = req.Title

	return filter, nil
}

// BuildPaginator 解析 page / items_per_page，缺省时第 1 页、每页 app.page_size 条
func BuildPaginator(req types.ListContentsReq, app *config.App) (paginator.Paginator, error) {
	page := 1
	if req.Page != "" {
		n, err := strconv.Atoi(strings.TrimSpace(req.Page))
		if err != nil || n < 1 {
			return paginator.Paginator{}, response.NewError(http.StatusBadRequest, "page must be a positive integer")
		}
		page = n
	}

	size := app.PageSize
	if req.ItemsPerPage != "" {
		n, err := strconv.Atoi(strings.TrimSpace(req.ItemsPerPage))
		if err != nil || n < 1 {
			return paginator.Paginator{}, response.NewError(http.StatusBadRequest, "items_per_page must be a positive integer")
		}
		size = min(n, app.MaxPageSize)
	}

	return paginator.New(page, size), nil
}
