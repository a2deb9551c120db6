// Package paginator 页码分页（1 开始），按偏移量切片
package paginator

// Paginator 描述一次分页请求
type Paginator struct {
	Page     int
	PageSize int
}

func New(page, pageSize int) Paginator {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	return Paginator{Page: page, PageSize: pageSize}
}

func (p Paginator) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p Paginator) Limit() int {
	return p.PageSize
}

// TotalPages 空结果集也算 1 页
func (p Paginator) TotalPages(total int64) int {
	if total <= 0 {
		return 1
	}
	return int((total + int64(p.PageSize) - 1) / int64(p.PageSize))
}

// OutOfRange 请求页已经超过最后一页，不需要再查数据。
// 按页码比较，页码很大时 Offset 会溢出
func (p Paginator) OutOfRange(total int64) bool {
	if total <= 0 {
		return true
	}
	return int64(p.Page-1) >= (total+int64(p.PageSize)-1)/int64(p.PageSize)
}

// Page 分页响应信封
type Page[T any] struct {
	Count      int64 `json:"count"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
	Next       *int  `json:"next"`
	Previous   *int  `json:"previous"`
	Results    []T   `json:"results"`
}

func NewPage[T any](p Paginator, total int64, results []T) *Page[T] {
	if results == nil {
		results = make([]T, 0)
	}
	page := &Page[T]{
		Count:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages(total),
		Results:    results,
	}
	if p.Page < page.TotalPages {
		next := p.Page + 1
		page.Next = &next
	}
	if p.Page > 1 {
		// 越界页的上一页指向最后一页
		prev := min(p.Page-1, page.TotalPages)
		page.Previous = &prev
	}
	return page
}
