package util

import (
	"math"
	"strconv"
)

// Page 结构体表示分页对象
type Page struct {
	PageSize  int64       `json:"pageSize"`  // 每页记录数
	PageNo    int64       `json:"pageNo"`    // 当前页码
	Total     int64       `json:"total"`     // 总记录数
	TotalPage int64       `json:"totalPage"` // 总页数
	Result    interface{} `json:"result"`    // 查询结果
}

// NewPage 初始化分页对象
func NewPage(pageNo, pageSize int64) Page {
	if pageNo < 1 {
		pageNo = 1
	}

	if pageSize <= 0 {
		pageSize = 10
	}

	if pageSize > 150 {
		pageSize = 150
	}

	return Page{
		PageSize: pageSize,
		PageNo:   pageNo,
	}
}

func NewPageWithStr(pageNoStr, pageSizeStr string) Page {
	pageNo, err := strconv.ParseInt(pageNoStr, 10, 64)
	if err != nil || pageNo < 1 {
		pageNo = 1
	}

	pageSize, err := strconv.ParseInt(pageSizeStr, 10, 64)
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}

	if pageSize > 150 {
		pageSize = 150
	}

	return Page{
		PageSize: pageSize,
		PageNo:   pageNo,
	}
}

// SetTotal 设置总记录数并计算总页数
func (p Page) SetTotal(total int64) Page {
	if p.PageSize == 0 {
		p.PageSize = 10
	}

	p.Total = total
	p.TotalPage = int64(math.Ceil(float64(p.Total) / float64(p.PageSize)))

	return p
}

// Offset 计算偏移量，已设置总数时不超过总数
func (p Page) Offset() int {
	offset := (p.PageNo - 1) * p.PageSize
	if offset < 0 {
		return 0
	}
	if p.Total > 0 && offset > p.Total {
		return int(p.Total)
	}
	return int(offset)
}

// End 当前页最后一条之后的位置，用于切片
func (p Page) End() int {
	end := int64(p.Offset()) + p.PageSize
	if end > p.Total {
		end = p.Total
	}
	return int(end)
}
